package main

import (
	"fmt"
	"log"
	"os"

	"github.com/christophe-duc/lazyts/pkg/cheatsheet"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Please provide a command: one of 'generate', 'check'")
	}

	command := os.Args[1]

	switch command {
	case "generate":
		if err := cheatsheet.Generate(); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("\nGenerated cheatsheets in %s\n", mustCommandsDir())
	case "check":
		upToDate, err := cheatsheet.Check(os.Stdout)
		if err != nil {
			log.Fatal(err)
		}
		if !upToDate {
			os.Exit(1)
		}
	default:
		log.Fatal("\nUnknown command. Expected one of 'generate', 'check'")
	}
}

func mustCommandsDir() string {
	dir, err := cheatsheet.GetCommandsDir()
	if err != nil {
		log.Fatal(err)
	}
	return dir
}
