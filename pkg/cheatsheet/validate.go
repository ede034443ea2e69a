package cheatsheet

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/go-errors/errors"
	"github.com/pmezard/go-difflib/difflib"
)

// Check regenerates the cheatsheets in a temporary directory and prints a
// diff against the committed ones. It returns false if they are out of date.
func Check(out io.Writer) (bool, error) {
	dir, err := GetCommandsDir()
	if err != nil {
		return false, err
	}
	return checkDir(out, dir)
}

func checkDir(out io.Writer, dir string) (bool, error) {
	tmpDir, err := os.MkdirTemp("", "lazyts_cheatsheet")
	if err != nil {
		return false, errors.Wrap(err, 0)
	}
	defer os.RemoveAll(tmpDir)

	if err := generateAtDir(tmpDir); err != nil {
		return false, err
	}

	actualContent, err := obtainContent(dir)
	if err != nil {
		return false, err
	}
	expectedContent, err := obtainContent(tmpDir)
	if err != nil {
		return false, err
	}

	if expectedContent == "" {
		return false, errors.New("empty expected content")
	}

	if actualContent != expectedContent {
		if err := difflib.WriteUnifiedDiff(out, difflib.UnifiedDiff{
			A:        difflib.SplitLines(expectedContent),
			B:        difflib.SplitLines(actualContent),
			FromFile: "Expected",
			FromDate: "",
			ToFile:   "Actual",
			ToDate:   "",
			Context:  1,
		}); err != nil {
			return false, errors.Wrap(err, 0)
		}
		fmt.Fprintf(
			out,
			"\nCheatsheets are out of date. Please run `%s` at the project root and commit the changes.\n",
			generateCheatsheetCmd,
		)
		return false, nil
	}

	fmt.Fprintln(out, "\nCheatsheets are up to date")
	return true, nil
}

// GetCommandsDir is where the cheatsheets live, found by walking up from the
// working directory to the one holding go.mod
func GetCommandsDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, 0)
	}
	root, err := findProjectRoot(dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "docs", "commands"), nil
}

func findProjectRoot(dir string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("could not find go.mod in any parent directory")
		}
		dir = parent
	}
}

var cheatsheetFileRegex = regexp.MustCompile(`Commands_\w+\.md$`)

func obtainContent(dir string) (string, error) {
	content := ""
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if cheatsheetFileRegex.MatchString(path) {
			bytes, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			content += fmt.Sprintf("\n%s\n\n", filepath.Base(path))
			content += string(bytes)
		}

		return nil
	})
	if err != nil {
		return "", errors.Wrap(err, 0)
	}

	return content, nil
}
