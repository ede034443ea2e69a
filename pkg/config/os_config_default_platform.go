//go:build !windows
// +build !windows

package config

import "runtime"

// GetPlatformDefaultConfig gets the defaults for the platform
func GetPlatformDefaultConfig() OSConfig {
	if runtime.GOOS == "darwin" {
		return OSConfig{OpenCommand: "open {{filename}}"}
	}
	return OSConfig{OpenCommand: "xdg-open {{filename}}"}
}
