package config

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultRulesPath is where the organizer rule file lives unless the caller
// overrides it.
func DefaultRulesPath() string {
	return ExpandPath("~/.config/aeorg/organizer.json")
}

// ExpandPath expands ~ and $VAR style environment references in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
