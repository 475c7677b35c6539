// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath resolves a user-supplied file path: a leading ~ becomes the
// current user's home directory and $VAR references are substituted from the
// environment. If the home directory cannot be determined the ~ is left
// untouched.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}

	return os.ExpandEnv(path)
}

// DefaultDatabasePath returns the session database location used when no
// explicit path is configured.
func DefaultDatabasePath() string {
	return ExpandPath("$HOME/.local/share/paydirt/paydirt.db")
}
