package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("PAYDIRT_TEST_DIR", "/var/lib/paydirt")

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "empty", path: "", want: ""},
		{name: "absolute", path: "/tmp/roster.csv", want: "/tmp/roster.csv"},
		{name: "bare tilde", path: "~", want: home},
		{name: "tilde prefix", path: "~/payroll/roster.csv", want: filepath.Join(home, "payroll", "roster.csv")},
		{name: "env var", path: "$PAYDIRT_TEST_DIR/sessions.db", want: "/var/lib/paydirt/sessions.db"},
		{name: "tilde mid-path untouched", path: "/data/~backup", want: "/data/~backup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.path))
		})
	}
}

func TestDefaultDatabasePath(t *testing.T) {
	got := DefaultDatabasePath()
	assert.True(t, filepath.IsAbs(got))
	assert.Equal(t, "paydirt.db", filepath.Base(got))
}
