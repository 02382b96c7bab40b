package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReturnsExitCodeAndFlushesLog(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	args := os.Args
	defer func() { os.Args = args }()
	os.Args = []string{"hypr-desktops", "-config", filepath.Join(home, "missing.json")}

	assert.Equal(t, 1, run())

	data, err := os.ReadFile(filepath.Join(home, ".local", "share", "hypr-desktops", "logs", "hypr-desktops.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Failed to load configuration")
}
