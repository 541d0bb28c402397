package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// testConfig is a configuration file with two places and range defaults.
const testConfig = `defaults:
  days: 3
places:
  home:
    latitude: 49.86396819090531
    longitude: 14.265802152828646
    label: "Home"
  Longyearbyen:
    latitude: 78.2232
    longitude: 15.6267
`

// writeConfig writes content to a config file in a temporary directory and
// returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".sunriset")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
