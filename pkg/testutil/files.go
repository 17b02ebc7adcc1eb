package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// IsolateDirs points the config and state directories at fresh temp dirs so
// tests never read user settings or write into the real log file.
func IsolateDirs(t *testing.T) (configDir, stateDir string) {
	t.Helper()

	configDir = filepath.Join(t.TempDir(), "config")
	stateDir = filepath.Join(t.TempDir(), "state")
	t.Setenv("STOP_NAGGING_CONFIG_DIR", configDir)
	t.Setenv("STOP_NAGGING_STATE_DIR", stateDir)
	return configDir, stateDir
}
