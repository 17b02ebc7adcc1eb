package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const (
	// AppDirName is the directory name used below the XDG base directories
	AppDirName = "stop-nagging"

	// SettingsFileName holds application settings (flag defaults)
	SettingsFileName = "config.toml"

	// EnvConfigDir overrides the config directory
	EnvConfigDir = "STOP_NAGGING_CONFIG_DIR"
)

// ConfigDir returns the directory holding the settings file.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// SettingsFile returns the path of the TOML settings file.
func SettingsFile() string {
	return filepath.Join(ConfigDir(), SettingsFileName)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	if len(path) > 1 && path[1] != '/' && path[1] != filepath.Separator {
		// ~otheruser is not supported
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv("HOME")
		if homeDir == "" {
			return path
		}
	}
	return filepath.Join(homeDir, strings.TrimLeft(path[1:], `/\`))
}
