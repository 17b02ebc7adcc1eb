package config

import (
	"strings"

	"github.com/bodo-run/stop-nagging/pkg/ui"
	"github.com/pelletier/go-toml/v2"
)

const settingsHeader = `# stop-nagging settings
#
# Every value below is a default for the matching command-line flag.
# Uncomment a line to change it. Environment variables named
# STOP_NAGGING_<KEY> (e.g. STOP_NAGGING_IGNORE_TOOLS=yarn,pnpm) and
# explicit flags take precedence over this file.

`

// GenerateSettingsContent renders the built-in settings as a commented TOML
// file.
func GenerateSettingsContent() (string, error) {
	defaults := Settings{
		Format:         ui.FormatAuto,
		ProbeCacheSize: 256,
	}
	data, err := toml.Marshal(defaults)
	if err != nil {
		return "", err
	}
	return settingsHeader + commentOutConfigValues(string(data)), nil
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines and comments as-is
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
