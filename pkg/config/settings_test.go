// pkg/config/settings_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: temp config dir, environment
// PURPOSE: Test settings layering: defaults, file, environment, flags

package config_test

import (
	"strings"
	"testing"

	"github.com/bodo-run/stop-nagging/pkg/config"
	"github.com/bodo-run/stop-nagging/pkg/errors"
	"github.com/bodo-run/stop-nagging/pkg/testutil"
	"github.com/bodo-run/stop-nagging/pkg/ui"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	testutil.IsolateDirs(t)

	s, err := config.LoadSettings(nil)
	require.NoError(t, err)

	assert.Equal(t, ui.FormatAuto, s.Format)
	assert.Equal(t, 256, s.ProbeCacheSize)
	assert.Empty(t, s.Ecosystems)
	assert.False(t, s.DryRun)
}

func TestLoadSettings_Layering(t *testing.T) {
	configDir, _ := testutil.IsolateDirs(t)
	testutil.CreateFile(t, configDir, "config.toml", `
format = "text"
ignore_tools = ["yarn"]
verbose = 1
dry_run = true
`)
	t.Setenv("STOP_NAGGING_FORMAT", "json")
	t.Setenv("STOP_NAGGING_ECOSYSTEMS", "nodejs, python")

	s, err := config.LoadSettings(map[string]interface{}{
		"verbose": 3,
	})
	require.NoError(t, err)

	assert.Equal(t, ui.FormatJSON, s.Format, "environment beats file")
	assert.Equal(t, 3, s.Verbose, "flags beat file")
	assert.Equal(t, []string{"yarn"}, s.IgnoreTools)
	assert.Equal(t, []string{"nodejs", "python"}, s.Ecosystems)
	assert.True(t, s.DryRun)
}

func TestLoadSettings_FlagListsAreSplit(t *testing.T) {
	testutil.IsolateDirs(t)

	s, err := config.LoadSettings(map[string]interface{}{
		"ignore_tools": []string{"yarn,pnpm", " ", "next"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"yarn", "pnpm", "next"}, s.IgnoreTools)
}

func TestLoadSettings_BrokenFile(t *testing.T) {
	configDir, _ := testutil.IsolateDirs(t)
	testutil.CreateFile(t, configDir, "config.toml", "format = ")

	_, err := config.LoadSettings(nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSettingsLoad))
}

func TestLoadSettings_FormatDecoding(t *testing.T) {
	testutil.IsolateDirs(t)

	s, err := config.LoadSettings(map[string]interface{}{"format": "Terminal"})
	require.NoError(t, err)
	assert.Equal(t, ui.FormatTerminal, s.Format)

	_, err = config.LoadSettings(map[string]interface{}{"format": "bogus"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrSettingsLoad))
	assert.Contains(t, err.Error(), "unknown format: bogus")
}

func TestGenerateSettingsContent(t *testing.T) {
	content, err := config.GenerateSettingsContent()
	require.NoError(t, err)

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			assert.True(t, strings.HasPrefix(trimmed, "#"), "line %q should be commented", line)
		}
	}
	assert.Regexp(t, `# format = ['"]auto['"]`, content)

	// Uncommenting every value yields a valid settings file
	var values []string
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "# ") && strings.Contains(line, " = ") {
			values = append(values, strings.TrimPrefix(line, "# "))
		}
	}
	var s config.Settings
	require.NoError(t, toml.Unmarshal([]byte(strings.Join(values, "\n")), &s))
	assert.Equal(t, ui.FormatAuto, s.Format)
	assert.Equal(t, 256, s.ProbeCacheSize)
}
