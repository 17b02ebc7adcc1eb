package types_test

import (
	"testing"

	"github.com/bodo-run/stop-nagging/pkg/errors"
	"github.com/bodo-run/stop-nagging/pkg/types"
	"github.com/stretchr/testify/assert"
)

func validConfig() *types.Config {
	return &types.Config{Ecosystems: []types.Ecosystem{
		{
			Name: "nodejs",
			Tools: []types.Tool{
				{Name: "npm", Executable: "npm", Env: types.EnvVars{{Key: "NPM_CONFIG_FUND", Value: "false"}}},
				{Name: "yarn", Executable: "yarn"},
			},
		},
		{
			Name:  "python",
			Tools: []types.Tool{{Name: "npm", Executable: "pip"}},
		},
	}}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*types.Config)
		wantErr bool
	}{
		{"valid config", func(*types.Config) {}, false},
		{"no ecosystems", func(c *types.Config) { c.Ecosystems = nil }, true},
		{"empty ecosystem name", func(c *types.Config) { c.Ecosystems[0].Name = " " }, true},
		{"duplicate ecosystem differing in case", func(c *types.Config) { c.Ecosystems[1].Name = "NodeJS" }, true},
		{"empty tool name", func(c *types.Config) { c.Ecosystems[0].Tools[0].Name = "" }, true},
		{"duplicate tool in ecosystem", func(c *types.Config) { c.Ecosystems[0].Tools[1].Name = "npm" }, true},
		{"missing executable", func(c *types.Config) { c.Ecosystems[0].Tools[1].Executable = "" }, true},
		{"env key with equals", func(c *types.Config) { c.Ecosystems[0].Tools[0].Env[0].Key = "A=B" }, true},
		{"empty env key", func(c *types.Config) { c.Ecosystems[0].Tools[0].Env[0].Key = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_SameToolNameAcrossEcosystems(t *testing.T) {
	// npm appears in both nodejs and python; only per-ecosystem uniqueness matters
	assert.NoError(t, validConfig().Validate())
}

func TestConfigHelpers(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, 3, cfg.ToolCount())

	_, ok := cfg.Ecosystem("PYTHON")
	assert.True(t, ok)
	_, ok = cfg.Ecosystem("rust")
	assert.False(t, ok)
}
