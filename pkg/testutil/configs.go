package testutil

import (
	"strconv"

	"github.com/bodo-run/stop-nagging/pkg/types"
)

// EchoToolConfig is a single "test" ecosystem with one tool that probes for
// echo, sets FOO=bar and runs "echo hi".
func EchoToolConfig() *types.Config {
	return &types.Config{
		Ecosystems: []types.Ecosystem{
			{
				Name: "test",
				Tools: []types.Tool{
					{
						Name:       "echo-tool",
						Executable: "echo",
						Env:        types.EnvVars{{Key: "FOO", Value: "bar"}},
						Commands:   []string{"echo hi"},
					},
				},
			},
		},
	}
}

// EchoToolYAML is EchoToolConfig as a tools document.
const EchoToolYAML = `ecosystems:
  test:
    tools:
      - name: echo-tool
        executable: echo
        env:
          FOO: bar
        commands:
          - echo hi
`

// Tool builds a tool whose env keys and commands are prefixed with its name:
// envs "<name>_ENV<i>" and commands "<name>-cmd<i>", both counted from 1.
func Tool(name string, envs, commands int) types.Tool {
	tool := types.Tool{Name: name, Executable: name}
	for i := 1; i <= envs; i++ {
		tool.Env = append(tool.Env, types.EnvVar{
			Key:   name + "_ENV" + strconv.Itoa(i),
			Value: "v" + strconv.Itoa(i),
		})
	}
	for i := 1; i <= commands; i++ {
		tool.Commands = append(tool.Commands, name+"-cmd"+strconv.Itoa(i))
	}
	return tool
}

// Ecosystem wraps tools into a named ecosystem.
func Ecosystem(name string, tools ...types.Tool) types.Ecosystem {
	return types.Ecosystem{Name: name, Tools: tools}
}

// Config wraps ecosystems into a configuration.
func Config(ecosystems ...types.Ecosystem) *types.Config {
	return &types.Config{Ecosystems: ecosystems}
}
