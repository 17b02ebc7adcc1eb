package list

// Message constants
const (
	MsgShort   = "List configured ecosystems and tools"
	MsgLong    = "List shows every ecosystem of the tools configuration in run order, with the\nexecutables probed, the environment variables set and the commands run for\neach tool. Uses --yaml when given, otherwise the built-in configuration."
	MsgExample = `  stop-nagging list                      # Built-in configuration
  stop-nagging list --yaml tools.yaml    # Your own file
  stop-nagging list --format json        # Machine readable`

	MsgHeading      = "# stop-nagging configuration"
	MsgEcosystem    = "## %s"
	MsgCheckCommand = "Runs only when `%s` succeeds."
	MsgTableHeader  = "| Tool | Executable | Environment | Commands |\n|---|---|---|---|"
	MsgNoTools      = "_No tools._"
	MsgSkipped      = " (skipped)"
	MsgFallback     = "Warning: Failed to load custom YAML file: %v\nFalling back to default configuration\n"
)
