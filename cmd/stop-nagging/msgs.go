package main

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Silence nags and telemetry of developer CLI tools"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Status messages
	MsgVersionFormat     = "stop-nagging version %s\n"
	MsgVersionCommit     = "  commit: %s\n"
	MsgVersionDate       = "  built:  %s\n"
	MsgYamlLoadFailed    = "Failed to load custom YAML file: %v"
	MsgFallingBack       = "Falling back to default configuration"
	MsgUnknownEcosystem  = "No ecosystem named %q in the configuration"
	MsgManPagesGenerated = "Man pages written to %s\n"

	// Error messages
	MsgErrNoConfig     = "no usable configuration: %w"
	MsgErrLoadSettings = "failed to load settings: %w"

	// Flag descriptions
	MsgFlagYaml             = "Path to a tools YAML file (default: built-in configuration)"
	MsgFlagIgnoreTools      = "Tool names to leave alone (comma separated, repeatable)"
	MsgFlagEcosystems       = "Only handle these ecosystems (comma separated, repeatable)"
	MsgFlagIgnoreEcosystems = "Ecosystems to skip entirely (comma separated, repeatable)"
	MsgFlagVerbose          = "Show every step; repeat to raise log level (-vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun           = "Report what would be set and run without changing anything"
	MsgFlagFormat           = "Output format: auto, term, text or json"
	MsgFlagManDir           = "Directory to write man pages to"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	MsgUsageTemplate string
)
