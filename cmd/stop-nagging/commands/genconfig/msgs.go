package genconfig

// Message constants
const (
	MsgShort   = "Print a starter configuration"
	MsgLong    = "Genconfig prints the built-in tools document, a good starting point for a\ncustom --yaml file. With --settings it prints a commented settings template\ninstead; add --write to save that template to the settings location."
	MsgExample = `  stop-nagging genconfig > tools.yaml
  stop-nagging genconfig --settings
  stop-nagging genconfig --settings --write`

	MsgFlagSettings = "Print the settings template instead of the tools document"
	MsgFlagWrite    = "Write the settings template to the settings file (requires --settings)"

	MsgWritten         = "Settings template written to %s\n"
	MsgErrWriteNeeds   = "--write requires --settings"
	MsgErrAlreadyThere = "%s already exists, not overwriting"
)
