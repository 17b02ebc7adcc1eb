package list

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bodo-run/stop-nagging/pkg/config"
	"github.com/bodo-run/stop-nagging/pkg/types"
	"github.com/bodo-run/stop-nagging/pkg/ui"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

// NewCommand creates the list command. settings is called at run time,
// after the root command has loaded them.
func NewCommand(settings func() *config.Settings) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := settings()

			cfg, fallbackErr, err := config.LoadWithFallback(s.Yaml)
			if fallbackErr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), MsgFallback, fallbackErr)
			}
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), cfg, s.Format)
		},
	}
}

func render(out io.Writer, cfg *types.Config, format ui.Format) error {
	switch format.Resolve(out) {
	case ui.FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(cfg)
	case ui.FormatTerminal:
		_, err := io.WriteString(out, renderGlamour(Markdown(cfg)))
		return err
	default:
		_, err := io.WriteString(out, Markdown(cfg))
		return err
	}
}

// Markdown describes cfg as a markdown document.
func Markdown(cfg *types.Config) string {
	var b strings.Builder
	b.WriteString(MsgHeading + "\n")

	for _, eco := range cfg.Ecosystems {
		b.WriteString("\n" + fmt.Sprintf(MsgEcosystem, eco.Name) + "\n\n")
		if eco.CheckCommand != "" {
			b.WriteString(fmt.Sprintf(MsgCheckCommand, eco.CheckCommand) + "\n\n")
		}
		if len(eco.Tools) == 0 {
			b.WriteString(MsgNoTools + "\n")
			continue
		}

		b.WriteString(MsgTableHeader + "\n")
		for _, tool := range eco.Tools {
			name := tool.Name
			if tool.Skip {
				name += MsgSkipped
			}
			env := make([]string, 0, len(tool.Env))
			for _, v := range tool.Env {
				env = append(env, fmt.Sprintf("`%s=%s`", v.Key, v.Value))
			}
			commands := make([]string, 0, len(tool.Commands))
			for _, c := range tool.Commands {
				commands = append(commands, "`"+escapeCell(c)+"`")
			}
			fmt.Fprintf(&b, "| %s | `%s` | %s | %s |\n",
				escapeCell(name), tool.Executable,
				strings.Join(env, "<br>"), strings.Join(commands, "<br>"))
		}
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// renderGlamour renders markdown for the terminal, falling back to the raw
// text when glamour fails
func renderGlamour(content string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
