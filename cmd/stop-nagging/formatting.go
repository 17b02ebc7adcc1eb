package main

import (
	"os"
	"strings"
	"text/template"

	"github.com/bodo-run/stop-nagging/pkg/ui"
	"github.com/bodo-run/stop-nagging/pkg/ui/styles"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// styledHelp reports whether help text goes to a colour terminal. It uses
// the same auto-detection as run output, so NO_COLOR disables both.
func styledHelp() bool {
	return ui.FormatAuto.Resolve(os.Stdout) == ui.FormatTerminal
}

// sectionHeading renders a usage section title with the Header style
func sectionHeading(s string) string {
	s = strings.ToUpper(s)
	if !styledHelp() {
		return s
	}
	return styles.Render("Header", s)
}

func emphasis(s string) string {
	if !styledHelp() {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// initTemplateFormatting registers the helpers used by msgs/usage-template.txt
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":    emphasis,
		"upper":   strings.ToUpper,
		"heading": sectionHeading,
	})
}
