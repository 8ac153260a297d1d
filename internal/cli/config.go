package cli

import (
	"fmt"
	"strings"

	"github.com/Skyhigh44/Productivity/internal/config"

	"github.com/spf13/cobra"
)

type effectiveConfig struct {
	config.Config
}

func (c effectiveConfig) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "theme     %s\n", c.Theme)
	fmt.Fprintf(&b, "glyphs    %s\n", c.Glyphs)
	fmt.Fprintf(&b, "clock24h  %t\n", c.Clock24h)
	fmt.Fprintf(&b, "tick      %s\n", c.Tick)
	fmt.Fprintf(&b, "noColor   %t\n", c.NoColor)
	fmt.Fprintf(&b, "logLevel  %s\n", c.LogLevel)
	fmt.Fprintf(&b, "logFile   %s\n", orDash(c.LogFile))
	fmt.Fprintf(&b, "source    %s", orDash(c.Source))
	return b.String()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func newConfigCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration (defaults, file, environment, flags)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOut(cmd, app, effectiveConfig{app.Config})
		},
	}
}
