package cli

import (
	"fmt"

	"github.com/Skyhigh44/Productivity/internal/docs"
	"github.com/Skyhigh44/Productivity/internal/tui"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const docsRenderWidth = 80

func newDocsCmd(app *App) *cobra.Command {
	var raw bool
	var render bool

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show the built-in help pages",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, map[string]any{"topics": docs.Topics()})
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, errors.Errorf("unknown docs topic: %q (run `daily docs` to list topics)", topic))
			}

			switch {
			case raw:
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			case render:
				_, err := fmt.Fprintln(cmd.OutOrStdout(), tui.RenderMarkdown(body, docsRenderWidth, app.Config.Theme))
				return err
			}
			return writeOut(cmd, app, map[string]any{"topic": topic, "markdown": body})
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown (no JSON envelope)")
	cmd.Flags().BoolVar(&render, "render", false, "Render markdown for the terminal")
	cmd.MarkFlagsMutuallyExclusive("raw", "render")

	return cmd
}
