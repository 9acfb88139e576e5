package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dotkit/internal/escape"
	"dotkit/internal/logging"
)

func newEscapeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "escape",
		Short: "Escape stdin lines for literal use in regex patterns",
		Long: `Reads lines from standard input and writes one escaped line per input
line to standard output. Regex metacharacters are backslash-escaped and
every forward slash becomes \/ so the output drops directly into
/-delimited substitution syntax (sed, editor search and replace).`,
		Args: cobra.NoArgs,
		// The escaper has no configuration surface; a broken config file
		// must not block it.
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewComponentLogger(ctx.ensureLogger(), "escape")
			if err := escape.Stream(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("escape stream: %w", err)
			}
			logger.Debug("stream escaped")
			return nil
		},
	}
}
