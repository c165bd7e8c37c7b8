package cli

import (
	"context"
	"strings"

	"github.com/ethanbaker/lineramind/pkg/sdk"
	"github.com/spf13/cobra"
)

func newAskCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a question and commit the answer",
		Long: `Ask sends a question to LineraMind. The answer is committed to the
simulated microchain and printed with its proof identifier.

Example:
  lineramind ask "What is a microchain?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout)
			defer cancel()

			resp, err := a.client().Ask(ctx, &sdk.AskRequest{Question: strings.Join(args, " ")})
			if err != nil {
				return err
			}
			return writeAsk(a.out, format, resp)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", FormatText, "output format (text, json, yaml)")
	return cmd
}
