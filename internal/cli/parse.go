package cli

import (
	"fmt"

	"github.com/ethanbaker/lineramind/pkg/proof"
	"github.com/spf13/cobra"
)

func newParseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <proof-or-id>",
		Short: "Print the entry id named by a proof identifier",
		Long: `Parse extracts the entry id from a proof identifier without contacting
LineraMind.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := proof.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid proof identifier: %w", err)
			}
			fmt.Fprintln(a.out, id)
			return nil
		},
	}
}
