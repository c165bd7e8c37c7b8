package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Show the chain served by LineraMind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout)
			defer cancel()

			status, err := a.client().Health(ctx)
			if err != nil {
				return fmt.Errorf("could not reach LineraMind at %s: %w", a.baseURL, err)
			}

			if format != FormatText {
				return writeStructured(a.out, format, status)
			}
			fmt.Fprintf(a.out, "Chain:   %s\n", status.ChainID)
			fmt.Fprintf(a.out, "Height:  %d\n", status.Height)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", FormatText, "output format (text, json, yaml)")
	return cmd
}
