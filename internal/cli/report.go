package cli

import (
	"fmt"
	"os"

	"github.com/ethanbaker/lineramind/pkg/report"
	"github.com/ethanbaker/lineramind/pkg/verify"
	"github.com/spf13/cobra"
)

func newReportCommand(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "report <proof-or-id>",
		Short: "Write the PDF report of a verified entry",
		Long: `Report resolves a proof identifier and renders a one page PDF report of
the verified question and answer.

Example:
  lineramind report 42
  lineramind report linera:e476187f...:42 -o answer.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !res.Verified() {
				return a.resultError(res)
			}

			loc, err := a.location()
			if err != nil {
				return err
			}
			pdf, err := verify.Report(res, report.Options{Location: loc})
			if err != nil {
				return fmt.Errorf("failed to render report: %w", err)
			}

			path := output
			if path == "" {
				path = report.Filename(res.ID)
			}
			if err := os.WriteFile(path, pdf, 0o644); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}

			fmt.Fprintf(a.out, "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default: LineraMind_Verified_<id>.pdf)")
	return cmd
}
