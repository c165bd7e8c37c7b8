package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ethanbaker/lineramind/pkg/sanitize"
	"github.com/ethanbaker/lineramind/pkg/sdk"
	"github.com/ethanbaker/lineramind/pkg/verify"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

func checkFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	}
	return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
}

// writeStructured writes v as json or yaml
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	}
	return checkFormat(format)
}

func writeView(w io.Writer, format string, view *verify.View) error {
	if format != FormatText {
		return writeStructured(w, format, view)
	}

	fmt.Fprintf(w, "Verified:   %s\n", view.Label)
	fmt.Fprintf(w, "Proof:      %s\n", view.ProofID)
	fmt.Fprintf(w, "Block:      %d\n", view.Entry.BlockHeight)
	fmt.Fprintf(w, "Timestamp:  %s\n", view.Timestamp)
	fmt.Fprintf(w, "Report:     %s\n", view.ReportFilename)
	fmt.Fprintf(w, "\nQuestion:\n  %s\n", view.Entry.Question)

	fmt.Fprintln(w, "\nAnswer:")
	for _, p := range view.Paragraphs {
		fmt.Fprintf(w, "  %s\n\n", strings.ReplaceAll(p, "\n", "\n  "))
	}

	heading := "Summary:"
	if view.Fallback {
		heading = "Summary (generic):"
	}
	fmt.Fprintln(w, heading)
	for _, bullet := range view.Summary {
		fmt.Fprintf(w, "  • %s\n", bullet)
	}
	return nil
}

func writeAsk(w io.Writer, format string, resp *sdk.AskResponse) error {
	if format != FormatText {
		return writeStructured(w, format, resp)
	}

	fmt.Fprintf(w, "%s\n\n", strings.Join(sanitize.Paragraphs(resp.Entry.Answer), "\n\n"))
	fmt.Fprintf(w, "%s\n", resp.Label)
	fmt.Fprintf(w, "Proof: %s\n", resp.ProofID)
	return nil
}
