package verify

import (
	"errors"
	"time"

	"github.com/ethanbaker/lineramind/pkg/entry"
	"github.com/ethanbaker/lineramind/pkg/proof"
	"github.com/ethanbaker/lineramind/pkg/report"
	"github.com/ethanbaker/lineramind/pkg/sanitize"
	"github.com/ethanbaker/lineramind/pkg/summary"
)

// ErrNotVerified is returned when building artifacts from a result that has no
// entry
var ErrNotVerified = errors.New("entry is not verified")

// View is the displayable form of a verified entry
type View struct {
	ProofID        string       `json:"proof_id" yaml:"proof_id"`
	Label          string       `json:"label" yaml:"label"`
	Entry          *entry.Entry `json:"entry" yaml:"entry"`
	Paragraphs     []string     `json:"paragraphs" yaml:"paragraphs"`
	Summary        []string     `json:"summary" yaml:"summary"`
	Fallback       bool         `json:"fallback" yaml:"fallback"`
	Timestamp      string       `json:"timestamp" yaml:"timestamp"`
	ReportFilename string       `json:"report_filename" yaml:"report_filename"`
}

// NewView builds the view of a Found result. Timestamps are formatted in loc.
func NewView(res Result, loc *time.Location) (*View, error) {
	if !res.Verified() {
		return nil, ErrNotVerified
	}

	e := res.Entry
	bullets := summary.Summarize(sanitize.Sanitize(e.Answer))

	return &View{
		ProofID:        proof.Encode(e),
		Label:          proof.FormatDisplay(e.ChainID, e.ID),
		Entry:          e.Clone(),
		Paragraphs:     sanitize.Paragraphs(e.Answer),
		Summary:        bullets,
		Fallback:       summary.IsFallback(bullets),
		Timestamp:      report.FormatTimestamp(e.Timestamp, loc),
		ReportFilename: report.Filename(e.ID),
	}, nil
}

// Report renders the PDF report of a Found result
func Report(res Result, opts report.Options) ([]byte, error) {
	if !res.Verified() {
		return nil, ErrNotVerified
	}
	return report.Render(res.Entry, opts)
}
