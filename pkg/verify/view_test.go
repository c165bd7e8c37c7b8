package verify

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/ethanbaker/lineramind/pkg/report"
	"github.com/ethanbaker/lineramind/pkg/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewView(t *testing.T) {
	assert := assert.New(t)

	e := sampleEntry()
	view, err := NewView(Result{State: Found, ID: e.ID, Entry: e}, time.UTC)
	require.NoError(t, err)

	assert.Equal("linera:abcdef1234:7", view.ProofID)
	assert.Equal("Proof · linera:abcdef…7", view.Label)
	assert.Equal([]string{"A microchain is a lightweight chain owned by one user. It processes blocks independently of other chains."}, view.Paragraphs)
	assert.Equal([]string{
		"A microchain is a lightweight chain owned by one user.",
		"It processes blocks independently of other chains.",
	}, view.Summary)
	assert.False(view.Fallback)
	assert.Equal("6/1/2025, 12:00:00 PM", view.Timestamp)
	assert.Equal("LineraMind_Verified_7.pdf", view.ReportFilename)
	assert.Equal(e, view.Entry)
}

func TestNewViewFallbackSummary(t *testing.T) {
	e := sampleEntry()
	e.Answer = "Yes."

	view, err := NewView(Result{State: Found, ID: e.ID, Entry: e}, nil)
	require.NoError(t, err)
	assert.True(t, view.Fallback)
	assert.Equal(t, summary.Fallback(), view.Summary)
}

func TestNewViewNotVerified(t *testing.T) {
	for _, res := range []Result{
		{State: NotRequested},
		{State: Pending, ID: 1},
		{State: NotFound, ID: 1},
		{State: TransportError, ID: 1, Err: &TransportErr{ID: 1, Err: errors.New("down")}},
	} {
		_, err := NewView(res, nil)
		assert.ErrorIs(t, err, ErrNotVerified, res.State.String())

		_, err = Report(res, report.Options{})
		assert.ErrorIs(t, err, ErrNotVerified, res.State.String())
	}
}

func TestReport(t *testing.T) {
	e := sampleEntry()
	out, err := Report(Result{State: Found, ID: e.ID, Entry: e}, report.Options{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}
