package report

import (
	"math"
	"strconv"
	"time"

	"github.com/ethanbaker/lineramind/pkg/entry"
	"github.com/ethanbaker/lineramind/pkg/proof"
	"github.com/ethanbaker/lineramind/pkg/sanitize"
)

// Page geometry, in millimetres on an A4 portrait page
const (
	PageWidth    = 210.0
	PageHeight   = 297.0
	Margin       = 20.0
	ContentWidth = PageWidth - 2*Margin

	TitleY           = 25.0
	RuleY            = 30.0
	QuestionHeadingY = 45.0
	HeadingGap       = 8.0
	LineAdvance      = 6.0
	BlockGap         = 15.0
	ContentBoundary  = 270.0
	FooterY          = 285.0
)

// Font sizes, in points
const (
	TitleSize    = 22.0
	HeadingSize  = 14.0
	QuestionSize = 12.0
	AnswerSize   = 11.0
	FooterSize   = 10.0
)

const (
	Title                   = "LineraMind — Verified AI Report"
	QuestionHeading         = "QUESTION"
	AnswerHeading           = "VERIFIED AI ANSWER"
	AnswerTruncatedNotice   = "... (Answer truncated to fit one page)"
	QuestionTruncatedNotice = "... (Question truncated to fit one page)"

	// TimestampLayout mirrors the en-US toLocaleString shape
	TimestampLayout = "1/2/2006, 3:04:05 PM"
)

// Options tune rendering without affecting layout
type Options struct {
	// Location is used to format the footer timestamp (UTC when nil)
	Location *time.Location
}

// Line is a single line of text placed at a baseline offset
type Line struct {
	Text string  `json:"text"`
	Y    float64 `json:"y"`
}

// Layout is the fully planned content of a report page
type Layout struct {
	QuestionHeadingY float64 `json:"question_heading_y"`
	Question         []Line  `json:"question"`
	QuestionNotice   *Line   `json:"question_notice,omitempty"`

	AnswerHeadingY float64 `json:"answer_heading_y"`
	Answer         []Line  `json:"answer"`
	AnswerNotice   *Line   `json:"answer_notice,omitempty"`

	// WrappedAnswerLines is the answer line count before truncation
	WrappedAnswerLines int `json:"wrapped_answer_lines"`

	FooterY         float64 `json:"footer_y"`
	FooterID        string  `json:"footer_id"`
	FooterTimestamp string  `json:"footer_timestamp"`
}

// Truncated reports whether any answer lines were dropped
func (l *Layout) Truncated() bool {
	return l.AnswerNotice != nil
}

// Filename is the suggested download name of an entry's report
func Filename(id int64) string {
	return "LineraMind_Verified_" + strconv.FormatInt(id, 10) + ".pdf"
}

// FormatTimestamp renders t for display in loc (UTC when nil)
func FormatTimestamp(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(TimestampLayout)
}

// planLayout places every line of the report. questionMeasure and
// answerMeasure measure text in the question and answer body fonts.
func planLayout(e *entry.Entry, opts Options, questionMeasure, answerMeasure MeasureFunc) *Layout {
	layout := &Layout{
		QuestionHeadingY: QuestionHeadingY,
		FooterY:          FooterY,
		FooterID:         "Deterministic ID: " + proof.Encode(e),
		FooterTimestamp:  "Timestamp: " + FormatTimestamp(e.Timestamp, opts.Location),
	}

	// Question block, capped so the answer heading and one answer line fit
	y := QuestionHeadingY + HeadingGap
	qLines := Wrap(e.Question, ContentWidth, questionMeasure)
	maxUsed := int(math.Floor((ContentBoundary - LineAdvance - (y + BlockGap + HeadingGap)) / LineAdvance))
	used := len(qLines)
	if used > maxUsed {
		qLines = qLines[:maxUsed-1]
		used = maxUsed
		layout.QuestionNotice = &Line{Text: QuestionTruncatedNotice, Y: y + float64(len(qLines))*LineAdvance}
	}
	layout.Question = placeLines(qLines, y)
	y += float64(used)*LineAdvance + BlockGap

	// Answer block
	layout.AnswerHeadingY = y
	y += HeadingGap
	aLines := Wrap(sanitize.Sanitize(e.Answer), ContentWidth, answerMeasure)
	layout.WrappedAnswerLines = len(aLines)
	if y+float64(len(aLines))*LineAdvance > ContentBoundary {
		maxLines := int(math.Floor((ContentBoundary - y) / LineAdvance))
		aLines = aLines[:maxLines]
		layout.AnswerNotice = &Line{Text: AnswerTruncatedNotice, Y: y + float64(maxLines)*LineAdvance}
	}
	layout.Answer = placeLines(aLines, y)

	return layout
}

func placeLines(lines []string, y float64) []Line {
	out := make([]Line, len(lines))
	for i, text := range lines {
		out[i] = Line{Text: text, Y: y + float64(i)*LineAdvance}
	}
	return out
}
