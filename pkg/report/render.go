package report

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ethanbaker/lineramind/pkg/entry"
	"github.com/go-pdf/fpdf"
)

const fontFamily = "Helvetica"

// ErrNoEntry is returned when asked to plan or render a nil entry
var ErrNoEntry = errors.New("report: no entry")

// document wraps an fpdf document with the cp1252 translator its core fonts
// need. Measurements are taken on the translated text, so layout and output
// agree byte for byte.
type document struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func newDocument() *document {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(Margin, Margin, Margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCatalogSort(true)

	return &document{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

// measure returns a MeasureFunc for the given font style and size
func (d *document) measure(style string, size float64) MeasureFunc {
	return func(text string) float64 {
		d.pdf.SetFont(fontFamily, style, size)
		return d.pdf.GetStringWidth(d.tr(text))
	}
}

func (d *document) text(x, y float64, s string) {
	d.pdf.Text(x, y, d.tr(s))
}

// Plan computes the page layout for an entry without rendering it
func Plan(e *entry.Entry, opts Options) (*Layout, error) {
	if e == nil {
		return nil, ErrNoEntry
	}

	doc := newDocument()
	layout := planLayout(e, opts, doc.measure("", QuestionSize), doc.measure("", AnswerSize))
	if err := doc.pdf.Error(); err != nil {
		return nil, fmt.Errorf("plan report: %w", err)
	}
	return layout, nil
}

// Render produces a single page PDF report for a verified entry. Identical
// entries render to identical bytes.
func Render(e *entry.Entry, opts Options) ([]byte, error) {
	if e == nil {
		return nil, ErrNoEntry
	}

	doc := newDocument()
	layout := planLayout(e, opts, doc.measure("", QuestionSize), doc.measure("", AnswerSize))

	pdf := doc.pdf
	pdf.SetTitle(fmt.Sprintf("LineraMind Verified Report %d", e.ID), true)
	pdf.SetSubject(Filename(e.ID), true)
	pdf.SetCreator("LineraMind", true)
	pdf.SetCreationDate(e.Timestamp)
	pdf.SetModificationDate(e.Timestamp)
	pdf.AddPage()

	// Header
	pdf.SetFont(fontFamily, "", TitleSize)
	pdf.SetTextColor(107, 70, 193)
	doc.text(Margin, TitleY, Title)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(Margin, RuleY, PageWidth-Margin, RuleY)

	// Question
	drawHeading(doc, QuestionHeading, layout.QuestionHeadingY)
	drawLines(doc, QuestionSize, layout.Question, layout.QuestionNotice)

	// Answer
	drawHeading(doc, AnswerHeading, layout.AnswerHeadingY)
	drawLines(doc, AnswerSize, layout.Answer, layout.AnswerNotice)

	// Footer
	pdf.SetFont(fontFamily, "", FooterSize)
	pdf.SetTextColor(150, 150, 150)
	doc.text(Margin, layout.FooterY, layout.FooterID)
	width := pdf.GetStringWidth(doc.tr(layout.FooterTimestamp))
	doc.text(PageWidth-Margin-width, layout.FooterY, layout.FooterTimestamp)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}

func drawHeading(doc *document, heading string, y float64) {
	doc.pdf.SetFont(fontFamily, "B", HeadingSize)
	doc.pdf.SetTextColor(60, 60, 60)
	doc.text(Margin, y, heading)
}

func drawLines(doc *document, size float64, lines []Line, notice *Line) {
	doc.pdf.SetFont(fontFamily, "", size)
	doc.pdf.SetTextColor(0, 0, 0)
	for _, line := range lines {
		doc.text(Margin, line.Y, line.Text)
	}

	if notice != nil {
		doc.pdf.SetFont(fontFamily, "I", size)
		doc.pdf.SetTextColor(120, 120, 120)
		doc.text(Margin, notice.Y, notice.Text)
	}
}
