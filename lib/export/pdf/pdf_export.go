package pdfexport

import (
	"bytes"
	"fmt"
	"recruitment-dashboard/lib/details"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const (
	FileNameTemplate = "candidate_%d.pdf"
	generatedLayout  = "1/2/2006, 3:04:05 PM"
	lineHt           = 6.0
	labelWidth       = 60.0
)

// CandidateDetails печатная карточка кандидата в PDF. Выводятся только видимые разделы и поля.
func CandidateDetails(view *details.View, now time.Time) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("CandidateDetails panic recover: %v", r)
		}
	}()
	if view == nil || view.Failed {
		return nil, errors.New("карточка кандидата не построена")
	}
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(view.Name+" - Details", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Candidate Details: "+view.Name), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, lineHt, tr("Generated on "+now.Format(generatedLayout)), "B", 1, "C", false, 0, "")
	pdf.Ln(4)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	valueWidth := pageWidth - left - right - labelWidth
	for _, section := range view.Sections {
		if !section.Visible {
			continue
		}
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 8, tr(section.Name), "B", 1, "L", false, 0, "")
		pdf.Ln(1)
		for _, entry := range section.Entries {
			if !entry.Visible || !entry.HasContent() {
				continue
			}
			y := pdf.GetY()
			pdf.SetFont("Helvetica", "B", 9)
			pdf.MultiCell(labelWidth, lineHt, tr(entry.Label), "", "L", false)
			labelBottom := pdf.GetY()
			pdf.SetXY(left+labelWidth, y)
			setValueFont(pdf, entry)
			pdf.MultiCell(valueWidth, lineHt, tr(entryText(entry)), "", "L", false)
			if labelBottom > pdf.GetY() {
				pdf.SetY(labelBottom)
			}
		}
		pdf.Ln(3)
	}
	if pdf.Err() {
		return nil, errors.Wrap(pdf.Error(), "ошибка формирования pdf")
	}
	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования pdf")
	}
	return buf.Bytes(), nil
}

func FileName(row int) string {
	return fmt.Sprintf(FileNameTemplate, row)
}

func setValueFont(pdf *fpdf.Fpdf, entry details.Entry) {
	switch {
	case entry.IsMuted():
		pdf.SetFont("Helvetica", "I", 10)
		pdf.SetTextColor(150, 150, 150)
	case entry.IsBadge() || entry.Highlight:
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(30, 64, 175)
	default:
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(51, 51, 51)
	}
}

// entryText для ссылки на резюме печатается сам адрес
func entryText(entry details.Entry) string {
	if entry.Kind == details.EntryResume {
		return entry.Href
	}
	return entry.Text
}
