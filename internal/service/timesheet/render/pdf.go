package render

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/praxora/praxis-backend/internal/domain"
)

const (
	pdfMarginMM   = 15.0
	rowHeightMM   = 7.0
	pageBreakAtMM = 275.0
)

var dayColumns = []struct {
	label string
	width float64
}{
	{"Datum", 24},
	{"Start", 18},
	{"Ende", 18},
	{"Brutto", 24},
	{"Pause", 24},
	{"Netto", 24},
	{"Ort", 28},
	{"Status", 20},
}

// PDF renders a report as a paginated A4 document: summary block first,
// then the day-by-day table with the header repeated on every page.
// The creation date is pinned to the report's GeneratedAt so repeated
// exports of the same report are byte-identical.
func PDF(report *domain.MonthlyReport) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(report.GeneratedAt)
	pdf.SetModificationDate(report.GeneratedAt)
	pdf.SetMargins(pdfMarginMM, pdfMarginMM, pdfMarginMM)
	pdf.SetAutoPageBreak(false, pdfMarginMM)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(0, 6, fmt.Sprintf("Seite %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Zeiterfassung Monatsbericht"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("%s %d", tr(MonthName(int(report.Month))), report.Year), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Summary block
	summary := []struct {
		label string
		value string
	}{
		{"Arbeitstage", fmt.Sprintf("%d", report.WorkDays)},
		{"Bruttozeit", FormatMinutes(report.GrossMinutes)},
		{"Pausenzeit", FormatMinutes(report.BreakMinutes)},
		{"Nettozeit", FormatMinutes(report.NetMinutes)},
		{"Sollzeit", FormatMinutes(report.TargetMinutes)},
		{"Mehrarbeit", FormatMinutes(report.OvertimeMinutes)},
		{"Homeoffice-Tage", fmt.Sprintf("%d", report.HomeofficeDays)},
		{"Warnungen", fmt.Sprintf("%d", report.PlausibilityWarnings)},
	}
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range summary {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(45, 6, tr(row.label), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, tr(row.value), "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	writeTableHeader(pdf, tr)
	for _, day := range report.DailyBreakdown {
		if pdf.GetY()+rowHeightMM > pageBreakAtMM {
			pdf.AddPage()
			writeTableHeader(pdf, tr)
		}
		pdf.SetFont("Helvetica", "", 9)
		cells := []string{
			day.Date,
			day.StartTime.Format("15:04"),
			day.EndTime.Format("15:04"),
			FormatMinutes(day.GrossMinutes),
			FormatMinutes(day.BreakMinutes),
			FormatMinutes(day.NetMinutes),
			day.Location.String(),
			day.Plausibility,
		}
		for i, cell := range cells {
			pdf.CellFormat(dayColumns[i].width, rowHeightMM, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeTableHeader(pdf *fpdf.Fpdf, tr func(string) string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range dayColumns {
		pdf.CellFormat(col.width, rowHeightMM, tr(col.label), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
}
