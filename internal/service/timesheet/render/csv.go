package render

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/praxora/praxis-backend/internal/domain"
)

// utf8BOM makes Excel detect UTF-8; without it umlauts in the location
// column come out garbled.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var csvHeader = []string{"Datum", "Start", "Ende", "Brutto", "Pause", "Netto", "Ort", "Status"}

// CSV renders a report's day-by-day breakdown as semicolon-separated
// values with a UTF-8 BOM.
func CSV(report *domain.MonthlyReport) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, day := range report.DailyBreakdown {
		row := []string{
			day.Date,
			day.StartTime.Format("15:04"),
			day.EndTime.Format("15:04"),
			FormatMinutes(day.GrossMinutes),
			FormatMinutes(day.BreakMinutes),
			FormatMinutes(day.NetMinutes),
			day.Location.String(),
			day.Plausibility,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return buf.Bytes(), nil
}
