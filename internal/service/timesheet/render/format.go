// Package render turns persisted monthly reports into downloadable
// documents. Rendering is pure: the same report always produces the same
// bytes, so exports can be retried and cached safely.
package render

import "fmt"

// FormatMinutes renders a minute count as "3h 25min", preserving the sign
// for negative values (undertime deltas).
func FormatMinutes(minutes int) string {
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%dh %dmin", sign, minutes/60, minutes%60)
}

var monthNames = [13]string{"",
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// MonthName returns the German month name used in report headers.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month]
}
