package document

import (
	"fmt"
	"regexp"
	"strconv"
)

// InstantLayout is the canonical date-time layout for Start, Finish, and the
// project-level date fields.
const InstantLayout = "2006-01-02T15:04:05"

var (
	instantRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}$`)
	spanRE    = regexp.MustCompile(`^PT(\d+)H(\d+)M(\d+)S$`)
)

// ValidInstant reports whether s matches the canonical YYYY-MM-DDTHH:MM:SS
// pattern.
func ValidInstant(s string) bool {
	return instantRE.MatchString(s)
}

// ValidSpan reports whether s matches the canonical PT#H#M#S pattern.
func ValidSpan(s string) bool {
	return spanRE.MatchString(s)
}

// SpanMinutes parses a PT#H#M#S literal into total minutes. Malformed
// literals yield zero.
func SpanMinutes(s string) float64 {
	m := spanRE.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.Atoi(m[3])
	return float64(hours)*60 + float64(minutes) + float64(seconds)/60
}

// FormatSpan renders whole minutes as a PT#H#M#S literal.
func FormatSpan(totalMinutes int) string {
	return fmt.Sprintf("PT%dH%dM0S", totalMinutes/60, totalMinutes%60)
}
