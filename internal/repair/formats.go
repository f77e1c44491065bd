package repair

import (
	"fmt"
	"regexp"
	"time"

	"github.com/jare20895/MSProjectXMLValidator/internal/document"
	"github.com/jare20895/MSProjectXMLValidator/internal/ledger"
	"github.com/jare20895/MSProjectXMLValidator/pkg/types"
)

var (
	// wordAfterHoursRE matches the observed upstream typo where a spelled-out
	// number lands after the hour count, e.g. PT4TwoH0M0S.
	wordAfterHoursRE = regexp.MustCompile(`PT(\d+)Two`)

	// letterOForZeroRE matches a letter O substituted for a zero inside a
	// numeric run.
	letterOForZeroRE = regexp.MustCompile(`(\d)[Oo](\d)`)
)

// instantLayouts are the accepted shapes for reinterpreting a malformed
// date-time literal, tried in order.
var instantLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// dateFieldTags are every instant field the normalizer touches, project and
// task level alike.
var dateFieldTags = []string{"Start", "Finish", "StartDate", "FinishDate", "CurrentDate", "CreationDate"}

// DataFormats repairs instant and span literals in place. Instants are
// reinterpreted as generic date-time literals and rewritten canonically;
// spans get the two known typo corrections and are then re-validated.
// Values that remain malformed are recorded as Data Formats errors, so the
// ledger ends up holding exactly the genuinely unrepaired defects. Reports
// whether every literal now conforms.
func DataFormats(doc *document.Document, led *ledger.Ledger) bool {
	clean := true

	for _, tag := range dateFieldTags {
		for _, el := range doc.Root().FindElements("//" + tag) {
			text := el.Text()
			if text == "" || document.ValidInstant(text) {
				continue
			}
			fixed, err := reinterpretInstant(text)
			if err != nil {
				led.Error(types.CategoryDataFormats,
					"Could not fix invalid date format in <%s> for 'Project': '%s'", tag, text)
				clean = false
				continue
			}
			el.SetText(fixed)
			led.Repair(types.CategoryDataFormats,
				"Fixed date format in <%s> for 'Project': '%s' -> '%s'", tag, text, fixed)
		}
	}

	for _, tag := range []string{"Duration", "Work"} {
		for _, el := range doc.Root().FindElements("//" + tag) {
			text := el.Text()
			if text == "" {
				continue
			}
			fixed := wordAfterHoursRE.ReplaceAllString(text, "PT$1")
			fixed = letterOForZeroRE.ReplaceAllString(fixed, "${1}0${2}")
			if fixed != text {
				el.SetText(fixed)
				led.Repair(types.CategoryDataFormats,
					"Fixed duration typo in <%s> for 'Project': '%s' -> '%s'", tag, text, fixed)
			}
			if !document.ValidSpan(fixed) {
				led.Error(types.CategoryDataFormats,
					"Invalid duration format in <%s> for 'Project': '%s'", tag, fixed)
				clean = false
			}
		}
	}
	return clean
}

// reinterpretInstant accepts a generic date-time literal, optionally with a
// trailing zone offset, and rewrites it into the canonical pattern.
func reinterpretInstant(s string) (string, error) {
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(document.InstantLayout), nil
		}
	}
	return "", fmt.Errorf("unrecognized date literal %q", s)
}
