package validate

import (
	"strconv"
	"time"

	"github.com/jare20895/MSProjectXMLValidator/internal/document"
	"github.com/jare20895/MSProjectXMLValidator/internal/ledger"
	"github.com/jare20895/MSProjectXMLValidator/pkg/types"
)

// CalendarLogic cross-checks the declared MinutesPerWeek against the base
// calendar's working-time intervals. The check is skipped when either the
// declaration or the base calendar reference is absent; calendars are
// optional. Parse failures degrade to a Calendar Logic error rather than
// aborting the run.
func CalendarLogic(doc *document.Document, led *ledger.Ledger) {
	mpwEl := doc.Root().FindElement(".//MinutesPerWeek")
	if mpwEl == nil {
		return
	}
	declared, err := strconv.Atoi(mpwEl.Text())
	if err != nil {
		led.Error(types.CategoryCalendarLogic, "Could not parse calendar logic: %v", err)
		return
	}

	calUIDEl := doc.Root().FindElement(".//CalendarUID")
	if calUIDEl == nil {
		return
	}
	baseCal := doc.Calendar(calUIDEl.Text())
	if baseCal == nil {
		led.Error(types.CategoryCalendarLogic,
			"Project CalendarUID %s not found in <Calendars>.", calUIDEl.Text())
		return
	}

	totalSeconds := 0
	for _, day := range baseCal.FindElements(".//WeekDay") {
		if document.Text(day.SelectElement("DayWorking")) != "1" {
			continue
		}
		for _, wt := range day.FindElements(".//WorkingTime") {
			from, err := clockSeconds(document.Text(wt.SelectElement("FromTime")))
			if err != nil {
				led.Error(types.CategoryCalendarLogic, "Could not parse calendar logic: %v", err)
				return
			}
			to, err := clockSeconds(document.Text(wt.SelectElement("ToTime")))
			if err != nil {
				led.Error(types.CategoryCalendarLogic, "Could not parse calendar logic: %v", err)
				return
			}
			totalSeconds += to - from
		}
	}

	calculated := totalSeconds / 60
	if calculated != declared {
		led.Error(types.CategoryCalendarLogic,
			"<MinutesPerWeek> is %d, but base calendar calculates to %d.", declared, calculated)
	}
}

// clockSeconds parses an HH:MM:SS clock literal into seconds since
// midnight.
func clockSeconds(s string) (int, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*3600 + t.Minute()*60 + t.Second(), nil
}
