package repair

import (
	"math"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jare20895/MSProjectXMLValidator/internal/document"
	"github.com/jare20895/MSProjectXMLValidator/internal/ledger"
	"github.com/jare20895/MSProjectXMLValidator/pkg/types"
)

const (
	defaultMinutesPerDay = 480
	defaultWorkingDays   = 5
)

// DeriveFinishDates fills in a missing Finish for tasks that declare a
// Start and a Duration. The duration is converted to calendar days using
// the declared per-day working-minute budget and the base calendar's
// working-day count per 7-day week, rounded up to whole days. The Finish
// element is inserted immediately after Start. Summary tasks and milestones
// are skipped, as is any task whose Start cannot be parsed; those were
// already flagged by format validation.
func DeriveFinishDates(doc *document.Document, led *ledger.Ledger) {
	minutesPerDay := defaultMinutesPerDay
	if el := doc.Root().FindElement(".//MinutesPerDay"); el != nil {
		if n, err := strconv.Atoi(el.Text()); err == nil {
			minutesPerDay = n
		}
	}
	if minutesPerDay <= 0 {
		minutesPerDay = defaultMinutesPerDay
	}
	workingDays := baseCalendarWorkingDays(doc)

	for _, task := range doc.Tasks() {
		if document.IsSummary(task) || document.IsMilestone(task) {
			continue
		}
		startEl := task.SelectElement("Start")
		durationEl := task.SelectElement("Duration")
		if startEl == nil || durationEl == nil || task.SelectElement("Finish") != nil {
			continue
		}
		start, err := time.Parse(document.InstantLayout, startEl.Text())
		if err != nil {
			continue
		}

		durationMinutes := document.SpanMinutes(durationEl.Text())
		workingDaysNeeded := durationMinutes / float64(minutesPerDay)
		calendarDays := int(math.Ceil(workingDaysNeeded * (7.0 / float64(workingDays))))
		finishTime := start.AddDate(0, 0, calendarDays)

		finish := etree.NewElement("Finish")
		finish.SetText(finishTime.Format(document.InstantLayout))
		task.InsertChildAt(startEl.Index()+1, finish)
		led.Repair(types.CategoryFinishDateCalculation,
			"Calculated Finish date for '%s': %s (Start: %s, Duration: %s)",
			document.TaskName(task), finish.Text(), startEl.Text(), durationEl.Text())
	}
}

// baseCalendarWorkingDays counts the working weekdays of the declared base
// calendar, defaulting to a five-day week when the calendar is absent or
// declares no working days.
func baseCalendarWorkingDays(doc *document.Document) int {
	calUID := doc.Root().FindElement(".//CalendarUID")
	if calUID == nil {
		return defaultWorkingDays
	}
	baseCal := doc.Calendar(calUID.Text())
	if baseCal == nil {
		return defaultWorkingDays
	}
	count := 0
	for _, day := range baseCal.FindElements(".//WeekDay") {
		if document.Text(day.SelectElement("DayWorking")) == "1" {
			count++
		}
	}
	if count == 0 {
		return defaultWorkingDays
	}
	return count
}
