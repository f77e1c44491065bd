package repair

import (
	"github.com/jare20895/MSProjectXMLValidator/internal/document"
	"github.com/jare20895/MSProjectXMLValidator/internal/ledger"
	"github.com/jare20895/MSProjectXMLValidator/pkg/types"
)

// zeroSpan is the canonical zero duration literal.
const zeroSpan = "PT0H0M0S"

// Milestones clears the milestone flag from tasks that carry non-zero
// Duration or Work. A milestone is by definition a zero-duration, zero-work
// point event; summary tasks are left alone.
func Milestones(doc *document.Document, led *ledger.Ledger) {
	for _, task := range doc.Tasks() {
		if document.IsSummary(task) || !document.IsMilestone(task) {
			continue
		}
		durationEl := task.SelectElement("Duration")
		workEl := task.SelectElement("Work")
		hasDuration := durationEl != nil && durationEl.Text() != zeroSpan
		hasWork := workEl != nil && workEl.Text() != zeroSpan
		if !hasDuration && !hasWork {
			continue
		}

		durationVal := "None"
		if durationEl != nil {
			durationVal = durationEl.Text()
		}
		workVal := "None"
		if workEl != nil {
			workVal = workEl.Text()
		}
		uid := document.UID(task)
		if uid == "" {
			uid = "Unknown"
		}
		task.RemoveChild(task.SelectElement("Milestone"))
		led.Repair(types.CategoryIncorrectMilestones,
			"Removed incorrect <Milestone> flag from work task: '%s' (UID %s, Duration=%s, Work=%s)",
			document.TaskName(task), uid, durationVal, workVal)
	}
}
