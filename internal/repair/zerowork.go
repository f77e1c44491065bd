package repair

import (
	"github.com/beevik/etree"

	"github.com/jare20895/MSProjectXMLValidator/internal/document"
	"github.com/jare20895/MSProjectXMLValidator/internal/ledger"
	"github.com/jare20895/MSProjectXMLValidator/pkg/types"
)

// ZeroWorkTasks assigns the policy default duration and work to tasks that
// declare zero duration and zero (or absent) work. Summary tasks and
// milestones are exempt; a zero-duration milestone is correct by
// definition.
func ZeroWorkTasks(doc *document.Document, policy types.Policy, led *ledger.Ledger) {
	defaultSpan := document.FormatSpan(policy.DefaultTaskHours * 60)
	for _, task := range doc.Tasks() {
		if document.IsSummary(task) || document.IsMilestone(task) {
			continue
		}
		durationEl := task.SelectElement("Duration")
		workEl := task.SelectElement("Work")
		zeroDuration := durationEl != nil && durationEl.Text() == zeroSpan
		zeroWork := workEl == nil || workEl.Text() == zeroSpan
		if !zeroDuration || !zeroWork {
			continue
		}

		durationEl.SetText(defaultSpan)
		if workEl != nil {
			workEl.SetText(defaultSpan)
		} else {
			work := etree.NewElement("Work")
			work.SetText(defaultSpan)
			task.AddChild(work)
		}
		uid := document.UID(task)
		if uid == "" {
			uid = "Unknown"
		}
		led.Repair(types.CategoryZeroWorkTasks,
			"Assigned default %d-hour duration/work to zeroed-out task: '%s' (UID %s)",
			policy.DefaultTaskHours, document.TaskName(task), uid)
	}
}
