package repair

import (
	"github.com/jare20895/MSProjectXMLValidator/internal/document"
	"github.com/jare20895/MSProjectXMLValidator/internal/ledger"
	"github.com/jare20895/MSProjectXMLValidator/pkg/types"
)

// RemoveExplicitDates strips explicit Start and Finish values from tasks not
// exempted by policy, so the schedule derives from predecessors and
// durations instead of conflicting with them.
func RemoveExplicitDates(doc *document.Document, policy types.Policy, led *ledger.Ledger) {
	for _, task := range doc.Tasks() {
		uid := document.UID(task)
		if uid == "" {
			continue
		}
		if policy.KeepsDates(uid, document.IsMilestone(task)) {
			continue
		}
		name := document.TaskName(task)
		if start := task.SelectElement("Start"); start != nil {
			task.RemoveChild(start)
			led.Repair(types.CategoryDateConstraints,
				"Removed explicit <Start> date from '%s' (UID %s) to allow schedule calculation", name, uid)
		}
		if finish := task.SelectElement("Finish"); finish != nil {
			task.RemoveChild(finish)
			led.Repair(types.CategoryDateConstraints,
				"Removed explicit <Finish> date from '%s' (UID %s) to allow schedule calculation", name, uid)
		}
	}
}
