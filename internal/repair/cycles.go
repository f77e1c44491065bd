package repair

import (
	"github.com/beevik/etree"

	"github.com/jare20895/MSProjectXMLValidator/internal/document"
	"github.com/jare20895/MSProjectXMLValidator/internal/ledger"
	"github.com/jare20895/MSProjectXMLValidator/pkg/types"
)

// BreakCycles detects circular predecessor chains and removes the links
// that form them. It reports whether a cycle was found.
//
// The predecessor graph runs from predecessor UID to dependent UID. A
// topological ordering is attempted with Kahn's algorithm; when fewer nodes
// are processed than exist, the nodes still holding positive in-degree form
// the unresolved set, and every link whose owner and target both belong to
// that set is removed. This removes more links than a minimal cut would,
// which is accepted for determinism.
func BreakCycles(doc *document.Document, led *ledger.Ledger) bool {
	tasks := doc.Tasks()

	byUID := make(map[string]*etree.Element, len(tasks))
	order := make([]string, 0, len(tasks))
	inDegree := make(map[string]int, len(tasks))
	for _, task := range tasks {
		uid := document.UID(task)
		if uid == "" {
			continue
		}
		if _, seen := byUID[uid]; !seen {
			order = append(order, uid)
		}
		byUID[uid] = task
		inDegree[uid] = 0
	}

	successors := make(map[string][]string)
	for _, uid := range order {
		for _, link := range byUID[uid].SelectElements("PredecessorLink") {
			pred := document.Text(link.SelectElement("PredecessorUID"))
			if pred == "" {
				continue
			}
			successors[pred] = append(successors[pred], uid)
			inDegree[uid]++
		}
	}

	queue := make([]string, 0, len(order))
	for _, uid := range order {
		if inDegree[uid] == 0 {
			queue = append(queue, uid)
		}
	}
	processed := 0
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		processed++
		for _, succ := range successors[current] {
			inDegree[succ]--
			if inDegree[succ] == 0 {
				queue = append(queue, succ)
			}
		}
	}
	if processed == len(order) {
		return false
	}

	led.Logger().Warn("circular dependency detected",
		"sorted", processed, "total", len(order))

	cyclic := make(map[string]bool)
	for _, uid := range order {
		if inDegree[uid] > 0 {
			cyclic[uid] = true
		}
	}
	for _, uid := range order {
		if !cyclic[uid] {
			continue
		}
		task := byUID[uid]
		for _, link := range task.SelectElements("PredecessorLink") {
			pred := document.Text(link.SelectElement("PredecessorUID"))
			if pred == "" || !cyclic[pred] {
				continue
			}
			task.RemoveChild(link)
			led.Repair(types.CategoryCircularDependencies,
				"Removed circular PredecessorLink from '%s' to UID %s",
				document.TaskName(task), pred)
		}
	}
	return true
}
