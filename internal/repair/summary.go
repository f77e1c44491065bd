package repair

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/jare20895/MSProjectXMLValidator/internal/document"
	"github.com/jare20895/MSProjectXMLValidator/internal/ledger"
	"github.com/jare20895/MSProjectXMLValidator/pkg/types"
)

// SummaryPredecessors moves predecessor links off summary tasks onto the
// first non-summary task nested beneath them. The scan follows document
// order and stops at the first task at the summary's own outline level or
// shallower. Links with no destination are discarded; a link whose target
// the destination already holds is discarded as a duplicate.
func SummaryPredecessors(doc *document.Document, led *ledger.Ledger) {
	tasks := doc.Tasks()
	for idx, task := range tasks {
		if !document.IsSummary(task) {
			continue
		}
		links := task.SelectElements("PredecessorLink")
		if len(links) == 0 {
			continue
		}

		uid := document.UID(task)
		if uid == "" {
			uid = "Unknown"
		}
		name := document.TaskName(task)
		level := outlineLevel(task, 0)
		led.Logger().Warn("summary task has predecessor links", "task", name, "uid", uid)

		child := firstChildTask(tasks[idx+1:], level)
		if child == nil {
			for _, link := range links {
				predUID := document.Text(link.SelectElement("PredecessorUID"))
				if predUID == "" {
					predUID = "Unknown"
				}
				task.RemoveChild(link)
				led.Repair(types.CategorySummaryTaskDependencies,
					"Removed PredecessorLink from summary task '%s' (UID %s) with no children, predecessor UID %s",
					name, uid, predUID)
			}
			continue
		}

		childUID := document.UID(child)
		childName := document.TaskName(child)
		for _, link := range links {
			predEl := link.SelectElement("PredecessorUID")
			if predEl == nil {
				continue
			}
			predUID := predEl.Text()
			if hasPredecessor(child, predUID) {
				led.Repair(types.CategorySummaryTaskDependencies,
					"Removed duplicate PredecessorLink from summary task '%s' (UID %s), first child already has predecessor UID %s",
					name, uid, predUID)
			} else {
				moved := etree.NewElement("PredecessorLink")
				moved.CreateElement("PredecessorUID").SetText(predUID)
				linkType := "1"
				if typeEl := link.SelectElement("Type"); typeEl != nil {
					linkType = typeEl.Text()
				}
				moved.CreateElement("Type").SetText(linkType)
				child.AddChild(moved)
				led.Repair(types.CategorySummaryTaskDependencies,
					"Moved PredecessorLink from summary task '%s' (UID %s) to first child '%s' (UID %s), predecessor UID %s",
					name, uid, childName, childUID, predUID)
			}
			task.RemoveChild(link)
		}
	}
}

// firstChildTask returns the first non-summary task strictly deeper than
// level, scanning in document order and stopping at the scope boundary.
func firstChildTask(following []*etree.Element, level int) *etree.Element {
	for _, next := range following {
		nextLevel := outlineLevel(next, 999)
		if nextLevel <= level {
			break
		}
		if !document.IsSummary(next) {
			return next
		}
	}
	return nil
}

func hasPredecessor(task *etree.Element, predUID string) bool {
	for _, link := range task.SelectElements("PredecessorLink") {
		if document.Text(link.SelectElement("PredecessorUID")) == predUID {
			return true
		}
	}
	return false
}

func outlineLevel(task *etree.Element, fallback int) int {
	el := task.SelectElement("OutlineLevel")
	if el == nil {
		return fallback
	}
	n, err := strconv.Atoi(el.Text())
	if err != nil {
		return fallback
	}
	return n
}
