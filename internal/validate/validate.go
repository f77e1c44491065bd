// Package validate implements the read-only structural checks that run on
// every invocation: identifier uniqueness, referential integrity, temporal
// format validation, and calendar arithmetic. Checks never mutate the
// document; findings accumulate in the ledger so a single run reports every
// defect it can find.
package validate

import (
	"github.com/beevik/etree"

	"github.com/jare20895/MSProjectXMLValidator/internal/document"
	"github.com/jare20895/MSProjectXMLValidator/internal/ledger"
	"github.com/jare20895/MSProjectXMLValidator/pkg/types"
)

// UIDSets holds the identifiers seen for each entity kind. Identifier
// namespaces are per kind, not global.
type UIDSets struct {
	Tasks       map[string]bool
	Resources   map[string]bool
	Assignments map[string]bool
}

// UniqueUIDs scans Tasks, Resources, and Assignments once per kind and
// records a Duplicate UIDs error for every identifier observed more than
// once within a kind. The returned sets contain each identifier once, so
// downstream existence checks do not re-flag duplicates. Duplicates are
// reported only, never repaired.
func UniqueUIDs(doc *document.Document, led *ledger.Ledger) UIDSets {
	sets := UIDSets{
		Tasks:       make(map[string]bool),
		Resources:   make(map[string]bool),
		Assignments: make(map[string]bool),
	}
	collect := func(kind string, elems []*etree.Element, seen map[string]bool) {
		for _, el := range elems {
			uidEl := el.SelectElement("UID")
			if uidEl == nil {
				continue
			}
			uid := uidEl.Text()
			if seen[uid] {
				led.Error(types.CategoryDuplicateUIDs, "Duplicate %s UID found: %s", kind, uid)
			}
			seen[uid] = true
		}
	}
	collect("Task", doc.Tasks(), sets.Tasks)
	collect("Resource", doc.Resources(), sets.Resources)
	collect("Assignment", doc.Assignments(), sets.Assignments)
	return sets
}

// ReferentialIntegrity checks that every Assignment references an existing
// Task and Resource, and that every PredecessorLink targets an existing
// Task. Missing references are recorded as Broken References errors.
func ReferentialIntegrity(doc *document.Document, sets UIDSets, led *ledger.Ledger) {
	for _, assign := range doc.Assignments() {
		uidEl := assign.SelectElement("UID")
		taskEl := assign.SelectElement("TaskUID")
		resEl := assign.SelectElement("ResourceUID")
		if uidEl == nil || taskEl == nil || resEl == nil {
			continue
		}
		if !sets.Tasks[taskEl.Text()] {
			led.Error(types.CategoryBrokenReferences,
				"Assignment <UID>%s</UID> points to non-existent TaskUID: %s", uidEl.Text(), taskEl.Text())
		}
		if !sets.Resources[resEl.Text()] {
			led.Error(types.CategoryBrokenReferences,
				"Assignment <UID>%s</UID> points to non-existent ResourceUID: %s", uidEl.Text(), resEl.Text())
		}
	}
	for _, task := range doc.Tasks() {
		for _, link := range task.SelectElements("PredecessorLink") {
			predEl := link.SelectElement("PredecessorUID")
			if predEl == nil {
				continue
			}
			if !sets.Tasks[predEl.Text()] {
				led.Error(types.CategoryBrokenReferences,
					"Task '%s' has a PredecessorLink to non-existent TaskUID: %s",
					document.TaskName(task), predEl.Text())
			}
		}
	}
}
