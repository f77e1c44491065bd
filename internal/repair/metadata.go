package repair

import (
	"github.com/beevik/etree"

	"github.com/jare20895/MSProjectXMLValidator/internal/document"
	"github.com/jare20895/MSProjectXMLValidator/internal/ledger"
	"github.com/jare20895/MSProjectXMLValidator/pkg/types"
)

// field is a name/default pair inserted when absent. Order matters for
// deterministic output, so the tables are slices rather than maps.
type field struct {
	name  string
	value string
}

// projectMetadata are the document-level fields MS Project expects.
var projectMetadata = []field{
	{"SaveVersion", "14"},
	{"BuildNumber", "16.0.14326.20454"},
	{"FYStartDate", "1"},
	{"CriticalSlackLimit", "0"},
	{"DaysPerMonth", "20"},
	{"CurrencyDigits", "2"},
	{"CurrencySymbol", "$"},
	{"CurrencyCode", "USD"},
	{"CurrencySymbolPosition", "0"},
	{"DefaultTaskType", "0"},
	{"DefaultFixedCostAccrual", "3"},
	{"DefaultStandardRate", "0"},
	{"DefaultOvertimeRate", "0"},
	{"DurationFormat", "7"},
	{"WorkFormat", "2"},
	{"EditableActualCosts", "0"},
	{"HonorConstraints", "0"},
	{"InsertedProjectsLikeSummary", "0"},
	{"MultipleCriticalPaths", "0"},
	{"NewTasksEffortDriven", "0"},
	{"NewTasksEstimated", "1"},
	{"SplitsInProgressTasks", "1"},
	{"SpreadActualCost", "0"},
	{"SpreadPercentComplete", "0"},
	{"TaskUpdatesResource", "1"},
	{"FiscalYearStart", "0"},
	{"WeekStartDay", "0"},
	{"MoveCompletedEndsBack", "0"},
	{"MoveRemainingStartsBack", "0"},
	{"MoveRemainingStartsForward", "0"},
	{"MoveCompletedEndsForward", "0"},
	{"BaselineForEarnedValue", "0"},
	{"AutoAddNewResourcesAndTasks", "1"},
	{"MicrosoftProjectServerURL", "1"},
	{"Autolink", "0"},
	{"NewTaskStartDate", "0"},
	{"NewTasksAreManual", "1"},
	{"DefaultTaskEVMethod", "0"},
	{"ProjectExternallyEdited", "0"},
	{"ExtendedCreationDate", "1984-01-01T00:00:00"},
	{"ActualsInSync", "0"},
	{"RemoveFileProperties", "0"},
	{"AdminProject", "0"},
	{"UpdateManuallyScheduledTasksWhenEditingLinks", "1"},
	{"KeepTaskOnNearestWorkingTimeWhenMadeAutoScheduled", "0"},
}

// structuralSections are the empty container sections MS Project expects to
// find, inserted before Calendars when absent.
var structuralSections = []string{
	"Views", "Filters", "Groups", "Tables", "Maps", "Reports",
	"Drawings", "DataLinks", "VBAProjects", "OutlineCodes",
	"WBSMasks", "ExtendedAttributes",
}

// fallbackInsertPos is the child element position metadata lands at when
// the document declares neither MinutesPerWeek nor Calendars nor
// CurrentDate.
const fallbackInsertPos = 10

// ProjectMetadata inserts the document-level metadata defaults and empty
// structural sections wherever absent. Metadata lands immediately after
// MinutesPerWeek when present, else before Calendars, else after
// CurrentDate, else at a fixed fallback position; structural sections land
// before Calendars. A single summary repair entry is recorded when anything
// was added.
func ProjectMetadata(doc *document.Document, led *ledger.Ledger) {
	root := doc.Root()
	added := 0

	insertIndex := metadataInsertIndex(root)
	for _, f := range projectMetadata {
		if root.SelectElement(f.name) != nil {
			continue
		}
		el := etree.NewElement(f.name)
		el.SetText(f.value)
		root.InsertChildAt(insertIndex, el)
		insertIndex++
		added++
	}

	if calendars := root.SelectElement("Calendars"); calendars != nil {
		index := calendars.Index()
		for _, name := range structuralSections {
			if root.SelectElement(name) != nil {
				continue
			}
			root.InsertChildAt(index, etree.NewElement(name))
			index++
			added++
		}
	}

	if added > 0 {
		led.Repair(types.CategoryProjectMetadata,
			"Added %d essential project configuration fields (DurationFormat, WorkFormat, NewTasksAreManual, etc.)", added)
	}
}

func metadataInsertIndex(root *etree.Element) int {
	if el := root.SelectElement("MinutesPerWeek"); el != nil {
		return el.Index() + 1
	}
	if el := root.SelectElement("Calendars"); el != nil {
		return el.Index()
	}
	if el := root.SelectElement("CurrentDate"); el != nil {
		return el.Index() + 1
	}
	// No anchor. Insertion counts child elements, not tokens; interleaved
	// whitespace would otherwise skew the position.
	elems := root.ChildElements()
	if len(elems) == 0 {
		return 0
	}
	if len(elems) < fallbackInsertPos {
		return elems[len(elems)-1].Index() + 1
	}
	return elems[fallbackInsertPos-1].Index() + 1
}
