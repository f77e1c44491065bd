package repair

import (
	"github.com/beevik/etree"

	"github.com/jare20895/MSProjectXMLValidator/internal/document"
	"github.com/jare20895/MSProjectXMLValidator/internal/ledger"
	"github.com/jare20895/MSProjectXMLValidator/pkg/types"
)

// taskFields are the task-level fields MS Project expects on import.
var taskFields = []field{
	{"PercentComplete", "0"},
	{"PercentWorkComplete", "0"},
	{"Active", "1"},
	{"Manual", "0"},
	{"Estimated", "0"},
	{"IsNull", "0"},
	{"DurationFormat", "7"},
	{"Priority", "500"},
	{"Critical", "0"},
}

// TaskFields inserts the task-level field defaults wherever absent, and
// mirrors the WBS code from the outline number when missing. One summary
// repair entry is recorded when anything was added.
func TaskFields(doc *document.Document, led *ledger.Ledger) {
	added := 0
	for _, task := range doc.Tasks() {
		for _, f := range taskFields {
			if task.SelectElement(f.name) != nil {
				continue
			}
			el := etree.NewElement(f.name)
			el.SetText(f.value)
			task.AddChild(el)
			added++
		}
		if task.SelectElement("WBS") == nil {
			if outline := task.SelectElement("OutlineNumber"); outline != nil {
				wbs := etree.NewElement("WBS")
				wbs.SetText(outline.Text())
				task.AddChild(wbs)
				added++
			}
		}
	}
	if added > 0 {
		led.Repair(types.CategoryTaskFields,
			"Added %d essential task-level fields (PercentComplete, DurationFormat, Priority, etc.)", added)
	}
}
