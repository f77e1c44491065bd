package validate

import (
	"github.com/jare20895/MSProjectXMLValidator/internal/document"
	"github.com/jare20895/MSProjectXMLValidator/internal/ledger"
	"github.com/jare20895/MSProjectXMLValidator/pkg/types"
)

// projectDateFields are the document-level instant fields subject to format
// validation.
var projectDateFields = []string{"StartDate", "FinishDate", "CurrentDate", "CreationDate"}

// DataFormats validates instant and span literals on the project-level date
// fields and on each task's Start/Finish and Duration/Work. Violations are
// recorded as Data Formats errors naming the field, the owner, and the
// offending literal.
func DataFormats(doc *document.Document, led *ledger.Ledger) {
	for _, tag := range projectDateFields {
		el := doc.Root().FindElement(".//" + tag)
		if el == nil || el.Text() == "" {
			continue
		}
		if !document.ValidInstant(el.Text()) {
			led.Error(types.CategoryDataFormats,
				"Invalid date format in <%s> for 'Project'. Got: '%s'", tag, el.Text())
		}
	}
	for _, task := range doc.Tasks() {
		name := document.TaskName(task)
		for _, tag := range []string{"Start", "Finish"} {
			el := task.SelectElement(tag)
			if el == nil || el.Text() == "" {
				continue
			}
			if !document.ValidInstant(el.Text()) {
				led.Error(types.CategoryDataFormats,
					"Invalid date format in <%s> for '%s'. Got: '%s'", tag, name, el.Text())
			}
		}
		for _, tag := range []string{"Duration", "Work"} {
			el := task.SelectElement(tag)
			if el == nil || el.Text() == "" {
				continue
			}
			if !document.ValidSpan(el.Text()) {
				led.Error(types.CategoryDataFormats,
					"Invalid duration format in <%s> for '%s'. Got: '%s'", tag, name, el.Text())
			}
		}
	}
}
