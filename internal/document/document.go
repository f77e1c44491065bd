// Package document wraps the MS Project XML tree with the typed accessors
// used by the validation and repair passes. The tree is ordered and mutable;
// passes relocate and insert elements in place.
package document

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"
)

// ErrNoRoot is returned when a parsed document has no root element.
var ErrNoRoot = errors.New("document has no root element")

// Document is a loaded MS Project XML file. It owns the underlying element
// tree for the lifetime of one validation or repair run.
type Document struct {
	tree *etree.Document
	root *etree.Element
}

// Load parses the XML file at path.
func Load(path string) (*Document, error) {
	tree := etree.NewDocument()
	if err := tree.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return wrap(tree)
}

// Parse parses an XML document from a string.
func Parse(data string) (*Document, error) {
	tree := etree.NewDocument()
	if err := tree.ReadFromString(data); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return wrap(tree)
}

func wrap(tree *etree.Document) (*Document, error) {
	root := tree.Root()
	if root == nil {
		return nil, ErrNoRoot
	}
	return &Document{tree: tree, root: root}, nil
}

// Root returns the Project element.
func (d *Document) Root() *etree.Element {
	return d.root
}

// Tasks returns every Task element in document order.
func (d *Document) Tasks() []*etree.Element {
	return d.root.FindElements("//Task")
}

// Resources returns every Resource element in document order.
func (d *Document) Resources() []*etree.Element {
	return d.root.FindElements("//Resource")
}

// Assignments returns every Assignment element in document order.
func (d *Document) Assignments() []*etree.Element {
	return d.root.FindElements("//Assignment")
}

// Calendars returns every Calendar element in document order.
func (d *Document) Calendars() []*etree.Element {
	return d.root.FindElements("//Calendar")
}

// Calendar returns the calendar with the given UID, or nil when no calendar
// declares it.
func (d *Document) Calendar(uid string) *etree.Element {
	for _, cal := range d.Calendars() {
		if Text(cal.SelectElement("UID")) == uid {
			return cal
		}
	}
	return nil
}

// WriteFile serializes the document to path with a UTF-8 standalone XML
// declaration, as MS Project expects.
func (d *Document) WriteFile(path string) error {
	d.ensureDeclaration()
	if err := d.tree.WriteToFile(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// String renders the document, declaration included.
func (d *Document) String() (string, error) {
	d.ensureDeclaration()
	return d.tree.WriteToString()
}

// ensureDeclaration replaces any existing XML declaration with the
// standalone form.
func (d *Document) ensureDeclaration() {
	var stale []*etree.ProcInst
	for _, tok := range d.tree.Child {
		if pi, ok := tok.(*etree.ProcInst); ok && pi.Target == "xml" {
			stale = append(stale, pi)
		}
	}
	for _, pi := range stale {
		d.tree.RemoveChild(pi)
	}
	pi := d.tree.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	d.tree.RemoveChild(pi)
	d.tree.InsertChildAt(0, pi)
}

// Text returns the text of el, or the empty string when el is nil.
func Text(el *etree.Element) string {
	if el == nil {
		return ""
	}
	return el.Text()
}

// UID returns the text of the element's UID child.
func UID(el *etree.Element) string {
	return Text(el.SelectElement("UID"))
}

// TaskName returns the task's Name, falling back to a label synthesized
// from the UID.
func TaskName(task *etree.Element) string {
	if name := Text(task.SelectElement("Name")); name != "" {
		return name
	}
	if uid := UID(task); uid != "" {
		return fmt.Sprintf("Task UID %s", uid)
	}
	return "Unknown Task"
}

// IsSummary reports whether the task carries the Summary flag.
func IsSummary(task *etree.Element) bool {
	return Text(task.SelectElement("Summary")) == "1"
}

// IsMilestone reports whether the task carries the Milestone flag.
func IsMilestone(task *etree.Element) bool {
	return Text(task.SelectElement("Milestone")) == "1"
}
