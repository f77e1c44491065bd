package types

// Result is the outcome of a single validation or repair run.
//
// Errors and Repairs map a category name to its messages in the order they
// were recorded. ErrorCategories and RepairCategories preserve the order in
// which each category first appeared, so reports are deterministic.
type Result struct {
	Success bool

	ErrorCategories []string
	Errors          map[string][]string

	RepairCategories []string
	Repairs          map[string][]string
}

// ErrorCount returns the total number of error messages across categories.
func (r Result) ErrorCount() int {
	n := 0
	for _, msgs := range r.Errors {
		n += len(msgs)
	}
	return n
}

// RepairCount returns the total number of repair messages across categories.
func (r Result) RepairCount() int {
	n := 0
	for _, msgs := range r.Repairs {
		n += len(msgs)
	}
	return n
}
