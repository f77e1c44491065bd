// Package ledger accumulates the categorized errors and repairs produced by
// a single validation or repair run. Narration goes through an injected
// logger so runs never share ambient state.
package ledger

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/jare20895/MSProjectXMLValidator/pkg/types"
)

// Ledger collects error and repair messages by category, preserving both
// the order categories first appear and the order of messages within a
// category.
type Ledger struct {
	logger *log.Logger

	errorOrder []string
	errors     map[string][]string

	repairOrder []string
	repairs     map[string][]string
}

// New returns an empty ledger. A nil logger discards narration.
func New(logger *log.Logger) *Ledger {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Ledger{
		logger:  logger,
		errors:  make(map[string][]string),
		repairs: make(map[string][]string),
	}
}

// Logger returns the ledger's narration logger.
func (l *Ledger) Logger() *log.Logger {
	return l.logger
}

// Error records a validation error under category.
func (l *Ledger) Error(category, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if _, ok := l.errors[category]; !ok {
		l.errorOrder = append(l.errorOrder, category)
	}
	l.errors[category] = append(l.errors[category], msg)
	l.logger.Error(msg, "category", category)
}

// Repair records a repair action under category.
func (l *Ledger) Repair(category, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if _, ok := l.repairs[category]; !ok {
		l.repairOrder = append(l.repairOrder, category)
	}
	l.repairs[category] = append(l.repairs[category], msg)
	l.logger.Info(msg, "category", category, "repaired", true)
}

// WithdrawErrors removes every error recorded under category. Used when a
// later repair pass re-examines the same defects and records only those it
// could not fix.
func (l *Ledger) WithdrawErrors(category string) {
	if _, ok := l.errors[category]; !ok {
		return
	}
	delete(l.errors, category)
	for i, c := range l.errorOrder {
		if c == category {
			l.errorOrder = append(l.errorOrder[:i], l.errorOrder[i+1:]...)
			break
		}
	}
}

// HasErrors reports whether any error has been recorded.
func (l *Ledger) HasErrors() bool {
	return len(l.errors) > 0
}

// HasRepairs reports whether any repair has been recorded under category.
func (l *Ledger) HasRepairs(category string) bool {
	_, ok := l.repairs[category]
	return ok
}

// Result snapshots the ledger into a Result. The snapshot is independent of
// later ledger mutation.
func (l *Ledger) Result() types.Result {
	res := types.Result{
		Success:          len(l.errors) == 0,
		ErrorCategories:  append([]string(nil), l.errorOrder...),
		Errors:           make(map[string][]string, len(l.errors)),
		RepairCategories: append([]string(nil), l.repairOrder...),
		Repairs:          make(map[string][]string, len(l.repairs)),
	}
	for cat, msgs := range l.errors {
		res.Errors[cat] = append([]string(nil), msgs...)
	}
	for cat, msgs := range l.repairs {
		res.Repairs[cat] = append([]string(nil), msgs...)
	}
	return res
}
