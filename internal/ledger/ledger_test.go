package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jare20895/MSProjectXMLValidator/pkg/types"
)

func TestLedgerOrdering(t *testing.T) {
	led := New(nil)
	led.Error(types.CategoryBrokenReferences, "first")
	led.Error(types.CategoryDataFormats, "second")
	led.Error(types.CategoryBrokenReferences, "third")
	led.Repair(types.CategoryZeroWorkTasks, "fixed %d", 1)

	res := led.Result()
	assert.False(t, res.Success)
	assert.Equal(t, []string{types.CategoryBrokenReferences, types.CategoryDataFormats}, res.ErrorCategories)
	assert.Equal(t, []string{"first", "third"}, res.Errors[types.CategoryBrokenReferences])
	assert.Equal(t, []string{"fixed 1"}, res.Repairs[types.CategoryZeroWorkTasks])
}

func TestWithdrawErrors(t *testing.T) {
	led := New(nil)
	led.Error(types.CategoryDataFormats, "bad date")
	led.Error(types.CategoryBrokenReferences, "bad ref")
	assert.True(t, led.HasErrors())

	led.WithdrawErrors(types.CategoryDataFormats)

	res := led.Result()
	assert.Equal(t, []string{types.CategoryBrokenReferences}, res.ErrorCategories)
	assert.NotContains(t, res.Errors, types.CategoryDataFormats)

	// Withdrawing an absent category is a no-op.
	led.WithdrawErrors("No Such Category")
	assert.True(t, led.HasErrors())
}

func TestWithdrawAllErrorsYieldsSuccess(t *testing.T) {
	led := New(nil)
	led.Error(types.CategoryDataFormats, "bad date")
	led.WithdrawErrors(types.CategoryDataFormats)

	res := led.Result()
	assert.True(t, res.Success)
	assert.False(t, led.HasErrors())
}

func TestHasRepairs(t *testing.T) {
	led := New(nil)
	assert.False(t, led.HasRepairs(types.CategoryDataFormats))
	led.Repair(types.CategoryDataFormats, "fixed")
	assert.True(t, led.HasRepairs(types.CategoryDataFormats))
}

func TestResultSnapshotIndependence(t *testing.T) {
	led := New(nil)
	led.Error(types.CategoryDataFormats, "bad date")

	res := led.Result()
	led.Error(types.CategoryDataFormats, "another")
	led.Repair(types.CategoryZeroWorkTasks, "fixed")

	assert.Len(t, res.Errors[types.CategoryDataFormats], 1)
	assert.Empty(t, res.Repairs)
}
