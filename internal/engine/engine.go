// Package engine orchestrates the fixed-order validation and repair
// pipeline over a single project document. The document is exclusively
// owned by one call; no state survives between runs.
package engine

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/jare20895/MSProjectXMLValidator/internal/document"
	"github.com/jare20895/MSProjectXMLValidator/internal/ledger"
	"github.com/jare20895/MSProjectXMLValidator/internal/repair"
	"github.com/jare20895/MSProjectXMLValidator/internal/report"
	"github.com/jare20895/MSProjectXMLValidator/internal/validate"
	"github.com/jare20895/MSProjectXMLValidator/pkg/types"
)

// Options configures a single run.
type Options struct {
	// InputPath is the project XML file to validate.
	InputPath string

	// OutputPath, when set in repair mode, receives the repaired XML; a
	// companion repair log is written next to it.
	OutputPath string

	// Repair enables the corrective passes.
	Repair bool

	// Policy controls the date-removal exemptions and repair defaults.
	Policy types.Policy

	// Logger narrates progress and findings. Nil discards narration.
	Logger *log.Logger
}

// Run executes the pipeline and returns the categorized result. Fatal
// conditions (unreadable input, malformed XML, invalid policy, output
// write failure) return an error; structural findings live in the Result.
// An unexpected panic inside a pass is recovered and reported as a generic
// failure with no partial result.
func Run(opts Options) (res types.Result, err error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	defer func() {
		if r := recover(); r != nil {
			res = types.Result{}
			err = fmt.Errorf("unexpected failure during validation: %v", r)
		}
	}()

	if err := opts.Policy.Validate(); err != nil {
		return types.Result{}, fmt.Errorf("policy: %w", err)
	}

	logger.Info("starting validation", "input", opts.InputPath, "repair", opts.Repair)
	doc, err := document.Load(opts.InputPath)
	if err != nil {
		return types.Result{}, err
	}

	led := ledger.New(logger)

	sets := validate.UniqueUIDs(doc, led)
	validate.ReferentialIntegrity(doc, sets, led)
	validate.DataFormats(doc, led)
	validate.CalendarLogic(doc, led)

	if opts.Repair {
		repair.SummaryPredecessors(doc, led)
		repair.BreakCycles(doc, led)

		// The normalizer re-examines every temporal field and records only
		// the defects it cannot fix, so the validation-time entries are
		// withdrawn first and the final ledger holds exactly the genuinely
		// unrepaired format violations.
		led.WithdrawErrors(types.CategoryDataFormats)
		repair.DataFormats(doc, led)

		repair.RemoveExplicitDates(doc, opts.Policy, led)
		repair.ProjectMetadata(doc, led)
		repair.TaskFields(doc, led)
		repair.Milestones(doc, led)
		repair.ZeroWorkTasks(doc, opts.Policy, led)
		repair.DeriveFinishDates(doc, led)
		repair.VerifySprintLinks(doc, led)
	}

	res = led.Result()

	if opts.Repair {
		if opts.OutputPath != "" {
			if err := doc.WriteFile(opts.OutputPath); err != nil {
				return res, fmt.Errorf("write repaired document: %w", err)
			}
			logPath := report.LogPath(opts.OutputPath)
			if err := report.WriteRepairLog(logPath, res); err != nil {
				return res, err
			}
			logger.Info("repaired document written", "output", opts.OutputPath, "log", logPath)
		} else {
			logger.Warn("repair mode enabled but no output path specified; changes not saved")
		}
	}

	logger.Info("validation finished",
		"success", res.Success, "errors", res.ErrorCount(), "repairs", res.RepairCount())
	return res, nil
}
