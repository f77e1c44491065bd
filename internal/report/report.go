// Package report renders the human-readable repair log that accompanies a
// repaired document.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jare20895/MSProjectXMLValidator/pkg/types"
)

// LogPath returns the companion repair-log path for an output document,
// replacing a .xml extension with _repair.log.
func LogPath(outputPath string) string {
	ext := filepath.Ext(outputPath)
	if strings.EqualFold(ext, ".xml") {
		return strings.TrimSuffix(outputPath, ext) + "_repair.log"
	}
	return outputPath + "_repair.log"
}

// Render formats the run result as the repair-log text: every repair and
// every remaining error, grouped by category in recorded order.
func Render(res types.Result) string {
	var b strings.Builder
	rule := strings.Repeat("=", 72)

	b.WriteString(rule + "\n")
	b.WriteString("REPAIR SUMMARY\n")
	b.WriteString(rule + "\n\n")

	if res.RepairCount() == 0 {
		b.WriteString("No repairs were necessary.\n")
	} else {
		fmt.Fprintf(&b, "Repairs applied: %d\n\n", res.RepairCount())
		for _, cat := range res.RepairCategories {
			msgs := res.Repairs[cat]
			fmt.Fprintf(&b, "%s (%d):\n", cat, len(msgs))
			for _, msg := range msgs {
				fmt.Fprintf(&b, "  - %s\n", msg)
			}
			b.WriteString("\n")
		}
	}

	if res.ErrorCount() == 0 {
		b.WriteString("No errors remain.\n")
	} else {
		fmt.Fprintf(&b, "Remaining errors: %d\n\n", res.ErrorCount())
		for _, cat := range res.ErrorCategories {
			msgs := res.Errors[cat]
			fmt.Fprintf(&b, "%s (%d):\n", cat, len(msgs))
			for _, msg := range msgs {
				fmt.Fprintf(&b, "  - %s\n", msg)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// WriteRepairLog writes the rendered report to path.
func WriteRepairLog(path string, res types.Result) error {
	if err := os.WriteFile(path, []byte(Render(res)), 0o644); err != nil {
		return fmt.Errorf("write repair log: %w", err)
	}
	return nil
}
