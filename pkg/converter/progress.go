// --- START OF FINAL REVISED FILE pkg/converter/progress.go ---
package converter

import (
	"fmt"
	"strconv"
)

// Percent returns completed*100/total using integer division. A zero total
// yields zero; no event is ever built for an empty run.
func Percent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return completed * 100 / total
}

// PaddedCount formats "completed/total" with completed zero-padded to the
// number of digits in total, e.g. "007/120".
func PaddedCount(completed, total int) string {
	width := len(strconv.Itoa(total))
	return fmt.Sprintf("%0*d/%d", width, completed, total)
}

// newProgressEvent builds the event for the completed-th task. skipped counts
// the tasks skipped so far, this one included.
func newProgressEvent(completed, total, skipped int, relPath string, status Status) ProgressEvent {
	ev := ProgressEvent{
		Completed: completed,
		Total:     total,
		Path:      relPath,
		Percent:   Percent(completed, total),
		Count:     PaddedCount(completed, total),
		Status:    status,
		Final:     completed == total,
	}
	switch {
	case ev.Final:
		ev.Message = allConvertedMessage(total, skipped)
	case status == StatusSkipped:
		ev.Message = fmt.Sprintf("%s (%d%%) skipped %s", ev.Count, ev.Percent, relPath)
	default:
		ev.Message = fmt.Sprintf("%s (%d%%) converted %s", ev.Count, ev.Percent, relPath)
	}
	return ev
}

func allConvertedMessage(total, skipped int) string {
	msg := fmt.Sprintf("%s (%s)", MessageAllConverted, PaddedCount(total, total))
	if skipped > 0 {
		msg += fmt.Sprintf(", %d skipped", skipped)
	}
	return msg
}

func emptyRunMessage() string {
	return fmt.Sprintf("no matching files; %s (0/0)", MessageAllConverted)
}

func failedMessage(cause string) string {
	return fmt.Sprintf("%s: %s", MessageFailed, cause)
}

// --- END OF FINAL REVISED FILE pkg/converter/progress.go ---
