package calc

import (
	"fmt"
	"strings"
	"time"
)

// DefaultHistoryLimit is the maximum number of history entries kept
const DefaultHistoryLimit = 10

const resultSeparator = " = "

// HistoryEntry is the textual record of one completed calculation
type HistoryEntry struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// Result returns the result portion of the entry text
func (e HistoryEntry) Result() string {
	_, result, ok := strings.Cut(e.Text, resultSeparator)
	if !ok {
		return ""
	}
	return result
}

func historyText(op Operator, a, b, result float64) string {
	return fmt.Sprintf("%s %s %s%s%s", FormatNumber(a), op.Symbol(), FormatNumber(b), resultSeparator, FormatNumber(result))
}

// pushHistory returns a new slice with entry prepended, trimmed to limit.
// The input slice is never modified.
func pushHistory(history []HistoryEntry, text string, now time.Time, limit int) []HistoryEntry {
	id := now.UnixMilli()
	if len(history) > 0 && id <= history[0].ID {
		id = history[0].ID + 1
	}

	size := len(history) + 1
	if size > limit {
		size = limit
	}

	next := make([]HistoryEntry, 0, size)
	next = append(next, HistoryEntry{ID: id, Text: text})
	next = append(next, history[:size-1]...)
	return next
}
