package results

import (
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calc"
)

// HistoryToolResult represents the result of the get_history tool
type HistoryToolResult struct {
	Message string         `json:"message"`
	Count   int            `json:"count"`
	Entries []HistoryEntry `json:"entries"`
}

// HistoryEntry represents one completed calculation
type HistoryEntry struct {
	ID     int64  `json:"id"`
	Text   string `json:"text"`
	Result string `json:"result"`
}

// NewHistoryToolResult creates a history result, newest entry first
func NewHistoryToolResult(history []calc.HistoryEntry) HistoryToolResult {
	result := HistoryToolResult{
		Count:   len(history),
		Entries: make([]HistoryEntry, 0, len(history)),
	}
	for _, e := range history {
		result.Entries = append(result.Entries, HistoryEntry{
			ID:     e.ID,
			Text:   e.Text,
			Result: e.Result(),
		})
	}

	if result.Count == 0 {
		result.Message = "No calculation history yet."
	} else {
		result.Message = fmt.Sprintf("Found %d calculations.", result.Count)
	}
	return result
}
