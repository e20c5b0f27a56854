package results

import (
	"fmt"
	"strings"

	"github.com/averycrespi/calc-mcp/internal/calc"
)

// DisplayToolResult represents the calculator readout returned by every key tool
type DisplayToolResult struct {
	Display      string `json:"display"`
	Raw          string `json:"raw"`
	Pending      string `json:"pending,omitempty"`
	MemoryActive bool   `json:"memory_active"`
	Waiting      bool   `json:"waiting_for_operand"`
	Message      string `json:"message"`
}

// NewDisplayToolResult creates a display result from a calculator state
func NewDisplayToolResult(state calc.State) DisplayToolResult {
	result := DisplayToolResult{
		Display:      state.FormattedDisplay(),
		Raw:          state.Display,
		Pending:      state.Pending(),
		MemoryActive: state.MemoryActive(),
		Waiting:      state.Waiting,
	}
	result.Message = result.readout()
	return result
}

// readout summarizes the display in one line, e.g. "Display: 1,500. Pending: 1500 −."
func (r DisplayToolResult) readout() string {
	parts := []string{fmt.Sprintf("Display: %s.", r.Display)}
	if r.Pending != "" {
		parts = append(parts, fmt.Sprintf("Pending: %s.", r.Pending))
	}
	if r.MemoryActive {
		parts = append(parts, "Memory in use.")
	}
	return strings.Join(parts, " ")
}
