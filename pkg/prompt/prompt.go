// Package prompt wraps the interactive input surfaces of the tool:
// selection lists, checklists, confirmations and text input. Every
// prompt blocks until the user commits or cancels. Cancellation is an
// explicit result (ok == false), never an error, so callers are forced
// to handle the no-selection case.
package prompt

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// pageSize is the number of visible options in long selection lists
const pageSize = 10

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	faintStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func isCancelKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "esc", "ctrl+c":
		return true
	}
	return false
}

func runProgram(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m).Run()
}
