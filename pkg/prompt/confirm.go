package prompt

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

type confirmModel struct {
	question  string
	value     bool
	committed bool
	cancelled bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if isCancelKey(keyMsg) {
		m.cancelled = true
		return m, tea.Quit
	}

	switch keyMsg.String() {
	case "y", "Y":
		m.value = true
		m.committed = true
		return m, tea.Quit
	case "n", "N":
		m.value = false
		m.committed = true
		return m, tea.Quit
	case "left", "right", "tab":
		m.value = !m.value
	case "enter":
		m.committed = true
		return m, tea.Quit
	}

	return m, nil
}

func (m confirmModel) View() string {
	if m.committed || m.cancelled {
		return ""
	}

	yes, no := "yes", "no"
	if m.value {
		yes = selectedStyle.Render("[yes]")
	} else {
		no = selectedStyle.Render("[no]")
	}
	return fmt.Sprintf("%s %s / %s\n%s\n",
		titleStyle.Render(m.question),
		yes, no,
		faintStyle.Render("y/n · enter confirm · esc cancel"))
}

// Confirm asks a yes/no question. answer carries the user's choice when
// ok is true; ok is false when the user cancelled without answering.
func Confirm(question string, def bool) (answer bool, ok bool, err error) {
	final, rErr := runProgram(confirmModel{question: question, value: def})
	if rErr != nil {
		return false, false, fmt.Errorf("confirm prompt failed: %w", rErr)
	}

	m := final.(confirmModel)
	if !m.committed {
		return false, false, nil
	}
	return m.value, true, nil
}
