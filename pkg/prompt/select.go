package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type selectModel struct {
	title     string
	options   []string
	cursor    int
	offset    int
	committed bool
	cancelled bool
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if isCancelKey(keyMsg) || keyMsg.String() == "q" {
		m.cancelled = true
		return m, tea.Quit
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "enter":
		m.committed = true
		return m, tea.Quit
	}

	// Keep the cursor inside the visible page
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+pageSize {
		m.offset = m.cursor - pageSize + 1
	}

	return m, nil
}

func (m selectModel) View() string {
	if m.committed || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n")

	end := m.offset + pageSize
	if end > len(m.options) {
		end = len(m.options)
	}
	for i := m.offset; i < end; i++ {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> "+m.options[i]) + "\n")
			continue
		}
		b.WriteString("  " + m.options[i] + "\n")
	}

	if len(m.options) > pageSize {
		b.WriteString(faintStyle.Render(fmt.Sprintf("%d-%d of %d", m.offset+1, end, len(m.options))) + "\n")
	}
	b.WriteString(faintStyle.Render("enter select · esc cancel") + "\n")
	return b.String()
}

// Select presents a single-select list paged at pageSize items and
// returns the chosen option. ok is false when the user cancelled.
func Select(title string, options []string) (choice string, ok bool, err error) {
	if len(options) == 0 {
		return "", false, fmt.Errorf("no options to select from")
	}

	final, rErr := runProgram(selectModel{title: title, options: options})
	if rErr != nil {
		return "", false, fmt.Errorf("selection prompt failed: %w", rErr)
	}

	m := final.(selectModel)
	if !m.committed {
		return "", false, nil
	}
	return m.options[m.cursor], true, nil
}
