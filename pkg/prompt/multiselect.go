package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type multiSelectModel struct {
	title     string
	options   []string
	checked   map[int]bool
	cursor    int
	offset    int
	notice    string
	committed bool
	cancelled bool
}

func (m multiSelectModel) Init() tea.Cmd {
	return nil
}

func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
	case " ":
		m.checked[m.cursor] = !m.checked[m.cursor]
		m.notice = ""
	case "enter":
		if len(m.checkedIndexes()) == 0 {
			m.notice = "select at least one item"
			return m, nil
		}
		m.committed = true
		return m, tea.Quit
	}

	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+pageSize {
		m.offset = m.cursor - pageSize + 1
	}

	return m, nil
}

func (m multiSelectModel) checkedIndexes() []int {
	var idx []int
	for i := range m.options {
		if m.checked[i] {
			idx = append(idx, i)
		}
	}
	return idx
}

func (m multiSelectModel) View() string {
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
		mark := "[ ]"
		line := m.options[i]
		if m.checked[i] {
			mark = selectedStyle.Render("[x]")
		}
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> ") + mark + " " + line + "\n")
			continue
		}
		b.WriteString("  " + mark + " " + line + "\n")
	}

	if len(m.options) > pageSize {
		b.WriteString(faintStyle.Render(fmt.Sprintf("%d-%d of %d", m.offset+1, end, len(m.options))) + "\n")
	}
	if m.notice != "" {
		b.WriteString(errorStyle.Render(m.notice) + "\n")
	}
	b.WriteString(faintStyle.Render("space toggle · enter confirm · esc cancel") + "\n")
	return b.String()
}

// MultiSelect presents a checklist and returns the checked options in
// list order. Committing requires at least one checked item; ok is
// false when the user cancelled.
func MultiSelect(title string, options []string) (choices []string, ok bool, err error) {
	if len(options) == 0 {
		return nil, false, fmt.Errorf("no options to select from")
	}

	final, rErr := runProgram(multiSelectModel{
		title:   title,
		options: options,
		checked: make(map[int]bool),
	})
	if rErr != nil {
		return nil, false, fmt.Errorf("selection prompt failed: %w", rErr)
	}

	m := final.(multiSelectModel)
	if !m.committed {
		return nil, false, nil
	}
	for _, i := range m.checkedIndexes() {
		choices = append(choices, m.options[i])
	}
	return choices, true, nil
}
