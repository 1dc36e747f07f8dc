package prompt

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Validator rejects invalid input with a message shown to the user.
// Validation failures re-prompt in place, they never surface as errors.
type Validator func(value string) error

type inputModel struct {
	title     string
	input     textinput.Model
	validate  Validator
	problem   string
	committed bool
	cancelled bool
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if isCancelKey(keyMsg) {
			m.cancelled = true
			return m, tea.Quit
		}
		if keyMsg.String() == "enter" {
			if m.validate != nil {
				if vErr := m.validate(m.input.Value()); vErr != nil {
					m.problem = vErr.Error()
					return m, nil
				}
			}
			m.committed = true
			return m, tea.Quit
		}
		// Typing again clears a pending validation message
		m.problem = ""
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.committed || m.cancelled {
		return ""
	}
	out := titleStyle.Render(m.title) + "\n" + m.input.View() + "\n"
	if m.problem != "" {
		out += errorStyle.Render(m.problem) + "\n"
	}
	out += faintStyle.Render("enter confirm · esc cancel") + "\n"
	return out
}

func newTextInput(placeholder string, masked bool) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 255
	ti.Focus()
	if masked {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '*'
	}
	return ti
}

// Input prompts for a line of text. validate may be nil; when set,
// values it rejects keep the prompt open with the message displayed.
// ok is false when the user cancelled.
func Input(title, placeholder string, validate Validator) (value string, ok bool, err error) {
	final, rErr := runProgram(inputModel{
		title:    title,
		input:    newTextInput(placeholder, false),
		validate: validate,
	})
	if rErr != nil {
		return "", false, fmt.Errorf("input prompt failed: %w", rErr)
	}

	m := final.(inputModel)
	if !m.committed {
		return "", false, nil
	}
	return m.input.Value(), true, nil
}

// Password prompts for a masked line of text. ok is false when the user
// cancelled.
func Password(title string) (value string, ok bool, err error) {
	final, rErr := runProgram(inputModel{
		title: title,
		input: newTextInput("", true),
	})
	if rErr != nil {
		return "", false, fmt.Errorf("password prompt failed: %w", rErr)
	}

	m := final.(inputModel)
	if !m.committed {
		return "", false, nil
	}
	return m.input.Value(), true, nil
}
