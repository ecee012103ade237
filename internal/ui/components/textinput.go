package components

import (
	"strings"
	"unicode"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/xpchart/xpchart/internal/ui/theme"
)

// MaxPlayerNameLength is the longest display name the game allows.
const MaxPlayerNameLength = 12

// IsPlayerNameRune reports whether r may appear in a player name: letters,
// digits, spaces, hyphens and underscores.
func IsPlayerNameRune(r rune) bool {
	return r < unicode.MaxASCII &&
		(unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_')
}

// TextInput wraps bubbles/textinput with xpchart styling and an optional
// character filter.
type TextInput struct {
	Model textinput.Model

	// Allow filters typed characters. Nil accepts everything.
	Allow func(rune) bool
}

// NewTextInput creates a new styled text input.
func NewTextInput(placeholder string, allow func(rune) bool, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{
		Model: ti,
		Allow: allow,
	}
}

// NewPlayerNameInput returns an input restricted to valid player names.
func NewPlayerNameInput(initial string) TextInput {
	t := NewTextInput("player name", IsPlayerNameRune, MaxPlayerNameLength)
	t.Model.SetValue(initial)
	t.Model.CursorEnd()
	return t
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.Allow != nil {
		if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.Text != "" {
			for _, r := range kmsg.Text {
				if !t.Allow(r) {
					return t, nil
				}
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	return theme.Body.Render(t.Model.View())
}

// Value returns the current input value with surrounding spaces removed.
func (t TextInput) Value() string {
	return strings.TrimSpace(t.Model.Value())
}
