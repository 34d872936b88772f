package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	focusEmail = iota
	focusPassword
	focusButton
	focusCount
)

// signInForm holds the two opaque inputs and the button. Nothing typed here
// leaves the form.
type signInForm struct {
	email    textinput.Model
	password textinput.Model
	focus    int
	keys     signInKeys
}

func newSignInForm() signInForm {
	email := textinput.New()
	email.Prompt = "❯ "
	email.PromptStyle = promptStyle
	email.CharLimit = 254
	email.Width = 32

	password := textinput.New()
	password.Prompt = "❯ "
	password.PromptStyle = promptStyle
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128
	password.Width = 32

	f := signInForm{email: email, password: password, keys: newSignInKeys()}
	f.setFocus(focusEmail)
	return f
}

func (f *signInForm) setFocus(i int) tea.Cmd {
	f.focus = (i + focusCount) % focusCount
	f.email.Blur()
	f.password.Blur()
	switch f.focus {
	case focusEmail:
		return f.email.Focus()
	case focusPassword:
		return f.password.Focus()
	}
	return nil
}

// update routes msg to the form. submit reports that the user pressed Sign In.
func (f *signInForm) update(msg tea.Msg) (cmd tea.Cmd, submit bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, f.keys.Next):
			return f.setFocus(f.focus + 1), false
		case key.Matches(km, f.keys.Prev):
			return f.setFocus(f.focus - 1), false
		case key.Matches(km, f.keys.Submit):
			if f.focus == focusEmail {
				return f.setFocus(focusPassword), false
			}
			return nil, true
		}
	}

	var cmds []tea.Cmd
	var c tea.Cmd
	f.email, c = f.email.Update(msg)
	cmds = append(cmds, c)
	f.password, c = f.password.Update(msg)
	cmds = append(cmds, c)
	return tea.Batch(cmds...), false
}

func (f signInForm) view() string {
	button := buttonStyle.Render("Sign In")
	if f.focus == focusButton {
		button = buttonFocusStyle.Render("Sign In")
	}
	var b strings.Builder
	b.WriteString(labelStyle.Render("Email"))
	b.WriteString("\n")
	b.WriteString(f.email.View())
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Password"))
	b.WriteString("\n")
	b.WriteString(f.password.View())
	b.WriteString("\n\n\n")
	b.WriteString(bodyStyle.Render("Welcome to the app. Sign in to begin"))
	b.WriteString("\n\n")
	b.WriteString(button)
	return cardStyle.Render(b.String())
}
