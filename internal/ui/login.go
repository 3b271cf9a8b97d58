package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// loginForm collects the email and password for the auth endpoint.
type loginForm struct {
	email    textinput.Model
	password textinput.Model
	focus    int
	errMsg   string
	theme    Theme
}

func newLoginForm(theme Theme) loginForm {
	email := textinput.New()
	email.Prompt = ""
	email.CharLimit = 120
	email.Focus()

	password := textinput.New()
	password.Prompt = ""
	password.CharLimit = 120
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginForm{email: email, password: password, theme: theme}
}

func (f *loginForm) setTheme(theme Theme) {
	f.theme = theme
}

func (f *loginForm) focusFirst() {
	f.focus = 0
	f.email.Focus()
	f.password.Blur()
	f.errMsg = ""
}

func (f *loginForm) fail(msg string) {
	f.errMsg = msg
}

func (f *loginForm) toggleFocus() {
	if f.focus == 0 {
		f.focus = 1
		f.email.Blur()
		f.password.Focus()
	} else {
		f.focus = 0
		f.password.Blur()
		f.email.Focus()
	}
}

func (f loginForm) credentials() (email, password string) {
	return strings.TrimSpace(f.email.Value()), f.password.Value()
}

// handleKey processes one key press. The returned bool reports that the form
// was submitted.
func (f loginForm) handleKey(msg tea.KeyMsg) (loginForm, tea.Cmd, bool) {
	switch msg.String() {
	case "tab", "shift+tab", "down", "up":
		f.toggleFocus()
		return f, nil, false
	case "enter":
		return f, nil, true
	}
	var cmd tea.Cmd
	if f.focus == 0 {
		f.email, cmd = f.email.Update(msg)
	} else {
		f.password, cmd = f.password.Update(msg)
	}
	return f, cmd, false
}

func (f loginForm) render(width, height int) string {
	s := f.theme.Styles()

	var b strings.Builder
	b.WriteString(s.AccentText.Bold(true).Render("  Log in"))
	b.WriteString("\n\n")

	writeInput := func(label string, in textinput.Model, focused bool) {
		if focused {
			b.WriteString(s.Selected.Render("> "))
			b.WriteString(s.Text.Bold(true).Render(pad(label, 10)))
		} else {
			b.WriteString("  ")
			b.WriteString(s.MutedText.Render(pad(label, 10)))
		}
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	writeInput("Email", f.email, f.focus == 0)
	writeInput("Password", f.password, f.focus == 1)

	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(s.DangerText.Render("  " + f.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.MutedText.Render("  enter to log in, esc to go back"))
	return fillLines(b.String(), height)
}
