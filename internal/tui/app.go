package tui

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/signinsample/internal/gate"
	"github.com/jask/signinsample/internal/session"
)

// App renders whichever screen the gate selects and turns key presses into
// sign-in and sign-out actions.
type App struct {
	ctx     context.Context
	session *session.Store
	gate    *gate.Gate
	log     *slog.Logger

	signIn signInForm
	home   homeView
	help   help.Model

	status    string
	statusErr bool
	width     int
	height    int
}

// New wires the app to an already-bound gate.
func New(ctx context.Context, store *session.Store, g *gate.Gate, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	a := &App{
		ctx:     ctx,
		session: store,
		gate:    g,
		log:     logger.With("component", "tui"),
		signIn:  newSignInForm(),
		home:    newHomeView(),
		help:    help.New(),
	}
	g.OnTransition(a.onTransition)
	return a
}

// onTransition discards form state when the sign-in screen is entered so
// nothing typed survives navigation.
func (a *App) onTransition(tr gate.Transition) {
	a.status, a.statusErr = "", false
	if tr.To == gate.SignIn {
		a.signIn = newSignInForm()
		a.status = "Signed out"
		return
	}
	a.status = "Signed in"
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
		return a, nil
	case tea.KeyMsg:
		if m.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		switch a.gate.Current() {
		case gate.Home:
			return a.updateHome(m)
		default:
			return a.updateSignIn(m)
		}
	}

	if a.gate.Current() == gate.SignIn {
		cmd, _ := a.signIn.update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) updateSignIn(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.signIn.keys.Quit) {
		return a, tea.Quit
	}
	cmd, submit := a.signIn.update(msg)
	if !submit {
		return a, cmd
	}
	if err := a.session.SignIn(a.ctx); err != nil {
		a.setError(err)
	}
	return a, nil
}

func (a *App) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.home.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.home.keys.SignOut):
		if err := a.session.SignOut(a.ctx); err != nil {
			a.setError(err)
			return a, nil
		}
		return a, textinput.Blink
	}
	return a, nil
}

func (a *App) setError(err error) {
	a.log.Warn("session action failed", "screen", a.gate.Current().Route(), "err", err)
	a.status = err.Error()
	a.statusErr = true
}

func (a *App) View() string {
	screen := a.gate.Current()
	signedIn := a.session.IsSignedIn()

	// Each screen only draws while the flag agrees with it.
	var body, helpLine string
	switch screen {
	case gate.Home:
		if signedIn {
			body = a.home.view()
		}
		helpLine = a.help.View(a.home.keys)
	default:
		if !signedIn {
			body = a.signIn.view()
		}
		helpLine = a.help.View(a.signIn.keys)
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		headerStyle.Render("signinsample"),
		routeStyle.Render("/"+screen.Route()),
	)

	status := ""
	if a.status != "" {
		if a.statusErr {
			status = statusErrStyle.Render(a.status)
		} else {
			status = statusOKStyle.Render(a.status)
		}
	}
	footer := strings.TrimRight(helpLine+"  "+status, " ")

	if a.width > 0 && a.height > 0 {
		bodyHeight := a.height - lipgloss.Height(header) - lipgloss.Height(footer)
		if bodyHeight < 1 {
			bodyHeight = 1
		}
		body = lipgloss.Place(a.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
