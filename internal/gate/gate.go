// Package gate is the two-screen navigation state machine driven by the
// session flag.
package gate

import (
	"log/slog"
	"sync"
)

// Screen is a navigation destination.
type Screen int

const (
	SignIn Screen = iota
	Home
)

// Route returns the route identifier for s.
func (s Screen) Route() string {
	switch s {
	case Home:
		return "home"
	default:
		return "signin"
	}
}

func (s Screen) String() string {
	switch s {
	case Home:
		return "Home"
	default:
		return "SignIn"
	}
}

// ScreenFor maps the session flag to the screen it implies.
func ScreenFor(authenticated bool) Screen {
	if authenticated {
		return Home
	}
	return SignIn
}

// Transition records a screen change.
type Transition struct {
	From Screen
	To   Screen
}

// Source is anything that exposes the session flag and change notifications.
type Source interface {
	IsSignedIn() bool
	Subscribe(fn func(authenticated bool)) func()
}

// Gate holds the current screen.
type Gate struct {
	mu          sync.Mutex
	current     Screen
	transitions int
	listeners   []func(Transition)
	log         *slog.Logger
}

// New returns a gate showing the screen implied by authenticated.
func New(authenticated bool, logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{current: ScreenFor(authenticated), log: logger.With("component", "gate")}
}

// Current returns the displayed screen.
func (g *Gate) Current() Screen {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}

// Transitions returns how many transitions have fired.
func (g *Gate) Transitions() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.transitions
}

// OnTransition registers fn to run after every fired transition.
func (g *Gate) OnTransition(fn func(Transition)) {
	if fn == nil {
		return
	}
	g.mu.Lock()
	g.listeners = append(g.listeners, fn)
	g.mu.Unlock()
}

// Sync moves the gate to the screen implied by authenticated. Nothing fires
// when that screen is already displayed.
func (g *Gate) Sync(authenticated bool) (Transition, bool) {
	g.mu.Lock()
	want := ScreenFor(authenticated)
	if g.current == want {
		g.mu.Unlock()
		return Transition{}, false
	}
	tr := Transition{From: g.current, To: want}
	g.current = want
	g.transitions++
	listeners := append(([]func(Transition))(nil), g.listeners...)
	g.mu.Unlock()

	g.log.Debug("navigate", "from", tr.From.Route(), "to", tr.To.Route())
	for _, fn := range listeners {
		fn(tr)
	}
	return tr, true
}

// Bind syncs g to src now and on every notification src delivers.
func Bind(g *Gate, src Source) (unbind func()) {
	g.Sync(src.IsSignedIn())
	return src.Subscribe(func(authenticated bool) {
		g.Sync(authenticated)
	})
}
