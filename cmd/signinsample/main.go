package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/signinsample/internal/config"
	"github.com/jask/signinsample/internal/gate"
	"github.com/jask/signinsample/internal/logging"
	"github.com/jask/signinsample/internal/prefs"
	"github.com/jask/signinsample/internal/session"
	"github.com/jask/signinsample/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, logFile, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer logFile.Close()
	slog.SetDefault(logger)

	kv, err := prefs.Open(ctx, cfg.Store, logger)
	if err != nil {
		log.Fatalf("open preferences: %v", err)
	}
	defer kv.Close()

	store := session.New(ctx, kv, logger)
	g := gate.New(store.IsSignedIn(), logger)
	unbind := gate.Bind(g, store)
	defer unbind()

	logger.Info("starting", "backend", cfg.Store.Backend, "screen", g.Current().Route())

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(tui.New(ctx, store, g, logger), opts...)
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
