package tui

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/liwesley02/order-up/internal/engine"
)

// Run starts the dashboard and blocks until the user quits or the
// context is canceled.
func Run(ctx context.Context, e *engine.Engine, cfg Config) error {
	if e == nil {
		return fmt.Errorf("engine is required")
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = DefaultConfig().RefreshInterval
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(newModel(ctx, e, cfg), tea.WithContext(ctx))

	go func() {
		select {
		case <-sigChan:
			program.Quit()
		case <-ctx.Done():
		}
	}()

	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	return nil
}
