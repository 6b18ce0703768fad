// Package tui implements the live kitchen dashboard built on bubbletea.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/liwesley02/order-up/internal/engine"
)

// View represents the current view mode.
type View int

// Dashboard views, cycled with tab.
const (
	ViewBatches View = iota
	ViewItems
	ViewByCategory
	ViewBySize
	viewCount
)

// Config holds configuration options for the dashboard.
type Config struct {
	// RefreshInterval is how often the feed is polled.
	RefreshInterval time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{RefreshInterval: 5 * time.Second}
}

// Model holds the dashboard state.
type Model struct {
	ctx         context.Context
	engine      *engine.Engine
	lastError   error
	lastRefresh time.Time
	spinner     spinner.Model
	keymap      KeyMap
	cfg         Config
	view        View
	selected    int
	width       int
	height      int
	refreshing  bool
	showHelp    bool
	quitting    bool
}

// newModel creates a dashboard model bound to an engine.
func newModel(ctx context.Context, e *engine.Engine, cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		ctx:     ctx,
		engine:  e,
		spinner: sp,
		keymap:  DefaultKeyMap(),
		cfg:     cfg,
		view:    ViewBatches,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.spinner.Tick,
		m.refresh(),
		m.tick(),
	)
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.RefreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) refresh() tea.Cmd {
	e := m.engine
	ctx := m.ctx
	return func() tea.Msg {
		err := e.Process(ctx)
		e.Cleanup(time.Now())
		return refreshedMsg{err: err, at: time.Now()}
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.refreshing = true
		return m, tea.Batch(m.refresh(), m.tick())

	case refreshedMsg:
		m.refreshing = false
		m.lastError = msg.err
		if msg.err == nil {
			m.lastRefresh = msg.at
		}
		m.clampSelection()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.ToggleHelp):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keymap.NextView):
		m.view = (m.view + 1) % viewCount
		m.selected = 0
		return m, nil

	case key.Matches(msg, m.keymap.PrevView):
		m.view = (m.view + viewCount - 1) % viewCount
		m.selected = 0
		return m, nil

	case key.Matches(msg, m.keymap.Refresh):
		m.refreshing = true
		return m, m.refresh()

	case key.Matches(msg, m.keymap.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keymap.Down):
		m.selected++
		m.clampSelection()
		return m, nil

	case key.Matches(msg, m.keymap.Complete):
		if m.view == ViewBatches {
			batches := m.engine.Batches(time.Now())
			if m.selected < len(batches) {
				m.engine.CompleteBatch(batches[m.selected].Number)
				m.clampSelection()
			}
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) clampSelection() {
	if m.view != ViewBatches {
		return
	}
	n := len(m.engine.Batches(time.Now()))
	if n == 0 {
		m.selected = 0
	} else if m.selected >= n {
		m.selected = n - 1
	}
}
