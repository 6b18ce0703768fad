package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liwesley02/order-up/internal/engine"
	"github.com/liwesley02/order-up/internal/feed"
	"github.com/liwesley02/order-up/internal/model"
)

func testModel(t *testing.T, orders []model.Order) Model {
	t.Helper()
	e := engine.New(feed.NewStaticFeed(orders), nil)
	if len(orders) > 0 {
		e.Refresh(orders, time.Now())
	}
	return newModel(context.Background(), e, DefaultConfig())
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestViewCycling(t *testing.T) {
	m := testModel(t, nil)
	assert.Equal(t, ViewBatches, m.view)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	assert.Equal(t, ViewItems, m.view)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(Model)
	assert.Equal(t, ViewBatches, m.view)
}

func TestViewRendersBatches(t *testing.T) {
	orders := []model.Order{
		{
			ID:        "ord-1",
			Number:    "101",
			OrderedAt: time.Now().Add(-2 * time.Minute),
			Items:     []model.Item{{Name: "Pork Bao", Quantity: 2}},
		},
	}
	m := testModel(t, orders)

	out := m.View()
	assert.Contains(t, out, "Batch 1")
	assert.Contains(t, out, "#101")
}

func TestCompleteSelectedBatch(t *testing.T) {
	orders := []model.Order{
		{ID: "ord-1", Number: "101", OrderedAt: time.Now(), Items: []model.Item{{Name: "Pork Bao", Quantity: 1}}},
	}
	m := testModel(t, orders)
	require.Len(t, m.engine.Batches(time.Now()), 1)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	assert.Empty(t, m.engine.Batches(time.Now()))
}

func TestQuitKey(t *testing.T) {
	m := testModel(t, nil)
	next, cmd := m.Update(keyMsg("q"))
	m = next.(Model)
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
}

func TestRefreshError(t *testing.T) {
	m := testModel(t, nil)
	next, _ := m.Update(refreshedMsg{err: assert.AnError})
	m = next.(Model)
	assert.Contains(t, m.View(), assert.AnError.Error())
}
