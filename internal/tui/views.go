package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/liwesley02/order-up/internal/cli"
)

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	now := time.Now()
	var sb strings.Builder

	sb.WriteString(m.headerView(now))
	sb.WriteString("\n\n")

	switch m.view {
	case ViewBatches:
		sb.WriteString(m.batchesView(now))
	case ViewItems:
		sb.WriteString(cli.RenderBatchedItems(m.engine.BatchedItems()))
	case ViewByCategory:
		sb.WriteString(cli.RenderCategoryGroups(m.engine.ItemsByCategory()))
	case ViewBySize:
		sb.WriteString(cli.RenderSizeGroups(m.engine.ItemsBySize()))
	}

	sb.WriteString("\n")
	sb.WriteString(m.footerView())
	return sb.String()
}

func (m Model) headerView(now time.Time) string {
	title := cli.TitleStyle.Render("Order Up " + cli.BatchIcon + "  " + viewName(m.view))

	status := cli.RenderStats(m.engine.Stats(now), m.engine.LastHourAverage(), m.engine.TodayAverage())
	if m.refreshing {
		status = m.spinner.View() + " " + status
	} else if !m.lastRefresh.IsZero() {
		status += cli.SubtleStyle.Render(fmt.Sprintf("  updated %s", m.lastRefresh.Format("15:04:05")))
	}
	if m.lastError != nil {
		status += "\n" + cli.FormatError(m.lastError.Error())
	}

	return title + "\n" + status
}

func (m Model) batchesView(now time.Time) string {
	batches := m.engine.Batches(now)
	if len(batches) == 0 {
		return cli.SubtleStyle.Render("No active batches.")
	}

	var sb strings.Builder
	for i := range batches {
		rendered := cli.RenderBatch(&batches[i])
		if i == m.selected {
			rendered = cli.BoxStyle.Render(strings.TrimRight(rendered, "\n"))
		}
		sb.WriteString(rendered)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) footerView() string {
	if m.showHelp {
		return cli.SubtleStyle.Render(strings.Join([]string{
			"tab: next view",
			"shift+tab: previous view",
			"↑/k ↓/j: select batch",
			"enter: complete selected batch",
			"r: refresh now",
			"?: close help",
			"q: quit",
		}, "\n"))
	}
	return cli.SubtleStyle.Render("tab: view • enter: complete • r: refresh • ?: help • q: quit")
}

func viewName(v View) string {
	switch v {
	case ViewBatches:
		return "Batches"
	case ViewItems:
		return "Items"
	case ViewByCategory:
		return "By Category"
	case ViewBySize:
		return "By Size"
	default:
		return ""
	}
}
