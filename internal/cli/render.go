package cli

import (
	"fmt"
	"strings"

	"github.com/liwesley02/order-up/internal/match"
	"github.com/liwesley02/order-up/internal/model"
)

// RenderBatchedItems renders the cross-order item aggregation as a flat
// list, highest quantities first within each category.
func RenderBatchedItems(items []model.BatchedItem) string {
	if len(items) == 0 {
		return SubtleStyle.Render("No items waiting.")
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("Items to Make"))
	sb.WriteString("\n")
	for i := range items {
		sb.WriteString(renderItemLine(&items[i]))
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderItemLine(item *model.BatchedItem) string {
	qty := BoldStyle.Render(fmt.Sprintf("%3d×", item.TotalQuantity))
	line := fmt.Sprintf("%s %s", qty, item.Name)
	if item.CategoryInfo != nil && item.CategoryInfo.DisplayCategory != "" {
		line += SubtleStyle.Render("  [" + item.CategoryInfo.DisplayCategory + "]")
	}
	if len(item.Orders) > 1 {
		line += SubtleStyle.Render(fmt.Sprintf("  (%d orders)", len(item.Orders)))
	}
	return line
}

// RenderCategoryGroups renders items grouped by top-level category.
func RenderCategoryGroups(groups []model.CategoryGroup) string {
	if len(groups) == 0 {
		return SubtleStyle.Render("No items waiting.")
	}

	var sb strings.Builder
	for gi := range groups {
		group := &groups[gi]
		header := fmt.Sprintf("%s (%d)", group.CategoryName, group.TotalQuantity)
		sb.WriteString(TableHeaderStyle.Render(header))
		sb.WriteString("\n")
		for i := range group.Items {
			sb.WriteString("  ")
			sb.WriteString(renderItemLine(&group.Items[i]))
			sb.WriteString("\n")
		}
		if gi < len(groups)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// RenderSizeGroups renders items grouped by size.
func RenderSizeGroups(groups []model.SizeGroup) string {
	if len(groups) == 0 {
		return SubtleStyle.Render("No items waiting.")
	}

	var sb strings.Builder
	for gi := range groups {
		group := &groups[gi]
		header := fmt.Sprintf("%s (%d)", sizeLabel(group.Size), group.TotalQuantity)
		sb.WriteString(TableHeaderStyle.Render(header))
		sb.WriteString("\n")
		for i := range group.Items {
			sb.WriteString("  ")
			sb.WriteString(renderItemLine(&group.Items[i]))
			sb.WriteString("\n")
		}
		if gi < len(groups)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func sizeLabel(size string) string {
	if size == match.NoSize {
		return "No Size"
	}
	words := strings.Fields(size)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// RenderBatches renders every live batch with its urgency and orders.
func RenderBatches(batches []model.BatchView) string {
	if len(batches) == 0 {
		return SubtleStyle.Render("No active batches.")
	}

	var sb strings.Builder
	for i := range batches {
		sb.WriteString(RenderBatch(&batches[i]))
		if i < len(batches)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// RenderBatch renders a single batch as a bordered box.
func RenderBatch(b *model.BatchView) string {
	style := UrgencyStyle(b.Urgency)

	header := fmt.Sprintf("%s Batch %d  %d/%d orders  %s",
		BatchIcon, b.Number, len(b.Orders), b.Capacity, strings.ToUpper(string(b.Urgency)))
	if b.Locked {
		header += "  [locked]"
	}

	newOrders := make(map[string]bool, len(b.NewOrderIDs))
	for _, id := range b.NewOrderIDs {
		newOrders[id] = true
	}

	var sb strings.Builder
	sb.WriteString(style.Render(header))
	sb.WriteString("\n")
	for i := range b.Orders {
		rec := &b.Orders[i]
		line := fmt.Sprintf("  #%s %s  %dm", rec.Order.Number, rec.Order.CustomerName, rec.Order.ElapsedMinutes)
		switch {
		case rec.Completed:
			line = SubtleStyle.Render(line + "  done")
		case newOrders[rec.Order.ID]:
			line = NewOrderStyle.Render(line + "  " + NewIcon)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	for i := range b.Items {
		item := &b.Items[i]
		sb.WriteString(SubtleStyle.Render(fmt.Sprintf("    %d× %s", item.Quantity, item.Name)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderStats renders the one-line dashboard summary.
func RenderStats(stats model.BatchStats, lastHour, today model.PrepTimeAverage) string {
	parts := []string{
		fmt.Sprintf("batches %d (%d active, %d locked)", stats.TotalBatches, stats.ActiveBatches, stats.LockedBatches),
		fmt.Sprintf("orders %d (%d done)", stats.TotalOrders, stats.CompletedOrders),
	}
	if stats.UrgentBatches > 0 {
		parts = append(parts, ErrorStyle.Render(fmt.Sprintf("%d urgent", stats.UrgentBatches)))
	}
	if stats.WarningBatches > 0 {
		parts = append(parts, WarningStyle.Render(fmt.Sprintf("%d warning", stats.WarningBatches)))
	}
	parts = append(parts, ClockIcon+" "+RenderPrepAverage(lastHour, today))
	return strings.Join(parts, "  |  ")
}

// RenderPrepAverage renders the best available prep-time estimate,
// preferring the trailing hour over the whole day.
func RenderPrepAverage(lastHour, today model.PrepTimeAverage) string {
	switch {
	case lastHour.OrderCount > 0:
		return fmt.Sprintf("avg %.1fm (last hour, %d orders)", lastHour.AverageMinutes, lastHour.OrderCount)
	case today.OrderCount > 0:
		return fmt.Sprintf("avg %.1fm (today, %d orders)", today.AverageMinutes, today.OrderCount)
	default:
		return "no prep-time data"
	}
}
