package batch

import (
	"fmt"
	"sort"
	"time"

	"github.com/liwesley02/order-up/internal/match"
	"github.com/liwesley02/order-up/internal/model"
)

// Batches returns read-only snapshots of all non-completed batches in
// creation order, with urgency scored as of now. Nothing in the returned
// views aliases internal state.
func (m *Manager) Batches(now time.Time) []model.BatchView {
	views := make([]model.BatchView, 0, len(m.batches))
	for _, b := range m.batches {
		if b.completed {
			continue
		}
		views = append(views, m.viewOf(b, now))
	}
	return views
}

// BatchCount reports how many batches exist, completed ones included.
func (m *Manager) BatchCount() int {
	return len(m.batches)
}

// BatchUrgency scores one batch by its number as of now.
func (m *Manager) BatchUrgency(number int, now time.Time) (model.Urgency, error) {
	for _, b := range m.batches {
		if b.number == number {
			return m.urgency(b, now), nil
		}
	}
	return model.UrgencyNormal, fmt.Errorf("no batch numbered %d", number)
}

func (m *Manager) viewOf(b *record, now time.Time) model.BatchView {
	view := model.BatchView{
		ID:        b.id,
		Number:    b.number,
		Capacity:  b.capacity,
		CreatedAt: b.createdAt,
		Locked:    b.locked,
		State:     b.state(),
		Urgency:   m.urgency(b, now),
	}

	view.Orders = make([]model.BatchOrder, 0, len(b.orders))
	for _, orderID := range b.orderIDs {
		if rec, ok := b.orders[orderID]; ok {
			clone := *rec
			clone.Order = rec.Order.Clone()
			if rec.CompletedAt != nil {
				t := *rec.CompletedAt
				clone.CompletedAt = &t
			}
			view.Orders = append(view.Orders, clone)
		}
	}

	view.Items = make([]model.BatchItem, 0, len(b.items))
	for _, key := range b.itemKeys {
		if item, ok := b.items[key]; ok {
			view.Items = append(view.Items, cloneBatchItem(item))
		}
	}

	if len(b.newOrderIDs) > 0 {
		view.NewOrderIDs = make([]string, 0, len(b.newOrderIDs))
		for orderID := range b.newOrderIDs {
			view.NewOrderIDs = append(view.NewOrderIDs, orderID)
		}
		sort.Strings(view.NewOrderIDs)
	}

	return view
}

func (b *record) state() model.BatchState {
	switch {
	case b.completed:
		return model.BatchStateCompleted
	case b.locked:
		return model.BatchStateLocked
	default:
		return model.BatchStateActive
	}
}

// BatchBySize returns one batch's items grouped by size. The index is
// zero-based over non-completed batches.
func (m *Manager) BatchBySize(index int, now time.Time) ([]model.SizeGroup, error) {
	view, err := m.batchAt(index, now)
	if err != nil {
		return nil, err
	}

	groups := make(map[string]*model.SizeGroup)
	for _, item := range view.Items {
		size := item.Size
		if size == "" {
			size = match.NoSize
		}
		group, ok := groups[size]
		if !ok {
			group = &model.SizeGroup{Size: size}
			groups[size] = group
		}
		group.Items = append(group.Items, batchItemAsBatched(item))
		group.TotalQuantity += item.Quantity
	}

	result := make([]model.SizeGroup, 0, len(groups))
	for _, group := range groups {
		sort.SliceStable(group.Items, func(i, j int) bool {
			return group.Items[i].TotalQuantity > group.Items[j].TotalQuantity
		})
		result = append(result, *group)
	}
	sort.Slice(result, func(i, j int) bool {
		if (result[i].Size == match.NoSize) != (result[j].Size == match.NoSize) {
			return result[j].Size == match.NoSize
		}
		return result[i].Size < result[j].Size
	})
	return result, nil
}

// BatchByCategory returns one batch's items grouped by top category.
func (m *Manager) BatchByCategory(index int, now time.Time) ([]model.CategoryGroup, error) {
	view, err := m.batchAt(index, now)
	if err != nil {
		return nil, err
	}

	groups := make(map[model.TopCategory]*model.CategoryGroup)
	for _, item := range view.Items {
		top := model.TopCategoryOther
		if item.CategoryInfo != nil {
			top = item.CategoryInfo.TopCategory
		}
		group, ok := groups[top]
		if !ok {
			group = &model.CategoryGroup{
				Category:     top,
				CategoryName: model.TopCategoryName(top),
				DisplayOrder: topDisplayOrder(top),
			}
			groups[top] = group
		}
		group.Items = append(group.Items, batchItemAsBatched(item))
		group.TotalQuantity += item.Quantity
	}

	result := make([]model.CategoryGroup, 0, len(groups))
	for _, group := range groups {
		sort.SliceStable(group.Items, func(i, j int) bool {
			return group.Items[i].TotalQuantity > group.Items[j].TotalQuantity
		})
		result = append(result, *group)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].DisplayOrder < result[j].DisplayOrder
	})
	return result, nil
}

func (m *Manager) batchAt(index int, now time.Time) (model.BatchView, error) {
	views := m.Batches(now)
	if index < 0 || index >= len(views) {
		return model.BatchView{}, fmt.Errorf("batch index %d out of range (have %d)", index, len(views))
	}
	return views[index], nil
}

// Stats summarizes all batches for the dashboard.
func (m *Manager) Stats(now time.Time) model.BatchStats {
	stats := model.BatchStats{}
	for _, b := range m.batches {
		if b.completed {
			continue
		}
		stats.TotalBatches++
		if b.locked {
			stats.LockedBatches++
		} else {
			stats.ActiveBatches++
		}
		for _, rec := range b.orders {
			stats.TotalOrders++
			if rec.Completed {
				stats.CompletedOrders++
			}
		}
		switch m.urgency(b, now) {
		case model.UrgencyUrgent:
			stats.UrgentBatches++
		case model.UrgencyWarning:
			stats.WarningBatches++
		case model.UrgencyNormal:
		}
	}
	return stats
}

func cloneBatchItem(item *model.BatchItem) model.BatchItem {
	clone := *item
	if item.CategoryInfo != nil {
		ci := item.CategoryInfo.Clone()
		clone.CategoryInfo = &ci
	}
	if item.Modifiers != nil {
		clone.Modifiers = make([]string, len(item.Modifiers))
		copy(clone.Modifiers, item.Modifiers)
	}
	if item.OrderIDs != nil {
		clone.OrderIDs = make([]string, len(item.OrderIDs))
		copy(clone.OrderIDs, item.OrderIDs)
	}
	return clone
}

// batchItemAsBatched adapts a per-batch item to the shared group shape.
func batchItemAsBatched(item model.BatchItem) model.BatchedItem {
	return model.BatchedItem{
		Key:           item.Key,
		Name:          item.Name,
		BaseName:      item.BaseName,
		Size:          item.Size,
		CategoryInfo:  item.CategoryInfo,
		Modifiers:     item.Modifiers,
		TotalQuantity: item.Quantity,
	}
}

// topDisplayOrder returns the configured display position of a top
// category.
func topDisplayOrder(top model.TopCategory) int {
	for _, def := range model.TopCategories {
		if def.ID == top {
			return def.DisplayOrder
		}
	}
	return len(model.TopCategories) + 1
}
