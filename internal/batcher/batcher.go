// Package batcher aggregates identical line items across all known
// orders into kitchen-ready batched items.
package batcher

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/liwesley02/order-up/internal/category"
	"github.com/liwesley02/order-up/internal/match"
	"github.com/liwesley02/order-up/internal/model"
)

// Batcher deduplicates orders by id and accumulates their items into
// BatchedItems keyed by the matcher's canonical key. AddOrder is
// idempotent: the upstream feed may re-deliver the same order on every
// poll.
type Batcher struct {
	matcher           *match.Matcher
	categories        *category.Manager
	items             map[string]*model.BatchedItem
	processedOrderIDs map[string]bool
	keyOrder          []string
}

// New creates an order batcher.
func New(matcher *match.Matcher, categories *category.Manager) *Batcher {
	return &Batcher{
		matcher:           matcher,
		categories:        categories,
		items:             make(map[string]*model.BatchedItem),
		processedOrderIDs: make(map[string]bool),
	}
}

// AddOrder folds a new order into the aggregation. Re-delivery of an
// already processed order id is a logged no-op; the return value reports
// whether the order was new.
func (b *Batcher) AddOrder(order model.Order) bool {
	if order.ID == "" {
		slog.Warn("ignoring order without id", "number", order.Number)
		return false
	}
	if b.processedOrderIDs[order.ID] {
		slog.Debug("order already processed", "order_id", order.ID)
		return false
	}
	b.processedOrderIDs[order.ID] = true

	for i := range order.Items {
		b.addItem(order, &order.Items[i])
	}
	return true
}

// addItem accumulates one item under its canonical key, creating the
// BatchedItem on first occurrence.
func (b *Batcher) addItem(order model.Order, item *model.Item) {
	info := b.categoryInfo(item)
	key := b.keyFor(item, info)

	batched, exists := b.items[key]
	if !exists {
		batched = &model.BatchedItem{
			Key:      key,
			Name:     item.Name,
			BaseName: item.BaseName,
			Size:     b.displaySize(item),
		}
		ci := info.Clone()
		batched.CategoryInfo = &ci
		if len(item.Modifiers) > 0 {
			batched.Modifiers = make([]string, len(item.Modifiers))
			copy(batched.Modifiers, item.Modifiers)
		}
		b.items[key] = batched
		b.keyOrder = append(b.keyOrder, key)
	}

	quantity := item.EffectiveQuantity()
	batched.Orders = append(batched.Orders, model.OrderContribution{
		OrderID:   order.ID,
		Quantity:  quantity,
		Timestamp: order.OrderedAt,
		IsNew:     true,
	})
	batched.TotalQuantity += quantity
}

// categoryInfo returns the item's classification, computing it when the
// extractor did not supply one.
func (b *Batcher) categoryInfo(item *model.Item) model.CategoryInfo {
	if item.CategoryInfo != nil {
		return *item.CategoryInfo
	}
	return b.categories.Categorize(item.Name, item.Size, category.ItemData{
		Sauce:     item.ModifierDetails.Sauce,
		Modifiers: item.Modifiers,
	})
}

// keyFor builds the canonical aggregation key for an item.
func (b *Batcher) keyFor(item *model.Item, info model.CategoryInfo) string {
	return b.matcher.ItemKey(item, string(info.TopCategory))
}

func (b *Batcher) displaySize(item *model.Item) string {
	if size := strings.TrimSpace(item.Size); size != "" {
		return size
	}
	if size := b.matcher.ExtractSize(item.Name); size != "" {
		return size
	}
	return match.NoSize
}

// BatchedItems returns all batched items sorted by category display
// order, then total quantity descending.
func (b *Batcher) BatchedItems() []model.BatchedItem {
	items := make([]model.BatchedItem, 0, len(b.items))
	for _, key := range b.keyOrder {
		if batched, ok := b.items[key]; ok {
			items = append(items, cloneBatchedItem(batched))
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		oi, oj := displayOrder(items[i].CategoryInfo), displayOrder(items[j].CategoryInfo)
		if oi != oj {
			return oi < oj
		}
		return items[i].TotalQuantity > items[j].TotalQuantity
	})
	return items
}

// ItemsByCategory reshapes the flat aggregation into per-category groups
// for display. Items inside a group sort by quantity descending.
func (b *Batcher) ItemsByCategory() []model.CategoryGroup {
	groups := make(map[model.TopCategory]*model.CategoryGroup)

	for _, item := range b.BatchedItems() {
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
		group.Items = append(group.Items, item)
		group.TotalQuantity += item.TotalQuantity
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
	return result
}

// ItemsBySize reshapes the flat aggregation into per-size groups, sizes
// sorted alphabetically with no-size last, items by quantity descending.
func (b *Batcher) ItemsBySize() []model.SizeGroup {
	groups := make(map[string]*model.SizeGroup)

	for _, item := range b.BatchedItems() {
		size := item.Size
		if size == "" {
			size = match.NoSize
		}
		group, ok := groups[size]
		if !ok {
			group = &model.SizeGroup{Size: size}
			groups[size] = group
		}
		group.Items = append(group.Items, item)
		group.TotalQuantity += item.TotalQuantity
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
	return result
}

// RemoveItem deletes a batched item entirely.
func (b *Batcher) RemoveItem(key string) bool {
	if _, ok := b.items[key]; !ok {
		return false
	}
	delete(b.items, key)
	b.dropKey(key)
	return true
}

// UpdateQuantity sets one order's contribution to a batched item.
// Setting it to zero removes that order's contribution, and removes the
// batched item once no orders remain.
func (b *Batcher) UpdateQuantity(key, orderID string, newQuantity int) bool {
	batched, ok := b.items[key]
	if !ok {
		slog.Warn("quantity update for unknown item", "key", key)
		return false
	}

	for i := range batched.Orders {
		if batched.Orders[i].OrderID != orderID {
			continue
		}

		if newQuantity <= 0 {
			batched.TotalQuantity -= batched.Orders[i].Quantity
			batched.Orders = append(batched.Orders[:i], batched.Orders[i+1:]...)
			if len(batched.Orders) == 0 {
				delete(b.items, key)
				b.dropKey(key)
			}
			return true
		}

		batched.TotalQuantity += newQuantity - batched.Orders[i].Quantity
		batched.Orders[i].Quantity = newQuantity
		return true
	}

	slog.Warn("quantity update for unknown order", "key", key, "order_id", orderID)
	return false
}

// ProcessedOrderCount reports how many distinct orders have been folded
// into the aggregation.
func (b *Batcher) ProcessedOrderCount() int {
	return len(b.processedOrderIDs)
}

func (b *Batcher) dropKey(key string) {
	for i, k := range b.keyOrder {
		if k == key {
			b.keyOrder = append(b.keyOrder[:i], b.keyOrder[i+1:]...)
			return
		}
	}
}

func cloneBatchedItem(item *model.BatchedItem) model.BatchedItem {
	clone := *item
	if item.CategoryInfo != nil {
		ci := item.CategoryInfo.Clone()
		clone.CategoryInfo = &ci
	}
	if item.Modifiers != nil {
		clone.Modifiers = make([]string, len(item.Modifiers))
		copy(clone.Modifiers, item.Modifiers)
	}
	clone.Orders = make([]model.OrderContribution, len(item.Orders))
	copy(clone.Orders, item.Orders)
	return clone
}

func displayOrder(info *model.CategoryInfo) int {
	if info == nil {
		return topDisplayOrder(model.TopCategoryOther)
	}
	return topDisplayOrder(info.TopCategory)
}

func topDisplayOrder(top model.TopCategory) int {
	for _, def := range model.TopCategories {
		if def.ID == top {
			return def.DisplayOrder
		}
	}
	return len(model.TopCategories) + 1
}
