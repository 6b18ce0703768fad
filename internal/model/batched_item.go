package model

import "time"

// OrderContribution records one order's share of a batched item.
type OrderContribution struct {
	Timestamp time.Time `json:"timestamp"`
	OrderID   string    `json:"orderId"`
	Quantity  int       `json:"quantity"`
	IsNew     bool      `json:"isNew"`
}

// BatchedItem is the cross-order aggregation of one canonical item key.
// It is created on the first occurrence of the key, accumulates as more
// orders arrive, and is only removed by an explicit removal.
type BatchedItem struct {
	Key           string              `json:"key"`
	Name          string              `json:"name"`
	BaseName      string              `json:"baseName,omitempty"`
	Size          string              `json:"size"`
	CategoryInfo  *CategoryInfo       `json:"categoryInfo,omitempty"`
	Modifiers     []string            `json:"modifiers,omitempty"`
	Orders        []OrderContribution `json:"orders"`
	TotalQuantity int                 `json:"totalQuantity"`
}

// Contribution returns the contribution for an order, or nil.
func (b *BatchedItem) Contribution(orderID string) *OrderContribution {
	for i := range b.Orders {
		if b.Orders[i].OrderID == orderID {
			return &b.Orders[i]
		}
	}
	return nil
}

// CategoryGroup is a display grouping of batched items under one
// top-level category.
type CategoryGroup struct {
	Category      TopCategory   `json:"category"`
	CategoryName  string        `json:"categoryName"`
	Items         []BatchedItem `json:"items"`
	TotalQuantity int           `json:"totalQuantity"`
	DisplayOrder  int           `json:"displayOrder"`
}

// SizeGroup is a display grouping of batched items under one size.
type SizeGroup struct {
	Size          string        `json:"size"`
	Items         []BatchedItem `json:"items"`
	TotalQuantity int           `json:"totalQuantity"`
}
