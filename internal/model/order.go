// Package model defines the core domain models used throughout the application.
package model

import "time"

// Order represents a single live delivery order from the feed.
// The ID is stable across re-extractions of the same real-world order.
type Order struct {
	OrderedAt      time.Time  `json:"orderedAt"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
	ID             string     `json:"id"`
	Number         string     `json:"number"`
	CustomerName   string     `json:"customerName"`
	Items          []Item     `json:"items"`
	ElapsedMinutes int        `json:"elapsedMinutes"`
	Completed      bool       `json:"completed"`
}

// Item is a single line item on an order as extracted from the feed.
type Item struct {
	Name            string          `json:"name"`
	BaseName        string          `json:"baseName,omitempty"`
	Size            string          `json:"size,omitempty"`
	Modifiers       []string        `json:"modifiers,omitempty"`
	ModifierDetails ModifierDetails `json:"modifierDetails,omitempty"`
	CategoryInfo    *CategoryInfo   `json:"categoryInfo,omitempty"`
	Price           float64         `json:"price"`
	Quantity        int             `json:"quantity"`
	IsRiceBowl      bool            `json:"isRiceBowl,omitempty"`
	IsUrbanBowl     bool            `json:"isUrbanBowl,omitempty"`
}

// ModifierDetails carries the structured modifiers the extractor was able
// to recognize on an item.
type ModifierDetails struct {
	Sauce            string `json:"sauce,omitempty"`
	RiceSubstitution string `json:"riceSubstitution,omitempty"`
	DumplingChoice   string `json:"dumplingChoice,omitempty"`
}

// EffectiveQuantity returns the item quantity, treating malformed
// quantities as a single unit rather than failing.
func (i *Item) EffectiveQuantity() int {
	if i.Quantity < 1 {
		return 1
	}
	return i.Quantity
}

// Clone returns a deep copy of the order. The engine owns its structures
// exclusively, so feed payloads are copied on the way in.
func (o *Order) Clone() Order {
	clone := *o
	if o.CompletedAt != nil {
		t := *o.CompletedAt
		clone.CompletedAt = &t
	}
	clone.Items = make([]Item, len(o.Items))
	for i, item := range o.Items {
		clone.Items[i] = item.Clone()
	}
	return clone
}

// Clone returns a deep copy of the item.
func (i *Item) Clone() Item {
	clone := *i
	if i.Modifiers != nil {
		clone.Modifiers = make([]string, len(i.Modifiers))
		copy(clone.Modifiers, i.Modifiers)
	}
	if i.CategoryInfo != nil {
		ci := i.CategoryInfo.Clone()
		clone.CategoryInfo = &ci
	}
	return clone
}
