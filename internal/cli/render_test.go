package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/liwesley02/order-up/internal/model"
)

func TestRenderBatchedItems(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		out := RenderBatchedItems(nil)
		assert.Contains(t, out, "No items waiting")
	})

	t.Run("single item with orders", func(t *testing.T) {
		items := []model.BatchedItem{
			{
				Key:           "small|riceBowls|chicken rice bowl|",
				Name:          "Chicken Rice Bowl (Small)",
				TotalQuantity: 3,
				Orders: []model.OrderContribution{
					{OrderID: "ord-1", Quantity: 2},
					{OrderID: "ord-2", Quantity: 1},
				},
				CategoryInfo: &model.CategoryInfo{DisplayCategory: "Rice Bowls > Grilled Chicken"},
			},
		}
		out := RenderBatchedItems(items)
		assert.Contains(t, out, "Chicken Rice Bowl (Small)")
		assert.Contains(t, out, "3×")
		assert.Contains(t, out, "2 orders")
		assert.Contains(t, out, "Rice Bowls > Grilled Chicken")
	})
}

func TestRenderBatch(t *testing.T) {
	b := model.BatchView{
		Number:      2,
		Capacity:    5,
		Urgency:     model.UrgencyWarning,
		Locked:      true,
		NewOrderIDs: []string{"ord-2"},
		Orders: []model.BatchOrder{
			{Order: model.Order{ID: "ord-1", Number: "101", CustomerName: "Dana", ElapsedMinutes: 9}},
			{Order: model.Order{ID: "ord-2", Number: "102", CustomerName: "Lee", ElapsedMinutes: 1}},
		},
		Items: []model.BatchItem{
			{Name: "Pork Bao", Quantity: 4},
		},
	}

	out := RenderBatch(&b)
	assert.Contains(t, out, "Batch 2")
	assert.Contains(t, out, "2/5 orders")
	assert.Contains(t, out, "WARNING")
	assert.Contains(t, out, "[locked]")
	assert.Contains(t, out, "#101 Dana")
	assert.Contains(t, out, "4× Pork Bao")
}

func TestRenderPrepAverage(t *testing.T) {
	tests := []struct {
		name     string
		want     string
		lastHour model.PrepTimeAverage
		today    model.PrepTimeAverage
	}{
		{
			name:     "last hour preferred",
			lastHour: model.PrepTimeAverage{AverageMinutes: 11.5, OrderCount: 4},
			today:    model.PrepTimeAverage{AverageMinutes: 14.0, OrderCount: 20},
			want:     "avg 11.5m (last hour, 4 orders)",
		},
		{
			name:  "falls back to today",
			today: model.PrepTimeAverage{AverageMinutes: 14.0, OrderCount: 20},
			want:  "avg 14.0m (today, 20 orders)",
		},
		{
			name: "no data is not a zero-minute estimate",
			want: "no prep-time data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderPrepAverage(tt.lastHour, tt.today))
		})
	}
}

func TestSizeLabel(t *testing.T) {
	assert.Equal(t, "No Size", sizeLabel("no-size"))
	assert.Equal(t, "Extra Large", sizeLabel("extra large"))
	assert.Equal(t, "Small", sizeLabel("small"))
}
