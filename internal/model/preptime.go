package model

import "time"

// PrepTimeRecord is one observed order completion, persisted for a
// rolling seven days.
type PrepTimeRecord struct {
	OrderedAt       time.Time `json:"orderedAt"`
	CompletedAt     time.Time `json:"completedAt"`
	OrderID         string    `json:"orderId"`
	PrepTimeMinutes int       `json:"prepTimeMinutes"`
	DayOfWeek       int       `json:"dayOfWeek"`
	HourOfDay       int       `json:"hourOfDay"`
}

// PrepTimeAverage is a windowed average of observed prep times. An
// OrderCount of zero means no estimate is available; callers must never
// treat the zero AverageMinutes as a real estimate.
type PrepTimeAverage struct {
	AverageMinutes float64 `json:"averageMinutes"`
	OrderCount     int     `json:"orderCount"`
}
