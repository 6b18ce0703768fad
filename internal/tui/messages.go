package tui

import "time"

// tickMsg drives the periodic feed refresh.
type tickMsg time.Time

// refreshedMsg reports the outcome of one snapshot fetch.
type refreshedMsg struct {
	err error
	at  time.Time
}
