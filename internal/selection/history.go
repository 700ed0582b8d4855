// Package selection picks the next item to administer, balancing
// information gain, target accuracy and skill exposure.
package selection

import "github.com/LNshuti/adaptest/internal/itembank"

// History tracks what a session has already administered. It is scoped to a
// single session and discarded when the session ends. Exposure counts only
// ever grow within a session.
type History struct {
	seen     map[string]bool
	exposure map[string]int
}

// NewHistory creates an empty session history.
func NewHistory() *History {
	return &History{
		seen:     make(map[string]bool),
		exposure: make(map[string]int),
	}
}

// Seen reports whether an item has already been administered.
func (h *History) Seen(itemID string) bool {
	return h.seen[itemID]
}

// Exposure returns how many times a skill's items have been administered.
func (h *History) Exposure(skillID string) int {
	return h.exposure[skillID]
}

// MarkSeen records an administered item and bumps its primary skill's
// exposure count.
func (h *History) MarkSeen(it itembank.Item) {
	h.seen[it.ID] = true
	if skill := it.PrimarySkill(); skill != "" {
		h.exposure[skill]++
	}
}

// SeenCount returns the number of distinct items administered.
func (h *History) SeenCount() int {
	return len(h.seen)
}
