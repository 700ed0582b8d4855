// Package itembank defines test items and access to the item pool.
package itembank

import (
	"fmt"
	"strings"
	"time"

	"github.com/LNshuti/adaptest/internal/curriculum"
)

// Item is a single test item with 3PL parameters. Items are supplied by the
// bank and never mutated by the engine.
type Item struct {
	ID             string
	Discrimination float64 // a, must be > 0
	Difficulty     float64 // b
	Guessing       float64 // c, in [0, 1)
	Skills         []string
	ExpectedTime   time.Duration
}

// PrimarySkill returns the item's first skill tag, used for exposure
// accounting. Empty string if the item carries no tags.
func (it Item) PrimarySkill() string {
	if len(it.Skills) == 0 {
		return ""
	}
	return it.Skills[0]
}

// Validate checks the item's parameters and skill tags.
func (it Item) Validate() error {
	var errs []string

	if it.ID == "" {
		errs = append(errs, "empty ID")
	}
	if it.Discrimination <= 0 {
		errs = append(errs, fmt.Sprintf("discrimination must be > 0, got %g", it.Discrimination))
	}
	if it.Guessing < 0 || it.Guessing >= 1 {
		errs = append(errs, fmt.Sprintf("guessing must be in [0, 1), got %g", it.Guessing))
	}
	if len(it.Skills) == 0 {
		errs = append(errs, "at least one skill tag required")
	}
	for _, tag := range it.Skills {
		if !curriculum.IsKnown(tag) {
			errs = append(errs, fmt.Sprintf("unknown skill tag %q", tag))
		}
	}
	if it.ExpectedTime < 0 {
		errs = append(errs, fmt.Sprintf("expected time must be >= 0, got %s", it.ExpectedTime))
	}

	if len(errs) > 0 {
		return fmt.Errorf("item %q: %s", it.ID, strings.Join(errs, "; "))
	}
	return nil
}
