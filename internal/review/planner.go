package review

import (
	"context"
	"fmt"

	"github.com/LNshuti/adaptest/internal/irt"
	"github.com/LNshuti/adaptest/internal/itembank"
	"github.com/LNshuti/adaptest/internal/selection"
	"github.com/LNshuti/adaptest/internal/store"
)

// Planner selects review items for due skills. Ability is re-estimated from
// the learner's stored attempt history, so review items land near the
// learner's actual level rather than the diagnostic-era estimate.
type Planner struct {
	attempts store.AttemptRepo
	prior    irt.Prior
}

// NewPlanner creates a review planner over the stored attempt history.
func NewPlanner(attempts store.AttemptRepo, prior irt.Prior) *Planner {
	return &Planner{attempts: attempts, prior: prior}
}

// NextItem picks the next review item for a skill, or false when the bank
// has no items for it. Callers bound the number of items per skill; the
// selector itself always produces an item from a non-empty pool.
func (p *Planner) NextItem(ctx context.Context, bank *itembank.Bank, hist *selection.History, skillID string, cons selection.Constraints) (itembank.Item, bool, error) {
	pool, err := bank.FetchBySkill(ctx, skillID)
	if err != nil {
		return itembank.Item{}, false, fmt.Errorf("fetch pool for %s: %w", skillID, err)
	}
	if len(pool) == 0 {
		return itembank.Item{}, false, nil
	}

	history, err := p.attempts.BySkill(ctx, skillID)
	if err != nil {
		return itembank.Item{}, false, fmt.Errorf("load attempts for %s: %w", skillID, err)
	}
	theta, _ := irt.EstimateAbility(history, bank.Lookup, p.prior)

	it, ok := selection.NextItem(theta, pool, hist, selection.ModeReview, cons)
	if ok {
		hist.MarkSeen(it)
	}
	return it, ok, nil
}
