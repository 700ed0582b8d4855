package diagnostic

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/LNshuti/adaptest/internal/attempt"
	"github.com/LNshuti/adaptest/internal/irt"
	"github.com/LNshuti/adaptest/internal/itembank"
	"github.com/LNshuti/adaptest/internal/selection"
)

// Per-skill completion predicate defaults: a skill is done once its ability
// is pinned down (SE below threshold) or its item budget is spent, whichever
// comes first. The budget bounds the whole diagnostic at skills x MaxItemsPerSkill
// administered items.
const (
	DefaultSEThreshold      = 0.3
	DefaultMaxItemsPerSkill = 5
)

// Session is a stateful diagnostic run over a set of skills. A Session is
// owned by one diagnostic; its methods are safe for concurrent use, but the
// select/answer loop is inherently sequential per session.
type Session struct {
	mu       sync.Mutex
	progress map[string]*Progress
	order    []string
	history  *selection.History
	started  time.Time

	seThreshold      float64
	maxItemsPerSkill int
	prior            irt.Prior
	logger           *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithCompletion overrides the per-skill completion thresholds.
func WithCompletion(seThreshold float64, maxItemsPerSkill int) Option {
	return func(s *Session) {
		if seThreshold > 0 {
			s.seThreshold = seThreshold
		}
		if maxItemsPerSkill > 0 {
			s.maxItemsPerSkill = maxItemsPerSkill
		}
	}
}

// WithPrior overrides the ability prior used for per-skill estimation.
func WithPrior(p irt.Prior) Option {
	return func(s *Session) { s.prior = p }
}

// WithLogger attaches a logger for step decisions.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// NewSession starts a diagnostic over the given skills, each seeded at
// theta=0, SE=1.
func NewSession(skillIDs []string, opts ...Option) *Session {
	s := &Session{
		progress:         make(map[string]*Progress, len(skillIDs)),
		order:            make([]string, 0, len(skillIDs)),
		history:          selection.NewHistory(),
		started:          time.Now(),
		seThreshold:      DefaultSEThreshold,
		maxItemsPerSkill: DefaultMaxItemsPerSkill,
		prior:            irt.DefaultPrior(),
		logger:           zap.NewNop(),
	}
	for _, id := range skillIDs {
		if _, dup := s.progress[id]; dup {
			continue
		}
		s.progress[id] = newProgress(id)
		s.order = append(s.order, id)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NextItem selects the next item to administer: the incomplete skill with
// the highest SE is probed first (greedy uncertainty sampling), with item
// selection in assessment mode over that skill's pool. Skills whose pool
// comes back empty are marked complete so the diagnostic always terminates.
// Returns false when every skill is complete.
func (s *Session) NextItem(ctx context.Context, bank itembank.Fetcher) (itembank.Item, bool, error) {
	for {
		skillID, ok := s.mostUncertainSkill()
		if !ok {
			return itembank.Item{}, false, nil
		}

		pool, err := bank.FetchBySkill(ctx, skillID)
		if err != nil {
			return itembank.Item{}, false, err
		}
		if len(pool) == 0 {
			s.logger.Warn("no items for skill, marking complete",
				zap.String("skill", skillID))
			s.markComplete(skillID)
			continue
		}

		s.mu.Lock()
		theta := s.progress[skillID].Theta
		cons := selection.Constraints{MaxPerSkill: s.maxItemsPerSkill, MinPerSkill: 1}
		it, found := selection.NextItem(theta, pool, s.history, selection.ModeAssessment, cons)
		if found {
			s.history.MarkSeen(it)
		}
		s.mu.Unlock()
		if !found {
			// Unreachable with a non-empty pool; treat as exhausted.
			s.markComplete(skillID)
			continue
		}

		s.logger.Debug("selected diagnostic item",
			zap.String("skill", skillID),
			zap.String("item", it.ID),
			zap.Float64("theta", theta))
		return it, true, nil
	}
}

// ProcessAnswer records a graded attempt against every skill tag the item
// carries and refreshes each affected skill's ability estimate from that
// skill's attempt history.
func (s *Session) ProcessAnswer(it itembank.Item, att attempt.Attempt, lookup irt.ItemLookup) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tag := range it.Skills {
		p, ok := s.progress[tag]
		if !ok {
			continue // item tagged with a skill outside this diagnostic
		}
		p.Attempts = append(p.Attempts, att)
		p.Theta, p.SE = irt.EstimateAbility(p.Attempts, lookup, s.prior)
		p.Complete = p.SE < s.seThreshold || len(p.Attempts) >= s.maxItemsPerSkill

		s.logger.Debug("updated skill estimate",
			zap.String("skill", tag),
			zap.Float64("theta", p.Theta),
			zap.Float64("se", p.SE),
			zap.Int("attempts", len(p.Attempts)),
			zap.Bool("complete", p.Complete))
	}
}

// IsComplete reports whether every skill has met its completion predicate.
func (s *Session) IsComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.progress {
		if !p.Complete {
			return false
		}
	}
	return true
}

// Progress returns a copy of one skill's diagnostic progress.
func (s *Session) Progress(skillID string) (Progress, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.progress[skillID]
	if !ok {
		return Progress{}, false
	}
	cp := *p
	cp.Attempts = append([]attempt.Attempt(nil), p.Attempts...)
	return cp, true
}

// mostUncertainSkill picks the incomplete skill with the highest SE.
// Ties break on session skill order.
func (s *Session) mostUncertainSkill() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var (
		bestID string
		bestSE = -1.0
	)
	for _, id := range s.order {
		p := s.progress[id]
		if p.Complete {
			continue
		}
		if p.SE > bestSE {
			bestID = id
			bestSE = p.SE
		}
	}
	return bestID, bestID != ""
}

func (s *Session) markComplete(skillID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.progress[skillID]; ok {
		p.Complete = true
	}
}
