package mastery

import (
	"sync"
	"time"
)

// Tracker manages mastery state for all skills. Updates to the same skill
// are serialized so concurrent attempts cannot interleave and corrupt the
// Bayesian chain; different skills update independently.
type Tracker struct {
	mu     sync.Mutex // guards the skills map, not the per-skill states
	skills map[string]*entry
	params Params
}

// entry serializes updates to one skill.
type entry struct {
	mu    sync.Mutex
	state State
}

// NewTracker creates a tracker with the given model parameters.
func NewTracker(params Params) *Tracker {
	return &Tracker{
		skills: make(map[string]*entry),
		params: params,
	}
}

// entry returns the entry for a skill, creating it with defaults on first use.
func (t *Tracker) entry(skillID string) *entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.skills[skillID]
	if !ok {
		e = &entry{state: NewState(skillID)}
		t.skills[skillID] = e
	}
	return e
}

// Record applies one graded attempt to a skill and returns the new state.
func (t *Tracker) Record(skillID string, correct bool, responseTime, expectedTime time.Duration, now time.Time) State {
	e := t.entry(skillID)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = Update(e.state, correct, responseTime, expectedTime, now, t.params)
	return e.state
}

// State returns the current state for a skill, defaulting lazily.
func (t *Tracker) State(skillID string) State {
	e := t.entry(skillID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Level returns the mastery tier for a skill, with forgetting applied as of now.
func (t *Tracker) Level(skillID string, now time.Time) Level {
	e := t.entry(skillID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return Classify(DecayedPKnown(e.state, now))
}

// Snapshot exports all skill states for persistence.
func (t *Tracker) Snapshot() map[string]State {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]State, len(t.skills))
	for id, e := range t.skills {
		e.mu.Lock()
		out[id] = e.state
		e.mu.Unlock()
	}
	return out
}

// Restore replaces tracker state from a persisted snapshot.
func (t *Tracker) Restore(states map[string]State) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.skills = make(map[string]*entry, len(states))
	for id, s := range states {
		t.skills[id] = &entry{state: s}
	}
}
