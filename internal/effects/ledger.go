package effects

import (
	"sync"
)

// Ledger holds the active status effects for a single entity.
// Effects keep their attachment order so tick processing and removal
// messages come out deterministically.
type Ledger struct {
	mu      sync.RWMutex
	effects []*StatusEffect
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{}
}

// Attach adds a status effect to the ledger
func (l *Ledger) Attach(effect *StatusEffect) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.effects = append(l.effects, effect)
}

// Has reports whether any active effect has the given kind
func (l *Ledger) Has(kind Kind) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, e := range l.effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// HasMatching reports whether an active effect was applied by the named
// spell or carries the same effect kind. Used for duplicate buff
// suppression; an empty effect string only matches on source.
func (l *Ledger) HasMatching(source, effect string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, e := range l.effects {
		if e.Source == source || (effect != "" && e.Effect == effect) {
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the active effects in attachment order
func (l *Ledger) Snapshot() []*StatusEffect {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*StatusEffect, len(l.effects))
	copy(out, l.effects)
	return out
}

// Len returns the number of active effects
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.effects)
}

// Tick decrements every effect's remaining duration and removes the
// ones that reach zero, returning them so the caller can announce
// expiry. Calling Tick on an empty ledger is a no-op.
func (l *Ledger) Tick() []*StatusEffect {
	l.mu.Lock()
	defer l.mu.Unlock()

	var expired []*StatusEffect
	kept := l.effects[:0]
	for _, e := range l.effects {
		e.Remaining--
		if e.Remaining <= 0 {
			expired = append(expired, e)
			continue
		}
		kept = append(kept, e)
	}
	l.effects = kept
	return expired
}

// Cure removes all effects of the given kinds, returning the removed
// effects. Curing a kind that is not present removes nothing.
func (l *Ledger) Cure(kinds ...Kind) []*StatusEffect {
	l.mu.Lock()
	defer l.mu.Unlock()

	match := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		match[k] = true
	}

	var removed []*StatusEffect
	kept := l.effects[:0]
	for _, e := range l.effects {
		if match[e.Kind] {
			removed = append(removed, e)
			continue
		}
		kept = append(kept, e)
	}
	l.effects = kept
	return removed
}

// Remove removes a single effect by ID. Removing an absent ID is a
// no-op, so removal stays idempotent.
func (l *Ledger) Remove(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.effects[:0]
	for _, e := range l.effects {
		if e.ID == id {
			continue
		}
		kept = append(kept, e)
	}
	l.effects = kept
}
