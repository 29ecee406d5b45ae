// Package alert keeps an in-memory record of fired setups with
// per-symbol-and-side cooldown so one persistent setup does not spam.
package alert

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"ScalpRadar/internal/model"
)

// Alert is one captured actionable signal.
type Alert struct {
	ID      string
	Signal  *model.ScalpSignal
	FiredAt time.Time
}

// Manager guards alert state behind a mutex so the scheduler goroutine and
// on-demand scans can share it.
type Manager struct {
	mu        sync.Mutex
	cooldown  time.Duration
	threshold int
	maxKept   int
	lastFired map[string]time.Time
	history   []Alert

	// now is swappable in tests.
	now func() time.Time
}

// NewManager creates a Manager. maxKept bounds the retained history;
// values below 1 default to 60.
func NewManager(cooldown time.Duration, threshold, maxKept int) *Manager {
	if maxKept < 1 {
		maxKept = 60
	}
	return &Manager{
		cooldown:  cooldown,
		threshold: threshold,
		maxKept:   maxKept,
		lastFired: make(map[string]time.Time),
		history:   make([]Alert, 0, maxKept),
		now:       time.Now,
	}
}

// Capture records the signal if it clears the score threshold, is
// directional, and its symbol+side is off cooldown. The returned bool
// reports whether an alert fired.
func (m *Manager) Capture(sig *model.ScalpSignal) (Alert, bool) {
	if sig == nil || !sig.Actionable() || sig.Score < m.threshold {
		return Alert{}, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := sig.Symbol + "|" + string(sig.Bias)
	ts := m.now()
	if last, ok := m.lastFired[key]; ok && ts.Sub(last) < m.cooldown {
		return Alert{}, false
	}
	m.lastFired[key] = ts

	a := Alert{
		ID:      uuid.NewString(),
		Signal:  sig,
		FiredAt: ts,
	}
	// Newest first.
	m.history = append([]Alert{a}, m.history...)
	if len(m.history) > m.maxKept {
		m.history = m.history[:m.maxKept]
	}
	return a, true
}

// History returns a copy of the retained alerts, newest first.
func (m *Manager) History() []Alert {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Alert, len(m.history))
	copy(out, m.history)
	return out
}

// Clear drops all history and cooldown state.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = m.history[:0]
	m.lastFired = make(map[string]time.Time)
}
