package server

import (
	"sync"
	"time"
)

const (
	// knockCount activations within knockWindow unlock the admin surface,
	// mirroring the five rapid taps on the storefront header. There is no
	// authentication; the trigger is merely obscure.
	knockCount  = 5
	knockWindow = 2 * time.Second

	// adminTTL is how long the admin surface stays unlocked after the
	// trigger fires.
	adminTTL = 10 * time.Minute
)

// AdminGate tracks rapid "knock" activations and unlocks the catalog-editing
// endpoints once enough arrive in quick succession.
type AdminGate struct {
	mu            sync.Mutex
	now           func() time.Time
	count         int
	lastKnock     time.Time
	unlockedUntil time.Time
}

// NewAdminGate returns a locked gate.
func NewAdminGate() *AdminGate {
	return &AdminGate{now: time.Now}
}

// Knock registers one activation and reports whether the gate is now
// unlocked. A pause longer than the window resets the count.
func (g *AdminGate) Knock() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if now.Sub(g.lastKnock) > knockWindow {
		g.count = 0
	}
	g.count++
	g.lastKnock = now

	if g.count >= knockCount {
		g.count = 0
		g.unlockedUntil = now.Add(adminTTL)
	}

	return now.Before(g.unlockedUntil)
}

// Unlocked reports whether the admin surface is currently open.
func (g *AdminGate) Unlocked() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.now().Before(g.unlockedUntil)
}
