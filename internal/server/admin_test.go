package server

import (
	"testing"
	"time"
)

func TestAdminGate(t *testing.T) {
	now := time.Now()
	gate := NewAdminGate()
	gate.now = func() time.Time { return now }

	t.Run("locked by default", func(t *testing.T) {
		if gate.Unlocked() {
			t.Error("gate should start locked")
		}
	})

	t.Run("five rapid knocks unlock", func(t *testing.T) {
		for i := 0; i < 4; i++ {
			if gate.Knock() {
				t.Fatalf("unlocked after %d knocks", i+1)
			}
			now = now.Add(100 * time.Millisecond)
		}
		if !gate.Knock() {
			t.Error("fifth knock should unlock")
		}
		if !gate.Unlocked() {
			t.Error("gate should stay unlocked")
		}
	})

	t.Run("unlock expires", func(t *testing.T) {
		now = now.Add(adminTTL + time.Second)
		if gate.Unlocked() {
			t.Error("gate should relock after the TTL")
		}
	})

	t.Run("slow knocks reset the count", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			if gate.Knock() {
				t.Fatal("slow knocks must not unlock")
			}
			now = now.Add(knockWindow + time.Second)
		}
	})
}
