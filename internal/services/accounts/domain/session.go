package domain

// SessionType separates game-client sessions from external (web) sessions
type SessionType string

// Session types; each gets its own independent slot set
const (
	SessionGame     SessionType = "game"
	SessionExternal SessionType = "external"
)

// Valid reports whether t is a known session type
func (t SessionType) Valid() bool { return t == SessionGame || t == SessionExternal }

// SlotCount is the fixed number of concurrent sessions per (account, type)
const SlotCount = 3

// DefaultSessionTTLMs is the session lifetime applied when the caller passes none
const DefaultSessionTTLMs = 30 * 60 * 1000

// Slot is one session slot; a zero Token means the slot was never used
type Slot struct {
	Token     string
	ExpiresAt int64 // unix ms
}

// Empty reports whether the slot is free at now (never used or expired)
func (s Slot) Empty(nowMs int64) bool { return s.Token == "" || s.ExpiresAt <= nowMs }

// PickSlot is the reference slot policy: the first free slot in index order
// wins; with all slots live, the one expiring soonest is evicted, ties going
// to the lowest index. The allocator's SQL implements the identical ordering
func PickSlot(slots [SlotCount]Slot, nowMs int64) int {
	for i, s := range slots {
		if s.Empty(nowMs) {
			return i
		}
	}
	best := 0
	for i := 1; i < SlotCount; i++ {
		if slots[i].ExpiresAt < slots[best].ExpiresAt {
			best = i
		}
	}
	return best
}
