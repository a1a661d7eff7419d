package domain

import "testing"

func TestPickSlot_FirstNeverUsedWins(t *testing.T) {
	slots := [SlotCount]Slot{
		{Token: "a", ExpiresAt: 100},
		{},
		{},
	}
	if got := PickSlot(slots, 50); got != 1 {
		t.Fatalf("want slot 1, got %d", got)
	}
}

func TestPickSlot_ExpiredCountsAsFree(t *testing.T) {
	// slot 0 live, slot 1 expired, slot 2 never used; scan order wins
	slots := [SlotCount]Slot{
		{Token: "a", ExpiresAt: 1000},
		{Token: "b", ExpiresAt: 10},
		{},
	}
	if got := PickSlot(slots, 50); got != 1 {
		t.Fatalf("want expired slot 1, got %d", got)
	}
}

func TestPickSlot_AllLiveEvictsSoonestExpiry(t *testing.T) {
	slots := [SlotCount]Slot{
		{Token: "a", ExpiresAt: 100},
		{Token: "b", ExpiresAt: 300},
		{Token: "c", ExpiresAt: 200},
	}
	if got := PickSlot(slots, 50); got != 0 {
		t.Fatalf("want slot 0 (soonest expiry), got %d", got)
	}
}

func TestPickSlot_EvictionTieGoesToLowestIndex(t *testing.T) {
	slots := [SlotCount]Slot{
		{Token: "a", ExpiresAt: 300},
		{Token: "b", ExpiresAt: 200},
		{Token: "c", ExpiresAt: 200},
	}
	if got := PickSlot(slots, 50); got != 1 {
		t.Fatalf("want slot 1, got %d", got)
	}
}

func TestPickSlot_BoundaryExpiryIsFree(t *testing.T) {
	// expires == now means expired
	slots := [SlotCount]Slot{
		{Token: "a", ExpiresAt: 50},
		{Token: "b", ExpiresAt: 300},
		{Token: "c", ExpiresAt: 200},
	}
	if got := PickSlot(slots, 50); got != 0 {
		t.Fatalf("want slot 0, got %d", got)
	}
}

func TestSessionTypeValid(t *testing.T) {
	if !SessionGame.Valid() || !SessionExternal.Valid() {
		t.Fatal("known types must validate")
	}
	if SessionType("web").Valid() {
		t.Fatal("unknown type must not validate")
	}
}
