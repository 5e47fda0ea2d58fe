// Package board owns the slot collection for the current round. All
// mutation funnels through Bid, Reset and Restore; readers receive copies.
package board

import (
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/lowbid/internal/models"
	"github.com/KirkDiggler/lowbid/internal/rank"
	"github.com/shopspring/decimal"
)

// Board is a fixed-size, single-writer slot collection
type Board struct {
	mu    sync.RWMutex
	slots []*models.Slot
}

// New creates a board of size empty slots numbered 0..size-1
func New(size int) *Board {
	if size < 0 {
		size = 0
	}
	return &Board{
		slots: models.NewSlots(size),
	}
}

// Size returns the number of slots on the board
func (b *Board) Size() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.slots)
}

// Bid applies one bid and returns a copy of the updated slot
func (b *Board) Bid(slotID int, bidder string, unit decimal.Decimal, at time.Time) (*models.Slot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := rank.ApplyBid(b.slots, slotID, bidder, unit, at); err != nil {
		return nil, err
	}
	return b.slots[slotID].Clone(), nil
}

// Get returns a copy of one slot
func (b *Board) Get(slotID int) (*models.Slot, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if slotID < 0 || slotID >= len(b.slots) {
		return nil, fmt.Errorf("%w: %d", rank.ErrSlotNotFound, slotID)
	}
	return b.slots[slotID].Clone(), nil
}

// Snapshot returns a copy of every slot. Each copy reflects whole bids only.
func (b *Board) Snapshot() []*models.Slot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	snapshot := make([]*models.Slot, len(b.slots))
	for i, slot := range b.slots {
		snapshot[i] = slot.Clone()
	}
	return snapshot
}

// Reset clears every slot for a new round
func (b *Board) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.slots = models.NewSlots(len(b.slots))
}

// Restore replaces the board contents with previously persisted slots.
// Slots outside the board are rejected; missing slots stay empty.
func (b *Board) Restore(slots []*models.Slot) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	restored := models.NewSlots(len(b.slots))
	for _, slot := range slots {
		if slot == nil {
			continue
		}
		if slot.ID < 0 || slot.ID >= len(restored) {
			return fmt.Errorf("%w: %d", rank.ErrSlotNotFound, slot.ID)
		}
		restored[slot.ID] = slot.Clone()
	}

	b.slots = restored
	return nil
}
