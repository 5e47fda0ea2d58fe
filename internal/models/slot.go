package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Slot is one numbered position on the board
type Slot struct {
	// ID is the slot number, assigned as its index on the board
	ID int

	// TotalAmount is the cumulative amount bid on the slot this round
	TotalAmount decimal.Decimal

	// LastBidder is the wallet that most recently raised TotalAmount
	LastBidder string

	// LastBidTime is when TotalAmount was last raised
	LastBidTime time.Time
}

// IsActive reports whether the slot has received any bid this round
func (s *Slot) IsActive() bool {
	return s.TotalAmount.IsPositive()
}

// Clone returns an independent copy of the slot
func (s *Slot) Clone() *Slot {
	clone := *s
	return &clone
}

// NewSlots creates count empty slots numbered 0..count-1
func NewSlots(count int) []*Slot {
	slots := make([]*Slot, count)
	for i := range slots {
		slots[i] = &Slot{ID: i, TotalAmount: decimal.Zero}
	}
	return slots
}

// RankedSlot is a slot annotated with its position among active slots.
// It is derived on every read and never stored.
type RankedSlot struct {
	Slot

	// Rank is the 1-based position in the ascending-by-amount ordering
	Rank int

	// WinLikelihood is the presentation bucket for Rank, in percent
	WinLikelihood float64
}
