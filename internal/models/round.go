package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoundStatus represents the current state of a round
type RoundStatus string

const (
	// RoundStatusOpen indicates the round is accepting bids
	RoundStatusOpen RoundStatus = "open"

	// RoundStatusSettled indicates the round has been paid out
	RoundStatusSettled RoundStatus = "settled"
)

// IsOpen returns true if the round accepts bids
func (s RoundStatus) IsOpen() bool {
	return s == RoundStatusOpen
}

// Round is one auction period over the full board
type Round struct {
	// ID is the sequential round number
	ID int64

	// Status is the current state of the round
	Status RoundStatus

	// Pool is the sum of every bid placed this round
	Pool decimal.Decimal

	// BidCount is the number of bids placed this round
	BidCount int

	// StartedAt is when the round opened
	StartedAt time.Time

	// EndsAt is when the round is due to settle
	EndsAt time.Time

	// SettledAt is when the round was settled
	SettledAt time.Time
}

// RoundResult is the settled outcome of a round
type RoundResult struct {
	// RoundID is the round that was settled
	RoundID int64

	// Date is the calendar day the round settled, YYYY-MM-DD
	Date string

	// WinningNumber is the leading slot at settlement, -1 when nobody bid
	WinningNumber int

	// WinningAmount is the winning slot's total
	WinningAmount decimal.Decimal

	// Winner is the last bidder on the winning slot
	Winner string

	// PrizePool is the amount paid to the winner
	PrizePool decimal.Decimal

	// ProtocolFee is the share of the pool kept back
	ProtocolFee decimal.Decimal

	// TotalParticipants is the number of distinct bidders in the round
	TotalParticipants int

	// SettledAt is when the round was settled
	SettledAt time.Time
}

// HasWinner returns true if the round had at least one bid
func (r *RoundResult) HasWinner() bool {
	return r.WinningNumber >= 0
}
