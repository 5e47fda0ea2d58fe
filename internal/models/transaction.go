package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction records a single bid
type Transaction struct {
	// ID is the unique identifier for the transaction
	ID string

	// RoundID is the round the bid belongs to
	RoundID int64

	// SlotID is the number that was bid on
	SlotID int

	// Bidder is the wallet that placed the bid
	Bidder string

	// Amount is the unit amount paid
	Amount decimal.Decimal

	// Timestamp is when the bid landed
	Timestamp time.Time

	// Simulated marks bids placed by the bot traffic driver
	Simulated bool
}
