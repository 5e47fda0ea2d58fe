package auction

import "github.com/KirkDiggler/lowbid/internal/rank"

// AuctionError is a custom error type for auction-related errors
type AuctionError string

// Error implements the error interface
func (e AuctionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig           AuctionError = "config cannot be nil"
	ErrNilInput            AuctionError = "input cannot be nil"
	ErrNilRoundRepo        AuctionError = "round repository cannot be nil"
	ErrNilWalletRepo       AuctionError = "wallet repository cannot be nil"
	ErrNilLedgerRepo       AuctionError = "ledger repository cannot be nil"
	ErrNilMessagingService AuctionError = "messaging service cannot be nil"
	ErrNilClock            AuctionError = "clock cannot be nil"
	ErrNilUUIDGenerator    AuctionError = "UUID generator cannot be nil"
	ErrInvalidAddress      AuctionError = "invalid wallet address"
	ErrWalletNotConnected  AuctionError = "wallet not connected"
	ErrInvalidAmount       AuctionError = "amount must be positive"
	ErrDailyLimitReached   AuctionError = "daily play limit reached"
	ErrInsufficientBalance AuctionError = "insufficient balance"
	ErrNoActiveRound       AuctionError = "no active round"
	ErrRoundNotOver        AuctionError = "round has not reached its end time"
)

// ErrSlotNotFound is returned, wrapped with the slot number, for bids
// outside the board. Nothing is mutated when it is returned.
const ErrSlotNotFound = rank.ErrSlotNotFound
