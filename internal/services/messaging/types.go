package messaging

import (
	"github.com/KirkDiggler/lowbid/internal/chance"
	"github.com/KirkDiggler/lowbid/internal/models"
	"github.com/KirkDiggler/lowbid/internal/rank"
	"github.com/shopspring/decimal"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"
)

// ErrorType categorises failures shown to a player
type ErrorType string

const (
	ErrorTypeNotConnected        ErrorType = "not_connected"
	ErrorTypeInsufficientBalance ErrorType = "insufficient_balance"
	ErrorTypeDailyLimit          ErrorType = "daily_limit"
	ErrorTypeSlotNotFound        ErrorType = "slot_not_found"
	ErrorTypeInvalidAmount       ErrorType = "invalid_amount"
	ErrorTypeRateLimited         ErrorType = "rate_limited"
	ErrorTypeUnknown             ErrorType = "unknown"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Source picks between message variants. Optional, defaults to a time-seeded source.
	Source chance.Source
}

// GetNotificationMessageInput contains parameters for a notification message
type GetNotificationMessageInput struct {
	// Kind is what triggered the notification
	Kind models.NotificationKind

	// SlotID is the number involved, used by leader changes and wins
	SlotID int

	// Amount is the deposit amount or the prize, depending on Kind
	Amount decimal.Decimal

	// RoundID is the round that settled
	RoundID int64

	// HasWinner is false when a round settled without any bids
	HasWinner bool

	// Tone is the preferred tone (optional)
	Tone MessageTone
}

// GetNotificationMessageOutput contains a notification's text
type GetNotificationMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetBidResultMessageInput contains parameters for a bid confirmation
type GetBidResultMessageInput struct {
	// SlotID is the number bid on
	SlotID int

	// Rank is the slot's rank after the bid
	Rank int

	// Standing is the bucket the rank falls into
	Standing rank.Standing

	// PlaysRemaining is how many bids the wallet has left this round
	PlaysRemaining int
}

// GetBidResultMessageOutput contains a bid confirmation
type GetBidResultMessageOutput struct {
	Title   string
	Message string
}

// GetErrorMessageInput contains parameters for an error message
type GetErrorMessageInput struct {
	ErrorType ErrorType

	// Detail is appended to the message when set
	Detail string
}

// GetErrorMessageOutput contains an error message
type GetErrorMessageOutput struct {
	Title   string
	Message string
}
