package auction

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/lowbid/internal/common/clock"
	"github.com/KirkDiggler/lowbid/internal/common/uuid"
	"github.com/KirkDiggler/lowbid/internal/models"
	"github.com/KirkDiggler/lowbid/internal/notify"
	"github.com/KirkDiggler/lowbid/internal/rank"
	ledgerRepo "github.com/KirkDiggler/lowbid/internal/repositories/ledger"
	roundRepo "github.com/KirkDiggler/lowbid/internal/repositories/round"
	walletRepo "github.com/KirkDiggler/lowbid/internal/repositories/wallet"
	"github.com/KirkDiggler/lowbid/internal/services/messaging"
	"github.com/shopspring/decimal"
)

// Game defaults
const (
	DefaultTotalSlots          = 1441
	DefaultDailyLimit          = 100
	DefaultRecentActivityLimit = 10
	DefaultHistoryLimit        = 10
	LeaderboardSize            = 10
)

var (
	// DefaultUnitAmount is the cost of one play
	DefaultUnitAmount = decimal.RequireFromString("0.01")

	// DefaultPoolShare is the share of the pool paid to the winner
	DefaultPoolShare = decimal.RequireFromString("0.90")
)

// Config holds configuration for the auction service
type Config struct {
	// Number of slots on the board
	TotalSlots int

	// Cost of one play
	UnitAmount decimal.Decimal

	// Maximum plays per wallet per round
	DailyLimit int

	// Share of the pool paid to the winner, the rest is the protocol fee
	PoolShare decimal.Decimal

	// Fixed round duration. Zero ends each round at midnight in Location.
	RoundLength time.Duration

	// Timezone rounds are scheduled in, defaults to UTC
	Location *time.Location

	// Repository dependencies
	RoundRepo  roundRepo.Repository
	WalletRepo walletRepo.Repository
	LedgerRepo ledgerRepo.Repository

	// Service dependencies
	MessagingService messaging.Service

	// Notifier receives player alerts. Optional, defaults to logging them.
	Notifier notify.Notifier

	// Clock for time-based operations
	Clock clock.Clock

	// UUID generator for transaction IDs
	UUIDGenerator uuid.UUID

	// Logger, defaults to slog.Default()
	Logger *slog.Logger
}

// RestoreInput defines the input for restoring the open round
type RestoreInput struct {
}

// RestoreOutput defines the output for restoring the open round
type RestoreOutput struct {
	Round *models.Round

	// Restored is false when a fresh round had to be opened
	Restored bool

	// ActiveSlots counts the slots that carried bids
	ActiveSlots int
}

// ConnectWalletInput defines the input for connecting a wallet
type ConnectWalletInput struct {
	// Address is a 0x-prefixed hex address or an opaque display token
	Address string
}

// ConnectWalletOutput defines the output for connecting a wallet
type ConnectWalletOutput struct {
	Wallet *models.Wallet

	// Created is true when the wallet did not exist before
	Created bool
}

// GetWalletInput defines the input for reading a wallet
type GetWalletInput struct {
	Address string
}

// GetWalletOutput defines the output for reading a wallet
type GetWalletOutput struct {
	Wallet         *models.Wallet
	PlaysRemaining int
}

// DepositInput defines the input for a deposit
type DepositInput struct {
	Address string
	Amount  decimal.Decimal
}

// DepositOutput defines the output for a deposit
type DepositOutput struct {
	Wallet *models.Wallet
}

// PlaceBidInput defines the input for a wallet bid
type PlaceBidInput struct {
	Address string
	SlotID  int
}

// PlaceBidOutput defines the output for a wallet bid
type PlaceBidOutput struct {
	// Slot is the slot after the bid
	Slot *models.Slot

	// Rank is the slot's rank after the bid
	Rank int

	// Standing is the bucket Rank falls into
	Standing rank.Standing

	Transaction    *models.Transaction
	Wallet         *models.Wallet
	PlaysRemaining int

	// LeaderChanged is true when this bid moved a different number into first place
	LeaderChanged bool
}

// PlaceBotBidInput defines the input for a simulated bid
type PlaceBotBidInput struct {
	Bidder string
	SlotID int
}

// PlaceBotBidOutput defines the output for a simulated bid
type PlaceBotBidOutput struct {
	Slot          *models.Slot
	Transaction   *models.Transaction
	LeaderChanged bool
}

// GetLeaderboardInput defines the input for the leaderboard
type GetLeaderboardInput struct {
	// Limit caps the entries returned, defaults to LeaderboardSize
	Limit int
}

// GetLeaderboardOutput defines the output for the leaderboard
type GetLeaderboardOutput struct {
	Entries     []*models.RankedSlot
	TotalActive int
}

// GetPositionsInput defines the input for a wallet's positions
type GetPositionsInput struct {
	Address string
}

// GetPositionsOutput defines the output for a wallet's positions
type GetPositionsOutput struct {
	// Entries holds every active slot the wallet is last bidder on, best rank first
	Entries []*models.RankedSlot
}

// GetPredictionInput defines the input for a wallet's prediction
type GetPredictionInput struct {
	Address string
}

// GetPredictionOutput defines the output for a wallet's prediction
type GetPredictionOutput struct {
	Positions *rank.Positions

	// Best is the wallet's best-ranked slot, nil without positions
	Best *models.RankedSlot

	// Standing is the bucket of the best rank
	Standing rank.Standing

	// WinLikelihood is the likelihood bucket of the best rank, in percent
	WinLikelihood float64
}

// GetRoundInput defines the input for the open round
type GetRoundInput struct {
}

// GetRoundOutput defines the output for the open round
type GetRoundOutput struct {
	Round          *models.Round
	EstimatedPrize decimal.Decimal
	ProtocolFee    decimal.Decimal
	TimeRemaining  time.Duration
	ActiveSlots    int
	TotalSlots     int
	UnitAmount     decimal.Decimal
	DailyLimit     int

	// Settling is true while a failed settlement waits to be retried
	Settling bool
}

// GetRecentActivityInput defines the input for the activity feed
type GetRecentActivityInput struct {
	// Limit caps the transactions returned, defaults to DefaultRecentActivityLimit
	Limit int
}

// GetRecentActivityOutput defines the output for the activity feed
type GetRecentActivityOutput struct {
	Transactions []*models.Transaction
}

// GetHistoryInput defines the input for round history
type GetHistoryInput struct {
	// Limit caps the results returned, defaults to DefaultHistoryLimit
	Limit int
}

// GetHistoryOutput defines the output for round history
type GetHistoryOutput struct {
	Results []*models.RoundResult
}

// UpdateNotificationPreferencesInput defines the input for changing alerts
type UpdateNotificationPreferencesInput struct {
	Address     string
	Preferences models.NotificationPreferences
}

// UpdateNotificationPreferencesOutput defines the output for changing alerts
type UpdateNotificationPreferencesOutput struct {
	Wallet *models.Wallet
}

// SettleRoundInput defines the input for settling the open round
type SettleRoundInput struct {
	// Force settles before the round's end time
	Force bool
}

// SettleRoundOutput defines the output for settling the open round
type SettleRoundOutput struct {
	Result    *models.RoundResult
	NextRound *models.Round
}
