package auction

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/lowbid/internal/services/auction Service

import "context"

// Service defines the interface for lowest-unique-bid auction operations
type Service interface {
	// Restore loads the open round and its board, opening a round if none exists
	Restore(ctx context.Context, input *RestoreInput) (*RestoreOutput, error)

	// ConnectWallet creates or reconnects a participant wallet
	ConnectWallet(ctx context.Context, input *ConnectWalletInput) (*ConnectWalletOutput, error)

	// GetWallet returns a wallet's balance, plays and preferences
	GetWallet(ctx context.Context, input *GetWalletInput) (*GetWalletOutput, error)

	// Deposit credits a wallet's simulated balance
	Deposit(ctx context.Context, input *DepositInput) (*DepositOutput, error)

	// PlaceBid spends one unit from a wallet on a number
	PlaceBid(ctx context.Context, input *PlaceBidInput) (*PlaceBidOutput, error)

	// PlaceBotBid applies a simulated bid without wallet checks
	PlaceBotBid(ctx context.Context, input *PlaceBotBidInput) (*PlaceBotBidOutput, error)

	// GetLeaderboard returns the lowest-ranked active numbers
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// GetPositions returns every active number a wallet currently holds
	GetPositions(ctx context.Context, input *GetPositionsInput) (*GetPositionsOutput, error)

	// GetPrediction summarises a wallet's chances this round
	GetPrediction(ctx context.Context, input *GetPredictionInput) (*GetPredictionOutput, error)

	// GetRound returns the open round with its pool and time remaining
	GetRound(ctx context.Context, input *GetRoundInput) (*GetRoundOutput, error)

	// GetRecentActivity returns the newest bids
	GetRecentActivity(ctx context.Context, input *GetRecentActivityInput) (*GetRecentActivityOutput, error)

	// GetHistory returns settled rounds, newest first
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)

	// UpdateNotificationPreferences changes which alerts a wallet receives
	UpdateNotificationPreferences(ctx context.Context, input *UpdateNotificationPreferencesInput) (*UpdateNotificationPreferencesOutput, error)

	// SettleRound pays out the open round and opens the next one
	SettleRound(ctx context.Context, input *SettleRoundInput) (*SettleRoundOutput, error)
}
