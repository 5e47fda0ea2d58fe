package wallet

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/lowbid/internal/repositories/wallet Repository

import (
	"context"

	"github.com/KirkDiggler/lowbid/internal/models"
)

// Repository defines the interface for wallet persistence
type Repository interface {
	// SaveWallet persists a wallet
	SaveWallet(ctx context.Context, input *SaveWalletInput) error

	// GetWallet retrieves a wallet by address
	GetWallet(ctx context.Context, input *GetWalletInput) (*models.Wallet, error)

	// ListWallets retrieves every known wallet
	ListWallets(ctx context.Context, input *ListWalletsInput) (*ListWalletsOutput, error)

	// ResetDailyPlays zeroes the play counter of every known wallet
	ResetDailyPlays(ctx context.Context, input *ResetDailyPlaysInput) error
}
