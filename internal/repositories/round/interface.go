package round

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/lowbid/internal/repositories/round Repository

import (
	"context"

	"github.com/KirkDiggler/lowbid/internal/models"
)

// Repository defines the interface for round and board persistence
type Repository interface {
	// SaveRound persists a round and marks it current while it is open
	SaveRound(ctx context.Context, input *SaveRoundInput) error

	// GetRound retrieves a round by ID
	GetRound(ctx context.Context, input *GetRoundInput) (*models.Round, error)

	// GetCurrentRound retrieves the open round, if any
	GetCurrentRound(ctx context.Context, input *GetCurrentRoundInput) (*models.Round, error)

	// NextRoundID allocates the next sequential round number
	NextRoundID(ctx context.Context, input *NextRoundIDInput) (int64, error)

	// SaveSlot persists one slot of a round's board
	SaveSlot(ctx context.Context, input *SaveSlotInput) error

	// GetSlots loads a round's full board
	GetSlots(ctx context.Context, input *GetSlotsInput) (*GetSlotsOutput, error)

	// ClearSlots removes a round's board
	ClearSlots(ctx context.Context, input *ClearSlotsInput) error
}
