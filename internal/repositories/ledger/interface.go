package ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/lowbid/internal/repositories/ledger Repository

import (
	"context"

	"github.com/KirkDiggler/lowbid/internal/models"
)

// Repository defines the interface for bid activity and round history
type Repository interface {
	// AddTransaction records a bid in the activity feed and the round's bidder set
	AddTransaction(ctx context.Context, input *AddTransactionInput) error

	// GetRecentTransactions retrieves the newest transactions first
	GetRecentTransactions(ctx context.Context, input *GetRecentTransactionsInput) (*GetRecentTransactionsOutput, error)

	// CountParticipants returns the number of distinct bidders in a round
	CountParticipants(ctx context.Context, input *CountParticipantsInput) (int, error)

	// AddRoundResult records a settled round
	AddRoundResult(ctx context.Context, input *AddRoundResultInput) error

	// GetRoundResult retrieves the recorded result of one round
	GetRoundResult(ctx context.Context, input *GetRoundResultInput) (*models.RoundResult, error)

	// GetHistory retrieves settled rounds, newest first
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)
}
