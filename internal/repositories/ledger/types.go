package ledger

import (
	"github.com/KirkDiggler/lowbid/internal/models"
)

// AddTransactionInput contains parameters for recording a bid
type AddTransactionInput struct {
	// Transaction is the bid to record
	Transaction *models.Transaction
}

// GetRecentTransactionsInput contains parameters for reading the activity feed
type GetRecentTransactionsInput struct {
	// Limit caps the number of transactions returned
	Limit int
}

// GetRecentTransactionsOutput contains the activity feed, newest first
type GetRecentTransactionsOutput struct {
	Transactions []*models.Transaction
}

// CountParticipantsInput contains parameters for counting a round's bidders
type CountParticipantsInput struct {
	RoundID int64
}

// AddRoundResultInput contains parameters for recording a settled round
type AddRoundResultInput struct {
	Result *models.RoundResult
}

// GetRoundResultInput contains parameters for looking up one round's result
type GetRoundResultInput struct {
	RoundID int64
}

// GetHistoryInput contains parameters for reading round history
type GetHistoryInput struct {
	// Limit caps the number of results returned
	Limit int
}

// GetHistoryOutput contains settled rounds, newest first
type GetHistoryOutput struct {
	Results []*models.RoundResult
}
