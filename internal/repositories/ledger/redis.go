package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/lowbid/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	recentTransactionsKey = "recent_transactions"
	roundBiddersKeyPrefix = "round_bidders:"
	roundResultKeyPrefix  = "round_result:"
	roundHistoryKey       = "round_history"

	// maxRecentTransactions bounds the activity feed list
	maxRecentTransactions = 100
)

// ErrRoundResultNotFound is returned when a round has no recorded result
var ErrRoundResultNotFound = errors.New("round result not found")

// Config holds configuration for the Redis ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed ledger repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func roundBiddersKey(roundID int64) string {
	return fmt.Sprintf("%s%d", roundBiddersKeyPrefix, roundID)
}

func roundResultKey(roundID int64) string {
	return fmt.Sprintf("%s%d", roundResultKeyPrefix, roundID)
}

// AddTransaction pushes a bid onto the activity feed and tracks its bidder
func (r *redisRepository) AddTransaction(ctx context.Context, input *AddTransactionInput) error {
	if input == nil || input.Transaction == nil {
		return errors.New("input and transaction cannot be nil")
	}

	tx := input.Transaction
	if tx.ID == "" {
		return errors.New("transaction ID cannot be empty")
	}

	txJSON, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, recentTransactionsKey, txJSON)
	pipe.LTrim(ctx, recentTransactionsKey, 0, maxRecentTransactions-1)
	pipe.SAdd(ctx, roundBiddersKey(tx.RoundID), tx.Bidder)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add transaction: %w", err)
	}

	return nil
}

// GetRecentTransactions reads the newest transactions from the feed
func (r *redisRepository) GetRecentTransactions(ctx context.Context, input *GetRecentTransactionsInput) (*GetRecentTransactionsOutput, error) {
	if input == nil || input.Limit <= 0 {
		return nil, errors.New("input and positive limit are required")
	}

	entries, err := r.client.LRange(ctx, recentTransactionsKey, 0, int64(input.Limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}

	transactions := make([]*models.Transaction, 0, len(entries))
	for _, entry := range entries {
		var tx models.Transaction
		if err := json.Unmarshal([]byte(entry), &tx); err != nil {
			return nil, fmt.Errorf("failed to unmarshal transaction: %w", err)
		}
		transactions = append(transactions, &tx)
	}

	return &GetRecentTransactionsOutput{
		Transactions: transactions,
	}, nil
}

// CountParticipants returns the size of the round's bidder set
func (r *redisRepository) CountParticipants(ctx context.Context, input *CountParticipantsInput) (int, error) {
	if input == nil || input.RoundID <= 0 {
		return 0, errors.New("input and round ID cannot be empty")
	}

	count, err := r.client.SCard(ctx, roundBiddersKey(input.RoundID)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count participants: %w", err)
	}

	return int(count), nil
}

// AddRoundResult stores a settled round and indexes it by round ID
func (r *redisRepository) AddRoundResult(ctx context.Context, input *AddRoundResultInput) error {
	if input == nil || input.Result == nil {
		return errors.New("input and result cannot be nil")
	}

	result := input.Result
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal round result: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, roundResultKey(result.RoundID), resultJSON, 0)
	pipe.ZAdd(ctx, roundHistoryKey, redis.Z{
		Score:  float64(result.RoundID),
		Member: result.RoundID,
	})

	// The bidder set is only needed until the round is settled
	pipe.Del(ctx, roundBiddersKey(result.RoundID))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add round result: %w", err)
	}

	return nil
}

// GetRoundResult reads the result recorded for a round
func (r *redisRepository) GetRoundResult(ctx context.Context, input *GetRoundResultInput) (*models.RoundResult, error) {
	if input == nil || input.RoundID <= 0 {
		return nil, errors.New("input and round ID cannot be empty")
	}

	resultJSON, err := r.client.Get(ctx, roundResultKey(input.RoundID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRoundResultNotFound
		}
		return nil, fmt.Errorf("failed to get round result: %w", err)
	}

	var result models.RoundResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal round result: %w", err)
	}

	return &result, nil
}

// GetHistory reads settled rounds, newest first
func (r *redisRepository) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if input == nil || input.Limit <= 0 {
		return nil, errors.New("input and positive limit are required")
	}

	roundIDs, err := r.client.ZRevRange(ctx, roundHistoryKey, 0, int64(input.Limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get round history: %w", err)
	}

	if len(roundIDs) == 0 {
		return &GetHistoryOutput{
			Results: []*models.RoundResult{},
		}, nil
	}

	pipe := r.client.Pipeline()
	resultCommands := make([]*redis.StringCmd, len(roundIDs))
	for i, roundID := range roundIDs {
		resultCommands[i] = pipe.Get(ctx, roundResultKeyPrefix+roundID)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get round results: %w", err)
	}

	results := make([]*models.RoundResult, 0, len(roundIDs))
	for i, cmd := range resultCommands {
		resultJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get round result %s: %w", roundIDs[i], err)
		}

		var result models.RoundResult
		if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal round result %s: %w", roundIDs[i], err)
		}
		results = append(results, &result)
	}

	return &GetHistoryOutput{
		Results: results,
	}, nil
}
