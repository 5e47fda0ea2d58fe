package round

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/lowbid/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	roundKeyPrefix  = "round:"
	slotsKeyPrefix  = "round_slots:"
	currentRoundKey = "round:current"
	roundSeqKey     = "round:seq"

	// firstRoundID is the number given to the first round ever opened
	firstRoundID = 1024
)

var (
	// ErrRoundNotFound is returned when a round is not found
	ErrRoundNotFound = errors.New("round not found")

	// ErrSlotOutOfRange is returned when a stored slot does not fit the board
	ErrSlotOutOfRange = errors.New("stored slot outside board")
)

// Config holds configuration for the Redis round repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed round repository
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

func roundKey(roundID int64) string {
	return fmt.Sprintf("%s%d", roundKeyPrefix, roundID)
}

func slotsKey(roundID int64) string {
	return fmt.Sprintf("%s%d", slotsKeyPrefix, roundID)
}

// SaveRound persists a round to Redis
func (r *redisRepository) SaveRound(ctx context.Context, input *SaveRoundInput) error {
	if input == nil || input.Round == nil {
		return errors.New("input and round cannot be nil")
	}

	roundJSON, err := json.Marshal(input.Round)
	if err != nil {
		return fmt.Errorf("failed to marshal round: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, roundKey(input.Round.ID), roundJSON, 0)

	if input.Round.Status.IsOpen() {
		pipe.Set(ctx, currentRoundKey, input.Round.ID, 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save round: %w", err)
	}

	return nil
}

// GetRound retrieves a round by ID from Redis
func (r *redisRepository) GetRound(ctx context.Context, input *GetRoundInput) (*models.Round, error) {
	if input == nil || input.RoundID <= 0 {
		return nil, errors.New("input and round ID cannot be empty")
	}

	roundJSON, err := r.client.Get(ctx, roundKey(input.RoundID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRoundNotFound
		}
		return nil, fmt.Errorf("failed to get round: %w", err)
	}

	var round models.Round
	if err := json.Unmarshal([]byte(roundJSON), &round); err != nil {
		return nil, fmt.Errorf("failed to unmarshal round: %w", err)
	}

	return &round, nil
}

// GetCurrentRound retrieves the open round from Redis
func (r *redisRepository) GetCurrentRound(ctx context.Context, input *GetCurrentRoundInput) (*models.Round, error) {
	roundID, err := r.client.Get(ctx, currentRoundKey).Int64()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRoundNotFound
		}
		return nil, fmt.Errorf("failed to get current round ID: %w", err)
	}

	round, err := r.GetRound(ctx, &GetRoundInput{RoundID: roundID})
	if err != nil {
		return nil, err
	}

	// A settled round is history, not current
	if !round.Status.IsOpen() {
		return nil, ErrRoundNotFound
	}

	return round, nil
}

// NextRoundID allocates the next round number, starting at firstRoundID
func (r *redisRepository) NextRoundID(ctx context.Context, input *NextRoundIDInput) (int64, error) {
	if err := r.client.SetNX(ctx, roundSeqKey, firstRoundID-1, 0).Err(); err != nil {
		return 0, fmt.Errorf("failed to seed round sequence: %w", err)
	}

	id, err := r.client.Incr(ctx, roundSeqKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to allocate round ID: %w", err)
	}

	return id, nil
}

// SaveSlot persists one slot in the round's board hash
func (r *redisRepository) SaveSlot(ctx context.Context, input *SaveSlotInput) error {
	if input == nil || input.Slot == nil {
		return errors.New("input and slot cannot be nil")
	}

	if input.RoundID <= 0 {
		return errors.New("round ID cannot be empty")
	}

	slotJSON, err := json.Marshal(input.Slot)
	if err != nil {
		return fmt.Errorf("failed to marshal slot: %w", err)
	}

	field := strconv.Itoa(input.Slot.ID)
	if err := r.client.HSet(ctx, slotsKey(input.RoundID), field, slotJSON).Err(); err != nil {
		return fmt.Errorf("failed to save slot %d: %w", input.Slot.ID, err)
	}

	return nil
}

// GetSlots loads a round's board, filling slots never bid on
func (r *redisRepository) GetSlots(ctx context.Context, input *GetSlotsInput) (*GetSlotsOutput, error) {
	if input == nil || input.RoundID <= 0 {
		return nil, errors.New("input and round ID cannot be empty")
	}

	if input.Size < 0 {
		return nil, errors.New("board size cannot be negative")
	}

	stored, err := r.client.HGetAll(ctx, slotsKey(input.RoundID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get slots: %w", err)
	}

	slots := models.NewSlots(input.Size)
	for field, slotJSON := range stored {
		var slot models.Slot
		if err := json.Unmarshal([]byte(slotJSON), &slot); err != nil {
			return nil, fmt.Errorf("failed to unmarshal slot %s: %w", field, err)
		}

		if slot.ID < 0 || slot.ID >= input.Size {
			return nil, fmt.Errorf("%w: %d", ErrSlotOutOfRange, slot.ID)
		}

		slots[slot.ID] = &slot
	}

	return &GetSlotsOutput{
		Slots: slots,
	}, nil
}

// ClearSlots deletes a round's board hash
func (r *redisRepository) ClearSlots(ctx context.Context, input *ClearSlotsInput) error {
	if input == nil || input.RoundID <= 0 {
		return errors.New("input and round ID cannot be empty")
	}

	if err := r.client.Del(ctx, slotsKey(input.RoundID)).Err(); err != nil {
		return fmt.Errorf("failed to clear slots: %w", err)
	}

	return nil
}
