package wallet

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
	walletKeyPrefix = "wallet:"
	walletsIndexKey = "wallets"
)

// ErrWalletNotFound is returned when a wallet is not found
var ErrWalletNotFound = errors.New("wallet not found")

// Config holds configuration for the Redis wallet repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed wallet repository
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

// SaveWallet persists a wallet to Redis
func (r *redisRepository) SaveWallet(ctx context.Context, input *SaveWalletInput) error {
	if input == nil || input.Wallet == nil {
		return errors.New("input and wallet cannot be nil")
	}

	wallet := input.Wallet
	if wallet.Address == "" {
		return errors.New("wallet address cannot be empty")
	}

	walletJSON, err := json.Marshal(wallet)
	if err != nil {
		return fmt.Errorf("failed to marshal wallet: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, walletKeyPrefix+wallet.Address, walletJSON, 0)
	pipe.SAdd(ctx, walletsIndexKey, wallet.Address)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save wallet: %w", err)
	}

	return nil
}

// GetWallet retrieves a wallet by address from Redis
func (r *redisRepository) GetWallet(ctx context.Context, input *GetWalletInput) (*models.Wallet, error) {
	if input == nil || input.Address == "" {
		return nil, errors.New("input and address cannot be empty")
	}

	walletJSON, err := r.client.Get(ctx, walletKeyPrefix+input.Address).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	var wallet models.Wallet
	if err := json.Unmarshal([]byte(walletJSON), &wallet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallet: %w", err)
	}

	return &wallet, nil
}

// ListWallets retrieves every wallet in the index
func (r *redisRepository) ListWallets(ctx context.Context, input *ListWalletsInput) (*ListWalletsOutput, error) {
	addresses, err := r.client.SMembers(ctx, walletsIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet addresses: %w", err)
	}

	if len(addresses) == 0 {
		return &ListWalletsOutput{
			Wallets: []*models.Wallet{},
		}, nil
	}

	// Fetch all wallets in one round trip
	pipe := r.client.Pipeline()
	walletCommands := make(map[string]*redis.StringCmd, len(addresses))
	for _, address := range addresses {
		walletCommands[address] = pipe.Get(ctx, walletKeyPrefix+address)
	}

	// redis.Nil for a single key is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get wallets: %w", err)
	}

	wallets := make([]*models.Wallet, 0, len(addresses))
	for address, cmd := range walletCommands {
		walletJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get wallet %s: %w", address, err)
		}

		var wallet models.Wallet
		if err := json.Unmarshal([]byte(walletJSON), &wallet); err != nil {
			return nil, fmt.Errorf("failed to unmarshal wallet %s: %w", address, err)
		}
		wallets = append(wallets, &wallet)
	}

	return &ListWalletsOutput{
		Wallets: wallets,
	}, nil
}

// ResetDailyPlays zeroes PlaysToday on every wallet
func (r *redisRepository) ResetDailyPlays(ctx context.Context, input *ResetDailyPlaysInput) error {
	output, err := r.ListWallets(ctx, &ListWalletsInput{})
	if err != nil {
		return err
	}

	if len(output.Wallets) == 0 {
		return nil
	}

	pipe := r.client.TxPipeline()
	for _, wallet := range output.Wallets {
		wallet.PlaysToday = 0

		walletJSON, err := json.Marshal(wallet)
		if err != nil {
			return fmt.Errorf("failed to marshal wallet %s: %w", wallet.Address, err)
		}
		pipe.Set(ctx, walletKeyPrefix+wallet.Address, walletJSON, 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to reset daily plays: %w", err)
	}

	return nil
}
