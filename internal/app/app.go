// Package app wires the auction together from configuration: Redis, the
// repositories, the services and the notifiers. Both binaries build on it.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/lowbid/internal/chance"
	"github.com/KirkDiggler/lowbid/internal/common/clock"
	"github.com/KirkDiggler/lowbid/internal/common/uuid"
	"github.com/KirkDiggler/lowbid/internal/config"
	"github.com/KirkDiggler/lowbid/internal/notify"
	ledgerRepo "github.com/KirkDiggler/lowbid/internal/repositories/ledger"
	roundRepo "github.com/KirkDiggler/lowbid/internal/repositories/round"
	walletRepo "github.com/KirkDiggler/lowbid/internal/repositories/wallet"
	"github.com/KirkDiggler/lowbid/internal/services/auction"
	"github.com/KirkDiggler/lowbid/internal/services/messaging"
	"github.com/KirkDiggler/lowbid/internal/services/simulator"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 5 * time.Second

// App owns the wired services and the resources behind them
type App struct {
	Auction   auction.Service
	Messaging messaging.Service

	// Restored describes the round the auction resumed or opened
	Restored *auction.RestoreOutput

	cfg     *config.Config
	source  chance.Source
	clock   clock.Clock
	logger  *slog.Logger
	closers []func()
}

// Options carries optional overrides for New
type Options struct {
	// Notifiers receive player alerts in addition to the log
	Notifiers []notify.Notifier

	// Clock defaults to the system clock
	Clock clock.Clock
}

// New connects to Redis, builds the services and restores the open round
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts *Options) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("app: config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if opts == nil {
		opts = &Options{}
	}

	a := &App{
		cfg:    cfg,
		source: chance.New(&chance.Config{Seed: cfg.Simulator.Seed}),
		clock:  opts.Clock,
		logger: logger.With(slog.String("component", "app")),
	}
	if a.clock == nil {
		a.clock = clock.New()
	}

	client, err := a.connectRedis(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	if err := a.wire(ctx, client, opts.Notifiers); err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}

// connectRedis dials the configured server, or starts an in-process one
// when no address is set
func (a *App) connectRedis(ctx context.Context) (*redis.Client, error) {
	addr := a.cfg.Redis.Addr
	if addr == "" {
		embedded, err := miniredis.Run()
		if err != nil {
			return nil, fmt.Errorf("app: start embedded redis: %w", err)
		}
		a.closers = append(a.closers, embedded.Close)
		addr = embedded.Addr()
		a.logger.Warn("REDIS_ADDR not set, using in-process redis; state is lost on exit",
			slog.String("addr", addr))
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	a.closers = append(a.closers, func() { _ = client.Close() })

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("app: connect to redis at %s: %w", addr, err)
	}

	return client, nil
}

func (a *App) wire(ctx context.Context, client *redis.Client, notifiers []notify.Notifier) error {
	rounds, err := roundRepo.NewRedis(&roundRepo.Config{RedisClient: client})
	if err != nil {
		return fmt.Errorf("app: round repository: %w", err)
	}

	wallets, err := walletRepo.NewRedis(&walletRepo.Config{RedisClient: client})
	if err != nil {
		return fmt.Errorf("app: wallet repository: %w", err)
	}

	ledger, err := ledgerRepo.NewRedis(&ledgerRepo.Config{RedisClient: client})
	if err != nil {
		return fmt.Errorf("app: ledger repository: %w", err)
	}

	a.Messaging, err = messaging.NewService(&messaging.ServiceConfig{Source: a.source})
	if err != nil {
		return fmt.Errorf("app: messaging service: %w", err)
	}

	fanout := notify.Multi{notify.NewLogNotifier(a.logger)}
	fanout = append(fanout, notifiers...)

	game := a.cfg.Game
	a.Auction, err = auction.New(&auction.Config{
		TotalSlots:       game.TotalSlots,
		UnitAmount:       game.UnitAmount(),
		DailyLimit:       game.DailyLimit,
		PoolShare:        game.PoolShareDecimal(),
		RoundLength:      game.RoundLength(),
		Location:         game.Location(),
		RoundRepo:        rounds,
		WalletRepo:       wallets,
		LedgerRepo:       ledger,
		MessagingService: a.Messaging,
		Notifier:         fanout,
		Clock:            a.clock,
		UUIDGenerator:    uuid.New(),
		Logger:           a.logger.With(slog.String("component", "auction")),
	})
	if err != nil {
		return fmt.Errorf("app: auction service: %w", err)
	}

	a.Restored, err = a.Auction.Restore(ctx, &auction.RestoreInput{})
	if err != nil {
		return fmt.Errorf("app: restore round: %w", err)
	}

	a.logger.InfoContext(ctx, "round ready",
		slog.Int64("round", a.Restored.Round.ID),
		slog.Bool("restored", a.Restored.Restored),
		slog.Int("active_slots", a.Restored.ActiveSlots),
		slog.Time("ends_at", a.Restored.Round.EndsAt),
	)
	return nil
}

// Simulator builds the bot traffic driver from the simulator settings
func (a *App) Simulator() (*simulator.Simulator, error) {
	sim := a.cfg.Simulator
	return simulator.New(&simulator.Config{
		Auction:            a.Auction,
		Source:             a.source,
		Interval:           sim.BidInterval(),
		PrefillProbability: sim.PrefillProbability,
		PrefillMaxBids:     sim.PrefillMaxBids,
		BotWallets:         sim.BotWallets,
		Logger:             a.logger.With(slog.String("component", "simulator")),
	})
}

// Close releases Redis and the embedded server in reverse order. It is
// safe to call more than once.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
