// Command bot runs the lowbid auction: the bot traffic simulator and, when
// a token is configured, the Discord front end.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/lowbid/internal/app"
	"github.com/KirkDiggler/lowbid/internal/config"
	"github.com/KirkDiggler/lowbid/internal/handlers/discord"
	"github.com/KirkDiggler/lowbid/internal/notify"
	"github.com/KirkDiggler/lowbid/internal/services/auction"
	"golang.org/x/sync/errgroup"
)

const settleCheckInterval = time.Second

func main() {
	configPath := flag.String("config", "lowbid.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("path", *configPath), slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := cfg.Log.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("bot exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("bot has been shut down")
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	var (
		bot       *discord.Bot
		notifiers []notify.Notifier
		directory = discord.NewDirectory()
	)

	// The notifier is built before the auction so alerts can reach Discord;
	// the bot itself needs the auction and is built after.
	session, err := discord.NewSession(cfg.Discord.Token)
	switch {
	case cfg.Discord.Token == "":
		logger.Warn("DISCORD_TOKEN not set, running simulator only")
	case err != nil:
		return err
	default:
		notifier, err := discord.NewNotifier(&discord.NotifierConfig{
			Sender:    session,
			Directory: directory,
			ChannelID: cfg.Discord.NotifyChannelID,
			Logger:    logger,
		})
		if err != nil {
			return err
		}
		notifiers = append(notifiers, notifier)
	}

	application, err := app.New(ctx, cfg, logger, &app.Options{Notifiers: notifiers})
	if err != nil {
		return err
	}
	defer application.Close()

	if session != nil {
		bot, err = discord.New(&discord.Config{
			Session:          session,
			ApplicationID:    cfg.Discord.ApplicationID,
			GuildID:          cfg.Discord.GuildID,
			AuctionService:   application.Auction,
			MessagingService: application.Messaging,
			Directory:        directory,
			Throttle:         discord.NewThrottle(discord.DefaultBidInterval),
			TotalSlots:       cfg.Game.TotalSlots,
			Logger:           logger.With(slog.String("component", "discord")),
		})
		if err != nil {
			return err
		}
		if err := bot.Start(); err != nil {
			return err
		}
		defer func() {
			if err := bot.Stop(); err != nil {
				logger.Error("error stopping bot", slog.String("error", err.Error()))
			}
		}()
	}

	g, ctx := errgroup.WithContext(ctx)

	if !cfg.Simulator.Disabled {
		sim, err := application.Simulator()
		if err != nil {
			return err
		}

		if !application.Restored.Restored {
			prefill, err := sim.Prefill(ctx)
			if err != nil {
				return err
			}
			logger.Info("board prefilled", slog.Int("slots", prefill.Slots), slog.Int("bids", prefill.Bids))
		}

		g.Go(func() error {
			return sim.Run(ctx)
		})
	} else {
		// The simulator settles rounds as it ticks; without it a plain timer does.
		g.Go(func() error {
			return settleWhenDue(ctx, application.Auction, logger)
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		return nil
	})

	return g.Wait()
}

func settleWhenDue(ctx context.Context, svc auction.Service, logger *slog.Logger) error {
	ticker := time.NewTicker(settleCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			output, err := svc.SettleRound(ctx, &auction.SettleRoundInput{})
			switch {
			case errors.Is(err, auction.ErrRoundNotOver):
			case err != nil:
				logger.Error("failed to settle round", slog.String("error", err.Error()))
			default:
				logger.Info("round settled",
					slog.Int64("round", output.Result.RoundID),
					slog.Int64("next_round", output.NextRound.ID))
			}
		}
	}
}
