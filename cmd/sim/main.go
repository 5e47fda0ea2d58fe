// Command sim plays the lowbid auction in the terminal: bots bid, a demo
// wallet joins in, and the board is printed as it evolves.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/lowbid/internal/app"
	"github.com/KirkDiggler/lowbid/internal/chance"
	"github.com/KirkDiggler/lowbid/internal/config"
	"github.com/KirkDiggler/lowbid/internal/handlers/console"
	"github.com/KirkDiggler/lowbid/internal/models"
	"github.com/KirkDiggler/lowbid/internal/notify"
	"github.com/KirkDiggler/lowbid/internal/services/auction"
	"github.com/shopspring/decimal"
)

type options struct {
	configPath string
	ticks      int
	printEvery int
	playerBids int
	interval   time.Duration
	seed       int64
	settle     bool
	verbose    bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "lowbid.yaml", "path to configuration file")
	flag.IntVar(&opts.ticks, "ticks", 60, "number of simulator ticks to run")
	flag.IntVar(&opts.printEvery, "print-every", 20, "print the board every n ticks")
	flag.IntVar(&opts.playerBids, "player-bids", 5, "bids placed by the demo wallet")
	flag.DurationVar(&opts.interval, "interval", 0, "delay between ticks")
	flag.Int64Var(&opts.seed, "seed", 0, "random seed, 0 uses the configured seed")
	flag.BoolVar(&opts.settle, "settle", true, "settle the round when the ticks run out")
	flag.BoolVar(&opts.verbose, "v", false, "log to stderr")
	flag.Parse()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if opts.seed != 0 {
		cfg.Simulator.Seed = opts.seed
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logOut := io.Discard
	if opts.verbose {
		logOut = os.Stderr
	}
	logger := cfg.Log.NewLogger(logOut)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, &opts); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "simulation failed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts *options) error {
	out := console.New()

	application, err := app.New(ctx, cfg, logger, &app.Options{
		Notifiers: []notify.Notifier{out},
	})
	if err != nil {
		return err
	}
	defer application.Close()

	sim, err := application.Simulator()
	if err != nil {
		return err
	}

	svc := application.Auction
	if !application.Restored.Restored {
		prefill, err := sim.Prefill(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("prefilled %d numbers with %d bot bids\n", prefill.Slots, prefill.Bids)
	}

	source := chance.New(&chance.Config{Seed: cfg.Simulator.Seed + 1})
	player, err := joinPlayer(ctx, svc, source)
	if err != nil {
		return err
	}

	playerEvery := 0
	if opts.playerBids > 0 {
		playerEvery = max(opts.ticks/opts.playerBids, 1)
	}

	for tick := 1; tick <= opts.ticks; tick++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if _, err := sim.Tick(ctx); err != nil {
			return err
		}

		if playerEvery > 0 && tick%playerEvery == 0 {
			placePlayerBid(ctx, svc, source, player)
		}

		if opts.printEvery > 0 && tick%opts.printEvery == 0 {
			if err := printBoard(ctx, svc, out); err != nil {
				return err
			}
		}

		if opts.interval > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(opts.interval):
			}
		}
	}

	if err := printBoard(ctx, svc, out); err != nil {
		return err
	}

	prediction, err := svc.GetPrediction(ctx, &auction.GetPredictionInput{Address: player})
	if err != nil {
		return err
	}
	out.Prediction(player, prediction)

	activity, err := svc.GetRecentActivity(ctx, &auction.GetRecentActivityInput{})
	if err != nil {
		return err
	}
	out.Activity(activity)

	if opts.settle {
		if _, err := svc.SettleRound(ctx, &auction.SettleRoundInput{Force: true}); err != nil {
			return err
		}
	}

	history, err := svc.GetHistory(ctx, &auction.GetHistoryInput{})
	if err != nil {
		return err
	}
	out.History(history)
	return nil
}

// joinPlayer connects and funds the demo wallet with alerts on
func joinPlayer(ctx context.Context, svc auction.Service, source chance.Source) (string, error) {
	address := chance.NewWalletAddress(source)

	if _, err := svc.ConnectWallet(ctx, &auction.ConnectWalletInput{Address: address}); err != nil {
		return "", err
	}

	if _, err := svc.Deposit(ctx, &auction.DepositInput{Address: address, Amount: decimal.NewFromInt(5)}); err != nil {
		return "", err
	}

	prefs := models.DefaultNotificationPreferences()
	prefs.Enabled = true
	if _, err := svc.UpdateNotificationPreferences(ctx, &auction.UpdateNotificationPreferencesInput{
		Address:     address,
		Preferences: prefs,
	}); err != nil {
		return "", err
	}

	return address, nil
}

func placePlayerBid(ctx context.Context, svc auction.Service, source chance.Source, player string) {
	round, err := svc.GetRound(ctx, &auction.GetRoundInput{})
	if err != nil {
		fmt.Printf("player bid skipped: %v\n", err)
		return
	}

	output, err := svc.PlaceBid(ctx, &auction.PlaceBidInput{
		Address: player,
		SlotID:  source.Intn(round.TotalSlots),
	})
	if err != nil {
		fmt.Printf("player bid failed: %v\n", err)
		return
	}

	fmt.Printf("you bid on #%d, now rank %d (%s), %d plays left\n",
		output.Slot.ID, output.Rank, output.Standing, output.PlaysRemaining)
}

func printBoard(ctx context.Context, svc auction.Service, out *console.Console) error {
	round, err := svc.GetRound(ctx, &auction.GetRoundInput{})
	if err != nil {
		return err
	}
	out.Round(round)

	leaderboard, err := svc.GetLeaderboard(ctx, &auction.GetLeaderboardInput{})
	if err != nil {
		return err
	}
	out.Leaderboard(leaderboard)
	return nil
}
