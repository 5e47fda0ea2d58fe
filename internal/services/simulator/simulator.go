// Package simulator drives simulated bidding traffic against the auction:
// a one-off prefill of the board and a steady stream of bot bids, settling
// the round once its end time has passed.
package simulator

//go:generate mockgen -package=mocks -destination=mocks/mock_auction.go github.com/KirkDiggler/lowbid/internal/services/simulator Auction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/lowbid/internal/chance"
	"github.com/KirkDiggler/lowbid/internal/services/auction"
)

// Defaults taken from the live game
const (
	DefaultInterval           = 3500 * time.Millisecond
	DefaultPrefillProbability = 0.30
	DefaultPrefillMaxBids     = 5
	DefaultBotWallets         = 25
)

// Auction is the part of the auction service the simulator drives
type Auction interface {
	PlaceBotBid(ctx context.Context, input *auction.PlaceBotBidInput) (*auction.PlaceBotBidOutput, error)
	GetRound(ctx context.Context, input *auction.GetRoundInput) (*auction.GetRoundOutput, error)
	SettleRound(ctx context.Context, input *auction.SettleRoundInput) (*auction.SettleRoundOutput, error)
}

// Config holds configuration for the simulator
type Config struct {
	Auction Auction

	// Source drives every random choice, defaults to a time-seeded source
	Source chance.Source

	// Interval between bot bids
	Interval time.Duration

	// PrefillProbability is the chance each slot is seeded by Prefill
	PrefillProbability float64

	// PrefillMaxBids caps the bids placed on a seeded slot
	PrefillMaxBids int

	// BotWallets is the number of simulated bidders
	BotWallets int

	Logger *slog.Logger
}

// Simulator places bot bids on a fixed interval
type Simulator struct {
	auction            Auction
	source             chance.Source
	interval           time.Duration
	prefillProbability float64
	prefillMaxBids     int
	bots               []string
	logger             *slog.Logger
}

// PrefillOutput reports what Prefill placed
type PrefillOutput struct {
	// Slots is the number of slots seeded
	Slots int

	// Bids is the number of bids placed
	Bids int
}

// TickOutput reports what a single tick did
type TickOutput struct {
	// Bid is set when the tick placed a bid
	Bid *auction.PlaceBotBidOutput

	// Settled is set when the tick settled the round
	Settled *auction.SettleRoundOutput
}

// New creates a new simulator
func New(cfg *Config) (*Simulator, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Auction == nil {
		return nil, errors.New("auction cannot be nil")
	}

	source := cfg.Source
	if source == nil {
		source = chance.New(nil)
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	probability := cfg.PrefillProbability
	if probability <= 0 {
		probability = DefaultPrefillProbability
	}

	maxBids := cfg.PrefillMaxBids
	if maxBids <= 0 {
		maxBids = DefaultPrefillMaxBids
	}

	botCount := cfg.BotWallets
	if botCount <= 0 {
		botCount = DefaultBotWallets
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	bots := make([]string, botCount)
	for i := range bots {
		bots[i] = chance.NewWalletAddress(source)
	}

	return &Simulator{
		auction:            cfg.Auction,
		source:             source,
		interval:           interval,
		prefillProbability: probability,
		prefillMaxBids:     maxBids,
		bots:               bots,
		logger:             logger.With("component", "simulator"),
	}, nil
}

// Bots returns the simulated bidder addresses
func (s *Simulator) Bots() []string {
	bots := make([]string, len(s.bots))
	copy(bots, s.bots)
	return bots
}

// Prefill seeds roughly PrefillProbability of the board with 1..PrefillMaxBids
// bot bids each, so a fresh round does not start empty
func (s *Simulator) Prefill(ctx context.Context) (*PrefillOutput, error) {
	round, err := s.auction.GetRound(ctx, &auction.GetRoundInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get round: %w", err)
	}

	output := &PrefillOutput{}
	for slotID := 0; slotID < round.TotalSlots; slotID++ {
		if s.source.Float64() >= s.prefillProbability {
			continue
		}

		output.Slots++
		bids := chance.Between(s.source, 1, s.prefillMaxBids)
		for i := 0; i < bids; i++ {
			if _, err := s.auction.PlaceBotBid(ctx, &auction.PlaceBotBidInput{
				Bidder: s.randomBot(),
				SlotID: slotID,
			}); err != nil {
				return output, fmt.Errorf("failed to prefill slot %d: %w", slotID, err)
			}
			output.Bids++
		}
	}

	s.logger.InfoContext(ctx, "prefilled board", "round_id", round.Round.ID, "slots", output.Slots, "bids", output.Bids)
	return output, nil
}

// Tick settles the round when its end time has passed, otherwise places one
// bot bid on a random slot
func (s *Simulator) Tick(ctx context.Context) (*TickOutput, error) {
	round, err := s.auction.GetRound(ctx, &auction.GetRoundInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get round: %w", err)
	}

	if round.TimeRemaining <= 0 || round.Settling {
		settled, err := s.auction.SettleRound(ctx, &auction.SettleRoundInput{})
		if err != nil {
			return nil, fmt.Errorf("failed to settle round %d: %w", round.Round.ID, err)
		}
		return &TickOutput{Settled: settled}, nil
	}

	bid, err := s.auction.PlaceBotBid(ctx, &auction.PlaceBotBidInput{
		Bidder: s.randomBot(),
		SlotID: s.source.Intn(round.TotalSlots),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to place bot bid: %w", err)
	}

	return &TickOutput{Bid: bid}, nil
}

// Run ticks every interval until ctx is done. Ticks run on this goroutine
// and never overlap; tick errors are logged and the loop carries on.
func (s *Simulator) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.InfoContext(ctx, "simulator started", "interval", s.interval, "bots", len(s.bots))

	for {
		select {
		case <-ctx.Done():
			s.logger.InfoContext(ctx, "simulator stopped")
			return nil
		case <-ticker.C:
			output, err := s.Tick(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				s.logger.WarnContext(ctx, "simulator tick failed", "error", err)
				continue
			}
			if output.Settled != nil {
				s.logger.InfoContext(ctx, "round settled by simulator",
					"round_id", output.Settled.Result.RoundID,
					"next_round_id", output.Settled.NextRound.ID,
				)
			}
		}
	}
}

func (s *Simulator) randomBot() string {
	return s.bots[s.source.Intn(len(s.bots))]
}
