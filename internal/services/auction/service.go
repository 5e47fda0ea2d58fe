package auction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/lowbid/internal/board"
	"github.com/KirkDiggler/lowbid/internal/common/clock"
	"github.com/KirkDiggler/lowbid/internal/common/uuid"
	"github.com/KirkDiggler/lowbid/internal/models"
	"github.com/KirkDiggler/lowbid/internal/notify"
	"github.com/KirkDiggler/lowbid/internal/rank"
	ledgerRepo "github.com/KirkDiggler/lowbid/internal/repositories/ledger"
	roundRepo "github.com/KirkDiggler/lowbid/internal/repositories/round"
	walletRepo "github.com/KirkDiggler/lowbid/internal/repositories/wallet"
	"github.com/KirkDiggler/lowbid/internal/services/messaging"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// noLeader marks a board without any bids
const noLeader = -1

// service implements the Service interface
type service struct {
	// mu serialises every operation that touches the board, the open round
	// or a wallet. Repositories are read-modify-written under it.
	mu sync.RWMutex

	totalSlots  int
	unitAmount  decimal.Decimal
	dailyLimit  int
	poolShare   decimal.Decimal
	roundLength time.Duration
	location    *time.Location

	roundRepo        roundRepo.Repository
	walletRepo       walletRepo.Repository
	ledgerRepo       ledgerRepo.Repository
	messagingService messaging.Service
	notifier         notify.Notifier
	clock            clock.Clock
	uuidGenerator    uuid.UUID
	logger           *slog.Logger

	board    *board.Board
	round    *models.Round
	leaderID int

	// pending is set while a settlement has started but not finished
	pending *settlement
}

// New creates a new auction service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RoundRepo == nil {
		return nil, ErrNilRoundRepo
	}

	if cfg.WalletRepo == nil {
		return nil, ErrNilWalletRepo
	}

	if cfg.LedgerRepo == nil {
		return nil, ErrNilLedgerRepo
	}

	if cfg.MessagingService == nil {
		return nil, ErrNilMessagingService
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	// Set default values if not provided
	totalSlots := cfg.TotalSlots
	if totalSlots <= 0 {
		totalSlots = DefaultTotalSlots
	}

	unitAmount := cfg.UnitAmount
	if !unitAmount.IsPositive() {
		unitAmount = DefaultUnitAmount
	}

	dailyLimit := cfg.DailyLimit
	if dailyLimit <= 0 {
		dailyLimit = DefaultDailyLimit
	}

	poolShare := cfg.PoolShare
	if !poolShare.IsPositive() {
		poolShare = DefaultPoolShare
	}

	location := cfg.Location
	if location == nil {
		location = time.UTC
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	notifier := cfg.Notifier
	if notifier == nil {
		notifier = notify.NewLogNotifier(logger)
	}

	return &service{
		totalSlots:       totalSlots,
		unitAmount:       unitAmount,
		dailyLimit:       dailyLimit,
		poolShare:        poolShare,
		roundLength:      cfg.RoundLength,
		location:         location,
		roundRepo:        cfg.RoundRepo,
		walletRepo:       cfg.WalletRepo,
		ledgerRepo:       cfg.LedgerRepo,
		messagingService: cfg.MessagingService,
		notifier:         notifier,
		clock:            cfg.Clock,
		uuidGenerator:    cfg.UUIDGenerator,
		logger:           logger.With("component", "auction"),
		board:            board.New(totalSlots),
		leaderID:         noLeader,
	}, nil
}

// Restore loads the open round and its board, opening a round if none exists
func (s *service) Restore(ctx context.Context, input *RestoreInput) (*RestoreOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.roundRepo.GetCurrentRound(ctx, &roundRepo.GetCurrentRoundInput{})
	if err != nil {
		if !errors.Is(err, roundRepo.ErrRoundNotFound) {
			return nil, fmt.Errorf("failed to load current round: %w", err)
		}

		opened, err := s.openRound(ctx, s.clock.Now())
		if err != nil {
			return nil, err
		}

		s.logger.InfoContext(ctx, "opened round", "round_id", opened.ID, "ends_at", opened.EndsAt)
		return &RestoreOutput{
			Round: copyRound(opened),
		}, nil
	}

	slotsOutput, err := s.roundRepo.GetSlots(ctx, &roundRepo.GetSlotsInput{
		RoundID: current.ID,
		Size:    s.totalSlots,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load board for round %d: %w", current.ID, err)
	}

	if err := s.board.Restore(slotsOutput.Slots); err != nil {
		return nil, fmt.Errorf("failed to restore board for round %d: %w", current.ID, err)
	}

	s.round = current
	s.pending = nil
	s.leaderID = noLeader
	snapshot := s.board.Snapshot()
	if leader := rank.Leader(snapshot); leader != nil {
		s.leaderID = leader.ID
	}

	active := len(rank.RankActive(snapshot))
	s.logger.InfoContext(ctx, "restored round", "round_id", current.ID, "active_slots", active)

	return &RestoreOutput{
		Round:       copyRound(current),
		Restored:    true,
		ActiveSlots: active,
	}, nil
}

// ConnectWallet creates or reconnects a participant wallet
func (s *service) ConnectWallet(ctx context.Context, input *ConnectWalletInput) (*ConnectWalletOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if err := validateAddress(input.Address); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	created := false
	wallet, err := s.walletRepo.GetWallet(ctx, &walletRepo.GetWalletInput{
		Address: input.Address,
	})
	if err != nil {
		if !errors.Is(err, walletRepo.ErrWalletNotFound) {
			return nil, fmt.Errorf("failed to load wallet: %w", err)
		}

		created = true
		wallet = &models.Wallet{
			Address:     input.Address,
			Balance:     decimal.Zero,
			Preferences: models.DefaultNotificationPreferences(),
			ConnectedAt: s.clock.Now(),
		}
	}

	if created || !wallet.Connected {
		wallet.Connected = true
		if err := s.walletRepo.SaveWallet(ctx, &walletRepo.SaveWalletInput{Wallet: wallet}); err != nil {
			return nil, fmt.Errorf("failed to save wallet: %w", err)
		}
	}

	return &ConnectWalletOutput{
		Wallet:  wallet,
		Created: created,
	}, nil
}

// GetWallet returns a wallet's balance, plays and preferences
func (s *service) GetWallet(ctx context.Context, input *GetWalletInput) (*GetWalletOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	wallet, err := s.connectedWallet(ctx, input.Address)
	if err != nil {
		return nil, err
	}

	return &GetWalletOutput{
		Wallet:         wallet,
		PlaysRemaining: s.playsRemaining(wallet),
	}, nil
}

// Deposit credits a wallet's simulated balance
func (s *service) Deposit(ctx context.Context, input *DepositInput) (*DepositOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if !input.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	s.mu.Lock()
	output, notifications, err := s.deposit(ctx, input)
	s.mu.Unlock()

	s.deliver(ctx, notifications)
	return output, err
}

func (s *service) deposit(ctx context.Context, input *DepositInput) (*DepositOutput, []*models.Notification, error) {
	wallet, err := s.connectedWallet(ctx, input.Address)
	if err != nil {
		return nil, nil, err
	}

	wallet.Balance = wallet.Balance.Add(input.Amount)
	if err := s.walletRepo.SaveWallet(ctx, &walletRepo.SaveWalletInput{Wallet: wallet}); err != nil {
		return nil, nil, fmt.Errorf("failed to save wallet: %w", err)
	}

	notification := s.newNotification(ctx, wallet.Address, &messaging.GetNotificationMessageInput{
		Kind:   models.NotificationKindDeposit,
		Amount: input.Amount,
	})

	return &DepositOutput{
		Wallet: wallet,
	}, notificationList(notification), nil
}

// PlaceBid spends one unit from a wallet on a number. Checks run in order:
// open round, connected wallet, slot on the board, daily limit, balance.
func (s *service) PlaceBid(ctx context.Context, input *PlaceBidInput) (*PlaceBidOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	output, notifications, err := s.placeBid(ctx, input)
	s.mu.Unlock()

	s.deliver(ctx, notifications)
	return output, err
}

func (s *service) placeBid(ctx context.Context, input *PlaceBidInput) (*PlaceBidOutput, []*models.Notification, error) {
	if !s.acceptingBids() {
		return nil, nil, ErrNoActiveRound
	}

	wallet, err := s.connectedWallet(ctx, input.Address)
	if err != nil {
		return nil, nil, err
	}

	if _, err := s.board.Get(input.SlotID); err != nil {
		return nil, nil, err
	}

	if wallet.PlaysToday >= s.dailyLimit {
		return nil, nil, ErrDailyLimitReached
	}

	if wallet.Balance.LessThan(s.unitAmount) {
		return nil, nil, ErrInsufficientBalance
	}

	// The debit is persisted first so a failed write leaves the board untouched
	wallet.Balance = wallet.Balance.Sub(s.unitAmount)
	wallet.PlaysToday++
	if err := s.walletRepo.SaveWallet(ctx, &walletRepo.SaveWalletInput{Wallet: wallet}); err != nil {
		return nil, nil, fmt.Errorf("failed to save wallet: %w", err)
	}

	result, err := s.applyBid(ctx, wallet.Address, input.SlotID, false)
	if err != nil {
		if result != nil {
			return nil, result.notifications, err
		}
		return nil, nil, err
	}

	slotRank := s.rankOf(input.SlotID)
	s.logger.DebugContext(ctx, "bid placed",
		"round_id", s.round.ID,
		"slot_id", input.SlotID,
		"bidder", models.ShortAddress(wallet.Address),
		"rank", slotRank,
	)

	return &PlaceBidOutput{
		Slot:           result.slot,
		Rank:           slotRank,
		Standing:       rank.StandingFor(slotRank),
		Transaction:    result.transaction,
		Wallet:         wallet,
		PlaysRemaining: s.playsRemaining(wallet),
		LeaderChanged:  result.leaderChanged,
	}, result.notifications, nil
}

// PlaceBotBid applies a simulated bid without wallet checks
func (s *service) PlaceBotBid(ctx context.Context, input *PlaceBotBidInput) (*PlaceBotBidOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Bidder == "" {
		return nil, ErrInvalidAddress
	}

	s.mu.Lock()
	output, notifications, err := s.placeBotBid(ctx, input)
	s.mu.Unlock()

	s.deliver(ctx, notifications)
	return output, err
}

func (s *service) placeBotBid(ctx context.Context, input *PlaceBotBidInput) (*PlaceBotBidOutput, []*models.Notification, error) {
	if !s.acceptingBids() {
		return nil, nil, ErrNoActiveRound
	}

	result, err := s.applyBid(ctx, input.Bidder, input.SlotID, true)
	if err != nil {
		if result != nil {
			return nil, result.notifications, err
		}
		return nil, nil, err
	}

	return &PlaceBotBidOutput{
		Slot:          result.slot,
		Transaction:   result.transaction,
		LeaderChanged: result.leaderChanged,
	}, result.notifications, nil
}

// bidResult carries what applyBid produced
type bidResult struct {
	slot          *models.Slot
	transaction   *models.Transaction
	leaderChanged bool
	notifications []*models.Notification
}

// applyBid mutates the board, then persists the slot, the round totals and
// the transaction. The board stays authoritative if a write fails; the
// error is returned so the caller can surface it.
func (s *service) applyBid(ctx context.Context, bidder string, slotID int, simulated bool) (*bidResult, error) {
	now := s.clock.Now()

	slot, err := s.board.Bid(slotID, bidder, s.unitAmount, now)
	if err != nil {
		return nil, err
	}

	s.round.Pool = s.round.Pool.Add(s.unitAmount)
	s.round.BidCount++

	result := &bidResult{
		slot: slot,
		transaction: &models.Transaction{
			ID:        s.uuidGenerator.NewUUID(),
			RoundID:   s.round.ID,
			SlotID:    slotID,
			Bidder:    bidder,
			Amount:    s.unitAmount,
			Timestamp: now,
			Simulated: simulated,
		},
	}
	result.leaderChanged, result.notifications = s.checkLeader(ctx)

	if err := s.roundRepo.SaveSlot(ctx, &roundRepo.SaveSlotInput{
		RoundID: s.round.ID,
		Slot:    slot,
	}); err != nil {
		return result, fmt.Errorf("failed to save slot %d: %w", slotID, err)
	}

	if err := s.roundRepo.SaveRound(ctx, &roundRepo.SaveRoundInput{Round: s.round}); err != nil {
		return result, fmt.Errorf("failed to save round: %w", err)
	}

	if err := s.ledgerRepo.AddTransaction(ctx, &ledgerRepo.AddTransactionInput{
		Transaction: result.transaction,
	}); err != nil {
		return result, fmt.Errorf("failed to record transaction: %w", err)
	}

	return result, nil
}

// checkLeader tracks the rank 1 slot and builds leader-change alerts. The
// first leader of a round is recorded without an alert.
func (s *service) checkLeader(ctx context.Context) (bool, []*models.Notification) {
	leader := rank.Leader(s.board.Snapshot())
	if leader == nil {
		return false, nil
	}

	previous := s.leaderID
	s.leaderID = leader.ID
	if previous == noLeader || previous == leader.ID {
		return false, nil
	}

	s.logger.InfoContext(ctx, "new leader", "round_id", s.round.ID, "slot_id", leader.ID, "previous_slot_id", previous)

	subscribers := s.subscribers(ctx, (*models.Wallet).WantsLeaderAlerts)
	if len(subscribers) == 0 {
		return true, nil
	}

	message, err := s.messagingService.GetNotificationMessage(ctx, &messaging.GetNotificationMessageInput{
		Kind:   models.NotificationKindLeaderChange,
		SlotID: leader.ID,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to build leader message", "error", err)
		return true, nil
	}

	now := s.clock.Now()
	notifications := make([]*models.Notification, 0, len(subscribers))
	for _, wallet := range subscribers {
		notifications = append(notifications, &models.Notification{
			Kind:      models.NotificationKindLeaderChange,
			Recipient: wallet.Address,
			Title:     message.Title,
			Message:   message.Message,
			CreatedAt: now,
		})
	}

	return true, notifications
}

// GetLeaderboard returns the lowest-ranked active numbers
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	limit := input.Limit
	if limit <= 0 {
		limit = LeaderboardSize
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ranked := rank.RankActive(s.board.Snapshot())
	entries := ranked
	if len(entries) > limit {
		entries = entries[:limit]
	}

	return &GetLeaderboardOutput{
		Entries:     entries,
		TotalActive: len(ranked),
	}, nil
}

// GetPositions returns every active number a wallet currently holds
func (s *service) GetPositions(ctx context.Context, input *GetPositionsInput) (*GetPositionsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	entries := []*models.RankedSlot{}
	if input.Address == "" {
		return &GetPositionsOutput{Entries: entries}, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, entry := range rank.RankActive(s.board.Snapshot()) {
		if entry.LastBidder == input.Address {
			entries = append(entries, entry)
		}
	}

	return &GetPositionsOutput{
		Entries: entries,
	}, nil
}

// GetPrediction summarises a wallet's chances this round
func (s *service) GetPrediction(ctx context.Context, input *GetPredictionInput) (*GetPredictionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.RLock()
	positions := rank.PositionsFor(s.board.Snapshot(), input.Address)
	s.mu.RUnlock()

	output := &GetPredictionOutput{
		Positions: positions,
		Standing:  rank.StandingOutranked,
	}

	if len(positions.Entries) > 0 {
		best := positions.Entries[0]
		output.Best = best
		output.Standing = rank.StandingFor(best.Rank)
		output.WinLikelihood = best.WinLikelihood
	}

	return output, nil
}

// GetRound returns the open round with its pool and time remaining
func (s *service) GetRound(ctx context.Context, input *GetRoundInput) (*GetRoundOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.round == nil {
		return nil, ErrNoActiveRound
	}

	prize, fee := s.split(s.round.Pool)
	remaining := s.round.EndsAt.Sub(s.clock.Now())
	if remaining < 0 {
		remaining = 0
	}

	return &GetRoundOutput{
		Round:          copyRound(s.round),
		EstimatedPrize: prize,
		ProtocolFee:    fee,
		TimeRemaining:  remaining,
		ActiveSlots:    len(rank.RankActive(s.board.Snapshot())),
		TotalSlots:     s.totalSlots,
		UnitAmount:     s.unitAmount,
		DailyLimit:     s.dailyLimit,
		Settling:       s.pending != nil,
	}, nil
}

// GetRecentActivity returns the newest bids
func (s *service) GetRecentActivity(ctx context.Context, input *GetRecentActivityInput) (*GetRecentActivityOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultRecentActivityLimit
	}

	output, err := s.ledgerRepo.GetRecentTransactions(ctx, &ledgerRepo.GetRecentTransactionsInput{
		Limit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get recent activity: %w", err)
	}

	return &GetRecentActivityOutput{
		Transactions: output.Transactions,
	}, nil
}

// GetHistory returns settled rounds, newest first
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	output, err := s.ledgerRepo.GetHistory(ctx, &ledgerRepo.GetHistoryInput{
		Limit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	return &GetHistoryOutput{
		Results: output.Results,
	}, nil
}

// UpdateNotificationPreferences changes which alerts a wallet receives
func (s *service) UpdateNotificationPreferences(ctx context.Context, input *UpdateNotificationPreferencesInput) (*UpdateNotificationPreferencesOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	output, notifications, err := s.updateNotificationPreferences(ctx, input)
	s.mu.Unlock()

	s.deliver(ctx, notifications)
	return output, err
}

func (s *service) updateNotificationPreferences(ctx context.Context, input *UpdateNotificationPreferencesInput) (*UpdateNotificationPreferencesOutput, []*models.Notification, error) {
	wallet, err := s.connectedWallet(ctx, input.Address)
	if err != nil {
		return nil, nil, err
	}

	wasEnabled := wallet.Preferences.Enabled
	wallet.Preferences = input.Preferences
	if err := s.walletRepo.SaveWallet(ctx, &walletRepo.SaveWalletInput{Wallet: wallet}); err != nil {
		return nil, nil, fmt.Errorf("failed to save wallet: %w", err)
	}

	var notifications []*models.Notification
	if !wasEnabled && wallet.Preferences.Enabled {
		notifications = notificationList(s.newNotification(ctx, wallet.Address, &messaging.GetNotificationMessageInput{
			Kind: models.NotificationKindEnabled,
		}))
	}

	return &UpdateNotificationPreferencesOutput{
		Wallet: wallet,
	}, notifications, nil
}

// connectedWallet loads a wallet and requires it to be connected
func (s *service) connectedWallet(ctx context.Context, address string) (*models.Wallet, error) {
	if address == "" {
		return nil, ErrWalletNotConnected
	}

	wallet, err := s.walletRepo.GetWallet(ctx, &walletRepo.GetWalletInput{
		Address: address,
	})
	if err != nil {
		if errors.Is(err, walletRepo.ErrWalletNotFound) {
			return nil, ErrWalletNotConnected
		}
		return nil, fmt.Errorf("failed to load wallet: %w", err)
	}

	if !wallet.Connected {
		return nil, ErrWalletNotConnected
	}

	return wallet, nil
}

// subscribers lists wallets matching the alert filter. Failures are logged
// and yield no subscribers.
func (s *service) subscribers(ctx context.Context, wants func(*models.Wallet) bool) []*models.Wallet {
	output, err := s.walletRepo.ListWallets(ctx, &walletRepo.ListWalletsInput{})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to list wallets for alerts", "error", err)
		return nil
	}

	var matched []*models.Wallet
	for _, wallet := range output.Wallets {
		if wallet.Connected && wants(wallet) {
			matched = append(matched, wallet)
		}
	}
	return matched
}

// newNotification builds a notification for one recipient, nil when the
// message cannot be produced
func (s *service) newNotification(ctx context.Context, recipient string, input *messaging.GetNotificationMessageInput) *models.Notification {
	message, err := s.messagingService.GetNotificationMessage(ctx, input)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to build notification", "kind", input.Kind, "error", err)
		return nil
	}

	return &models.Notification{
		Kind:      input.Kind,
		Recipient: recipient,
		Title:     message.Title,
		Message:   message.Message,
		CreatedAt: s.clock.Now(),
	}
}

// deliver sends notifications outside the service lock. Delivery failures
// never fail the operation that produced them.
func (s *service) deliver(ctx context.Context, notifications []*models.Notification) {
	for _, notification := range notifications {
		if err := s.notifier.Notify(ctx, notification); err != nil {
			s.logger.WarnContext(ctx, "failed to deliver notification",
				"kind", notification.Kind,
				"recipient", models.ShortAddress(notification.Recipient),
				"error", err,
			)
		}
	}
}

// acceptingBids reports whether the open round can take bids. A round
// part way through settlement takes none.
func (s *service) acceptingBids() bool {
	return s.round != nil && s.round.Status.IsOpen() && s.pending == nil
}

// rankOf returns the current rank of a slot, 0 when it has no bids
func (s *service) rankOf(slotID int) int {
	for _, entry := range rank.RankActive(s.board.Snapshot()) {
		if entry.ID == slotID {
			return entry.Rank
		}
	}
	return 0
}

func (s *service) playsRemaining(wallet *models.Wallet) int {
	remaining := s.dailyLimit - wallet.PlaysToday
	if remaining < 0 {
		return 0
	}
	return remaining
}

// split divides a pool into the prize and the protocol fee. The prize is
// truncated to cents and the fee takes the remainder.
func (s *service) split(pool decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	prize := pool.Mul(s.poolShare).Truncate(2)
	return prize, pool.Sub(prize)
}

// validateAddress accepts full hex addresses and opaque display tokens.
// Anything shaped like a full address must be valid hex.
func validateAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return ErrInvalidAddress
	}

	if len(address) == 2+2*common.AddressLength && strings.HasPrefix(address, "0x") {
		if !common.IsHexAddress(address) {
			return fmt.Errorf("%w: %s", ErrInvalidAddress, address)
		}
	}

	return nil
}

func copyRound(round *models.Round) *models.Round {
	if round == nil {
		return nil
	}
	clone := *round
	return &clone
}

func notificationList(notification *models.Notification) []*models.Notification {
	if notification == nil {
		return nil
	}
	return []*models.Notification{notification}
}
