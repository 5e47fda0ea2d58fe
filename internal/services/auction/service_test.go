package auction

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/lowbid/internal/chance"
	clockMocks "github.com/KirkDiggler/lowbid/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/lowbid/internal/common/uuid/mocks"
	"github.com/KirkDiggler/lowbid/internal/models"
	"github.com/KirkDiggler/lowbid/internal/rank"
	ledgerRepo "github.com/KirkDiggler/lowbid/internal/repositories/ledger"
	roundRepo "github.com/KirkDiggler/lowbid/internal/repositories/round"
	walletRepo "github.com/KirkDiggler/lowbid/internal/repositories/wallet"
	"github.com/KirkDiggler/lowbid/internal/services/messaging"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// recordingNotifier keeps every delivered notification
type recordingNotifier struct {
	mu            sync.Mutex
	notifications []*models.Notification
}

func (r *recordingNotifier) Notify(ctx context.Context, notification *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, notification)
	return nil
}

func (r *recordingNotifier) byKind(kind models.NotificationKind) []*models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*models.Notification
	for _, n := range r.notifications {
		if n.Kind == kind {
			matched = append(matched, n)
		}
	}
	return matched
}

// flakyRoundRepo fails ClearSlots a set number of times
type flakyRoundRepo struct {
	roundRepo.Repository
	clearFailures int
}

func (f *flakyRoundRepo) ClearSlots(ctx context.Context, input *roundRepo.ClearSlotsInput) error {
	if f.clearFailures > 0 {
		f.clearFailures--
		return errors.New("clear failed")
	}
	return f.Repository.ClearSlots(ctx, input)
}

type AuctionServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *clockMocks.MockClock
	mockUUID  *uuidMocks.MockUUID
	mr        *miniredis.Miniredis
	client    *redis.Client
	notifier  *recordingNotifier
	service   *service
	ctx       context.Context

	// Test data
	now        time.Time
	uuidCount  int
	testWallet string
	otherBot   string

	roundRepo  roundRepo.Repository
	walletRepo walletRepo.Repository
	ledgerRepo ledgerRepo.Repository
}

func (s *AuctionServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	s.now = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	s.uuidCount = 0
	s.testWallet = "0x71C7656EC7ab88b098defB751B7401B5f6d89A23"
	s.otherBot = "0x00000000000000000000000000000000000000b0"

	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		s.uuidCount++
		return fmt.Sprintf("tx-%d", s.uuidCount)
	}).AnyTimes()

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})

	s.roundRepo, err = roundRepo.NewRedis(&roundRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.walletRepo, err = walletRepo.NewRedis(&walletRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.ledgerRepo, err = ledgerRepo.NewRedis(&ledgerRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	s.service = s.newService(nil)
}

func (s *AuctionServiceTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
	s.mockCtrl.Finish()
}

func TestAuctionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuctionServiceTestSuite))
}

// newService builds a restored service over the shared Redis
func (s *AuctionServiceTestSuite) newService(mutate func(*Config)) *service {
	messagingService, err := messaging.NewService(&messaging.ServiceConfig{
		Source: chance.New(&chance.Config{Seed: 1}),
	})
	s.Require().NoError(err)

	s.notifier = &recordingNotifier{}
	cfg := &Config{
		TotalSlots:       1441,
		UnitAmount:       decimal.RequireFromString("0.01"),
		DailyLimit:       100,
		PoolShare:        decimal.RequireFromString("0.90"),
		RoundRepo:        s.roundRepo,
		WalletRepo:       s.walletRepo,
		LedgerRepo:       s.ledgerRepo,
		MessagingService: messagingService,
		Notifier:         s.notifier,
		Clock:            s.mockClock,
		UUIDGenerator:    s.mockUUID,
	}
	if mutate != nil {
		mutate(cfg)
	}

	svc, err := New(cfg)
	s.Require().NoError(err)

	_, err = svc.Restore(s.ctx, &RestoreInput{})
	s.Require().NoError(err)
	return svc
}

// fundedWallet connects the test wallet and deposits amount
func (s *AuctionServiceTestSuite) fundedWallet(amount string) {
	_, err := s.service.ConnectWallet(s.ctx, &ConnectWalletInput{Address: s.testWallet})
	s.Require().NoError(err)

	_, err = s.service.Deposit(s.ctx, &DepositInput{
		Address: s.testWallet,
		Amount:  decimal.RequireFromString(amount),
	})
	s.Require().NoError(err)
}

func (s *AuctionServiceTestSuite) botBid(bidder string, slotID int) *PlaceBotBidOutput {
	output, err := s.service.PlaceBotBid(s.ctx, &PlaceBotBidInput{Bidder: bidder, SlotID: slotID})
	s.Require().NoError(err)
	return output
}

func (s *AuctionServiceTestSuite) TestNewValidatesDependencies() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{})
	s.Equal(ErrNilRoundRepo, err)

	_, err = New(&Config{RoundRepo: s.roundRepo, WalletRepo: s.walletRepo, LedgerRepo: s.ledgerRepo})
	s.Equal(ErrNilMessagingService, err)
}

func (s *AuctionServiceTestSuite) TestRestoreOpensFirstRound() {
	output, err := s.service.GetRound(s.ctx, &GetRoundInput{})
	s.Require().NoError(err)

	s.Equal(int64(1024), output.Round.ID)
	s.Equal(models.RoundStatusOpen, output.Round.Status)
	s.Equal(time.Date(2025, 4, 6, 0, 0, 0, 0, time.UTC), output.Round.EndsAt)
	s.Equal(14*time.Hour, output.TimeRemaining)
	s.Equal(1441, output.TotalSlots)
	s.Zero(output.ActiveSlots)
}

func (s *AuctionServiceTestSuite) TestFixedRoundLength() {
	// Start from an empty store so the midnight round from SetupTest is not restored
	s.mr.FlushAll()

	svc := s.newService(func(cfg *Config) {
		cfg.RoundLength = 10 * time.Minute
	})

	output, err := svc.GetRound(s.ctx, &GetRoundInput{})
	s.Require().NoError(err)
	s.Equal(s.now.Add(10*time.Minute), output.Round.EndsAt)
}

func (s *AuctionServiceTestSuite) TestConnectWallet() {
	output, err := s.service.ConnectWallet(s.ctx, &ConnectWalletInput{Address: s.testWallet})
	s.Require().NoError(err)
	s.True(output.Created)
	s.True(output.Wallet.Connected)
	s.True(output.Wallet.Balance.IsZero())
	s.Equal(models.DefaultNotificationPreferences(), output.Wallet.Preferences)

	output, err = s.service.ConnectWallet(s.ctx, &ConnectWalletInput{Address: s.testWallet})
	s.Require().NoError(err)
	s.False(output.Created)
}

func (s *AuctionServiceTestSuite) TestConnectWalletAddressValidation() {
	_, err := s.service.ConnectWallet(s.ctx, &ConnectWalletInput{Address: ""})
	s.ErrorIs(err, ErrInvalidAddress)

	_, err = s.service.ConnectWallet(s.ctx, &ConnectWalletInput{Address: "0xZZC7656EC7ab88b098defB751B7401B5f6d89A23"})
	s.ErrorIs(err, ErrInvalidAddress)

	// Display tokens are opaque identifiers
	_, err = s.service.ConnectWallet(s.ctx, &ConnectWalletInput{Address: "0x71C...9A23"})
	s.NoError(err)
}

func (s *AuctionServiceTestSuite) TestDeposit() {
	_, err := s.service.Deposit(s.ctx, &DepositInput{Address: s.testWallet, Amount: decimal.NewFromInt(5)})
	s.ErrorIs(err, ErrWalletNotConnected)

	_, err = s.service.ConnectWallet(s.ctx, &ConnectWalletInput{Address: s.testWallet})
	s.Require().NoError(err)

	_, err = s.service.Deposit(s.ctx, &DepositInput{Address: s.testWallet, Amount: decimal.Zero})
	s.ErrorIs(err, ErrInvalidAmount)

	output, err := s.service.Deposit(s.ctx, &DepositInput{Address: s.testWallet, Amount: decimal.NewFromInt(20)})
	s.Require().NoError(err)
	s.Equal("20", output.Wallet.Balance.String())

	deposits := s.notifier.byKind(models.NotificationKindDeposit)
	s.Require().Len(deposits, 1)
	s.Equal(messaging.TitleDepositConfirmed, deposits[0].Title)
	s.Equal(s.testWallet, deposits[0].Recipient)
}

func (s *AuctionServiceTestSuite) TestPlaceBid() {
	s.fundedWallet("1")

	output, err := s.service.PlaceBid(s.ctx, &PlaceBidInput{Address: s.testWallet, SlotID: 42})
	s.Require().NoError(err)

	s.Equal(42, output.Slot.ID)
	s.Equal("0.01", output.Slot.TotalAmount.String())
	s.Equal(s.testWallet, output.Slot.LastBidder)
	s.Equal(s.now, output.Slot.LastBidTime)
	s.Equal(1, output.Rank)
	s.Equal(rank.StandingLeading, output.Standing)
	s.Equal("0.99", output.Wallet.Balance.String())
	s.Equal(1, output.Wallet.PlaysToday)
	s.Equal(99, output.PlaysRemaining)
	s.Equal("tx-1", output.Transaction.ID)
	s.False(output.Transaction.Simulated)
	s.False(output.LeaderChanged)

	round, err := s.service.GetRound(s.ctx, &GetRoundInput{})
	s.Require().NoError(err)
	s.Equal("0.01", round.Round.Pool.String())
	s.Equal(1, round.Round.BidCount)

	// Persisted for the next restart
	slots, err := s.roundRepo.GetSlots(s.ctx, &roundRepo.GetSlotsInput{RoundID: 1024, Size: 1441})
	s.Require().NoError(err)
	s.Equal("0.01", slots.Slots[42].TotalAmount.String())
}

func (s *AuctionServiceTestSuite) TestPlaceBidRejections() {
	_, err := s.service.PlaceBid(s.ctx, &PlaceBidInput{Address: s.testWallet, SlotID: 1})
	s.ErrorIs(err, ErrWalletNotConnected)

	_, err = s.service.ConnectWallet(s.ctx, &ConnectWalletInput{Address: s.testWallet})
	s.Require().NoError(err)

	_, err = s.service.PlaceBid(s.ctx, &PlaceBidInput{Address: s.testWallet, SlotID: 1})
	s.ErrorIs(err, ErrInsufficientBalance)

	_, err = s.service.Deposit(s.ctx, &DepositInput{Address: s.testWallet, Amount: decimal.NewFromInt(5)})
	s.Require().NoError(err)

	_, err = s.service.PlaceBid(s.ctx, &PlaceBidInput{Address: s.testWallet, SlotID: 1441})
	s.ErrorIs(err, ErrSlotNotFound)

	_, err = s.service.PlaceBid(s.ctx, &PlaceBidInput{Address: s.testWallet, SlotID: -1})
	s.ErrorIs(err, ErrSlotNotFound)

	// Nothing moved
	wallet, err := s.service.GetWallet(s.ctx, &GetWalletInput{Address: s.testWallet})
	s.Require().NoError(err)
	s.Equal("5", wallet.Wallet.Balance.String())
	s.Zero(wallet.Wallet.PlaysToday)

	board, err := s.service.GetLeaderboard(s.ctx, &GetLeaderboardInput{})
	s.Require().NoError(err)
	s.Zero(board.TotalActive)
}

func (s *AuctionServiceTestSuite) TestDailyLimit() {
	s.service = s.newService(func(cfg *Config) {
		cfg.DailyLimit = 2
	})
	s.fundedWallet("1")

	for i := 0; i < 2; i++ {
		_, err := s.service.PlaceBid(s.ctx, &PlaceBidInput{Address: s.testWallet, SlotID: i})
		s.Require().NoError(err)
	}

	_, err := s.service.PlaceBid(s.ctx, &PlaceBidInput{Address: s.testWallet, SlotID: 3})
	s.ErrorIs(err, ErrDailyLimitReached)
}

func (s *AuctionServiceTestSuite) TestPlaceBotBid() {
	_, err := s.service.PlaceBotBid(s.ctx, &PlaceBotBidInput{Bidder: "", SlotID: 1})
	s.ErrorIs(err, ErrInvalidAddress)

	_, err = s.service.PlaceBotBid(s.ctx, &PlaceBotBidInput{Bidder: s.otherBot, SlotID: 5000})
	s.ErrorIs(err, ErrSlotNotFound)

	output := s.botBid(s.otherBot, 9)
	s.True(output.Transaction.Simulated)
	s.Equal(s.otherBot, output.Slot.LastBidder)
}

func (s *AuctionServiceTestSuite) TestLeaderChangeAlerts() {
	_, err := s.service.ConnectWallet(s.ctx, &ConnectWalletInput{Address: s.testWallet})
	s.Require().NoError(err)

	_, err = s.service.UpdateNotificationPreferences(s.ctx, &UpdateNotificationPreferencesInput{
		Address: s.testWallet,
		Preferences: models.NotificationPreferences{
			Enabled:        true,
			Top10Alerts:    true,
			RoundEndAlerts: true,
		},
	})
	s.Require().NoError(err)
	s.Len(s.notifier.byKind(models.NotificationKindEnabled), 1)

	// The first leader of a round is not an alert
	s.False(s.botBid(s.otherBot, 5).LeaderChanged)
	s.Empty(s.notifier.byKind(models.NotificationKindLeaderChange))

	// Equal totals keep board order, so #3 overtakes #5
	s.True(s.botBid(s.otherBot, 3).LeaderChanged)

	// #3 now costs more than #5
	s.True(s.botBid(s.otherBot, 3).LeaderChanged)

	// Raising a non-leader changes nothing at the top
	s.False(s.botBid(s.otherBot, 700).LeaderChanged)

	alerts := s.notifier.byKind(models.NotificationKindLeaderChange)
	s.Require().Len(alerts, 2)
	s.Equal(messaging.TitleNewLeader, alerts[0].Title)
	s.Equal(s.testWallet, alerts[0].Recipient)
	s.Contains(alerts[0].Message, "#3")
	s.Contains(alerts[1].Message, "#5")
}

func (s *AuctionServiceTestSuite) TestLeaderChangeWithoutSubscribers() {
	_, err := s.service.ConnectWallet(s.ctx, &ConnectWalletInput{Address: s.testWallet})
	s.Require().NoError(err)

	s.botBid(s.otherBot, 5)
	s.True(s.botBid(s.otherBot, 3).LeaderChanged)
	s.Empty(s.notifier.byKind(models.NotificationKindLeaderChange))
}

func (s *AuctionServiceTestSuite) TestLeaderboardAndPositions() {
	s.fundedWallet("1")

	for _, slotID := range []int{10, 20, 30} {
		_, err := s.service.PlaceBid(s.ctx, &PlaceBidInput{Address: s.testWallet, SlotID: slotID})
		s.Require().NoError(err)
	}
	s.botBid(s.otherBot, 10)
	s.botBid(s.otherBot, 20)
	s.botBid(s.otherBot, 20)
	s.botBid(s.otherBot, 40)

	leaderboard, err := s.service.GetLeaderboard(s.ctx, &GetLeaderboardInput{Limit: 2})
	s.Require().NoError(err)
	s.Equal(4, leaderboard.TotalActive)
	s.Require().Len(leaderboard.Entries, 2)
	s.Equal(30, leaderboard.Entries[0].ID)
	s.Equal(40, leaderboard.Entries[1].ID)

	positions, err := s.service.GetPositions(s.ctx, &GetPositionsInput{Address: s.testWallet})
	s.Require().NoError(err)
	s.Require().Len(positions.Entries, 1)
	s.Equal(30, positions.Entries[0].ID)
	s.Equal(1, positions.Entries[0].Rank)

	prediction, err := s.service.GetPrediction(s.ctx, &GetPredictionInput{Address: s.testWallet})
	s.Require().NoError(err)
	s.Equal(1, prediction.Positions.TotalActive)
	s.Equal(1, prediction.Positions.LeadingCount)
	s.Equal(rank.StandingLeading, prediction.Standing)
	s.Equal(98.5, prediction.WinLikelihood)

	prediction, err = s.service.GetPrediction(s.ctx, &GetPredictionInput{Address: "0xnobody"})
	s.Require().NoError(err)
	s.Nil(prediction.Best)
	s.Equal(rank.StandingOutranked, prediction.Standing)
	s.Zero(prediction.WinLikelihood)
}

func (s *AuctionServiceTestSuite) TestRecentActivity() {
	for i := 0; i < 12; i++ {
		s.botBid(s.otherBot, i)
	}

	output, err := s.service.GetRecentActivity(s.ctx, &GetRecentActivityInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Transactions, DefaultRecentActivityLimit)
	s.Equal(11, output.Transactions[0].SlotID)
	s.Equal("tx-12", output.Transactions[0].ID)
}

func (s *AuctionServiceTestSuite) TestSettleRound() {
	s.fundedWallet("1")
	_, err := s.service.UpdateNotificationPreferences(s.ctx, &UpdateNotificationPreferencesInput{
		Address:     s.testWallet,
		Preferences: models.NotificationPreferences{Enabled: true, RoundEndAlerts: true},
	})
	s.Require().NoError(err)

	_, err = s.service.PlaceBid(s.ctx, &PlaceBidInput{Address: s.testWallet, SlotID: 7})
	s.Require().NoError(err)
	s.botBid(s.otherBot, 8)
	s.botBid(s.otherBot, 8)

	_, err = s.service.SettleRound(s.ctx, &SettleRoundInput{})
	s.ErrorIs(err, ErrRoundNotOver)

	s.now = time.Date(2025, 4, 6, 0, 0, 1, 0, time.UTC)
	output, err := s.service.SettleRound(s.ctx, &SettleRoundInput{})
	s.Require().NoError(err)

	result := output.Result
	s.Equal(int64(1024), result.RoundID)
	s.Equal("2025-04-06", result.Date)
	s.Equal(7, result.WinningNumber)
	s.Equal("0.01", result.WinningAmount.String())
	s.Equal(s.testWallet, result.Winner)
	s.Equal("0.02", result.PrizePool.String())
	s.Equal("0.01", result.ProtocolFee.String())
	s.Equal(2, result.TotalParticipants)

	s.Equal(int64(1025), output.NextRound.ID)
	s.Equal(time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC), output.NextRound.EndsAt)

	// Winner credited, plays reset
	wallet, err := s.service.GetWallet(s.ctx, &GetWalletInput{Address: s.testWallet})
	s.Require().NoError(err)
	s.Equal("1.01", wallet.Wallet.Balance.String())
	s.Zero(wallet.Wallet.PlaysToday)

	// Board cleared
	leaderboard, err := s.service.GetLeaderboard(s.ctx, &GetLeaderboardInput{})
	s.Require().NoError(err)
	s.Zero(leaderboard.TotalActive)

	history, err := s.service.GetHistory(s.ctx, &GetHistoryInput{})
	s.Require().NoError(err)
	s.Require().Len(history.Results, 1)
	s.Equal(7, history.Results[0].WinningNumber)

	settled := s.notifier.byKind(models.NotificationKindRoundSettled)
	s.Require().Len(settled, 1)
	s.Empty(settled[0].Recipient)

	won := s.notifier.byKind(models.NotificationKindRoundWon)
	s.Require().Len(won, 1)
	s.Equal(s.testWallet, won[0].Recipient)
}

func (s *AuctionServiceTestSuite) TestSettleRetryPaysWinnerOnce() {
	flaky := &flakyRoundRepo{Repository: s.roundRepo, clearFailures: 1}
	s.service = s.newService(func(cfg *Config) {
		cfg.RoundRepo = flaky
	})

	s.fundedWallet("1")
	_, err := s.service.PlaceBid(s.ctx, &PlaceBidInput{Address: s.testWallet, SlotID: 7})
	s.Require().NoError(err)
	for i := 0; i < 20; i++ {
		s.botBid(s.otherBot, 8)
	}

	_, err = s.service.SettleRound(s.ctx, &SettleRoundInput{Force: true})
	s.Require().Error(err)

	output, err := s.service.SettleRound(s.ctx, &SettleRoundInput{Force: true})
	s.Require().NoError(err)
	s.Equal(int64(1024), output.Result.RoundID)
	s.Equal(2, output.Result.TotalParticipants)
	s.Equal("0.18", output.Result.PrizePool.String())

	wallet, err := s.service.GetWallet(s.ctx, &GetWalletInput{Address: s.testWallet})
	s.Require().NoError(err)
	s.Equal("1.17", wallet.Wallet.Balance.String())

	history, err := s.service.GetHistory(s.ctx, &GetHistoryInput{})
	s.Require().NoError(err)
	s.Len(history.Results, 1)
}

func (s *AuctionServiceTestSuite) TestSettleAfterRestartKeepsRecordedResult() {
	s.fundedWallet("1")
	_, err := s.service.PlaceBid(s.ctx, &PlaceBidInput{Address: s.testWallet, SlotID: 7})
	s.Require().NoError(err)

	// The result was written but the process stopped before the round was closed
	err = s.ledgerRepo.AddRoundResult(s.ctx, &ledgerRepo.AddRoundResultInput{Result: &models.RoundResult{
		RoundID:           1024,
		WinningNumber:     7,
		Winner:            s.testWallet,
		PrizePool:         decimal.RequireFromString("0.50"),
		TotalParticipants: 1,
	}})
	s.Require().NoError(err)

	restarted := s.newService(nil)
	output, err := restarted.SettleRound(s.ctx, &SettleRoundInput{Force: true})
	s.Require().NoError(err)
	s.Equal("0.5", output.Result.PrizePool.String())
	s.Equal(int64(1025), output.NextRound.ID)

	wallet, err := restarted.GetWallet(s.ctx, &GetWalletInput{Address: s.testWallet})
	s.Require().NoError(err)
	s.Equal("0.99", wallet.Wallet.Balance.String())
}

func (s *AuctionServiceTestSuite) TestReadersDuringSettlement() {
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			_, _ = s.service.PlaceBotBid(s.ctx, &PlaceBotBidInput{Bidder: s.otherBot, SlotID: i})
			_, _ = s.service.SettleRound(s.ctx, &SettleRoundInput{Force: true})
		}
	}()

	for i := 0; i < 50; i++ {
		leaderboard, err := s.service.GetLeaderboard(s.ctx, &GetLeaderboardInput{})
		s.Require().NoError(err)
		s.LessOrEqual(leaderboard.TotalActive, 1)

		positions, err := s.service.GetPositions(s.ctx, &GetPositionsInput{Address: s.otherBot})
		s.Require().NoError(err)
		s.LessOrEqual(len(positions.Entries), 1)

		_, err = s.service.GetPrediction(s.ctx, &GetPredictionInput{Address: s.otherBot})
		s.Require().NoError(err)
	}

	wg.Wait()
}

func (s *AuctionServiceTestSuite) TestSettleRoundBotWinner() {
	s.botBid(s.otherBot, 0)

	output, err := s.service.SettleRound(s.ctx, &SettleRoundInput{Force: true})
	s.Require().NoError(err)
	s.Equal(0, output.Result.WinningNumber)
	s.Equal(s.otherBot, output.Result.Winner)
	s.Empty(s.notifier.byKind(models.NotificationKindRoundWon))
}

func (s *AuctionServiceTestSuite) TestSettleEmptyRound() {
	output, err := s.service.SettleRound(s.ctx, &SettleRoundInput{Force: true})
	s.Require().NoError(err)

	s.False(output.Result.HasWinner())
	s.Equal(-1, output.Result.WinningNumber)
	s.True(output.Result.PrizePool.IsZero())
	s.Zero(output.Result.TotalParticipants)
}

func (s *AuctionServiceTestSuite) TestRestoreAfterRestart() {
	s.botBid(s.otherBot, 12)
	s.botBid(s.otherBot, 13)
	s.botBid(s.otherBot, 13)

	restarted := s.newService(nil)

	round, err := restarted.GetRound(s.ctx, &GetRoundInput{})
	s.Require().NoError(err)
	s.Equal(int64(1024), round.Round.ID)
	s.Equal("0.03", round.Round.Pool.String())
	s.Equal(2, round.ActiveSlots)

	leaderboard, err := restarted.GetLeaderboard(s.ctx, &GetLeaderboardInput{})
	s.Require().NoError(err)
	s.Require().Len(leaderboard.Entries, 2)
	s.Equal(12, leaderboard.Entries[0].ID)
	s.Equal("0.02", leaderboard.Entries[1].TotalAmount.String())

	// The restored leader is not announced again
	output, err := restarted.PlaceBotBid(s.ctx, &PlaceBotBidInput{Bidder: s.otherBot, SlotID: 500})
	s.Require().NoError(err)
	s.False(output.LeaderChanged)
}

func (s *AuctionServiceTestSuite) TestConcurrentBotBids() {
	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.service.PlaceBotBid(s.ctx, &PlaceBotBidInput{Bidder: s.otherBot, SlotID: 77}); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.Fail("unexpected error", err.Error())
	}

	leaderboard, err := s.service.GetLeaderboard(s.ctx, &GetLeaderboardInput{})
	s.Require().NoError(err)
	s.Require().Len(leaderboard.Entries, 1)
	s.Equal("0.5", leaderboard.Entries[0].TotalAmount.String())

	round, err := s.service.GetRound(s.ctx, &GetRoundInput{})
	s.Require().NoError(err)
	s.Equal(50, round.Round.BidCount)
}

func (s *AuctionServiceTestSuite) TestNilInputs() {
	_, err := s.service.PlaceBid(s.ctx, nil)
	s.True(errors.Is(err, ErrNilInput))

	_, err = s.service.SettleRound(s.ctx, nil)
	s.True(errors.Is(err, ErrNilInput))
}
