package app

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/lowbid/internal/common/clock/mocks"
	"github.com/KirkDiggler/lowbid/internal/config"
	"github.com/KirkDiggler/lowbid/internal/models"
	"github.com/KirkDiggler/lowbid/internal/notify"
	notifyMocks "github.com/KirkDiggler/lowbid/internal/notify/mocks"
	"github.com/KirkDiggler/lowbid/internal/services/auction"
	"github.com/alicebob/miniredis/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Game.TotalSlots = 50
	cfg.Simulator.BotWallets = 3
	cfg.Simulator.Seed = 7
	return cfg
}

func TestNewWithEmbeddedRedis(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	a, err := New(context.Background(), testConfig(), logger, nil)
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, int64(1024), a.Restored.Round.ID)
	assert.False(t, a.Restored.Restored)
	assert.Contains(t, logs.String(), "using in-process redis")

	round, err := a.Auction.GetRound(context.Background(), &auction.GetRoundInput{})
	require.NoError(t, err)
	assert.Equal(t, 50, round.TotalSlots)
	assert.Equal(t, "0.01", round.UnitAmount.String())

	sim, err := a.Simulator()
	require.NoError(t, err)
	assert.Len(t, sim.Bots(), 3)

	// Close is idempotent
	a.Close()
}

func TestNewRestoresFromRedis(t *testing.T) {
	server := miniredis.RunT(t)
	cfg := testConfig()
	cfg.Redis.Addr = server.Addr()
	ctx := context.Background()

	first, err := New(ctx, cfg, nil, nil)
	require.NoError(t, err)

	sim, err := first.Simulator()
	require.NoError(t, err)
	_, err = first.Auction.PlaceBotBid(ctx, &auction.PlaceBotBidInput{Bidder: sim.Bots()[0], SlotID: 4})
	require.NoError(t, err)
	first.Close()

	second, err := New(ctx, cfg, nil, nil)
	require.NoError(t, err)
	defer second.Close()

	assert.True(t, second.Restored.Restored)
	assert.Equal(t, 1, second.Restored.ActiveSlots)
}

func TestNewFansOutToNotifiers(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := notifyMocks.NewMockNotifier(ctrl)
	mockClock := clockMocks.NewMockClock(ctrl)
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	mockClock.EXPECT().Now().Return(now).AnyTimes()

	a, err := New(context.Background(), testConfig(), nil, &Options{
		Notifiers: []notify.Notifier{notifier},
		Clock:     mockClock,
	})
	require.NoError(t, err)
	defer a.Close()

	address := "0x71C7656EC7ab88b098defB751B7401B5f6d89A23"
	ctx := context.Background()
	_, err = a.Auction.ConnectWallet(ctx, &auction.ConnectWalletInput{Address: address})
	require.NoError(t, err)

	notifier.EXPECT().
		Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.Notification) error {
			assert.Equal(t, models.NotificationKindDeposit, n.Kind)
			assert.Equal(t, address, n.Recipient)
			return nil
		})

	_, err = a.Auction.Deposit(ctx, &auction.DepositInput{Address: address, Amount: decimal.NewFromInt(5)})
	require.NoError(t, err)
}

func TestNewRejectsUnreachableRedis(t *testing.T) {
	cfg := testConfig()
	cfg.Redis.Addr = "127.0.0.1:1"

	_, err := New(context.Background(), cfg, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect to redis")
}
