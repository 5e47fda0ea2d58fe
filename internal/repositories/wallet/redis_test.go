package wallet

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/lowbid/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) wallet(address string, plays int) *models.Wallet {
	return &models.Wallet{
		Address:     address,
		Balance:     decimal.RequireFromString("5.00"),
		PlaysToday:  plays,
		Connected:   true,
		Preferences: models.DefaultNotificationPreferences(),
		ConnectedAt: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetWallet() {
	s.Require().NoError(s.repo.SaveWallet(s.ctx, &SaveWalletInput{Wallet: s.wallet("0x71C...9A23", 3)}))

	wallet, err := s.repo.GetWallet(s.ctx, &GetWalletInput{Address: "0x71C...9A23"})
	s.Require().NoError(err)
	s.Equal("0x71C...9A23", wallet.Address)
	s.Equal("5", wallet.Balance.String())
	s.Equal(3, wallet.PlaysToday)
	s.True(wallet.Connected)
	s.Equal(models.DefaultNotificationPreferences(), wallet.Preferences)
}

func (s *RedisRepositoryTestSuite) TestGetWalletNotFound() {
	_, err := s.repo.GetWallet(s.ctx, &GetWalletInput{Address: "0xmissing"})
	s.ErrorIs(err, ErrWalletNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveWalletValidation() {
	s.Error(s.repo.SaveWallet(s.ctx, nil))
	s.Error(s.repo.SaveWallet(s.ctx, &SaveWalletInput{Wallet: &models.Wallet{}}))
}

func (s *RedisRepositoryTestSuite) TestListWallets() {
	output, err := s.repo.ListWallets(s.ctx, &ListWalletsInput{})
	s.Require().NoError(err)
	s.Empty(output.Wallets)

	s.Require().NoError(s.repo.SaveWallet(s.ctx, &SaveWalletInput{Wallet: s.wallet("0xA", 1)}))
	s.Require().NoError(s.repo.SaveWallet(s.ctx, &SaveWalletInput{Wallet: s.wallet("0xB", 2)}))

	output, err = s.repo.ListWallets(s.ctx, &ListWalletsInput{})
	s.Require().NoError(err)
	s.Len(output.Wallets, 2)
}

func (s *RedisRepositoryTestSuite) TestResetDailyPlays() {
	s.Require().NoError(s.repo.SaveWallet(s.ctx, &SaveWalletInput{Wallet: s.wallet("0xA", 40)}))
	s.Require().NoError(s.repo.SaveWallet(s.ctx, &SaveWalletInput{Wallet: s.wallet("0xB", 100)}))

	s.Require().NoError(s.repo.ResetDailyPlays(s.ctx, &ResetDailyPlaysInput{}))

	for _, address := range []string{"0xA", "0xB"} {
		wallet, err := s.repo.GetWallet(s.ctx, &GetWalletInput{Address: address})
		s.Require().NoError(err)
		s.Zero(wallet.PlaysToday)
		s.Equal("5", wallet.Balance.String())
	}
}
