package ledger

import (
	"context"
	"fmt"
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

func (s *RedisRepositoryTestSuite) transaction(i int, roundID int64, bidder string) *models.Transaction {
	return &models.Transaction{
		ID:        fmt.Sprintf("tx-%d", i),
		RoundID:   roundID,
		SlotID:    i,
		Bidder:    bidder,
		Amount:    decimal.RequireFromString("0.01"),
		Timestamp: s.testNow.Add(time.Duration(i) * time.Second),
	}
}

func (s *RedisRepositoryTestSuite) TestRecentTransactionsNewestFirst() {
	for i := 0; i < 15; i++ {
		err := s.repo.AddTransaction(s.ctx, &AddTransactionInput{Transaction: s.transaction(i, 1024, "0xA")})
		s.Require().NoError(err)
	}

	output, err := s.repo.GetRecentTransactions(s.ctx, &GetRecentTransactionsInput{Limit: 10})
	s.Require().NoError(err)
	s.Require().Len(output.Transactions, 10)
	s.Equal("tx-14", output.Transactions[0].ID)
	s.Equal("tx-5", output.Transactions[9].ID)
	s.Equal("0.01", output.Transactions[0].Amount.String())
}

func (s *RedisRepositoryTestSuite) TestRecentTransactionsBounded() {
	for i := 0; i < maxRecentTransactions+20; i++ {
		err := s.repo.AddTransaction(s.ctx, &AddTransactionInput{Transaction: s.transaction(i, 1024, "0xA")})
		s.Require().NoError(err)
	}

	length, err := s.client.LLen(s.ctx, recentTransactionsKey).Result()
	s.Require().NoError(err)
	s.Equal(int64(maxRecentTransactions), length)
}

func (s *RedisRepositoryTestSuite) TestAddTransactionValidation() {
	s.Error(s.repo.AddTransaction(s.ctx, nil))
	s.Error(s.repo.AddTransaction(s.ctx, &AddTransactionInput{Transaction: &models.Transaction{}}))

	_, err := s.repo.GetRecentTransactions(s.ctx, &GetRecentTransactionsInput{Limit: 0})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestCountParticipants() {
	s.Require().NoError(s.repo.AddTransaction(s.ctx, &AddTransactionInput{Transaction: s.transaction(1, 1024, "0xA")}))
	s.Require().NoError(s.repo.AddTransaction(s.ctx, &AddTransactionInput{Transaction: s.transaction(2, 1024, "0xA")}))
	s.Require().NoError(s.repo.AddTransaction(s.ctx, &AddTransactionInput{Transaction: s.transaction(3, 1024, "0xB")}))
	s.Require().NoError(s.repo.AddTransaction(s.ctx, &AddTransactionInput{Transaction: s.transaction(4, 1025, "0xC")}))

	count, err := s.repo.CountParticipants(s.ctx, &CountParticipantsInput{RoundID: 1024})
	s.Require().NoError(err)
	s.Equal(2, count)

	count, err = s.repo.CountParticipants(s.ctx, &CountParticipantsInput{RoundID: 1025})
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *RedisRepositoryTestSuite) TestHistoryNewestFirst() {
	for _, roundID := range []int64{1022, 1024, 1023} {
		err := s.repo.AddRoundResult(s.ctx, &AddRoundResultInput{Result: &models.RoundResult{
			RoundID:           roundID,
			Date:              "2025-04-05",
			WinningNumber:     int(roundID % 100),
			Winner:            "0xA",
			PrizePool:         decimal.RequireFromString("4520.50"),
			ProtocolFee:       decimal.RequireFromString("502.28"),
			TotalParticipants: 12,
			SettledAt:         s.testNow,
		}})
		s.Require().NoError(err)
	}

	output, err := s.repo.GetHistory(s.ctx, &GetHistoryInput{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(output.Results, 2)
	s.Equal(int64(1024), output.Results[0].RoundID)
	s.Equal(int64(1023), output.Results[1].RoundID)
	s.Equal(24, output.Results[0].WinningNumber)
	s.Equal("4520.5", output.Results[0].PrizePool.String())
}

func (s *RedisRepositoryTestSuite) TestHistoryEmpty() {
	output, err := s.repo.GetHistory(s.ctx, &GetHistoryInput{Limit: 5})
	s.Require().NoError(err)
	s.Empty(output.Results)
}

func (s *RedisRepositoryTestSuite) TestAddRoundResultClearsBidders() {
	s.Require().NoError(s.repo.AddTransaction(s.ctx, &AddTransactionInput{Transaction: s.transaction(1, 1024, "0xA")}))
	s.Require().NoError(s.repo.AddRoundResult(s.ctx, &AddRoundResultInput{Result: &models.RoundResult{RoundID: 1024, WinningNumber: -1}}))

	count, err := s.repo.CountParticipants(s.ctx, &CountParticipantsInput{RoundID: 1024})
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *RedisRepositoryTestSuite) TestGetRoundResult() {
	_, err := s.repo.GetRoundResult(s.ctx, &GetRoundResultInput{RoundID: 1024})
	s.ErrorIs(err, ErrRoundResultNotFound)

	s.Require().NoError(s.repo.AddRoundResult(s.ctx, &AddRoundResultInput{Result: &models.RoundResult{
		RoundID:           1024,
		WinningNumber:     7,
		Winner:            "0xA",
		PrizePool:         decimal.RequireFromString("0.18"),
		TotalParticipants: 2,
	}}))

	result, err := s.repo.GetRoundResult(s.ctx, &GetRoundResultInput{RoundID: 1024})
	s.Require().NoError(err)
	s.Equal(7, result.WinningNumber)
	s.Equal(2, result.TotalParticipants)
	s.Equal("0.18", result.PrizePool.String())

	_, err = s.repo.GetRoundResult(s.ctx, nil)
	s.Error(err)
}
