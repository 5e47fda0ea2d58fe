package simulator

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/KirkDiggler/lowbid/internal/models"
	"github.com/KirkDiggler/lowbid/internal/services/auction"
	"github.com/KirkDiggler/lowbid/internal/services/simulator/mocks"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// sequenceSource replays fixed values, wrapping around
type sequenceSource struct {
	ints   []int
	floats []float64
	i, f   int
}

func (q *sequenceSource) Intn(n int) int {
	v := q.ints[q.i%len(q.ints)] % n
	q.i++
	return v
}

func (q *sequenceSource) Float64() float64 {
	v := q.floats[q.f%len(q.floats)]
	q.f++
	return v
}

type SimulatorTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockAuction *mocks.MockAuction
	source      *sequenceSource
	simulator   *Simulator
	ctx         context.Context

	testRound *models.Round
}

func (s *SimulatorTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuction = mocks.NewMockAuction(s.mockCtrl)
	s.ctx = context.Background()
	s.source = &sequenceSource{
		ints:   []int{2},
		floats: []float64{0.1, 0.5, 0.29, 0.9},
	}
	s.testRound = &models.Round{ID: 1024, Status: models.RoundStatusOpen}

	sim, err := New(&Config{
		Auction:    s.mockAuction,
		Source:     s.source,
		Interval:   5 * time.Millisecond,
		BotWallets: 2,
	})
	s.Require().NoError(err)
	s.simulator = sim
}

func (s *SimulatorTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSimulatorTestSuite(t *testing.T) {
	suite.Run(t, new(SimulatorTestSuite))
}

func (s *SimulatorTestSuite) roundOutput(remaining time.Duration, totalSlots int) *auction.GetRoundOutput {
	return &auction.GetRoundOutput{
		Round:         s.testRound,
		TimeRemaining: remaining,
		TotalSlots:    totalSlots,
	}
}

func (s *SimulatorTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{})
	s.Error(err)
}

func (s *SimulatorTestSuite) TestBotWallets() {
	bots := s.simulator.Bots()
	s.Require().Len(bots, 2)
	for _, bot := range bots {
		s.True(common.IsHexAddress(bot))
	}
}

func (s *SimulatorTestSuite) TestPrefill() {
	bot := s.simulator.Bots()[0]

	s.mockAuction.EXPECT().GetRound(s.ctx, &auction.GetRoundInput{}).Return(s.roundOutput(time.Hour, 4), nil)
	// Floats 0.1 and 0.29 fall under the 30% threshold; Between(1, 5) yields 3
	s.mockAuction.EXPECT().PlaceBotBid(s.ctx, &auction.PlaceBotBidInput{Bidder: bot, SlotID: 0}).
		Return(&auction.PlaceBotBidOutput{}, nil).Times(3)
	s.mockAuction.EXPECT().PlaceBotBid(s.ctx, &auction.PlaceBotBidInput{Bidder: bot, SlotID: 2}).
		Return(&auction.PlaceBotBidOutput{}, nil).Times(3)

	output, err := s.simulator.Prefill(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, output.Slots)
	s.Equal(6, output.Bids)
}

func (s *SimulatorTestSuite) TestPrefillStopsOnError() {
	s.mockAuction.EXPECT().GetRound(s.ctx, gomock.Any()).Return(s.roundOutput(time.Hour, 4), nil)
	s.mockAuction.EXPECT().PlaceBotBid(s.ctx, gomock.Any()).Return(nil, errors.New("redis down"))

	output, err := s.simulator.Prefill(s.ctx)
	s.Error(err)
	s.Zero(output.Bids)
}

func (s *SimulatorTestSuite) TestTickPlacesBid() {
	expected := &auction.PlaceBotBidOutput{Transaction: &models.Transaction{ID: "tx-1"}}

	s.mockAuction.EXPECT().GetRound(s.ctx, gomock.Any()).Return(s.roundOutput(time.Hour, 1441), nil)
	s.mockAuction.EXPECT().PlaceBotBid(s.ctx, &auction.PlaceBotBidInput{
		Bidder: s.simulator.Bots()[0],
		SlotID: 2,
	}).Return(expected, nil)

	output, err := s.simulator.Tick(s.ctx)
	s.Require().NoError(err)
	s.Equal(expected, output.Bid)
	s.Nil(output.Settled)
}

func (s *SimulatorTestSuite) TestTickSettlesExpiredRound() {
	settled := &auction.SettleRoundOutput{
		Result:    &models.RoundResult{RoundID: 1024},
		NextRound: &models.Round{ID: 1025},
	}

	s.mockAuction.EXPECT().GetRound(s.ctx, gomock.Any()).Return(s.roundOutput(0, 1441), nil)
	s.mockAuction.EXPECT().SettleRound(s.ctx, &auction.SettleRoundInput{}).Return(settled, nil)

	output, err := s.simulator.Tick(s.ctx)
	s.Require().NoError(err)
	s.Equal(settled, output.Settled)
	s.Nil(output.Bid)
}

func (s *SimulatorTestSuite) TestTickRetriesPendingSettlement() {
	round := s.roundOutput(time.Hour, 1441)
	round.Settling = true
	settled := &auction.SettleRoundOutput{
		Result:    &models.RoundResult{RoundID: 1024},
		NextRound: &models.Round{ID: 1025},
	}

	s.mockAuction.EXPECT().GetRound(s.ctx, gomock.Any()).Return(round, nil)
	s.mockAuction.EXPECT().SettleRound(s.ctx, &auction.SettleRoundInput{}).Return(settled, nil)

	output, err := s.simulator.Tick(s.ctx)
	s.Require().NoError(err)
	s.Equal(settled, output.Settled)
}

func (s *SimulatorTestSuite) TestTickRoundError() {
	s.mockAuction.EXPECT().GetRound(s.ctx, gomock.Any()).Return(nil, auction.ErrNoActiveRound)

	_, err := s.simulator.Tick(s.ctx)
	s.ErrorIs(err, auction.ErrNoActiveRound)
}

func (s *SimulatorTestSuite) TestRunUntilCancelled() {
	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	var bids atomic.Int32
	s.mockAuction.EXPECT().GetRound(ctx, gomock.Any()).Return(s.roundOutput(time.Hour, 1441), nil).AnyTimes()
	s.mockAuction.EXPECT().PlaceBotBid(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, input *auction.PlaceBotBidInput) (*auction.PlaceBotBidOutput, error) {
			if bids.Add(1) == 3 {
				cancel()
			}
			return &auction.PlaceBotBidOutput{}, nil
		}).MinTimes(3)

	done := make(chan error, 1)
	go func() {
		done <- s.simulator.Run(ctx)
	}()

	select {
	case err := <-done:
		s.NoError(err)
	case <-time.After(5 * time.Second):
		s.Fail("simulator did not stop")
	}
	s.GreaterOrEqual(bids.Load(), int32(3))
}
