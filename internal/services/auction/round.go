package auction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/lowbid/internal/models"
	"github.com/KirkDiggler/lowbid/internal/rank"
	ledgerRepo "github.com/KirkDiggler/lowbid/internal/repositories/ledger"
	roundRepo "github.com/KirkDiggler/lowbid/internal/repositories/round"
	walletRepo "github.com/KirkDiggler/lowbid/internal/repositories/wallet"
	"github.com/KirkDiggler/lowbid/internal/services/messaging"
	"github.com/shopspring/decimal"
)

// SettleRound pays out the open round and opens the next one. The rank 1
// slot wins; its last bidder is credited when they hold a wallet. A round
// without bids settles with no winner. After a failed write the next call
// resumes the same settlement and takes no new bids until it completes.
func (s *service) SettleRound(ctx context.Context, input *SettleRoundInput) (*SettleRoundOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	output, notifications, err := s.settleRound(ctx, input)
	s.mu.Unlock()

	s.deliver(ctx, notifications)
	return output, err
}

func (s *service) settleRound(ctx context.Context, input *SettleRoundInput) (*SettleRoundOutput, []*models.Notification, error) {
	if s.round == nil {
		return nil, nil, ErrNoActiveRound
	}

	now := s.clock.Now()
	pending := s.pending
	if pending == nil || pending.result.RoundID != s.round.ID {
		if !input.Force && now.Before(s.round.EndsAt) {
			return nil, nil, ErrRoundNotOver
		}

		var err error
		pending, err = s.beginSettlement(ctx, now)
		if err != nil {
			return nil, nil, err
		}
		s.pending = pending
	}

	// Each step is marked done as it succeeds so a retry resumes after the
	// last completed write instead of repeating it
	result := pending.result
	if !pending.credited {
		if result.HasWinner() {
			wallet, err := s.creditWinner(ctx, result.Winner, result.PrizePool)
			if err != nil {
				return nil, nil, err
			}
			pending.winner = wallet
		}
		pending.credited = true
	}

	if !pending.recorded {
		if err := s.ledgerRepo.AddRoundResult(ctx, &ledgerRepo.AddRoundResultInput{Result: result}); err != nil {
			return nil, nil, fmt.Errorf("failed to record round result: %w", err)
		}
		pending.recorded = true
	}

	if s.round.Status.IsOpen() {
		settled := copyRound(s.round)
		settled.Status = models.RoundStatusSettled
		settled.SettledAt = result.SettledAt
		if err := s.roundRepo.SaveRound(ctx, &roundRepo.SaveRoundInput{Round: settled}); err != nil {
			return nil, nil, fmt.Errorf("failed to save settled round: %w", err)
		}
		s.round = settled
	}

	if err := s.roundRepo.ClearSlots(ctx, &roundRepo.ClearSlotsInput{RoundID: result.RoundID}); err != nil {
		return nil, nil, fmt.Errorf("failed to clear board: %w", err)
	}

	if err := s.walletRepo.ResetDailyPlays(ctx, &walletRepo.ResetDailyPlaysInput{}); err != nil {
		return nil, nil, fmt.Errorf("failed to reset daily plays: %w", err)
	}

	next, err := s.openRound(ctx, now)
	if err != nil {
		return nil, nil, err
	}
	s.pending = nil

	s.logger.InfoContext(ctx, "round settled",
		"round_id", result.RoundID,
		"winning_number", result.WinningNumber,
		"winner", models.ShortAddress(result.Winner),
		"prize", result.PrizePool.StringFixed(2),
		"participants", result.TotalParticipants,
		"next_round_id", next.ID,
	)

	return &SettleRoundOutput{
		Result:    result,
		NextRound: copyRound(next),
	}, s.settlementNotifications(ctx, result, pending.winner), nil
}

// settlement tracks a round that is part way through being paid out
type settlement struct {
	result   *models.RoundResult
	winner   *models.Wallet
	credited bool
	recorded bool
}

// beginSettlement freezes the open round's result. A result already in the
// ledger means the payout happened before a restart and is not repeated.
func (s *service) beginSettlement(ctx context.Context, now time.Time) (*settlement, error) {
	round := s.round

	recorded, err := s.ledgerRepo.GetRoundResult(ctx, &ledgerRepo.GetRoundResultInput{RoundID: round.ID})
	switch {
	case err == nil:
		s.logger.WarnContext(ctx, "round result already recorded, resuming settlement", "round_id", round.ID)
		return &settlement{result: recorded, credited: true, recorded: true}, nil
	case !errors.Is(err, ledgerRepo.ErrRoundResultNotFound):
		return nil, fmt.Errorf("failed to check round result: %w", err)
	}

	participants, err := s.ledgerRepo.CountParticipants(ctx, &ledgerRepo.CountParticipantsInput{
		RoundID: round.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count participants: %w", err)
	}

	prize, fee := s.split(round.Pool)
	result := &models.RoundResult{
		RoundID:           round.ID,
		Date:              now.In(s.location).Format("2006-01-02"),
		WinningNumber:     -1,
		WinningAmount:     decimal.Zero,
		PrizePool:         prize,
		ProtocolFee:       fee,
		TotalParticipants: participants,
		SettledAt:         now,
	}

	if leader := rank.Leader(s.board.Snapshot()); leader != nil {
		result.WinningNumber = leader.ID
		result.WinningAmount = leader.TotalAmount
		result.Winner = leader.LastBidder
	}

	return &settlement{result: result}, nil
}

// creditWinner adds the prize to the winner's wallet. Bidders without a
// wallet, such as simulated ones, are skipped.
func (s *service) creditWinner(ctx context.Context, address string, prize decimal.Decimal) (*models.Wallet, error) {
	wallet, err := s.walletRepo.GetWallet(ctx, &walletRepo.GetWalletInput{Address: address})
	if err != nil {
		if errors.Is(err, walletRepo.ErrWalletNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load winner wallet: %w", err)
	}

	wallet.Balance = wallet.Balance.Add(prize)
	if err := s.walletRepo.SaveWallet(ctx, &walletRepo.SaveWalletInput{Wallet: wallet}); err != nil {
		return nil, fmt.Errorf("failed to credit winner: %w", err)
	}
	return wallet, nil
}

// settlementNotifications builds the channel-wide announcement, the alerts
// for round-end subscribers and the winner's own message
func (s *service) settlementNotifications(ctx context.Context, result *models.RoundResult, winner *models.Wallet) []*models.Notification {
	settled := &messaging.GetNotificationMessageInput{
		Kind:      models.NotificationKindRoundSettled,
		RoundID:   result.RoundID,
		SlotID:    result.WinningNumber,
		Amount:    result.PrizePool,
		HasWinner: result.HasWinner(),
	}

	var notifications []*models.Notification

	// An empty recipient is a broadcast
	broadcast := s.newNotification(ctx, "", settled)
	if broadcast == nil {
		return nil
	}
	notifications = append(notifications, broadcast)

	for _, wallet := range s.subscribers(ctx, (*models.Wallet).WantsRoundEndAlerts) {
		if winner != nil && wallet.Address == winner.Address {
			continue
		}
		alert := *broadcast
		alert.Recipient = wallet.Address
		notifications = append(notifications, &alert)
	}

	if winner != nil {
		won := s.newNotification(ctx, winner.Address, &messaging.GetNotificationMessageInput{
			Kind:   models.NotificationKindRoundWon,
			SlotID: result.WinningNumber,
			Amount: result.PrizePool,
		})
		if won != nil {
			notifications = append(notifications, won)
		}
	}

	return notifications
}

// openRound allocates the next round, persists it and clears the board
func (s *service) openRound(ctx context.Context, now time.Time) (*models.Round, error) {
	id, err := s.roundRepo.NextRoundID(ctx, &roundRepo.NextRoundIDInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to allocate round: %w", err)
	}

	round := &models.Round{
		ID:        id,
		Status:    models.RoundStatusOpen,
		Pool:      decimal.Zero,
		StartedAt: now,
		EndsAt:    s.roundEnd(now),
	}

	if err := s.roundRepo.SaveRound(ctx, &roundRepo.SaveRoundInput{Round: round}); err != nil {
		return nil, fmt.Errorf("failed to save round: %w", err)
	}

	s.board.Reset()
	s.round = round
	s.leaderID = noLeader

	return round, nil
}

// roundEnd is start+RoundLength, or the next midnight in the round timezone
func (s *service) roundEnd(start time.Time) time.Time {
	if s.roundLength > 0 {
		return start.Add(s.roundLength)
	}

	local := start.In(s.location)
	return time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, s.location)
}
