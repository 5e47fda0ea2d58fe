// Package console renders the auction to a terminal for the local simulation.
package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/KirkDiggler/lowbid/internal/models"
	"github.com/KirkDiggler/lowbid/internal/rank"
	"github.com/KirkDiggler/lowbid/internal/services/auction"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
)

// Console writes tables and notifications to a terminal
type Console struct {
	out io.Writer
}

// New creates a console that writes to stdout
func New() *Console {
	return &Console{out: os.Stdout}
}

// NewWriter creates a console for tests
func NewWriter(w io.Writer) *Console {
	return &Console{out: w}
}

// Notify prints a notification on one line
func (c *Console) Notify(_ context.Context, notification *models.Notification) error {
	if notification == nil {
		return nil
	}

	target := "all"
	if notification.Recipient != "" {
		target = models.ShortAddress(notification.Recipient)
	}

	fmt.Fprintf(c.out, "[%s] %s -> %s: %s\n",
		notification.CreatedAt.Format("15:04:05"),
		notification.Title,
		target,
		notification.Message,
	)
	return nil
}

// Round prints the round header
func (c *Console) Round(output *auction.GetRoundOutput) {
	round := output.Round
	fmt.Fprintf(c.out, "\n=== Round #%d  pool %s  prize %s  fee %s  ends in %s ===\n",
		round.ID,
		money(round.Pool),
		money(output.EstimatedPrize),
		money(output.ProtocolFee),
		output.TimeRemaining.Round(time.Second),
	)
	fmt.Fprintf(c.out, "  %d/%d numbers in play, %d bids, %s per play\n",
		output.ActiveSlots,
		output.TotalSlots,
		round.BidCount,
		money(output.UnitAmount),
	)
}

// Leaderboard prints the lowest-bid table
func (c *Console) Leaderboard(output *auction.GetLeaderboardOutput) {
	if len(output.Entries) == 0 {
		fmt.Fprintln(c.out, "  no bids yet")
		return
	}

	table := tablewriter.NewWriter(c.out)
	table.Header("Rank", "Number", "Total", "Last Bidder", "Win %")
	for _, entry := range output.Entries {
		table.Append(
			strconv.Itoa(entry.Rank),
			fmt.Sprintf("#%d", entry.ID),
			money(entry.TotalAmount),
			models.ShortAddress(entry.LastBidder),
			fmt.Sprintf("%.1f%%", entry.WinLikelihood),
		)
	}
	table.Render()
}

// Prediction prints a wallet's positions and chances
func (c *Console) Prediction(address string, output *auction.GetPredictionOutput) {
	fmt.Fprintf(c.out, "\n%s: %s, %.1f%% to win (%d positions, %d in top 10, %d leading)\n",
		models.ShortAddress(address),
		output.Standing,
		output.WinLikelihood,
		output.Positions.TotalActive,
		output.Positions.Top10Count,
		output.Positions.LeadingCount,
	)

	if len(output.Positions.Entries) == 0 {
		return
	}

	table := tablewriter.NewWriter(c.out)
	table.Header("Number", "Rank", "Total", "Standing")
	for _, entry := range output.Positions.Entries {
		table.Append(
			fmt.Sprintf("#%d", entry.ID),
			strconv.Itoa(entry.Rank),
			money(entry.TotalAmount),
			string(rank.StandingFor(entry.Rank)),
		)
	}
	table.Render()
}

// Activity prints the newest bids
func (c *Console) Activity(output *auction.GetRecentActivityOutput) {
	if len(output.Transactions) == 0 {
		return
	}

	table := tablewriter.NewWriter(c.out)
	table.Header("Time", "Bidder", "Number", "Amount")
	for _, tx := range output.Transactions {
		table.Append(
			tx.Timestamp.Format("15:04:05"),
			models.ShortAddress(tx.Bidder),
			fmt.Sprintf("#%d", tx.SlotID),
			money(tx.Amount),
		)
	}
	table.Render()
}

// History prints settled rounds
func (c *Console) History(output *auction.GetHistoryOutput) {
	if len(output.Results) == 0 {
		fmt.Fprintln(c.out, "  no settled rounds")
		return
	}

	table := tablewriter.NewWriter(c.out)
	table.Header("Round", "Date", "Number", "Winner", "Prize", "Fee", "Players")
	for _, result := range output.Results {
		number, winner := "-", "-"
		if result.HasWinner() {
			number = fmt.Sprintf("#%d", result.WinningNumber)
			winner = models.ShortAddress(result.Winner)
		}
		table.Append(
			fmt.Sprintf("#%d", result.RoundID),
			result.Date,
			number,
			winner,
			money(result.PrizePool),
			money(result.ProtocolFee),
			strconv.Itoa(result.TotalParticipants),
		)
	}
	table.Render()
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
