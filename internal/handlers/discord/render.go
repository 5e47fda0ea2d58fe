package discord

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/lowbid/internal/models"
	"github.com/KirkDiggler/lowbid/internal/rank"
	"github.com/KirkDiggler/lowbid/internal/services/auction"
	"github.com/KirkDiggler/lowbid/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"
)

// Component custom ID prefixes
const (
	quickBidPrefix = "quick_bid:"
	depositPrefix  = "deposit:"
)

// DepositPresets are the amounts offered as one-click deposits
var DepositPresets = []int{5, 10, 20, 50, 100}

// maxButtonsPerRow is Discord's limit for an action row
const maxButtonsPerRow = 5

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// renderLeaderboard builds the top-10 embed and a quick-bid button per row
func renderLeaderboard(output *auction.GetLeaderboardOutput) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	embed := &discordgo.MessageEmbed{
		Title: "Top 10 Competitive",
		Color: colorGreen,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d numbers in play", output.TotalActive),
		},
	}

	if len(output.Entries) == 0 {
		embed.Description = "No bids yet. The lowest number is up for grabs."
		return embed, nil
	}

	var lines strings.Builder
	buttons := make([]discordgo.MessageComponent, 0, len(output.Entries))
	for _, entry := range output.Entries {
		fmt.Fprintf(&lines, "**%d.** #%d  %s  %s  %.1f%%\n",
			entry.Rank,
			entry.ID,
			money(entry.TotalAmount),
			models.ShortAddress(entry.LastBidder),
			entry.WinLikelihood,
		)
		buttons = append(buttons, discordgo.Button{
			Label:    fmt.Sprintf("Bid #%d", entry.ID),
			Style:    discordgo.SecondaryButton,
			CustomID: quickBidID(entry.ID),
		})
	}
	embed.Description = lines.String()

	return embed, actionRows(buttons)
}

// renderPositions lists every number the caller currently holds
func renderPositions(output *auction.GetPositionsOutput) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Your Positions",
		Color: colorBlue,
	}

	if len(output.Entries) == 0 {
		embed.Description = "You don't hold any numbers this round."
		return embed
	}

	var lines strings.Builder
	for _, entry := range output.Entries {
		fmt.Fprintf(&lines, "#%d  rank %d  %s  %s\n",
			entry.ID,
			entry.Rank,
			money(entry.TotalAmount),
			standingLabel(rank.StandingFor(entry.Rank)),
		)
	}
	embed.Description = lines.String()
	return embed
}

// renderPrediction summarises the caller's chances
func renderPrediction(output *auction.GetPredictionOutput) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Prediction",
		Color: colorGold,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Win Likelihood", Value: fmt.Sprintf("%.1f%%", output.WinLikelihood), Inline: true},
			{Name: "Standing", Value: standingLabel(output.Standing), Inline: true},
			{Name: "Active Positions", Value: strconv.Itoa(output.Positions.TotalActive), Inline: true},
			{Name: "In Top 10", Value: strconv.Itoa(output.Positions.Top10Count), Inline: true},
			{Name: "Leading", Value: strconv.Itoa(output.Positions.LeadingCount), Inline: true},
		},
	}

	if output.Best == nil {
		embed.Description = "Place a bid to get a prediction."
		return embed
	}

	embed.Description = fmt.Sprintf("Your best number is #%d at rank %d.", output.Best.ID, output.Best.Rank)
	return embed
}

// renderRound shows the pool, the prize and the time left
func renderRound(output *auction.GetRoundOutput) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Round #%d", output.Round.ID),
		Description: "Lowest unique total wins the pool.",
		Color:       colorGold,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Total Pool", Value: money(output.Round.Pool), Inline: true},
			{Name: "Est. Prize", Value: money(output.EstimatedPrize), Inline: true},
			{Name: "Ends In", Value: formatRemaining(output.TimeRemaining), Inline: true},
			{Name: "Numbers in Play", Value: fmt.Sprintf("%d / %d", output.ActiveSlots, output.TotalSlots), Inline: true},
			{Name: "Bids", Value: strconv.Itoa(output.Round.BidCount), Inline: true},
			{Name: "Cost per Play", Value: money(output.UnitAmount), Inline: true},
		},
		Timestamp: output.Round.EndsAt.Format(time.RFC3339),
	}
}

// renderHistory lists past winners
func renderHistory(output *auction.GetHistoryOutput) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Past Rounds",
		Color: colorBlue,
	}

	if len(output.Results) == 0 {
		embed.Description = "No rounds have settled yet."
		return embed
	}

	var lines strings.Builder
	for _, result := range output.Results {
		if !result.HasWinner() {
			fmt.Fprintf(&lines, "**#%d** %s  no bids\n", result.RoundID, result.Date)
			continue
		}
		fmt.Fprintf(&lines, "**#%d** %s  number #%d  %s to %s  (%d players)\n",
			result.RoundID,
			result.Date,
			result.WinningNumber,
			money(result.PrizePool),
			models.ShortAddress(result.Winner),
			result.TotalParticipants,
		)
	}
	embed.Description = lines.String()
	return embed
}

// renderActivity lists the newest bids
func renderActivity(output *auction.GetRecentActivityOutput, now time.Time) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Recent Activity",
		Color: colorBlue,
	}

	if len(output.Transactions) == 0 {
		embed.Description = "Quiet so far."
		return embed
	}

	var lines strings.Builder
	for _, tx := range output.Transactions {
		fmt.Fprintf(&lines, "%s bid on #%d  %s  %s ago\n",
			models.ShortAddress(tx.Bidder),
			tx.SlotID,
			money(tx.Amount),
			formatRemaining(now.Sub(tx.Timestamp)),
		)
	}
	embed.Description = lines.String()
	return embed
}

// renderWallet shows a wallet's balance, plays and alert settings
func renderWallet(wallet *models.Wallet, playsRemaining int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Wallet",
		Description: fmt.Sprintf("`%s`", wallet.Address),
		Color:       colorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Balance", Value: money(wallet.Balance), Inline: true},
			{Name: "Plays Left Today", Value: strconv.Itoa(playsRemaining), Inline: true},
			{Name: "Alerts", Value: alertsLabel(wallet.Preferences), Inline: true},
		},
	}
}

// renderBidResult confirms a bid
func renderBidResult(output *auction.PlaceBidOutput, title, message string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       colorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Number", Value: fmt.Sprintf("#%d", output.Slot.ID), Inline: true},
			{Name: "Total", Value: money(output.Slot.TotalAmount), Inline: true},
			{Name: "Rank", Value: strconv.Itoa(output.Rank), Inline: true},
			{Name: "Balance", Value: money(output.Wallet.Balance), Inline: true},
		},
	}
}

// renderNotification turns a notification into an embed
func renderNotification(notification *models.Notification) *discordgo.MessageEmbed {
	color := colorBlue
	switch notification.Kind {
	case models.NotificationKindLeaderChange:
		color = colorGold
	case models.NotificationKindRoundWon, models.NotificationKindDeposit:
		color = colorGreen
	}

	embed := &discordgo.MessageEmbed{
		Title:       notification.Title,
		Description: notification.Message,
		Color:       color,
	}
	if !notification.CreatedAt.IsZero() {
		embed.Timestamp = notification.CreatedAt.Format(time.RFC3339)
	}
	return embed
}

// depositButtons offers one-click deposit presets
func depositButtons() []discordgo.MessageComponent {
	buttons := make([]discordgo.MessageComponent, 0, len(DepositPresets))
	for _, amount := range DepositPresets {
		buttons = append(buttons, discordgo.Button{
			Label:    fmt.Sprintf("$%d", amount),
			Style:    discordgo.SuccessButton,
			CustomID: fmt.Sprintf("%s%d", depositPrefix, amount),
		})
	}
	return actionRows(buttons)
}

// actionRows packs buttons into rows of at most maxButtonsPerRow
func actionRows(buttons []discordgo.MessageComponent) []discordgo.MessageComponent {
	var rows []discordgo.MessageComponent
	for start := 0; start < len(buttons); start += maxButtonsPerRow {
		end := start + maxButtonsPerRow
		if end > len(buttons) {
			end = len(buttons)
		}
		rows = append(rows, discordgo.ActionsRow{Components: buttons[start:end]})
	}
	return rows
}

func quickBidID(slotID int) string {
	return quickBidPrefix + strconv.Itoa(slotID)
}

// parseComponentID splits a custom ID into its prefix and integer argument
func parseComponentID(customID, prefix string) (int, bool) {
	raw, ok := strings.CutPrefix(customID, prefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func standingLabel(standing rank.Standing) string {
	switch standing {
	case rank.StandingLeading:
		return "Leading"
	case rank.StandingTop10:
		return "Top 10"
	default:
		return "Outranked"
	}
}

func alertsLabel(prefs models.NotificationPreferences) string {
	if !prefs.Enabled {
		return "Off"
	}
	var kinds []string
	if prefs.Top10Alerts {
		kinds = append(kinds, "leader")
	}
	if prefs.RoundEndAlerts {
		kinds = append(kinds, "round end")
	}
	if len(kinds) == 0 {
		return "On (none selected)"
	}
	return "On: " + strings.Join(kinds, ", ")
}

// formatRemaining renders a duration as 5h 03m, 4m 10s or 12s
func formatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	hours := int(d / time.Hour)
	minutes := int(d%time.Hour) / int(time.Minute)
	seconds := int(d%time.Minute) / int(time.Second)

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %02dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm %02ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// errorType maps service errors onto the message catalogue
func errorType(err error) messaging.ErrorType {
	switch {
	case errors.Is(err, auction.ErrWalletNotConnected):
		return messaging.ErrorTypeNotConnected
	case errors.Is(err, auction.ErrInsufficientBalance):
		return messaging.ErrorTypeInsufficientBalance
	case errors.Is(err, auction.ErrDailyLimitReached):
		return messaging.ErrorTypeDailyLimit
	case errors.Is(err, auction.ErrSlotNotFound):
		return messaging.ErrorTypeSlotNotFound
	case errors.Is(err, auction.ErrInvalidAmount):
		return messaging.ErrorTypeInvalidAmount
	default:
		return messaging.ErrorTypeUnknown
	}
}
