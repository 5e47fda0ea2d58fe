package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/lowbid/internal/common/clock"
	"github.com/KirkDiggler/lowbid/internal/services/auction"
	"github.com/KirkDiggler/lowbid/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"
)

// Subcommand names
const (
	subConnect     = "connect"
	subWallet      = "wallet"
	subDeposit     = "deposit"
	subBid         = "bid"
	subLeaderboard = "leaderboard"
	subPositions   = "positions"
	subPrediction  = "prediction"
	subRound       = "round"
	subHistory     = "history"
	subActivity    = "activity"
	subAlerts      = "alerts"
)

// LowbidCommandConfig holds the dependencies for the /lowbid command
type LowbidCommandConfig struct {
	AuctionService   auction.Service
	MessagingService messaging.Service
	Directory        *Directory
	Throttle         *Throttle
	Clock            clock.Clock
	Logger           *slog.Logger

	// TotalSlots bounds the slot option, defaults to auction.DefaultTotalSlots
	TotalSlots int
}

// LowbidCommand handles the /lowbid command and its buttons
type LowbidCommand struct {
	BaseCommand
	auctionService   auction.Service
	messagingService messaging.Service
	directory        *Directory
	throttle         *Throttle
	clock            clock.Clock
	logger           *slog.Logger
}

// NewLowbidCommand creates a new lowbid command handler
func NewLowbidCommand(cfg *LowbidCommandConfig) (*LowbidCommand, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.AuctionService == nil {
		return nil, errors.New("auction service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	directory := cfg.Directory
	if directory == nil {
		directory = NewDirectory()
	}

	throttle := cfg.Throttle
	if throttle == nil {
		throttle = NewThrottle(DefaultBidInterval)
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	totalSlots := cfg.TotalSlots
	if totalSlots <= 0 {
		totalSlots = auction.DefaultTotalSlots
	}

	return &LowbidCommand{
		BaseCommand: BaseCommand{
			Name:        "lowbid",
			Description: "Lowest unique bid auction",
			Options:     lowbidOptions(totalSlots),
		},
		auctionService:   cfg.AuctionService,
		messagingService: cfg.MessagingService,
		directory:        directory,
		throttle:         throttle,
		clock:            clk,
		logger:           logger,
	}, nil
}

func lowbidOptions(totalSlots int) []*discordgo.ApplicationCommandOption {
	minSlot := 0.0

	depositChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(DepositPresets))
	for _, amount := range DepositPresets {
		depositChoices = append(depositChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("$%d", amount),
			Value: amount,
		})
	}

	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        subConnect,
			Description: "Connect your wallet",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        subWallet,
			Description: "Show your balance and plays left today",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        subDeposit,
			Description: "Add funds to your wallet",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "Amount in dollars",
					Required:    true,
					Choices:     depositChoices,
				},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        subBid,
			Description: "Bid on a number",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "number",
					Description: "The number to bid on",
					Required:    true,
					MinValue:    &minSlot,
					MaxValue:    float64(totalSlots - 1),
				},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        subLeaderboard,
			Description: "Show the lowest bids",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        subPositions,
			Description: "Show the numbers you hold",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        subPrediction,
			Description: "Show your chances of winning",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        subRound,
			Description: "Show the current round",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        subHistory,
			Description: "Show past winners",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        subActivity,
			Description: "Show the latest bids",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        subAlerts,
			Description: "Choose which alerts you receive",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "enabled",
					Description: "Turn alerts on or off",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "leader",
					Description: "Alert when the leading number changes",
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "round_end",
					Description: "Alert when a round settles",
				},
			},
		},
	}
}

// Handle processes a Discord interaction for the lowbid command
func (c *LowbidCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	user := interactionUser(i)
	if user == nil {
		return RespondWithEphemeralMessage(s, i, "Could not work out who you are.")
	}

	sub := data.Options[0]
	response := c.respond(context.Background(), user.ID, sub.Name, optionMap(sub.Options))
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: response,
	})
}

// HandleComponent processes the quick-bid and deposit buttons. It returns
// false when the custom ID belongs to another handler.
func (c *LowbidCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) (bool, error) {
	user := interactionUser(i)
	if user == nil {
		return false, nil
	}

	response, ok := c.respondComponent(context.Background(), user.ID, i.MessageComponentData().CustomID)
	if !ok {
		return false, nil
	}

	return true, s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: response,
	})
}

func (c *LowbidCommand) respond(ctx context.Context, userID, sub string, options map[string]*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionResponseData {
	switch sub {
	case subConnect:
		return c.handleConnect(ctx, userID)
	case subWallet:
		return c.handleWallet(ctx, userID)
	case subDeposit:
		amount := 0
		if opt, ok := options["amount"]; ok {
			amount = int(opt.IntValue())
		}
		return c.handleDeposit(ctx, userID, amount)
	case subBid:
		slotID := -1
		if opt, ok := options["number"]; ok {
			slotID = int(opt.IntValue())
		}
		return c.handleBid(ctx, userID, slotID)
	case subLeaderboard:
		return c.handleLeaderboard(ctx)
	case subPositions:
		return c.handlePositions(ctx, userID)
	case subPrediction:
		return c.handlePrediction(ctx, userID)
	case subRound:
		return c.handleRound(ctx)
	case subHistory:
		return c.handleHistory(ctx)
	case subActivity:
		return c.handleActivity(ctx)
	case subAlerts:
		return c.handleAlerts(ctx, userID, options)
	default:
		return c.errorResponse(ctx, fmt.Errorf("unknown subcommand %q", sub))
	}
}

func (c *LowbidCommand) respondComponent(ctx context.Context, userID, customID string) (*discordgo.InteractionResponseData, bool) {
	if slotID, ok := parseComponentID(customID, quickBidPrefix); ok {
		return c.handleBid(ctx, userID, slotID), true
	}

	if amount, ok := parseComponentID(customID, depositPrefix); ok {
		return c.handleDeposit(ctx, userID, amount), true
	}

	return nil, false
}

func (c *LowbidCommand) handleConnect(ctx context.Context, userID string) *discordgo.InteractionResponseData {
	address := c.directory.Link(userID)

	output, err := c.auctionService.ConnectWallet(ctx, &auction.ConnectWalletInput{
		Address: address,
	})
	if err != nil {
		return c.errorResponse(ctx, err)
	}

	if output.Created {
		c.logger.Info("wallet connected", "user", userID, "address", address)
	}

	return c.walletResponse(ctx, address)
}

func (c *LowbidCommand) handleWallet(ctx context.Context, userID string) *discordgo.InteractionResponseData {
	return c.walletResponse(ctx, c.directory.Link(userID))
}

func (c *LowbidCommand) walletResponse(ctx context.Context, address string) *discordgo.InteractionResponseData {
	output, err := c.auctionService.GetWallet(ctx, &auction.GetWalletInput{
		Address: address,
	})
	if err != nil {
		return c.errorResponse(ctx, err)
	}

	return ephemeral(renderWallet(output.Wallet, output.PlaysRemaining), depositButtons())
}

func (c *LowbidCommand) handleDeposit(ctx context.Context, userID string, amount int) *discordgo.InteractionResponseData {
	address := c.directory.Link(userID)

	output, err := c.auctionService.Deposit(ctx, &auction.DepositInput{
		Address: address,
		Amount:  decimal.NewFromInt(int64(amount)),
	})
	if err != nil {
		return c.errorResponse(ctx, err)
	}

	wallet, err := c.auctionService.GetWallet(ctx, &auction.GetWalletInput{
		Address: output.Wallet.Address,
	})
	if err != nil {
		return c.errorResponse(ctx, err)
	}

	return ephemeral(renderWallet(wallet.Wallet, wallet.PlaysRemaining), nil)
}

func (c *LowbidCommand) handleBid(ctx context.Context, userID string, slotID int) *discordgo.InteractionResponseData {
	if !c.throttle.Allow(userID) {
		return c.errorMessage(ctx, messaging.ErrorTypeRateLimited, "")
	}

	address := c.directory.Link(userID)

	output, err := c.auctionService.PlaceBid(ctx, &auction.PlaceBidInput{
		Address: address,
		SlotID:  slotID,
	})
	if err != nil {
		return c.errorResponse(ctx, err)
	}

	msg, err := c.messagingService.GetBidResultMessage(ctx, &messaging.GetBidResultMessageInput{
		SlotID:         output.Slot.ID,
		Rank:           output.Rank,
		Standing:       output.Standing,
		PlaysRemaining: output.PlaysRemaining,
	})
	if err != nil {
		return c.errorResponse(ctx, err)
	}

	return ephemeral(renderBidResult(output, msg.Title, msg.Message), nil)
}

func (c *LowbidCommand) handleLeaderboard(ctx context.Context) *discordgo.InteractionResponseData {
	output, err := c.auctionService.GetLeaderboard(ctx, &auction.GetLeaderboardInput{
		Limit: auction.LeaderboardSize,
	})
	if err != nil {
		return c.errorResponse(ctx, err)
	}

	embed, components := renderLeaderboard(output)
	return public(embed, components)
}

func (c *LowbidCommand) handlePositions(ctx context.Context, userID string) *discordgo.InteractionResponseData {
	output, err := c.auctionService.GetPositions(ctx, &auction.GetPositionsInput{
		Address: c.directory.Link(userID),
	})
	if err != nil {
		return c.errorResponse(ctx, err)
	}

	return ephemeral(renderPositions(output), nil)
}

func (c *LowbidCommand) handlePrediction(ctx context.Context, userID string) *discordgo.InteractionResponseData {
	output, err := c.auctionService.GetPrediction(ctx, &auction.GetPredictionInput{
		Address: c.directory.Link(userID),
	})
	if err != nil {
		return c.errorResponse(ctx, err)
	}

	return ephemeral(renderPrediction(output), nil)
}

func (c *LowbidCommand) handleRound(ctx context.Context) *discordgo.InteractionResponseData {
	output, err := c.auctionService.GetRound(ctx, &auction.GetRoundInput{})
	if err != nil {
		return c.errorResponse(ctx, err)
	}

	return public(renderRound(output), nil)
}

func (c *LowbidCommand) handleHistory(ctx context.Context) *discordgo.InteractionResponseData {
	output, err := c.auctionService.GetHistory(ctx, &auction.GetHistoryInput{
		Limit: auction.DefaultHistoryLimit,
	})
	if err != nil {
		return c.errorResponse(ctx, err)
	}

	return public(renderHistory(output), nil)
}

func (c *LowbidCommand) handleActivity(ctx context.Context) *discordgo.InteractionResponseData {
	output, err := c.auctionService.GetRecentActivity(ctx, &auction.GetRecentActivityInput{
		Limit: auction.DefaultRecentActivityLimit,
	})
	if err != nil {
		return c.errorResponse(ctx, err)
	}

	return public(renderActivity(output, c.clock.Now()), nil)
}

func (c *LowbidCommand) handleAlerts(ctx context.Context, userID string, options map[string]*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionResponseData {
	address := c.directory.Link(userID)

	current, err := c.auctionService.GetWallet(ctx, &auction.GetWalletInput{
		Address: address,
	})
	if err != nil {
		return c.errorResponse(ctx, err)
	}

	prefs := current.Wallet.Preferences
	if opt, ok := options["enabled"]; ok {
		prefs.Enabled = opt.BoolValue()
	}
	if opt, ok := options["leader"]; ok {
		prefs.Top10Alerts = opt.BoolValue()
	}
	if opt, ok := options["round_end"]; ok {
		prefs.RoundEndAlerts = opt.BoolValue()
	}

	output, err := c.auctionService.UpdateNotificationPreferences(ctx, &auction.UpdateNotificationPreferencesInput{
		Address:     address,
		Preferences: prefs,
	})
	if err != nil {
		return c.errorResponse(ctx, err)
	}

	return ephemeral(renderWallet(output.Wallet, current.PlaysRemaining), nil)
}

// errorResponse turns a service error into an ephemeral embed
func (c *LowbidCommand) errorResponse(ctx context.Context, err error) *discordgo.InteractionResponseData {
	kind := errorType(err)
	detail := ""
	if kind == messaging.ErrorTypeUnknown {
		c.logger.Error("lowbid command failed", "error", err)
	}
	if kind == messaging.ErrorTypeSlotNotFound {
		detail = err.Error()
	}
	return c.errorMessage(ctx, kind, detail)
}

func (c *LowbidCommand) errorMessage(ctx context.Context, kind messaging.ErrorType, detail string) *discordgo.InteractionResponseData {
	msg, err := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		ErrorType: kind,
		Detail:    detail,
	})
	if err != nil {
		return &discordgo.InteractionResponseData{
			Content: "Something went wrong.",
			Flags:   discordgo.MessageFlagsEphemeral,
		}
	}

	var components []discordgo.MessageComponent
	if kind == messaging.ErrorTypeInsufficientBalance {
		components = depositButtons()
	}

	return ephemeral(&discordgo.MessageEmbed{
		Title:       msg.Title,
		Description: msg.Message,
		Color:       colorRed,
	}, components)
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

func public(embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	}
}

func ephemeral(embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) *discordgo.InteractionResponseData {
	data := public(embed, components)
	data.Flags = discordgo.MessageFlagsEphemeral
	return data
}
