package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/lowbid/internal/models"
	"github.com/bwmarrin/discordgo"
)

// Sender is the part of a Discord session the notifier needs
type Sender interface {
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// NotifierConfig holds the dependencies for the Discord notifier
type NotifierConfig struct {
	Sender    Sender
	Directory *Directory

	// ChannelID receives broadcasts; broadcasts are dropped when empty
	ChannelID string

	Logger *slog.Logger
}

// Notifier delivers notifications as Discord embeds. Broadcasts go to
// the configured channel and wallet notifications go by direct message
// to the wallet's owner.
type Notifier struct {
	sender    Sender
	directory *Directory
	channelID string
	logger    *slog.Logger
}

// NewNotifier creates a Discord notifier
func NewNotifier(cfg *NotifierConfig) (*Notifier, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if cfg.Sender == nil {
		return nil, fmt.Errorf("sender cannot be nil")
	}

	if cfg.Directory == nil {
		return nil, fmt.Errorf("directory cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Notifier{
		sender:    cfg.Sender,
		directory: cfg.Directory,
		channelID: cfg.ChannelID,
		logger:    logger,
	}, nil
}

// Notify sends the notification. Wallets with no Discord owner are skipped.
func (n *Notifier) Notify(ctx context.Context, notification *models.Notification) error {
	if notification == nil {
		return nil
	}

	embed := renderNotification(notification)

	if notification.Recipient == "" {
		if n.channelID == "" {
			return nil
		}
		if _, err := n.sender.ChannelMessageSendEmbed(n.channelID, embed, discordgo.WithContext(ctx)); err != nil {
			return fmt.Errorf("failed to post to channel %s: %w", n.channelID, err)
		}
		return nil
	}

	userID, ok := n.directory.Owner(notification.Recipient)
	if !ok {
		n.logger.Debug("no discord owner for wallet", "recipient", models.ShortAddress(notification.Recipient))
		return nil
	}

	channel, err := n.sender.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to open direct message with %s: %w", userID, err)
	}

	if _, err := n.sender.ChannelMessageSendEmbed(channel.ID, embed, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send direct message to %s: %w", userID, err)
	}

	return nil
}
