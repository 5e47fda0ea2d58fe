package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/lowbid/internal/chance"
	"github.com/KirkDiggler/lowbid/internal/models"
	"github.com/KirkDiggler/lowbid/internal/rank"
)

// Fixed notification titles
const (
	TitleNewLeader            = "New Leader!"
	TitleDepositConfirmed     = "Deposit Confirmed"
	TitleNotificationsEnabled = "Notifications Enabled"
	TitleRoundSettled         = "Round Settled"
	TitleRoundWon             = "You Won!"
)

// service implements the Service interface
type service struct {
	// Source for selecting random messages
	source chance.Source
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	var source chance.Source
	if config != nil && config.Source != nil {
		source = config.Source
	} else {
		source = chance.New(nil)
	}

	return &service{
		source: source,
	}, nil
}

func (s *service) pick(options []string) string {
	return options[s.source.Intn(len(options))]
}

// GetNotificationMessage returns the title and body for a notification kind
func (s *service) GetNotificationMessage(ctx context.Context, input *GetNotificationMessageInput) (*GetNotificationMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.Tone
	if tone == "" {
		tone = ToneNeutral
	}

	var title string
	var messages []string

	switch input.Kind {
	case models.NotificationKindLeaderChange:
		title = TitleNewLeader
		messages = []string{
			fmt.Sprintf("Number #%d has taken the lead with the lowest unique bid structure.", input.SlotID),
			fmt.Sprintf("Number #%d just slipped into first place. Is it yours?", input.SlotID),
			fmt.Sprintf("The board shifted. #%d now holds the lowest total.", input.SlotID),
		}
	case models.NotificationKindDeposit:
		title = TitleDepositConfirmed
		messages = []string{
			fmt.Sprintf("$%s added via Meson X402.", input.Amount.StringFixed(2)),
			fmt.Sprintf("$%s is ready to play.", input.Amount.StringFixed(2)),
		}
	case models.NotificationKindEnabled:
		title = TitleNotificationsEnabled
		messages = []string{
			"You will now receive game alerts.",
		}
	case models.NotificationKindRoundSettled:
		title = TitleRoundSettled
		if input.HasWinner {
			messages = []string{
				fmt.Sprintf("Round #%d is over. Number #%d won $%s.", input.RoundID, input.SlotID, input.Amount.StringFixed(2)),
				fmt.Sprintf("Round #%d closed with #%d on top. The prize was $%s.", input.RoundID, input.SlotID, input.Amount.StringFixed(2)),
			}
		} else {
			messages = []string{
				fmt.Sprintf("Round #%d ended without a single bid. A new round is open.", input.RoundID),
			}
		}
	case models.NotificationKindRoundWon:
		title = TitleRoundWon
		messages = []string{
			fmt.Sprintf("Number #%d held the lowest total. $%s has been added to your balance.", input.SlotID, input.Amount.StringFixed(2)),
			fmt.Sprintf("Lowest and unique! #%d pays out $%s to you.", input.SlotID, input.Amount.StringFixed(2)),
		}
	default:
		return nil, fmt.Errorf("unknown notification kind: %s", input.Kind)
	}

	return &GetNotificationMessageOutput{
		Title:   title,
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetBidResultMessage returns a message for a bid that was just placed
func (s *service) GetBidResultMessage(ctx context.Context, input *GetBidResultMessageInput) (*GetBidResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var title string
	var messages []string

	switch input.Standing {
	case rank.StandingLeading:
		title = "Leading!"
		messages = []string{
			fmt.Sprintf("#%d is now the lowest number on the board.", input.SlotID),
			fmt.Sprintf("You hold the lead with #%d. Now keep it.", input.SlotID),
		}
	case rank.StandingTop10:
		title = fmt.Sprintf("Rank #%d", input.Rank)
		messages = []string{
			fmt.Sprintf("#%d sits at rank %d. Close, but not quite.", input.SlotID, input.Rank),
			fmt.Sprintf("#%d made the top 10 at rank %d.", input.SlotID, input.Rank),
		}
	default:
		title = "Bid Placed"
		messages = []string{
			fmt.Sprintf("#%d is at rank %d. Plenty of room to climb.", input.SlotID, input.Rank),
			fmt.Sprintf("Bid on #%d recorded. It ranks %d for now.", input.SlotID, input.Rank),
		}
	}

	message := s.pick(messages)
	if input.PlaysRemaining >= 0 {
		message = fmt.Sprintf("%s %d plays left today.", message, input.PlaysRemaining)
	}

	return &GetBidResultMessageOutput{
		Title:   title,
		Message: message,
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var title string
	var messages []string

	switch input.ErrorType {
	case ErrorTypeNotConnected:
		title = "Wallet Not Connected"
		messages = []string{
			"Please connect wallet first.",
			"Connect a wallet with /lowbid connect before bidding.",
		}
	case ErrorTypeInsufficientBalance:
		title = "Insufficient Balance"
		messages = []string{
			"You need at least $0.01 to play. Top up with /lowbid deposit.",
			"Your balance is empty. Deposit to keep bidding.",
		}
	case ErrorTypeDailyLimit:
		title = "Daily Limit Reached"
		messages = []string{
			"You have used all of today's plays. Come back next round.",
			"That's the daily limit. The board resets at the end of the round.",
		}
	case ErrorTypeSlotNotFound:
		title = "Unknown Number"
		messages = []string{
			"That number is not on the board.",
		}
	case ErrorTypeInvalidAmount:
		title = "Invalid Amount"
		messages = []string{
			"Amounts must be greater than zero.",
		}
	case ErrorTypeRateLimited:
		title = "Slow Down"
		messages = []string{
			"Your last bid is still processing. Try again in a moment.",
			"Easy there. One bid at a time.",
		}
	default:
		title = "Something Went Wrong"
		messages = []string{
			"That didn't work. Try again in a moment.",
			"The board hiccupped. Try again.",
		}
	}

	message := s.pick(messages)
	if input.Detail != "" {
		message = fmt.Sprintf("%s (%s)", message, input.Detail)
	}

	return &GetErrorMessageOutput{
		Title:   title,
		Message: message,
	}, nil
}
