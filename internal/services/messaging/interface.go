package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/lowbid/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetNotificationMessage returns the title and body for a notification kind
	GetNotificationMessage(ctx context.Context, input *GetNotificationMessageInput) (*GetNotificationMessageOutput, error)

	// GetBidResultMessage returns a message for a bid that was just placed
	GetBidResultMessage(ctx context.Context, input *GetBidResultMessageInput) (*GetBidResultMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
