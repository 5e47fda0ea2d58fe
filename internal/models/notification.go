package models

import (
	"time"
)

// NotificationKind represents what triggered a notification
type NotificationKind string

const (
	// NotificationKindLeaderChange is sent when a new number takes the lead
	NotificationKindLeaderChange NotificationKind = "leader_change"

	// NotificationKindDeposit is sent when a deposit is credited
	NotificationKindDeposit NotificationKind = "deposit_confirmed"

	// NotificationKindEnabled is sent when a wallet turns alerts on
	NotificationKindEnabled NotificationKind = "notifications_enabled"

	// NotificationKindRoundSettled is sent to subscribers when a round ends
	NotificationKindRoundSettled NotificationKind = "round_settled"

	// NotificationKindRoundWon is sent to the winner of a round
	NotificationKindRoundWon NotificationKind = "round_won"
)

// Notification is a message addressed to a wallet
type Notification struct {
	// Kind is what triggered the notification
	Kind NotificationKind

	// Recipient is the wallet address the notification is for
	Recipient string

	// Title is the headline
	Title string

	// Message is the body text
	Message string

	// CreatedAt is when the notification was produced
	CreatedAt time.Time
}
