package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// NotificationPreferences controls which alerts a wallet receives
type NotificationPreferences struct {
	// Enabled turns push alerts on or off as a whole
	Enabled bool

	// Top10Alerts sends an alert whenever the leading number changes
	Top10Alerts bool

	// RoundEndAlerts sends an alert when a round settles
	RoundEndAlerts bool
}

// DefaultNotificationPreferences mirrors a freshly connected wallet
func DefaultNotificationPreferences() NotificationPreferences {
	return NotificationPreferences{
		Enabled:        false,
		Top10Alerts:    true,
		RoundEndAlerts: true,
	}
}

// Wallet is a participant's simulated wallet
type Wallet struct {
	// Address is the opaque participant identifier recorded as LastBidder
	Address string

	// Balance is the simulated spendable balance
	Balance decimal.Decimal

	// PlaysToday counts bids placed in the current round
	PlaysToday int

	// Connected indicates the wallet has been connected and may bid
	Connected bool

	// Preferences holds the wallet's alert settings
	Preferences NotificationPreferences

	// ConnectedAt is when the wallet was first connected
	ConnectedAt time.Time
}

// WantsLeaderAlerts reports whether leader-change alerts should be pushed
func (w *Wallet) WantsLeaderAlerts() bool {
	return w.Preferences.Enabled && w.Preferences.Top10Alerts
}

// WantsRoundEndAlerts reports whether round-end alerts should be pushed
func (w *Wallet) WantsRoundEndAlerts() bool {
	return w.Preferences.Enabled && w.Preferences.RoundEndAlerts
}

// ShortAddress renders an address the way the board displays it, e.g. 0x71C...9A23
func ShortAddress(address string) string {
	if len(address) <= 12 {
		return address
	}
	return address[:5] + "..." + address[len(address)-4:]
}
