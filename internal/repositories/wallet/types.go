package wallet

import "github.com/KirkDiggler/lowbid/internal/models"

type SaveWalletInput struct {
	Wallet *models.Wallet
}

type GetWalletInput struct {
	Address string
}

type ListWalletsInput struct {
}

type ListWalletsOutput struct {
	Wallets []*models.Wallet
}

type ResetDailyPlaysInput struct {
}
