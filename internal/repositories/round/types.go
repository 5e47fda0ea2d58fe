package round

import "github.com/KirkDiggler/lowbid/internal/models"

type SaveRoundInput struct {
	Round *models.Round
}

type GetRoundInput struct {
	RoundID int64
}

type GetCurrentRoundInput struct {
}

type NextRoundIDInput struct {
}

type SaveSlotInput struct {
	RoundID int64
	Slot    *models.Slot
}

type GetSlotsInput struct {
	RoundID int64

	// Size is the board size; slots never bid on are returned empty
	Size int
}

type GetSlotsOutput struct {
	Slots []*models.Slot
}

type ClearSlotsInput struct {
	RoundID int64
}
