// Package rank orders the board by lowest cumulative bid and derives
// per-participant positions from that ordering. Every function is pure:
// callers own the slot collection and pass it in.
package rank

import (
	"fmt"
	"sort"
	"time"

	"github.com/KirkDiggler/lowbid/internal/models"
	"github.com/shopspring/decimal"
)

// PositionsLimit is how many of a participant's positions are listed
const PositionsLimit = 10

// Positions is a participant's view of the board
type Positions struct {
	// Entries holds the participant's best-ranked slots, at most PositionsLimit
	Entries []*models.RankedSlot

	// TotalActive counts every active slot the participant leads as last bidder
	TotalActive int

	// Top10Count counts those positions ranked 1..10
	Top10Count int

	// LeadingCount counts those positions ranked 1
	LeadingCount int
}

// RankActive drops slots with no bids and orders the rest ascending by
// TotalAmount. Equal amounts keep their input order. Ranks run 1..len with
// no gaps or shared ranks, even across ties.
func RankActive(slots []*models.Slot) []*models.RankedSlot {
	ranked := make([]*models.RankedSlot, 0, len(slots))
	for _, slot := range slots {
		if slot == nil || !slot.IsActive() {
			continue
		}
		ranked = append(ranked, &models.RankedSlot{Slot: *slot})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalAmount.LessThan(ranked[j].TotalAmount)
	})

	for i, entry := range ranked {
		entry.Rank = i + 1
		entry.WinLikelihood = WinLikelihood(entry.Rank)
	}

	return ranked
}

// Leaderboard returns the first limit entries of RankActive. A limit <= 0
// returns the full ranking.
func Leaderboard(slots []*models.Slot, limit int) []*models.RankedSlot {
	ranked := RankActive(slots)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Leader returns the rank 1 slot, or nil when nothing has been bid on
func Leader(slots []*models.Slot) *models.RankedSlot {
	ranked := RankActive(slots)
	if len(ranked) == 0 {
		return nil
	}
	return ranked[0]
}

// PositionsFor returns the ranked slots whose last bidder is participantID.
// Summary counts cover every matching slot; Entries is truncated to the
// best PositionsLimit. An empty participantID matches nothing.
func PositionsFor(slots []*models.Slot, participantID string) *Positions {
	positions := &Positions{
		Entries: []*models.RankedSlot{},
	}
	if participantID == "" {
		return positions
	}

	for _, entry := range RankActive(slots) {
		if entry.LastBidder != participantID {
			continue
		}

		positions.TotalActive++
		if entry.Rank <= PositionsLimit {
			positions.Top10Count++
		}
		if entry.Rank == 1 {
			positions.LeadingCount++
		}
		if len(positions.Entries) < PositionsLimit {
			positions.Entries = append(positions.Entries, entry)
		}
	}

	return positions
}

// ApplyBid adds unit to the slot with the given id and records the bidder
// and time. It is the only mutator of TotalAmount. An unknown id returns
// ErrSlotNotFound and leaves every slot untouched.
func ApplyBid(slots []*models.Slot, slotID int, participantID string, unit decimal.Decimal, at time.Time) error {
	if !unit.IsPositive() {
		return ErrInvalidUnit
	}

	target := findSlot(slots, slotID)
	if target == nil {
		return fmt.Errorf("%w: %d", ErrSlotNotFound, slotID)
	}

	target.TotalAmount = target.TotalAmount.Add(unit)
	target.LastBidder = participantID
	target.LastBidTime = at

	return nil
}

// findSlot checks the index first since boards are built with ID == index
func findSlot(slots []*models.Slot, slotID int) *models.Slot {
	if slotID >= 0 && slotID < len(slots) {
		if slot := slots[slotID]; slot != nil && slot.ID == slotID {
			return slot
		}
	}
	for _, slot := range slots {
		if slot != nil && slot.ID == slotID {
			return slot
		}
	}
	return nil
}
