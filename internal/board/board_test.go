package board

import (
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/lowbid/internal/models"
	"github.com/KirkDiggler/lowbid/internal/rank"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	unit     = decimal.RequireFromString("0.01")
)

func TestBoard_BidReturnsCopy(t *testing.T) {
	b := New(10)

	updated, err := b.Bid(3, "0xA", unit, testTime)
	require.NoError(t, err)
	assert.Equal(t, "0.01", updated.TotalAmount.String())

	updated.LastBidder = "changed"

	stored, err := b.Get(3)
	require.NoError(t, err)
	assert.Equal(t, "0xA", stored.LastBidder)
}

func TestBoard_UnknownSlot(t *testing.T) {
	b := New(10)
	before := b.Snapshot()

	_, err := b.Bid(10, "0xA", unit, testTime)
	assert.ErrorIs(t, err, rank.ErrSlotNotFound)

	_, err = b.Get(-1)
	assert.ErrorIs(t, err, rank.ErrSlotNotFound)

	assert.Equal(t, before, b.Snapshot())
}

func TestBoard_SnapshotIsIsolated(t *testing.T) {
	b := New(3)
	_, err := b.Bid(1, "0xA", unit, testTime)
	require.NoError(t, err)

	snapshot := b.Snapshot()
	snapshot[1].TotalAmount = decimal.NewFromInt(100)

	stored, err := b.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "0.01", stored.TotalAmount.String())
}

func TestBoard_ResetAndRestore(t *testing.T) {
	b := New(5)
	_, err := b.Bid(2, "0xA", unit, testTime)
	require.NoError(t, err)

	b.Reset()
	assert.Equal(t, 5, b.Size())
	assert.Empty(t, rank.RankActive(b.Snapshot()))

	err = b.Restore([]*models.Slot{
		{ID: 4, TotalAmount: decimal.RequireFromString("0.03"), LastBidder: "0xB", LastBidTime: testTime},
	})
	require.NoError(t, err)

	ranked := rank.RankActive(b.Snapshot())
	require.Len(t, ranked, 1)
	assert.Equal(t, 4, ranked[0].ID)

	err = b.Restore([]*models.Slot{{ID: 5}})
	assert.ErrorIs(t, err, rank.ErrSlotNotFound)
	assert.Len(t, rank.RankActive(b.Snapshot()), 1)
}

func TestBoard_ConcurrentBids(t *testing.T) {
	b := New(4)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := b.Bid(0, "0xA", unit, testTime)
			assert.NoError(t, err)
			_ = b.Snapshot()
		}()
	}
	wg.Wait()

	stored, err := b.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "1", stored.TotalAmount.String())
}
