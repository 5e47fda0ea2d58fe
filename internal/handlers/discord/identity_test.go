package discord

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestWalletAddressIsStable(t *testing.T) {
	first := WalletAddress("1234567890")
	second := WalletAddress("1234567890")
	other := WalletAddress("987654321")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.True(t, common.IsHexAddress(first))
	assert.Len(t, first, 42)
}

func TestDirectory(t *testing.T) {
	directory := NewDirectory()

	_, ok := directory.Owner(WalletAddress("42"))
	assert.False(t, ok)

	address := directory.Link("42")
	assert.Equal(t, WalletAddress("42"), address)

	owner, ok := directory.Owner(address)
	assert.True(t, ok)
	assert.Equal(t, "42", owner)
}
