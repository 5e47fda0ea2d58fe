package discord

import (
	"crypto/sha256"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// WalletAddress derives the simulated wallet address for a Discord user.
// The same user always maps to the same address.
func WalletAddress(userID string) string {
	sum := sha256.Sum256([]byte("lowbid:" + userID))
	return common.BytesToAddress(sum[:]).Hex()
}

// Directory remembers which Discord user owns which wallet so that
// notifications addressed to a wallet can be delivered by direct message
type Directory struct {
	mu     sync.RWMutex
	owners map[string]string
}

// NewDirectory creates an empty directory
func NewDirectory() *Directory {
	return &Directory{
		owners: make(map[string]string),
	}
}

// Link records the user and returns their wallet address
func (d *Directory) Link(userID string) string {
	address := WalletAddress(userID)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.owners[address] = userID
	return address
}

// Owner returns the Discord user that owns a wallet
func (d *Directory) Owner(address string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	userID, ok := d.owners[address]
	return userID, ok
}
