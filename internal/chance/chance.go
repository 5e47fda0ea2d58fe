package chance

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/lowbid/internal/chance Source

import (
	"math/rand"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Source provides the random choices made by the bot traffic driver
type Source interface {
	// Intn returns a number in [0, n)
	Intn(n int) int

	// Float64 returns a number in [0.0, 1.0)
	Float64() float64
}

// Config for the random source
type Config struct {
	// Optional seed for testing
	Seed int64
}

// Random is a Source backed by math/rand. It is safe for concurrent use.
type Random struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new random source
func New(cfg *Config) *Random {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Random{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a number in [0, n). A non-positive n returns 0.
func (r *Random) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(n)
}

// Float64 returns a number in [0.0, 1.0)
func (r *Random) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Float64()
}

// Between returns a number in [min, max]
func Between(src Source, min, max int) int {
	if max <= min {
		return min
	}
	return min + src.Intn(max-min+1)
}

// NewWalletAddress derives a checksummed wallet address from random bytes
func NewWalletAddress(src Source) string {
	raw := make([]byte, common.AddressLength)
	for i := range raw {
		raw[i] = byte(src.Intn(256))
	}
	return common.BytesToAddress(raw).Hex()
}
