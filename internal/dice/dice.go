package dice

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/heroactions/internal/dice Roller

// Roller rolls a single die
type Roller interface {
	// Roll returns a value in [1, sides]
	Roll(sides int) int
}

// roller provides dice rolling functionality
type roller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new dice roller
func New(cfg *Config) Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &roller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *roller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}

	// rand.Rand is not safe for concurrent use and nodes share one roller
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.random.Intn(sides) + 1
}
