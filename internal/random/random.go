package random

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_picker.go github.com/KirkDiggler/eatwhat/internal/random Picker

// Picker selects one index uniformly at random from a set of n choices
type Picker interface {
	Pick(n int) int
}

// DefaultPicker implements Picker with a seeded rand source
type DefaultPicker struct {
	// rand.Rand is not safe for concurrent use
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the picker
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new picker
func New(cfg *Config) *DefaultPicker {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &DefaultPicker{
		random: random,
	}
}

// Pick returns a uniformly random index in [0, n). Callers are expected
// to pass n >= 1; anything lower yields 0.
func (p *DefaultPicker) Pick(n int) int {
	if n < 2 {
		return 0
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.random.Intn(n)
}
