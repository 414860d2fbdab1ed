// Package sessioncode produces the short shareable codes that identify
// sessions.
package sessioncode

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"
)

const (
	defaultAlphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	defaultLength      = 6
	defaultMaxAttempts = 10
)

// ErrExhausted is returned when every attempted code collided with an
// existing session. Practically unreachable at intended scale, but the
// retry loop must be bounded.
var ErrExhausted = errors.New("session code space exhausted")

// Generator produces random session codes from a fixed alphabet
type Generator struct {
	alphabet    string
	length      int
	maxAttempts int

	// rand.Rand is not safe for concurrent use
	mu     sync.Mutex
	random *rand.Rand
}

// Config holds configuration for the generator
type Config struct {
	// Alphabet is the set of characters codes are drawn from. Empty means uppercase letters and digits.
	Alphabet string

	// Length is the code length. Zero means the default of 6.
	Length int

	// MaxAttempts bounds the collision retry loop. Zero means the default of 10.
	MaxAttempts int

	// Optional seed for testing
	Seed int64
}

// New creates a new generator
func New(cfg *Config) *Generator {
	alphabet := defaultAlphabet
	length := defaultLength
	maxAttempts := defaultMaxAttempts
	var seed int64

	if cfg != nil {
		if cfg.Alphabet != "" {
			alphabet = strings.ToUpper(cfg.Alphabet)
		}
		if cfg.Length > 0 {
			length = cfg.Length
		}
		if cfg.MaxAttempts > 0 {
			maxAttempts = cfg.MaxAttempts
		}
		seed = cfg.Seed
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		alphabet:    alphabet,
		length:      length,
		maxAttempts: maxAttempts,
		random:      rand.New(rand.NewSource(seed)),
	}
}

// Generate returns a single random code without checking for collisions
func (g *Generator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	b := make([]byte, g.length)
	for i := range b {
		b[i] = g.alphabet[g.random.Intn(len(g.alphabet))]
	}
	return string(b)
}

// Unique draws codes until inUse reports one free, failing with
// ErrExhausted once the attempt budget is spent.
func (g *Generator) Unique(ctx context.Context, inUse func(ctx context.Context, code string) (bool, error)) (string, error) {
	for i := 0; i < g.maxAttempts; i++ {
		code := g.Generate()

		taken, err := inUse(ctx, code)
		if err != nil {
			return "", err
		}

		if !taken {
			return code, nil
		}
	}

	return "", ErrExhausted
}
