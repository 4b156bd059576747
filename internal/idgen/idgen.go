// Package idgen produces opaque unique identifiers for new records.
package idgen

import (
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Generator returns a new unique identifier on every call.
type Generator func() string

var (
	fallbackMu  sync.Mutex
	fallbackRnd = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// New returns a random UUID. When the system random source is unavailable
// it falls back to a time seeded pseudo-random base-36 string.
func New() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return fallback()
	}
	return id.String()
}

func fallback() string {
	fallbackMu.Lock()
	defer fallbackMu.Unlock()
	return base36(fallbackRnd.Uint64()) + base36(fallbackRnd.Uint64())
}

func base36(v uint64) string {
	s := strconv.FormatUint(v, 36)
	// same shape as the 13 char chunks of the mobile client ids
	if len(s) > 13 {
		s = s[:13]
	}
	return s
}
