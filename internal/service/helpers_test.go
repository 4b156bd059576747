package service_test

import (
	"fmt"
	"sync"
	"time"

	"github.com/Click-facil/fitclick/internal/idgen"
)

var fixedNow = time.Date(2024, 5, 7, 18, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// sequentialIDs returns a generator producing prefix1, prefix2, ...
func sequentialIDs(prefix string) idgen.Generator {
	var (
		mu sync.Mutex
		n  int
	)
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

func ptr[T any](v T) *T { return &v }
