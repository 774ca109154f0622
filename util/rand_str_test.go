package util

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandStr(t *testing.T) {
	s := RandStr(10)
	assert.Len(t, s, 10)

	for _, r := range s {
		assert.Contains(t, charset, string(r))
	}

	assert.Empty(t, RandStr(0))
}

func TestRandStrConcurrent(t *testing.T) {
	// Request IDs are generated from every request goroutine at once.
	// Run under -race to catch an unsynchronized generator
	var wg sync.WaitGroup

	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				s := RandStr(10)
				if len(s) != 10 || strings.ContainsAny(s, "0123456789") {
					t.Error("unexpected request id", s)
					return
				}
			}
		}()
	}

	wg.Wait()
}
