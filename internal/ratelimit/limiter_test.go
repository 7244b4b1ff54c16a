package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_AllowWithinLimit(t *testing.T) {
	l := New(3, time.Minute)

	assert.True(t, l.Allow("client route"))
	assert.True(t, l.Allow("client route"))
	assert.True(t, l.Allow("client route"))
	assert.False(t, l.Allow("client route"))
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	l := New(1, time.Minute)

	assert.True(t, l.Allow("a /api/scan"))
	assert.False(t, l.Allow("a /api/scan"))
	assert.True(t, l.Allow("b /api/scan"))
	assert.True(t, l.Allow("a /api/tickets"))
}

func TestLimiter_WindowResets(t *testing.T) {
	l := New(1, 20*time.Millisecond)

	assert.True(t, l.Allow("k"))
	assert.False(t, l.Allow("k"))

	time.Sleep(30 * time.Millisecond)

	assert.True(t, l.Allow("k"))
}

func TestLimiter_SweepRemovesExpired(t *testing.T) {
	l := New(10, 20*time.Millisecond)

	l.Allow("a")
	l.Allow("b")
	assert.Equal(t, 2, l.Size())

	time.Sleep(30 * time.Millisecond)
	l.Allow("c")

	removed := l.Sweep()
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, l.Size())
}

func TestLimiter_ConcurrentAllow(t *testing.T) {
	l := New(100, time.Minute)

	var wg sync.WaitGroup
	allowed := make(chan bool, 200)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed <- l.Allow("shared")
		}()
	}
	wg.Wait()
	close(allowed)

	count := 0
	for ok := range allowed {
		if ok {
			count++
		}
	}
	assert.Equal(t, 100, count)
}
