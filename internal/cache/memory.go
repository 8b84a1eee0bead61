package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Memory is the default in-process backend: a mutex-guarded map with
// lazy expiry on Get and a janitor goroutine sweeping expired entries
// on a fixed interval. Contents are lost on restart.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration

	closeOnce sync.Once
	done      chan struct{}
}

func NewMemory(ttl, sweepInterval time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if sweepInterval <= 0 {
		sweepInterval = DefaultSweepInterval
	}
	m := &Memory{
		entries: make(map[string]entry),
		ttl:     ttl,
		done:    make(chan struct{}),
	}
	go m.janitor(sweepInterval)
	return m
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok || time.Now().After(e.expiresAt) {
		return nil, false, nil
	}
	return e.value, true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	m.entries[key] = entry{value: value, expiresAt: time.Now().Add(m.ttl)}
	m.mu.Unlock()
	return nil
}

func (m *Memory) Close() error {
	m.closeOnce.Do(func() { close(m.done) })
	return nil
}

func (m *Memory) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.sweep(time.Now())
		case <-m.done:
			return
		}
	}
}

func (m *Memory) sweep(now time.Time) {
	m.mu.Lock()
	for key, e := range m.entries {
		if now.After(e.expiresAt) {
			delete(m.entries, key)
		}
	}
	m.mu.Unlock()
}

var _ Store = (*Memory)(nil)
