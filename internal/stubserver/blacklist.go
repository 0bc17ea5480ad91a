package stubserver

import (
	"log/slog"
	"sync"
	"time"
)

// Blacklist tracks revoked session tokens. Entries expire on their own after
// the token validity window, since a token past its exp claim no longer
// needs tracking.
type Blacklist struct {
	mu            sync.RWMutex
	entries       map[string]time.Time
	ttl           time.Duration
	cleanupTicker *time.Ticker
	stopCleanup   chan struct{}
}

// NewBlacklist creates a blacklist whose entries expire after ttl.
func NewBlacklist(ttl, cleanupInterval time.Duration) *Blacklist {
	b := &Blacklist{
		entries:     make(map[string]time.Time),
		ttl:         ttl,
		stopCleanup: make(chan struct{}),
	}

	b.cleanupTicker = time.NewTicker(cleanupInterval)
	go b.cleanupExpiredEntries()

	return b
}

// Add revokes a token.
func (b *Blacklist) Add(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries[token] = time.Now().Add(b.ttl)
	slog.Debug("Token blacklisted", "expires_at", b.entries[token].Format(time.RFC3339))
}

// Contains reports whether a token is revoked and not yet expired.
func (b *Blacklist) Contains(token string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	expiresAt, exists := b.entries[token]
	if !exists {
		return false
	}
	return time.Now().Before(expiresAt)
}

// Size returns the current number of entries, including expired ones.
func (b *Blacklist) Size() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

// Stop stops the cleanup goroutine.
func (b *Blacklist) Stop() {
	if b.cleanupTicker != nil {
		b.cleanupTicker.Stop()
	}
	close(b.stopCleanup)
}

func (b *Blacklist) cleanupExpiredEntries() {
	for {
		select {
		case <-b.cleanupTicker.C:
			b.performCleanup()
		case <-b.stopCleanup:
			return
		}
	}
}

func (b *Blacklist) performCleanup() {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	removed := 0
	for token, expiresAt := range b.entries {
		if now.After(expiresAt) {
			delete(b.entries, token)
			removed++
		}
	}

	if removed > 0 {
		slog.Debug("Blacklist cleanup completed",
			"expired_entries", removed,
			"remaining_entries", len(b.entries))
	}
}
