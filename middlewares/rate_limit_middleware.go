// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package middlewares

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedRateLimiter keeps one token bucket per key. Entries are pruned lazily
// whenever the map is touched, so an idle server does not grow a stale map.
type KeyedRateLimiter struct {
	mu       sync.Mutex
	entries  map[string]*limiterEntry
	limit    rate.Limit
	burst    int
	maxIdle  time.Duration
	lastScan time.Time
}

func NewKeyedRateLimiter(limit rate.Limit, burst int) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		entries: make(map[string]*limiterEntry),
		limit:   limit,
		burst:   burst,
		maxIdle: 15 * time.Minute,
	}
}

// NewLoginRateLimiter allows a small burst of attempts per address, refilling
// one attempt every 10 seconds.
func NewLoginRateLimiter() *KeyedRateLimiter {
	return NewKeyedRateLimiter(rate.Every(10*time.Second), 5)
}

func (l *KeyedRateLimiter) Check(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pruneLocked()

	entry, ok := l.entries[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.entries[key] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter.Allow()
}

// Reset clears the bucket of a key, e.g. after a successful login.
func (l *KeyedRateLimiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, key)
}

func (l *KeyedRateLimiter) pruneLocked() {
	now := time.Now()
	if now.Sub(l.lastScan) < time.Minute {
		return
	}
	l.lastScan = now
	for key, entry := range l.entries {
		if now.Sub(entry.lastSeen) > l.maxIdle {
			delete(l.entries, key)
		}
	}
}
