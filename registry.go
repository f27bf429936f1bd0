// Copyright (C) 2025 Jan Wrobel <jan@wwwhisper.io>
// This program is freely distributable under the terms of the
// Simplified BSD License. See COPYING.

package stopwatch

import (
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/wrr/stopwatch/internal/timer"
)

type registryEntry struct {
	timer  *Timer
	// nil if entries do not expire.
	expiry *timer.Expiry
}

func (e *registryEntry) expired() bool {
	return e.expiry != nil && e.expiry.Expired()
}

// Registry keeps timers by name, so a timer can be looked up in a
// different place than the one that created it. The number of timers
// is bounded, when the limit is reached the least recently used timer
// is dropped.
//
// Registry is safe for concurrent use, but the returned timers are
// not.
type Registry struct {
	mu    sync.Mutex
	cache *lru.Cache[string, *registryEntry]
	opts  []Option
	idle  time.Duration
	clock Clock
}

// NewRegistry creates a registry that holds at most size timers. If
// idle is positive, a timer not retrieved for longer than idle is
// replaced with a new one on the next Get. Timers are created with
// opts and the name passed to Get.
func NewRegistry(size int, idle time.Duration, opts ...Option) (*Registry, error) {
	cache, err := lru.New[string, *registryEntry](size)
	if err != nil {
		return nil, fmt.Errorf("error creating timer registry: %w", err)
	}
	// Options are applied to a scratch timer only to find out which
	// clock the created timers use.
	var probe Timer
	for _, opt := range opts {
		opt(&probe)
	}
	clock := probe.clock
	if clock == nil {
		clock = timer.System
	}
	return &Registry{
		cache: cache,
		opts:  opts,
		idle:  idle,
		clock: clock,
	}, nil
}

// Get returns the timer with the given name. A timer that does not
// exist or expired is created, which emits its "started." message.
func (r *Registry) Get(name string) (*Timer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.cache.Get(name)
	if ok && !entry.expired() {
		if entry.expiry != nil {
			entry.expiry.Start()
		}
		return entry.timer, nil
	}

	opts := make([]Option, 0, len(r.opts)+1)
	opts = append(opts, r.opts...)
	opts = append(opts, WithName(name))
	t, err := New(opts...)
	if err != nil {
		return nil, err
	}
	entry = &registryEntry{timer: t}
	if r.idle > 0 {
		entry.expiry = timer.NewExpiry(r.clock, r.idle)
		entry.expiry.Start()
	}
	r.cache.Add(name, entry)
	return t, nil
}

// Remove drops the timer with the given name. Returns false if there
// was no such timer.
func (r *Registry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cache.Remove(name)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cache.Len()
}

// Names returns names of held timers, from the least to the most
// recently used. Expired timers are included until replaced or
// evicted.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cache.Keys()
}
