package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Store is the process-wide stale-aware query cache. Every successful fetch is
// kept with its fetch time; reads inside the stale window are served without a
// network call, identical reads in flight are collapsed into one upstream
// request, and mutations mark whole resource families stale so the next read
// refetches instead of serving outdated data.
type Store struct {
	mu        sync.Mutex
	entries   map[string]*entry
	gens      map[string]uint64
	flight    singleflight.Group
	staleTime time.Duration
}

type entry struct {
	key       Key
	data      interface{}
	fetchedAt time.Time
	touchedAt time.Time
	stale     bool
}

// NewStore builds a Store whose entries are considered fresh for staleTime
// after a successful fetch.
func NewStore(staleTime time.Duration) *Store {
	return &Store{
		entries:   make(map[string]*entry),
		gens:      make(map[string]uint64),
		staleTime: staleTime,
	}
}

// GetOrFetch returns the cached value for key when it is still fresh,
// otherwise runs fetch and stores the result. Concurrent callers for the same
// key share a single in-flight fetch. A failed fetch leaves any prior value in
// place; that prior value is returned alongside the error so callers can show
// stale-but-available data.
func (s *Store) GetOrFetch(ctx context.Context, key Key, fetch func(ctx context.Context) (interface{}, error)) (interface{}, error) {
	id := key.String()

	s.mu.Lock()
	if e, ok := s.entries[id]; ok && !e.stale && time.Since(e.fetchedAt) < s.staleTime {
		e.touchedAt = time.Now()
		data := e.data
		s.mu.Unlock()
		return data, nil
	}
	// snapshot the family generation so an Invalidate racing the fetch below
	// is not lost: the result is then stored already stale
	gen := s.gens[key.Entity]
	s.mu.Unlock()

	v, err, _ := s.flight.Do(id, func() (interface{}, error) {
		data, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		now := time.Now()
		s.mu.Lock()
		s.entries[id] = &entry{
			key:       key,
			data:      data,
			fetchedAt: now,
			touchedAt: now,
			stale:     s.gens[key.Entity] != gen,
		}
		s.mu.Unlock()
		return data, nil
	})
	if err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		if e, ok := s.entries[id]; ok {
			e.stale = true
			return e.data, err
		}
		return nil, err
	}
	return v, nil
}

// Invalidate marks every entry belonging to one of the given resource
// families as stale. Entries are not deleted; the next read refetches. The
// family generation advances so a fetch already in flight cannot store its
// pre-invalidation result as fresh, and the shared flight for existing entries
// is forgotten so later callers start a fresh fetch instead of joining it.
func (s *Store) Invalidate(entities ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, name := range entities {
		s.gens[name]++
	}
	for id, e := range s.entries {
		for _, name := range entities {
			if e.key.Entity == name {
				e.stale = true
				s.flight.Forget(id)
				break
			}
		}
	}
}

// Sweep drops entries that have not been touched within evictAfter. This is
// the memory-pressure policy; staleness alone never deletes an entry.
func (s *Store) Sweep(evictAfter time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, e := range s.entries {
		if time.Since(e.touchedAt) > evictAfter {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// Len reports how many entries the store currently holds.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Fetch is the typed wrapper over Store.GetOrFetch.
func Fetch[T any](ctx context.Context, s *Store, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	v, err := s.GetOrFetch(ctx, key, func(ctx context.Context) (interface{}, error) {
		return fetch(ctx)
	})
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, err
	}
	return t, err
}
