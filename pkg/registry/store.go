package registry

import (
	"context"
	"errors"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Store maps container selectors to hash variable names.
type Store interface {
	// Add stores hashVar for container when absent. It returns the value held
	// after the call and whether this call inserted it.
	Add(ctx context.Context, container, hashVar string) (stored string, added bool, err error)
}

// MemoryStore is an in-process Store meant to live for one page render.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]string
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]string)}
}

func (s *MemoryStore) Add(_ context.Context, container, hashVar string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.entries == nil {
		s.entries = make(map[string]string)
	}
	if stored, ok := s.entries[container]; ok {
		return stored, false, nil
	}
	s.entries[container] = hashVar
	return hashVar, true, nil
}

// Lookup returns the stored hash variable for container.
func (s *MemoryStore) Lookup(container string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.entries[container]
	return stored, ok
}

// Len reports the number of registered containers.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

const sharedStoreRetries = 3

// SharedStore keeps registrations for the lifetime of the process, optionally
// expiring them. Use it only when every page served by the process should
// share one set of emitted configurations.
type SharedStore struct {
	cache *gocache.Cache
}

var _ Store = (*SharedStore)(nil)

// NewSharedStore creates a process-wide store. A zero ttl keeps entries until
// the process exits.
func NewSharedStore(ttl time.Duration) *SharedStore {
	expiration := gocache.NoExpiration
	cleanup := time.Duration(0)
	if ttl > 0 {
		expiration = ttl
		cleanup = 2 * ttl
	}
	return &SharedStore{cache: gocache.New(expiration, cleanup)}
}

func (s *SharedStore) Add(ctx context.Context, container, hashVar string) (string, bool, error) {
	for attempt := 0; attempt < sharedStoreRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", false, err
		}
		if err := s.cache.Add(container, hashVar, gocache.DefaultExpiration); err == nil {
			return hashVar, true, nil
		}
		if value, found := s.cache.Get(container); found {
			if stored, ok := value.(string); ok {
				return stored, false, nil
			}
		}
		// the entry expired between Add and Get; try again
	}
	return "", false, errors.New("registry: shared store contention")
}

// Flush removes every registration.
func (s *SharedStore) Flush() {
	s.cache.Flush()
}
