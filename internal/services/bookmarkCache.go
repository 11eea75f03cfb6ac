package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"toolkit/internal/metrics"
	"toolkit/internal/repositories"
)

type cacheState int

const (
	stateUninitialized cacheState = iota
	stateLoading
	stateReady
)

// BookmarkCache is the authoritative in-memory view of one device session's
// bookmarks. All reads and writes against the bookmark store go through it.
// It holds both a membership map and an ordered id list; the two must always
// agree. There is no TTL: the cache is only ever changed by Load/Refresh and
// by confirmed Toggle writes.
type BookmarkCache struct {
	session string
	repo    repositories.BookmarkRepository

	// mu is held across persistence calls, so mutations on one session are
	// serialized and the cache always reflects the last completed write.
	mu    sync.Mutex
	state cacheState
	ids   []string
	set   map[string]bool
}

func NewBookmarkCache(session string, repo repositories.BookmarkRepository) *BookmarkCache {
	return &BookmarkCache{
		session: session,
		repo:    repo,
		set:     make(map[string]bool),
	}
}

// Load fetches the session's full bookmark set and replaces the cache with
// it. A successful load always wins over local state; a failed load leaves
// the previous state untouched and may be retried.
func (c *BookmarkCache) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.state
	c.state = stateLoading

	ids, err := c.repo.FindToolIDsBySession(ctx, c.session)
	if err != nil {
		c.state = prev
		log.Error().Err(err).Msg("Failed to load bookmarks")
		return fmt.Errorf("failed to load bookmarks: %w", err)
	}

	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	c.ids = ids
	c.set = set
	c.state = stateReady
	return nil
}

// Refresh re-runs Load; for callers reacting to out-of-band changes.
func (c *BookmarkCache) Refresh(ctx context.Context) error {
	return c.Load(ctx)
}

// IsBookmarked never performs I/O. Before the first successful Load it
// returns false for everything; check Loaded to tell "not yet loaded" from
// "not bookmarked".
func (c *BookmarkCache) IsBookmarked(toolID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.set[toolID]
}

func (c *BookmarkCache) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == stateReady
}

// ToolIDs returns the bookmarked tool ids in creation order.
func (c *BookmarkCache) ToolIDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Toggle flips the bookmark state of toolID, writing through to the store
// before mutating the cache. On a failed write the cache is left exactly as
// it was. Concurrent toggles on the same tool are serialized; the cache
// reflects the last write that completed.
func (c *BookmarkCache) Toggle(ctx context.Context, toolID string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.set[toolID] {
		if err := c.repo.Delete(ctx, c.session, toolID); err != nil {
			metrics.BookmarkTogglesTotal.WithLabelValues("remove", "error").Inc()
			return true, fmt.Errorf("failed to remove bookmark: %w", err)
		}
		delete(c.set, toolID)
		for i, id := range c.ids {
			if id == toolID {
				c.ids = append(c.ids[:i], c.ids[i+1:]...)
				break
			}
		}
		metrics.BookmarkTogglesTotal.WithLabelValues("remove", "success").Inc()
		log.Debug().Str("tool_id", toolID).Msg("Bookmark removed")
		return false, nil
	}

	if err := c.repo.Insert(ctx, c.session, toolID); err != nil {
		metrics.BookmarkTogglesTotal.WithLabelValues("add", "error").Inc()
		return false, fmt.Errorf("failed to add bookmark: %w", err)
	}
	c.set[toolID] = true
	c.ids = append(c.ids, toolID)
	metrics.BookmarkTogglesTotal.WithLabelValues("add", "success").Inc()
	log.Debug().Str("tool_id", toolID).Msg("Bookmark added")
	return true, nil
}

// BookmarkCacheStore hands out the single BookmarkCache owned by each live
// session, so every consumer of a session shares one cache instance. Idle
// caches are evicted after the retention window; eviction is safe because
// the next Get simply reloads from the persisted bookmark records.
type BookmarkCacheStore struct {
	repo      repositories.BookmarkRepository
	retention time.Duration

	mu     sync.Mutex
	caches map[string]*cacheEntry
	hits   int64
	misses int64
}

type cacheEntry struct {
	cache    *BookmarkCache
	lastSeen time.Time
}

// CacheStats reports store activity for the stats endpoint.
type CacheStats struct {
	Sessions int   `json:"sessions"`
	Hits     int64 `json:"hits"`
	Misses   int64 `json:"misses"`
}

func NewBookmarkCacheStore(repo repositories.BookmarkRepository, retention time.Duration) *BookmarkCacheStore {
	return &BookmarkCacheStore{
		repo:      repo,
		retention: retention,
		caches:    make(map[string]*cacheEntry),
	}
}

// Get returns the session's cache, creating it on first use. The same
// session always gets the same instance while it stays live.
func (s *BookmarkCacheStore) Get(session string) *BookmarkCache {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.caches[session]
	if !exists {
		entry = &cacheEntry{cache: NewBookmarkCache(session, s.repo)}
		s.caches[session] = entry
		s.misses++
		metrics.BookmarkCacheLookups.WithLabelValues("miss").Inc()
		metrics.BookmarkCacheSessions.Set(float64(len(s.caches)))
	} else {
		s.hits++
		metrics.BookmarkCacheLookups.WithLabelValues("hit").Inc()
	}
	entry.lastSeen = time.Now()
	return entry.cache
}

func (s *BookmarkCacheStore) Stats() CacheStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CacheStats{Sessions: len(s.caches), Hits: s.hits, Misses: s.misses}
}

// Cleanup evicts idle session caches once a minute. Run it in a goroutine.
func (s *BookmarkCacheStore) Cleanup() {
	for {
		time.Sleep(time.Minute)
		s.evictIdle(time.Now())
	}
}

func (s *BookmarkCacheStore) evictIdle(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for session, entry := range s.caches {
		if now.Sub(entry.lastSeen) > s.retention {
			delete(s.caches, session)
		}
	}
	metrics.BookmarkCacheSessions.Set(float64(len(s.caches)))
}
