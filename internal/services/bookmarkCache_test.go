package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeBookmarkRepo struct {
	mu        sync.Mutex
	ids       []string
	loadErr   error
	insertErr error
	deleteErr error
	loads     int
}

func (f *fakeBookmarkRepo) FindToolIDsBySession(ctx context.Context, session string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	out := make([]string, len(f.ids))
	copy(out, f.ids)
	return out, nil
}

func (f *fakeBookmarkRepo) Insert(ctx context.Context, session, toolID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	f.ids = append(f.ids, toolID)
	return nil
}

func (f *fakeBookmarkRepo) Delete(ctx context.Context, session, toolID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, id := range f.ids {
		if id == toolID {
			f.ids = append(f.ids[:i], f.ids[i+1:]...)
			break
		}
	}
	return nil
}

// assertConsistent checks the cache's map/list invariant: membership answers
// must agree with the ordered list, and the list must hold no duplicates.
func assertConsistent(t *testing.T, c *BookmarkCache, probeIDs ...string) {
	t.Helper()
	listed := make(map[string]bool)
	for _, id := range c.ToolIDs() {
		assert.False(t, listed[id], "duplicate id %s in ordered list", id)
		listed[id] = true
	}
	for _, id := range probeIDs {
		assert.Equal(t, listed[id], c.IsBookmarked(id), "map and list disagree on %s", id)
	}
}

func TestLoadPopulatesCache(t *testing.T) {
	repo := &fakeBookmarkRepo{ids: []string{"t2", "t5"}}
	cache := NewBookmarkCache("sess-1", repo)

	assert.False(t, cache.Loaded())
	assert.False(t, cache.IsBookmarked("t2")) // not loaded yet reads as false

	assert.NoError(t, cache.Load(context.Background()))
	assert.True(t, cache.Loaded())
	assert.True(t, cache.IsBookmarked("t2"))
	assert.False(t, cache.IsBookmarked("t9"))
	assert.Equal(t, []string{"t2", "t5"}, cache.ToolIDs())
	assertConsistent(t, cache, "t2", "t5", "t9")
}

func TestLoadFailureKeepsPriorStateAndIsRetriable(t *testing.T) {
	repo := &fakeBookmarkRepo{ids: []string{"t1"}, loadErr: errors.New("network down")}
	cache := NewBookmarkCache("sess-1", repo)

	assert.Error(t, cache.Load(context.Background()))
	assert.False(t, cache.Loaded())
	assert.Empty(t, cache.ToolIDs())

	repo.mu.Lock()
	repo.loadErr = nil
	repo.mu.Unlock()

	assert.NoError(t, cache.Load(context.Background()))
	assert.True(t, cache.Loaded())
	assert.True(t, cache.IsBookmarked("t1"))
}

func TestLoadIsFullRefreshNotMerge(t *testing.T) {
	repo := &fakeBookmarkRepo{ids: []string{"t1", "t2"}}
	cache := NewBookmarkCache("sess-1", repo)
	assert.NoError(t, cache.Load(context.Background()))

	repo.mu.Lock()
	repo.ids = []string{"t3"}
	repo.mu.Unlock()

	assert.NoError(t, cache.Refresh(context.Background()))
	assert.Equal(t, []string{"t3"}, cache.ToolIDs())
	assert.False(t, cache.IsBookmarked("t1"))
	assertConsistent(t, cache, "t1", "t2", "t3")
}

func TestToggleAddsAndRemoves(t *testing.T) {
	repo := &fakeBookmarkRepo{}
	cache := NewBookmarkCache("sess-1", repo)
	assert.NoError(t, cache.Load(context.Background()))

	bookmarked, err := cache.Toggle(context.Background(), "t1")
	assert.NoError(t, err)
	assert.True(t, bookmarked)
	assert.True(t, cache.IsBookmarked("t1"))
	assert.Equal(t, []string{"t1"}, cache.ToolIDs())

	bookmarked, err = cache.Toggle(context.Background(), "t1")
	assert.NoError(t, err)
	assert.False(t, bookmarked)
	assert.False(t, cache.IsBookmarked("t1"))
	assert.Empty(t, cache.ToolIDs())
	assertConsistent(t, cache, "t1")
}

func TestTogglePreservesInsertionOrder(t *testing.T) {
	repo := &fakeBookmarkRepo{}
	cache := NewBookmarkCache("sess-1", repo)
	assert.NoError(t, cache.Load(context.Background()))

	for _, id := range []string{"t3", "t1", "t2"} {
		_, err := cache.Toggle(context.Background(), id)
		assert.NoError(t, err)
	}
	assert.Equal(t, []string{"t3", "t1", "t2"}, cache.ToolIDs())

	_, err := cache.Toggle(context.Background(), "t1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"t3", "t2"}, cache.ToolIDs())
}

func TestFailedDeleteLeavesCacheUntouched(t *testing.T) {
	repo := &fakeBookmarkRepo{ids: []string{"t2"}}
	cache := NewBookmarkCache("sess-1", repo)
	assert.NoError(t, cache.Load(context.Background()))

	repo.mu.Lock()
	repo.deleteErr = errors.New("write failed")
	repo.mu.Unlock()

	before := cache.ToolIDs()
	bookmarked, err := cache.Toggle(context.Background(), "t2")
	assert.Error(t, err)
	assert.True(t, bookmarked)
	assert.True(t, cache.IsBookmarked("t2"))
	assert.Equal(t, before, cache.ToolIDs())
	assertConsistent(t, cache, "t2")
}

func TestFailedInsertLeavesCacheUntouched(t *testing.T) {
	repo := &fakeBookmarkRepo{insertErr: errors.New("write failed")}
	cache := NewBookmarkCache("sess-1", repo)
	assert.NoError(t, cache.Load(context.Background()))

	bookmarked, err := cache.Toggle(context.Background(), "t1")
	assert.Error(t, err)
	assert.False(t, bookmarked)
	assert.False(t, cache.IsBookmarked("t1"))
	assert.Empty(t, cache.ToolIDs())
}

func TestConcurrentTogglesStayConsistent(t *testing.T) {
	repo := &fakeBookmarkRepo{}
	cache := NewBookmarkCache("sess-1", repo)
	assert.NoError(t, cache.Load(context.Background()))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = cache.Toggle(context.Background(), "t1")
		}()
	}
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = cache.Toggle(context.Background(), "t2")
		}()
	}
	wg.Wait()

	// Mutations are serialized, so whatever interleaving happened the map
	// and list must agree and hold no duplicates.
	assertConsistent(t, cache, "t1", "t2")

	// An even number of toggles on one id lands back where it started.
	assert.False(t, cache.IsBookmarked("t1"))
	assert.False(t, cache.IsBookmarked("t2"))
}

func TestStoreReturnsSameInstancePerSession(t *testing.T) {
	store := NewBookmarkCacheStore(&fakeBookmarkRepo{}, time.Hour)

	a := store.Get("sess-1")
	b := store.Get("sess-1")
	c := store.Get("sess-2")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)

	stats := store.Stats()
	assert.Equal(t, 2, stats.Sessions)
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(2), stats.Misses)
}

func TestStoreEvictsIdleSessions(t *testing.T) {
	store := NewBookmarkCacheStore(&fakeBookmarkRepo{}, time.Minute)

	store.Get("old")
	store.Get("fresh")

	store.mu.Lock()
	store.caches["old"].lastSeen = time.Now().Add(-2 * time.Minute)
	store.mu.Unlock()

	store.evictIdle(time.Now())

	assert.Equal(t, 1, store.Stats().Sessions)
	store.mu.Lock()
	_, oldExists := store.caches["old"]
	_, freshExists := store.caches["fresh"]
	store.mu.Unlock()
	assert.False(t, oldExists)
	assert.True(t, freshExists)
}
