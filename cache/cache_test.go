package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyStringIsCanonical(t *testing.T) {
	a := NewKey("courses", "list", map[string]string{"page": "1", "search": "dog"})
	b := NewKey("courses", "list", map[string]string{"search": "dog", "page": "1"})

	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, "courses:list:page=1&search=dog", a.String())

	noParams := NewKey("roles", "options", nil)
	assert.Equal(t, "roles:options", noParams.String())
}

func TestGetOrFetchServesFreshWithoutRefetch(t *testing.T) {
	store := NewStore(time.Minute)
	key := NewKey("courses", "list", nil)

	var calls int32
	fetch := func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		return "payload", nil
	}

	for i := 0; i < 3; i++ {
		v, err := store.GetOrFetch(context.Background(), key, fetch)
		require.NoError(t, err)
		assert.Equal(t, "payload", v)
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetOrFetchRefetchesAfterStaleTime(t *testing.T) {
	store := NewStore(10 * time.Millisecond)
	key := NewKey("courses", "list", nil)

	var calls int32
	fetch := func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		return atomic.LoadInt32(&calls), nil
	}

	_, err := store.GetOrFetch(context.Background(), key, fetch)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	v, err := store.GetOrFetch(context.Background(), key, fetch)
	require.NoError(t, err)
	assert.Equal(t, int32(2), v)
}

func TestInvalidateMarksWholeFamilyStale(t *testing.T) {
	store := NewStore(time.Minute)
	page1 := NewKey("courses", "list", map[string]string{"page": "1"})
	page2 := NewKey("courses", "list", map[string]string{"page": "2"})
	other := NewKey("roles", "list", nil)

	var courseCalls, roleCalls int32
	fetchCourses := func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(&courseCalls, 1)
		return "courses", nil
	}
	fetchRoles := func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(&roleCalls, 1)
		return "roles", nil
	}

	_, _ = store.GetOrFetch(context.Background(), page1, fetchCourses)
	_, _ = store.GetOrFetch(context.Background(), page2, fetchCourses)
	_, _ = store.GetOrFetch(context.Background(), other, fetchRoles)

	store.Invalidate("courses")

	_, _ = store.GetOrFetch(context.Background(), page1, fetchCourses)
	_, _ = store.GetOrFetch(context.Background(), page2, fetchCourses)
	_, _ = store.GetOrFetch(context.Background(), other, fetchRoles)

	assert.Equal(t, int32(4), atomic.LoadInt32(&courseCalls), "every courses entry refetches")
	assert.Equal(t, int32(1), atomic.LoadInt32(&roleCalls), "other families stay fresh")
}

func TestInvalidateDuringFetchIsNotLost(t *testing.T) {
	store := NewStore(time.Minute)
	key := NewKey("courses", "list", nil)

	fetchStarted := make(chan struct{})
	release := make(chan struct{})
	fetchDone := make(chan struct{})

	go func() {
		defer close(fetchDone)
		v, err := store.GetOrFetch(context.Background(), key, func(ctx context.Context) (interface{}, error) {
			close(fetchStarted)
			<-release
			return "pre-mutation", nil
		})
		assert.NoError(t, err)
		assert.Equal(t, "pre-mutation", v)
	}()

	// the mutation lands while the list fetch is still in flight
	<-fetchStarted
	store.Invalidate("courses")
	close(release)
	<-fetchDone

	v, err := store.GetOrFetch(context.Background(), key, func(ctx context.Context) (interface{}, error) {
		return "post-mutation", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "post-mutation", v, "read after invalidation must not serve the in-flight result as fresh")
}

func TestCallerAfterInvalidateDoesNotJoinStaleFlight(t *testing.T) {
	store := NewStore(time.Minute)
	key := NewKey("units", "list", map[string]string{"courseId": "c1"})

	_, err := store.GetOrFetch(context.Background(), key, func(ctx context.Context) (interface{}, error) {
		return "v1", nil
	})
	require.NoError(t, err)
	store.Invalidate("units")

	fetchStarted := make(chan struct{})
	release := make(chan struct{})
	refreshDone := make(chan struct{})

	go func() {
		defer close(refreshDone)
		_, _ = store.GetOrFetch(context.Background(), key, func(ctx context.Context) (interface{}, error) {
			close(fetchStarted)
			<-release
			return "v2", nil
		})
	}()
	<-fetchStarted

	// a mutation lands while the refresh runs; a caller arriving now must not
	// be handed the refresh result as fresh data
	store.Invalidate("units")
	close(release)
	<-refreshDone

	v, err := store.GetOrFetch(context.Background(), key, func(ctx context.Context) (interface{}, error) {
		return "v3", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "v3", v)
}

func TestConcurrentReadsShareOneFetch(t *testing.T) {
	store := NewStore(time.Minute)
	key := NewKey("units", "list", map[string]string{"courseId": "c1"})

	var calls int32
	fetch := func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		time.Sleep(20 * time.Millisecond)
		return "units", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := store.GetOrFetch(context.Background(), key, fetch)
			assert.NoError(t, err)
			assert.Equal(t, "units", v)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFailedRefetchReturnsPriorValueWithError(t *testing.T) {
	store := NewStore(time.Minute)
	key := NewKey("lessons", "list", map[string]string{"unitId": "u1"})

	_, err := store.GetOrFetch(context.Background(), key, func(ctx context.Context) (interface{}, error) {
		return "original", nil
	})
	require.NoError(t, err)

	store.Invalidate("lessons")

	upstreamDown := errors.New("upstream down")
	v, err := store.GetOrFetch(context.Background(), key, func(ctx context.Context) (interface{}, error) {
		return nil, upstreamDown
	})
	require.ErrorIs(t, err, upstreamDown)
	assert.Equal(t, "original", v, "prior value survives a failed refetch")

	// a later successful fetch replaces it
	v, err = store.GetOrFetch(context.Background(), key, func(ctx context.Context) (interface{}, error) {
		return "recovered", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "recovered", v)
}

func TestFailedFirstFetchReturnsError(t *testing.T) {
	store := NewStore(time.Minute)
	key := NewKey("accounts", "list", nil)

	boom := errors.New("boom")
	v, err := store.GetOrFetch(context.Background(), key, func(ctx context.Context) (interface{}, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)
	assert.Nil(t, v)
	assert.Equal(t, 0, store.Len(), "failed fetch stores nothing")
}

func TestSweepEvictsOnlyUntouchedEntries(t *testing.T) {
	store := NewStore(time.Minute)
	old := NewKey("courses", "list", map[string]string{"page": "1"})
	recent := NewKey("courses", "list", map[string]string{"page": "2"})

	fetch := func(ctx context.Context) (interface{}, error) { return "x", nil }
	_, _ = store.GetOrFetch(context.Background(), old, fetch)

	time.Sleep(30 * time.Millisecond)
	_, _ = store.GetOrFetch(context.Background(), recent, fetch)

	removed := store.Sweep(20 * time.Millisecond)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, store.Len())
}

func TestTypedFetchReturnsZeroOnMiss(t *testing.T) {
	store := NewStore(time.Minute)
	key := NewKey("courses", "detail", map[string]string{"id": "c1"})

	type course struct{ Title string }

	boom := errors.New("boom")
	got, err := Fetch(context.Background(), store, key, func(ctx context.Context) (course, error) {
		return course{}, boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, course{}, got)

	got, err = Fetch(context.Background(), store, key, func(ctx context.Context) (course, error) {
		return course{Title: "Spanish A1"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Spanish A1", got.Title)
}
