package resources

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"lingadmin/backend"
	"lingadmin/cache"
	"lingadmin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePlatform is a stub of the platform REST API with per-path hit counters.
type fakePlatform struct {
	listHits   int32
	createHits int32
	fail       int32
}

func (f *fakePlatform) failNext() { atomic.StoreInt32(&f.fail, 1) }

func (f *fakePlatform) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if atomic.LoadInt32(&f.fail) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"message": "platform unavailable"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/courses/admin":
			atomic.AddInt32(&f.listHits, 1)
			json.NewEncoder(w).Encode(models.Envelope[models.ListResult[models.Course]]{
				Value: models.ListResult[models.Course]{
					Data:       []models.Course{{ID: "c1", Description: "Spanish A1"}},
					Pagination: models.Pagination{Page: 1, PageSize: 10, TotalPages: 1, TotalRecords: 1},
				},
			})
		case r.Method == http.MethodPost && r.URL.Path == "/courses":
			atomic.AddInt32(&f.createHits, 1)
			json.NewEncoder(w).Encode(models.Envelope[models.Course]{
				Value: models.Course{ID: "c2", Description: "French B2"},
			})
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func newTestRegistry(t *testing.T, h http.HandlerFunc) (*Registry, *cache.Store, func()) {
	srv := httptest.NewServer(h)
	store := cache.NewStore(time.Minute)
	reg := New(backend.New(srv.URL, 0), store)
	return reg, store, srv.Close
}

func TestCourseListIsCachedPerQuery(t *testing.T) {
	platform := &fakePlatform{}
	reg, _, done := newTestRegistry(t, platform.handler(t))
	defer done()

	ctx := context.Background()
	q := models.ListQuery{Page: 1, PageSize: 10}

	first, err := reg.Courses.List(ctx, q)
	require.NoError(t, err)
	require.Len(t, first.Data, 1)
	assert.Equal(t, "Spanish A1", first.Data[0].Description)

	_, err = reg.Courses.List(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&platform.listHits), "identical query served from cache")

	_, err = reg.Courses.List(ctx, models.ListQuery{Page: 2, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&platform.listHits), "different page is a different cache key")
}

func TestCourseCreateInvalidatesListCache(t *testing.T) {
	platform := &fakePlatform{}
	reg, _, done := newTestRegistry(t, platform.handler(t))
	defer done()

	ctx := context.Background()
	q := models.ListQuery{Page: 1, PageSize: 10}

	_, err := reg.Courses.List(ctx, q)
	require.NoError(t, err)

	created, err := reg.Courses.Create(ctx, models.CreateCourseInput{Description: "French B2"})
	require.NoError(t, err)
	assert.Equal(t, "c2", created.ID)

	_, err = reg.Courses.List(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&platform.listHits), "create marks the list stale")
}

func TestCourseListServesStaleValueWhenRefetchFails(t *testing.T) {
	platform := &fakePlatform{}
	reg, store, done := newTestRegistry(t, platform.handler(t))
	defer done()

	ctx := context.Background()
	q := models.ListQuery{Page: 1, PageSize: 10}

	first, err := reg.Courses.List(ctx, q)
	require.NoError(t, err)
	require.Len(t, first.Data, 1)

	store.Invalidate("courses")
	platform.failNext()

	stale, err := reg.Courses.List(ctx, q)
	require.Error(t, err)
	assert.Len(t, stale.Data, 1, "prior page still available alongside the error")
	assert.Equal(t, "Spanish A1", stale.Data[0].Description)

	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "platform unavailable", apiErr.Message)
}
