package cascade

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"lingadmin/backend"
	"lingadmin/cache"
	"lingadmin/resources"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalog serves a small fixed tree:
//
//	c1 -> u1 -> l1, l2
//	      u2 -> (no lessons)
//	c2 -> (no units)
func fakeCatalog(t *testing.T, hits *int32) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/courses/admin":
			io.WriteString(w, `{"value":{"data":[{"_id":"c1"},{"_id":"c2"}],"pagination":{"page":1,"totalRecords":2}}}`)
		case "/units/admin":
			if r.URL.Query().Get("courseId") == "c1" {
				io.WriteString(w, `{"value":{"data":[{"_id":"u1","courseId":"c1"},{"_id":"u2","courseId":"c1"}],"pagination":{"page":1,"totalRecords":2}}}`)
				return
			}
			io.WriteString(w, `{"value":{"data":[],"pagination":{"page":1,"totalRecords":0}}}`)
		case "/lessons/admin":
			if r.URL.Query().Get("unitId") == "u1" {
				io.WriteString(w, `{"value":{"data":[{"_id":"l1","unitId":"u1"},{"_id":"l2","unitId":"u1"}],"pagination":{"page":1,"totalRecords":2}}}`)
				return
			}
			io.WriteString(w, `{"value":{"data":[],"pagination":{"page":1,"totalRecords":0}}}`)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func newTestResolver(t *testing.T) (*Resolver, *int32, func()) {
	var hits int32
	srv := httptest.NewServer(fakeCatalog(t, &hits))
	reg := resources.New(backend.New(srv.URL, 0), cache.NewStore(time.Minute))
	return NewResolver(reg), &hits, srv.Close
}

func TestResolveDefaultsToFirstOptionPerLevel(t *testing.T) {
	resolver, _, done := newTestResolver(t)
	defer done()

	res, err := resolver.Resolve(context.Background(), Selection{})
	require.NoError(t, err)

	assert.Equal(t, Selection{CourseID: "c1", UnitID: "u1", LessonID: "l1"}, res.Selection)
	assert.Len(t, res.Courses, 2)
	assert.Len(t, res.Units, 2)
	assert.Len(t, res.Lessons, 2)
	assert.False(t, res.UnitDisabled)
	assert.False(t, res.LessonDisabled)
}

func TestResolveKeepsValidExplicitSelection(t *testing.T) {
	resolver, _, done := newTestResolver(t)
	defer done()

	res, err := resolver.Resolve(context.Background(), Selection{CourseID: "c1", UnitID: "u1", LessonID: "l2"})
	require.NoError(t, err)

	assert.Equal(t, Selection{CourseID: "c1", UnitID: "u1", LessonID: "l2"}, res.Selection)
}

func TestResolveClearsDescendantsOnUnknownCourse(t *testing.T) {
	resolver, _, done := newTestResolver(t)
	defer done()

	res, err := resolver.Resolve(context.Background(), Selection{CourseID: "gone", UnitID: "u2", LessonID: "l1"})
	require.NoError(t, err)

	// the stale course falls back to the first option; the unit and lesson
	// picks belonged under the old course and must not survive
	assert.Equal(t, Selection{CourseID: "c1", UnitID: "u1", LessonID: "l1"}, res.Selection)
}

func TestResolveClearsLessonWhenUnitBelongsElsewhere(t *testing.T) {
	resolver, _, done := newTestResolver(t)
	defer done()

	res, err := resolver.Resolve(context.Background(), Selection{CourseID: "c1", UnitID: "u2", LessonID: "l1"})
	require.NoError(t, err)

	assert.Equal(t, "u2", res.Selection.UnitID)
	assert.Empty(t, res.Selection.LessonID, "l1 lives under u1, not u2")
	assert.True(t, res.LessonDisabled)
}

func TestResolveDisablesLevelsWithoutOptions(t *testing.T) {
	resolver, _, done := newTestResolver(t)
	defer done()

	res, err := resolver.Resolve(context.Background(), Selection{CourseID: "c2"})
	require.NoError(t, err)

	assert.Equal(t, "c2", res.Selection.CourseID)
	assert.Empty(t, res.Selection.UnitID)
	assert.Empty(t, res.Selection.LessonID)
	assert.True(t, res.UnitDisabled)
	assert.True(t, res.LessonDisabled)
}

func TestResolveReusesCachedOptionLists(t *testing.T) {
	resolver, hits, done := newTestResolver(t)
	defer done()

	_, err := resolver.Resolve(context.Background(), Selection{})
	require.NoError(t, err)
	after := atomic.LoadInt32(hits)

	_, err = resolver.Resolve(context.Background(), Selection{CourseID: "c1", UnitID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, after, atomic.LoadInt32(hits), "revisiting the same chain costs no network calls")
}
