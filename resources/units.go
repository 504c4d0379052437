package resources

import (
	"context"

	"lingadmin/backend"
	"lingadmin/cache"
	"lingadmin/models"
)

type UnitService struct {
	api   *backend.Client
	store *cache.Store
}

// ListByCourse fetches units filtered by their parent course. An empty
// courseId is forwarded as-is and yields the unfiltered admin list, which the
// dashboard uses for its totals.
func (s *UnitService) ListByCourse(ctx context.Context, courseID string) (models.ListResult[models.Unit], error) {
	params := map[string]string{"courseId": courseID}
	key := cache.NewKey("units", "list", params)
	return cache.Fetch(ctx, s.store, key, func(ctx context.Context) (models.ListResult[models.Unit], error) {
		var env models.Envelope[models.ListResult[models.Unit]]
		if err := s.api.Get(ctx, "/units/admin", params, &env); err != nil {
			return models.ListResult[models.Unit]{}, err
		}
		return env.Value, nil
	})
}

// ByCourse fetches the units embedded under a course detail route. Cached as
// its own family (courseUnits) so unit creation can invalidate both views.
func (s *UnitService) ByCourse(ctx context.Context, courseID string) (models.ListResult[models.Unit], error) {
	key := cache.NewKey("courseUnits", "list", map[string]string{"courseId": courseID})
	return cache.Fetch(ctx, s.store, key, func(ctx context.Context) (models.ListResult[models.Unit], error) {
		var env models.Envelope[models.ListResult[models.Unit]]
		if err := s.api.Get(ctx, "/units/course/"+courseID, nil, &env); err != nil {
			return models.ListResult[models.Unit]{}, err
		}
		return env.Value, nil
	})
}

// Get fetches one unit by id.
func (s *UnitService) Get(ctx context.Context, id string) (models.Unit, error) {
	key := cache.NewKey("units", "detail", map[string]string{"id": id})
	return cache.Fetch(ctx, s.store, key, func(ctx context.Context) (models.Unit, error) {
		var env models.Envelope[models.Unit]
		if err := s.api.Get(ctx, "/units/"+id, nil, &env); err != nil {
			return models.Unit{}, err
		}
		return env.Value, nil
	})
}

// Create posts a new unit. A new unit changes its parent course's embedded
// unit list and aggregate counts, so the courses family goes stale too.
func (s *UnitService) Create(ctx context.Context, in models.CreateUnitInput) (models.Unit, error) {
	var env models.Envelope[models.Unit]
	if err := s.api.Post(ctx, "/units", in, &env); err != nil {
		return models.Unit{}, err
	}
	s.store.Invalidate("courseUnits", "units", "courses")
	return env.Value, nil
}

// Update patches a unit; the parent course reference is immutable and not
// part of the input.
func (s *UnitService) Update(ctx context.Context, id string, in models.UpdateUnitInput) (models.Unit, error) {
	var env models.Envelope[models.Unit]
	if err := s.api.Patch(ctx, "/units/"+id, in, &env); err != nil {
		return models.Unit{}, err
	}
	s.store.Invalidate("units", "courseUnits")
	return env.Value, nil
}
