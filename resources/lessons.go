package resources

import (
	"context"

	"lingadmin/backend"
	"lingadmin/cache"
	"lingadmin/models"
)

type LessonService struct {
	api   *backend.Client
	store *cache.Store
}

// ListByUnit fetches lessons filtered by their parent unit.
func (s *LessonService) ListByUnit(ctx context.Context, unitID string) (models.ListResult[models.Lesson], error) {
	params := map[string]string{"unitId": unitID}
	key := cache.NewKey("lessons", "list", params)
	return cache.Fetch(ctx, s.store, key, func(ctx context.Context) (models.ListResult[models.Lesson], error) {
		var env models.Envelope[models.ListResult[models.Lesson]]
		if err := s.api.Get(ctx, "/lessons/admin", params, &env); err != nil {
			return models.ListResult[models.Lesson]{}, err
		}
		return env.Value, nil
	})
}

// Get fetches one lesson by id.
func (s *LessonService) Get(ctx context.Context, id string) (models.Lesson, error) {
	key := cache.NewKey("lessons", "detail", map[string]string{"id": id})
	return cache.Fetch(ctx, s.store, key, func(ctx context.Context) (models.Lesson, error) {
		var env models.Envelope[models.Lesson]
		if err := s.api.Get(ctx, "/lessons/"+id, nil, &env); err != nil {
			return models.Lesson{}, err
		}
		return env.Value, nil
	})
}

// Create posts a new lesson. The parent unit's lesson list and counts change
// with it, so units go stale alongside lessons.
func (s *LessonService) Create(ctx context.Context, in models.CreateLessonInput) (models.Lesson, error) {
	var env models.Envelope[models.Lesson]
	if err := s.api.Post(ctx, "/lessons", in, &env); err != nil {
		return models.Lesson{}, err
	}
	s.store.Invalidate("lessons", "units")
	return env.Value, nil
}

// Update patches a lesson; unitId is immutable and not part of the input.
func (s *LessonService) Update(ctx context.Context, id string, in models.UpdateLessonInput) (models.Lesson, error) {
	var env models.Envelope[models.Lesson]
	if err := s.api.Patch(ctx, "/lessons/"+id, in, &env); err != nil {
		return models.Lesson{}, err
	}
	s.store.Invalidate("lessons", "units")
	return env.Value, nil
}
