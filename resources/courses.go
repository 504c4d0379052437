package resources

import (
	"context"

	"lingadmin/backend"
	"lingadmin/cache"
	"lingadmin/models"
)

type CourseService struct {
	api   *backend.Client
	store *cache.Store
}

// List fetches the admin course list, cached per page/pageSize/search/sort.
func (s *CourseService) List(ctx context.Context, q models.ListQuery) (models.ListResult[models.Course], error) {
	key := cache.NewKey("courses", "list", q.Params())
	return cache.Fetch(ctx, s.store, key, func(ctx context.Context) (models.ListResult[models.Course], error) {
		var env models.Envelope[models.ListResult[models.Course]]
		if err := s.api.Get(ctx, "/courses/admin", q.Params(), &env); err != nil {
			return models.ListResult[models.Course]{}, err
		}
		return env.Value, nil
	})
}

// Get fetches one course by id.
func (s *CourseService) Get(ctx context.Context, id string) (models.Course, error) {
	key := cache.NewKey("courses", "detail", map[string]string{"id": id})
	return cache.Fetch(ctx, s.store, key, func(ctx context.Context) (models.Course, error) {
		var env models.Envelope[models.Course]
		if err := s.api.Get(ctx, "/courses/"+id, nil, &env); err != nil {
			return models.Course{}, err
		}
		return env.Value, nil
	})
}

// Create posts a new course and marks the courses family stale.
func (s *CourseService) Create(ctx context.Context, in models.CreateCourseInput) (models.Course, error) {
	var env models.Envelope[models.Course]
	if err := s.api.Post(ctx, "/courses", in, &env); err != nil {
		return models.Course{}, err
	}
	s.store.Invalidate("courses")
	return env.Value, nil
}

// Update patches an existing course.
func (s *CourseService) Update(ctx context.Context, id string, in models.UpdateCourseInput) (models.Course, error) {
	var env models.Envelope[models.Course]
	if err := s.api.Patch(ctx, "/courses/"+id, in, &env); err != nil {
		return models.Course{}, err
	}
	s.store.Invalidate("courses")
	return env.Value, nil
}
