package resources

import (
	"context"

	"lingadmin/backend"
	"lingadmin/cache"
	"lingadmin/models"
)

type QuestionService struct {
	api   *backend.Client
	store *cache.Store
}

// ListByLesson fetches questions filtered by their parent lesson.
func (s *QuestionService) ListByLesson(ctx context.Context, lessonID string) (models.ListResult[models.Question], error) {
	params := map[string]string{"lessonId": lessonID}
	key := cache.NewKey("questions", "list", params)
	return cache.Fetch(ctx, s.store, key, func(ctx context.Context) (models.ListResult[models.Question], error) {
		var env models.Envelope[models.ListResult[models.Question]]
		if err := s.api.Get(ctx, "/questions/admin", params, &env); err != nil {
			return models.ListResult[models.Question]{}, err
		}
		return env.Value, nil
	})
}

// Get fetches one question by id.
func (s *QuestionService) Get(ctx context.Context, id string) (models.Question, error) {
	key := cache.NewKey("questions", "detail", map[string]string{"id": id})
	return cache.Fetch(ctx, s.store, key, func(ctx context.Context) (models.Question, error) {
		var env models.Envelope[models.Question]
		if err := s.api.Get(ctx, "/questions/"+id, nil, &env); err != nil {
			return models.Question{}, err
		}
		return env.Value, nil
	})
}

// Create posts a new question.
func (s *QuestionService) Create(ctx context.Context, in models.QuestionInput) (models.Question, error) {
	var env models.Envelope[models.Question]
	if err := s.api.Post(ctx, "/questions", in, &env); err != nil {
		return models.Question{}, err
	}
	s.store.Invalidate("questions")
	return env.Value, nil
}

// Update replaces a question's variant payload. The discriminant itself never
// changes; validation rejects that before the call is made.
func (s *QuestionService) Update(ctx context.Context, id string, in models.QuestionInput) (models.Question, error) {
	var env models.Envelope[models.Question]
	if err := s.api.Put(ctx, "/questions/"+id, in, &env); err != nil {
		return models.Question{}, err
	}
	s.store.Invalidate("questions")
	return env.Value, nil
}

// Delete removes a question.
func (s *QuestionService) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, "/questions/"+id, nil); err != nil {
		return err
	}
	s.store.Invalidate("questions")
	return nil
}
