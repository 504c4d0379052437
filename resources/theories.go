package resources

import (
	"context"

	"lingadmin/backend"
	"lingadmin/cache"
	"lingadmin/models"
)

type TheoryService struct {
	api   *backend.Client
	store *cache.Store
}

// ListByUnit fetches theories filtered by their parent unit.
func (s *TheoryService) ListByUnit(ctx context.Context, unitID string) (models.ListResult[models.Theory], error) {
	params := map[string]string{"unitId": unitID}
	key := cache.NewKey("theories", "list", params)
	return cache.Fetch(ctx, s.store, key, func(ctx context.Context) (models.ListResult[models.Theory], error) {
		var env models.Envelope[models.ListResult[models.Theory]]
		if err := s.api.Get(ctx, "/theories/admin", params, &env); err != nil {
			return models.ListResult[models.Theory]{}, err
		}
		return env.Value, nil
	})
}

// Get fetches one theory by id.
func (s *TheoryService) Get(ctx context.Context, id string) (models.Theory, error) {
	key := cache.NewKey("theories", "detail", map[string]string{"id": id})
	return cache.Fetch(ctx, s.store, key, func(ctx context.Context) (models.Theory, error) {
		var env models.Envelope[models.Theory]
		if err := s.api.Get(ctx, "/theories/"+id, nil, &env); err != nil {
			return models.Theory{}, err
		}
		return env.Value, nil
	})
}

// Create posts a new theory.
func (s *TheoryService) Create(ctx context.Context, in models.TheoryInput) (models.Theory, error) {
	var env models.Envelope[models.Theory]
	if err := s.api.Post(ctx, "/theories", in, &env); err != nil {
		return models.Theory{}, err
	}
	s.store.Invalidate("theories")
	return env.Value, nil
}

// Update patches a theory's variant payload.
func (s *TheoryService) Update(ctx context.Context, id string, in models.TheoryInput) (models.Theory, error) {
	var env models.Envelope[models.Theory]
	if err := s.api.Patch(ctx, "/theories/"+id, in, &env); err != nil {
		return models.Theory{}, err
	}
	s.store.Invalidate("theories")
	return env.Value, nil
}

// Delete removes a theory.
func (s *TheoryService) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, "/theories/"+id, nil); err != nil {
		return err
	}
	s.store.Invalidate("theories")
	return nil
}
