package resources

import (
	"context"

	"lingadmin/backend"
	"lingadmin/cache"
	"lingadmin/models"
)

type AccountService struct {
	api   *backend.Client
	store *cache.Store
}

// List fetches accounts page by page. The accounts endpoints use the
// `{value:{data,pagination}}` envelope on list and bare records elsewhere.
func (s *AccountService) List(ctx context.Context, q models.ListQuery) (models.ListResult[models.Account], error) {
	key := cache.NewKey("accounts", "list", q.Params())
	return cache.Fetch(ctx, s.store, key, func(ctx context.Context) (models.ListResult[models.Account], error) {
		var env models.Envelope[models.ListResult[models.Account]]
		if err := s.api.Get(ctx, "/accounts", q.Params(), &env); err != nil {
			return models.ListResult[models.Account]{}, err
		}
		return env.Value, nil
	})
}

// Get fetches one account by id (bare record, no envelope).
func (s *AccountService) Get(ctx context.Context, id string) (models.Account, error) {
	key := cache.NewKey("accounts", "detail", map[string]string{"id": id})
	return cache.Fetch(ctx, s.store, key, func(ctx context.Context) (models.Account, error) {
		var account models.Account
		if err := s.api.Get(ctx, "/accounts/"+id, nil, &account); err != nil {
			return models.Account{}, err
		}
		return account, nil
	})
}

// Create posts a new account.
func (s *AccountService) Create(ctx context.Context, in models.CreateAccountInput) (models.Account, error) {
	var account models.Account
	if err := s.api.Post(ctx, "/accounts", in, &account); err != nil {
		return models.Account{}, err
	}
	s.store.Invalidate("accounts")
	return account, nil
}

// Update patches an account. Password is included only when being changed.
func (s *AccountService) Update(ctx context.Context, id string, in models.UpdateAccountInput) (models.Account, error) {
	var account models.Account
	if err := s.api.Patch(ctx, "/accounts/"+id, in, &account); err != nil {
		return models.Account{}, err
	}
	s.store.Invalidate("accounts")
	return account, nil
}

// Delete removes an account.
func (s *AccountService) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, "/accounts/"+id, nil); err != nil {
		return err
	}
	s.store.Invalidate("accounts")
	return nil
}
