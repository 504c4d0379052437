package resources

import (
	"context"

	"lingadmin/backend"
	"lingadmin/cache"
	"lingadmin/models"
)

type RoleService struct {
	api   *backend.Client
	store *cache.Store
}

// List fetches every role with its permission set.
func (s *RoleService) List(ctx context.Context) ([]models.Role, error) {
	key := cache.NewKey("roles", "list", nil)
	return cache.Fetch(ctx, s.store, key, func(ctx context.Context) ([]models.Role, error) {
		var env models.Envelope[[]models.Role]
		if err := s.api.Get(ctx, "/roles", nil, &env); err != nil {
			return nil, err
		}
		return env.Value, nil
	})
}

// Options fetches the slim id/name list used by account forms.
func (s *RoleService) Options(ctx context.Context) ([]models.RoleOption, error) {
	key := cache.NewKey("roles", "options", nil)
	return cache.Fetch(ctx, s.store, key, func(ctx context.Context) ([]models.RoleOption, error) {
		var env models.Envelope[[]models.RoleOption]
		if err := s.api.Get(ctx, "/roles/options", nil, &env); err != nil {
			return nil, err
		}
		return env.Value, nil
	})
}

// Create posts a new role.
func (s *RoleService) Create(ctx context.Context, in models.CreateRoleInput) (models.Role, error) {
	var role models.Role
	if err := s.api.Post(ctx, "/roles", in, &role); err != nil {
		return models.Role{}, err
	}
	s.store.Invalidate("roles")
	return role, nil
}

// Rename changes a role's name.
func (s *RoleService) Rename(ctx context.Context, id string, in models.RenameRoleInput) (models.Role, error) {
	var role models.Role
	if err := s.api.Patch(ctx, "/roles/"+id, in, &role); err != nil {
		return models.Role{}, err
	}
	s.store.Invalidate("roles")
	return role, nil
}

// Delete removes a role.
func (s *RoleService) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, "/roles/"+id, nil); err != nil {
		return err
	}
	s.store.Invalidate("roles")
	return nil
}

// Setup bulk-writes permission sets. The caller's own session profile may be
// affected, so the cached user family goes stale too.
func (s *RoleService) Setup(ctx context.Context, items []models.RoleSetupItem) error {
	if err := s.api.Put(ctx, "/roles/setup", items, nil); err != nil {
		return err
	}
	s.store.Invalidate("roles", "user")
	return nil
}
