package resources

import (
	"context"
	"io"

	"lingadmin/backend"
	"lingadmin/cache"
	"lingadmin/models"
)

type AuthService struct {
	api   *backend.Client
	store *cache.Store
}

// Login exchanges credentials for a platform access token. Never cached.
func (s *AuthService) Login(ctx context.Context, in models.LoginInput) (models.LoginResult, error) {
	var env models.Envelope[models.LoginResult]
	if err := s.api.Post(ctx, "/auth/login", in, &env); err != nil {
		return models.LoginResult{}, err
	}
	return env.Value, nil
}

// Logout invalidates the platform session and drops the cached profile.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.api.Post(ctx, "/auth/logout", nil, nil); err != nil {
		return err
	}
	s.store.Invalidate("user")
	return nil
}

// Profile fetches the session user with their embedded permission set, cached
// per user so one admin's profile is never served to another.
func (s *AuthService) Profile(ctx context.Context, userID string) (*models.User, error) {
	key := cache.NewKey("user", "profile", map[string]string{"sub": userID})
	return cache.Fetch(ctx, s.store, key, func(ctx context.Context) (*models.User, error) {
		var env models.DataEnvelope[models.User]
		if err := s.api.Get(ctx, "/auth/profile", nil, &env); err != nil {
			return nil, err
		}
		user := env.Value.Data
		return &user, nil
	})
}

// Me fetches the raw /auth/me record (bare shape, uncached).
func (s *AuthService) Me(ctx context.Context, out interface{}) error {
	return s.api.Get(ctx, "/auth/me", nil, out)
}

// UploadService proxies media uploads. Uploads are never cached and
// invalidate nothing: the returned URL only takes effect once the owning
// entity mutation that embeds it succeeds.
type UploadService struct {
	api *backend.Client
}

// Upload streams file as multipart field "file" and returns the stored URL.
func (s *UploadService) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	var res models.UploadResult
	if err := s.api.Upload(ctx, "/file/upload", filename, file, &res); err != nil {
		return "", err
	}
	return res.URL, nil
}
