// Package resources exposes one service per platform entity. Each service
// pairs the shared backend client with the process-wide cache: reads declare
// their cache key, writes declare the resource families they may have made
// stale.
package resources

import (
	"lingadmin/backend"
	"lingadmin/cache"
)

// Registry bundles every entity service over one client and one cache store.
type Registry struct {
	Courses   *CourseService
	Units     *UnitService
	Lessons   *LessonService
	Questions *QuestionService
	Theories  *TheoryService
	Roles     *RoleService
	Accounts  *AccountService
	Auth      *AuthService
	Uploads   *UploadService
}

// New wires the registry.
func New(api *backend.Client, store *cache.Store) *Registry {
	return &Registry{
		Courses:   &CourseService{api: api, store: store},
		Units:     &UnitService{api: api, store: store},
		Lessons:   &LessonService{api: api, store: store},
		Questions: &QuestionService{api: api, store: store},
		Theories:  &TheoryService{api: api, store: store},
		Roles:     &RoleService{api: api, store: store},
		Accounts:  &AccountService{api: api, store: store},
		Auth:      &AuthService{api: api, store: store},
		Uploads:   &UploadService{api: api},
	}
}
