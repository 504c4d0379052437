package models

// ProtectedRoleName is treated as untouchable in the console: the Admin role
// can neither be renamed nor deleted. This is a console convention, not a
// backend rule.
const ProtectedRoleName = "Admin"

// Role carries a flat set of dot-namespaced permission tokens
// (e.g. "course.edit"). There is no wildcard or hierarchy between them.
type Role struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

type RoleOption struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type CreateRoleInput struct {
	Name string `json:"name"`
}

type RenameRoleInput struct {
	Name string `json:"name"`
}

// RoleSetupItem is one element of the bulk permission write sent to
// /roles/setup.
type RoleSetupItem struct {
	ID          string   `json:"id"`
	Permissions []string `json:"permissions"`
}
