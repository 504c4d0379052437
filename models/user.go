package models

// PermissionProfile is the base permission every console user must hold;
// without it the admin area is off limits entirely.
const PermissionProfile = "profile"

// UserRole is the role embedded on the session user, permissions included.
type UserRole struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

// User is the authenticated session user, fetched from /auth/profile once per
// session and re-fetched on demand.
type User struct {
	FullName    string   `json:"fullName"`
	AvatarImage string   `json:"avatarImage,omitempty"`
	RoleID      UserRole `json:"roleId"`
}

// HasPermission checks for exact membership of perm in the user's permission
// set. "course.edit" does not imply "course.view".
func (u *User) HasPermission(perm string) bool {
	if u == nil {
		return false
	}
	for _, p := range u.RoleID.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the `value` of a successful /auth/login response.
type LoginResult struct {
	User struct {
		ID    string `json:"_id"`
		Email string `json:"email"`
		Name  string `json:"name"`
		Role  string `json:"role"`
	} `json:"user"`
	AccessToken string `json:"accessToken"`
}

// UploadResult is the bare response of /file/upload.
type UploadResult struct {
	URL string `json:"url"`
}
