package models

// RoleRef is the embedded role reference on an account record.
type RoleRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type Account struct {
	ID              string  `json:"_id"`
	Email           string  `json:"email"`
	FullName        string  `json:"fullName"`
	AvatarImage     string  `json:"avatarImage,omitempty"`
	IsActive        bool    `json:"isActive"`
	LastActiveAt    string  `json:"lastActiveAt,omitempty"`
	RoleID          RoleRef `json:"roleId"`
	StreakCount     int     `json:"streakCount,omitempty"`
	ExperiencePoint int     `json:"experiencePoint,omitempty"`
	HeartCount      int     `json:"heartCount,omitempty"`
	CreatedAt       string  `json:"createdAt,omitempty"`
	UpdatedAt       string  `json:"updatedAt,omitempty"`
}

type CreateAccountInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"fullName"`
	RoleID      string `json:"roleId"`
	AvatarImage string `json:"avatarImage,omitempty"`
}

// UpdateAccountInput: password is write-only and optional on update.
type UpdateAccountInput struct {
	Email       string `json:"email,omitempty"`
	Password    string `json:"password,omitempty"`
	FullName    string `json:"fullName,omitempty"`
	RoleID      string `json:"roleId,omitempty"`
	AvatarImage string `json:"avatarImage,omitempty"`
}
