package dto

import "github.com/emre/coursehub/internal/app/models"

// UpdateProfileRequest carries optional profile fields; nil means unchanged.
type UpdateProfileRequest struct {
	Name      *string `json:"name"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}

// UserResponse wraps a single user.
type UserResponse struct {
	User *models.User `json:"user"`
}
