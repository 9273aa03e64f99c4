package dto

import "jessster/models"

type LoginRequestDTO struct {
	Email    string `json:"email" binding:"required" example:"a@b.com"`
	Password string `json:"password" binding:"required" example:"secret"`
}

type RegisterRequestDTO struct {
	Username        string `json:"username" binding:"required" example:"jess"`
	Email           string `json:"email" binding:"required" example:"a@b.com"`
	Password        string `json:"password" binding:"required" example:"secret"`
	PasswordConfirm string `json:"password_confirm" binding:"required" example:"secret"`
}

type GoogleTokenRequestDTO struct {
	IDToken string `json:"id_token" binding:"required"`
}

type AppleTokenRequestDTO struct {
	IdentityToken string `json:"identity_token" binding:"required"`
	UserID        string `json:"user_id" binding:"required"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
}

type ProfileUpdateRequestDTO struct {
	Username string `json:"username" binding:"required" example:"jess"`
}

// SessionDTO reports whether a token is stored. The token itself is never echoed.
type SessionDTO struct {
	Authenticated bool `json:"authenticated"`
}

type RegisterResponseDTO struct {
	Status        int  `json:"status" example:"201"`
	Created       bool `json:"created"`
	Authenticated bool `json:"authenticated"`
}

type ProfileDTO struct {
	models.Account
	PictureURL string `json:"profile_picture_url,omitempty"`
}
