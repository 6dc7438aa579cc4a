// Package models defines the JSON shapes exchanged with the admin REST API.
// Field tags mirror the backend's wire names exactly.
package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the staff account snapshot returned by the API. It is fetched at
// login time and not refreshed automatically afterwards.
type User struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FullName    *string   `json:"full_name"`
	IsActive    bool      `json:"is_active"`
	IsSuperuser bool      `json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DisplayName returns the full name when set, the email otherwise.
func (u User) DisplayName() string {
	if u.FullName != nil && *u.FullName != "" {
		return *u.FullName
	}
	return u.Email
}
