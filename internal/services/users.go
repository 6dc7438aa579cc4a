package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/shopadmin/internal/api"
	"github.com/dmitrijs2005/shopadmin/internal/models"
)

// UserService manages staff and customer accounts.
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, p CreateUserParams) (models.User, error)
	Update(ctx context.Context, id uuid.UUID, p UpdateUserParams) (models.User, error)
}

type CreateUserParams struct {
	Email    string  `json:"email"`
	FullName *string `json:"full_name,omitempty"`
	Password string  `json:"password"`
}

// UpdateUserParams carries a partial update: nil fields are left unchanged.
type UpdateUserParams struct {
	FullName    *string `json:"full_name,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	IsSuperuser *bool   `json:"is_superuser,omitempty"`
}

type userService struct {
	api api.Requester
}

func NewUserService(r api.Requester) UserService {
	return &userService{api: r}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.api.Get(ctx, "/users", &users)
	return users, err
}

func (s *userService) Create(ctx context.Context, p CreateUserParams) (models.User, error) {
	var user models.User
	err := s.api.Post(ctx, "/users", p, &user)
	return user, err
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, p UpdateUserParams) (models.User, error) {
	var user models.User
	err := s.api.Put(ctx, fmt.Sprintf("/users/%s", id), p, &user)
	return user, err
}
