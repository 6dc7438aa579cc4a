// Package services contains the typed API services of the shopadmin client.
// Each service wraps the shared request client with the endpoints and JSON
// shapes of one feature area. This file defines authentication: the two-step
// login exchange consumed by the session container.
package services

import (
	"context"

	"github.com/dmitrijs2005/shopadmin/internal/api"
	"github.com/dmitrijs2005/shopadmin/internal/models"
)

// AuthService performs authentication against the admin API. It satisfies
// session.Authenticator.
type AuthService interface {
	ExchangeCredentials(ctx context.Context, email, password string) (string, error)
	FetchProfile(ctx context.Context, token string) (models.User, error)
}

type authService struct {
	api api.Requester
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(r api.Requester) AuthService {
	return &authService{api: r}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// ExchangeCredentials posts the email/password pair and returns the issued
// bearer token.
func (s *authService) ExchangeCredentials(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	if err := s.api.Post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// FetchProfile fetches the profile owning the given token. The token is
// passed explicitly because the session container does not hold it yet while
// the login is still in flight.
func (s *authService) FetchProfile(ctx context.Context, token string) (models.User, error) {
	var user models.User
	err := s.api.GetWithToken(ctx, "/users/me", token, &user)
	return user, err
}
