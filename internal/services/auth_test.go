package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/shopadmin/internal/models"
)

// ---- fake requester ----

// fakeRequester implements api.Requester for the service tests. Ret holds the
// JSON the "backend" answers with; it is decoded into the out argument so the
// services' own decoding paths stay honest.
type fakeRequester struct {
	Ret json.RawMessage
	Err error

	LastMethod string
	LastPath   string
	LastToken  string
	LastBody   any
	Calls      []string
}

func (f *fakeRequester) answer(method, path string, out any) error {
	f.LastMethod = method
	f.LastPath = path
	f.Calls = append(f.Calls, method+" "+path)
	if f.Err != nil {
		return f.Err
	}
	if out != nil && f.Ret != nil {
		return json.Unmarshal(f.Ret, out)
	}
	return nil
}

func (f *fakeRequester) Get(_ context.Context, path string, out any) error {
	return f.answer("GET", path, out)
}

func (f *fakeRequester) GetWithToken(_ context.Context, path, token string, out any) error {
	f.LastToken = token
	return f.answer("GET", path, out)
}

func (f *fakeRequester) Post(_ context.Context, path string, in, out any) error {
	f.LastBody = in
	return f.answer("POST", path, out)
}

func (f *fakeRequester) Put(_ context.Context, path string, in, out any) error {
	f.LastBody = in
	return f.answer("PUT", path, out)
}

func (f *fakeRequester) Delete(_ context.Context, path string) error {
	return f.answer("DELETE", path, nil)
}

// ---- tests ----

func TestAuthService_ExchangeCredentials(t *testing.T) {
	r := &fakeRequester{Ret: json.RawMessage(`{"access_token":"issued-token"}`)}
	s := NewAuthService(r)

	token, err := s.ExchangeCredentials(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	require.Equal(t, "issued-token", token)

	require.Equal(t, "POST", r.LastMethod)
	require.Equal(t, "/auth/login", r.LastPath)
	require.Equal(t, loginRequest{Email: "a@b.c", Password: "pw"}, r.LastBody)
}

func TestAuthService_ExchangeCredentialsError(t *testing.T) {
	r := &fakeRequester{Err: errors.New("boom")}
	s := NewAuthService(r)

	token, err := s.ExchangeCredentials(context.Background(), "a@b.c", "pw")
	require.Error(t, err)
	require.Empty(t, token)
}

func TestAuthService_FetchProfile(t *testing.T) {
	r := &fakeRequester{Ret: json.RawMessage(`{"email":"a@b.c","is_active":true}`)}
	s := NewAuthService(r)

	user, err := s.FetchProfile(context.Background(), "issued-token")
	require.NoError(t, err)
	require.Equal(t, "a@b.c", user.Email)
	require.True(t, user.IsActive)

	// the profile request must carry the freshly issued token explicitly
	require.Equal(t, "GET", r.LastMethod)
	require.Equal(t, "/users/me", r.LastPath)
	require.Equal(t, "issued-token", r.LastToken)
}

func TestAuthService_FetchProfileError(t *testing.T) {
	r := &fakeRequester{Err: errors.New("boom")}
	s := NewAuthService(r)

	_, err := s.FetchProfile(context.Background(), "tok")
	require.Error(t, err)
}

func TestAuthService_SatisfiesAuthenticatorShape(t *testing.T) {
	// compile-time style check kept as a test so the contract is visible
	var _ interface {
		ExchangeCredentials(ctx context.Context, email, password string) (string, error)
		FetchProfile(ctx context.Context, token string) (models.User, error)
	} = NewAuthService(&fakeRequester{})
}
