package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/shopadmin/internal/logging"
	"github.com/dmitrijs2005/shopadmin/internal/models"
	"github.com/dmitrijs2005/shopadmin/internal/session"
)

// ---- stub authenticator ----

type stubAuth struct {
	TokenRet   string
	TokenErr   error
	ProfileRet models.User
	ProfileErr error
}

func (s *stubAuth) ExchangeCredentials(_ context.Context, _, _ string) (string, error) {
	return s.TokenRet, s.TokenErr
}

func (s *stubAuth) FetchProfile(_ context.Context, _ string) (models.User, error) {
	return s.ProfileRet, s.ProfileErr
}

func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	log := logging.Discard()
	store := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"), log)
	container := session.NewContainer(store, log)

	var out bytes.Buffer
	return &App{
		log:     log,
		session: container,
		out:     &out,
		screen:  ScreenLogin,
	}, &out
}

func loginTestApp(t *testing.T, a *App) {
	t.Helper()
	a.session.Bind(&stubAuth{TokenRet: "tok", ProfileRet: models.User{Email: "a@b.c"}})
	_, err := a.session.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
}

// ---- tests ----

func TestApp_EnterBouncesAnonymousUser(t *testing.T) {
	a, out := newTestApp(t)

	require.False(t, a.enter(ScreenOrders))
	require.Equal(t, ScreenLogin, a.screen)
	require.Contains(t, out.String(), "please login first")
}

func TestApp_EnterAdmitsAuthenticatedUser(t *testing.T) {
	a, _ := newTestApp(t)
	loginTestApp(t, a)

	require.True(t, a.enter(ScreenOrders))
	require.Equal(t, ScreenOrders, a.screen)
}

func TestApp_LoginScreenBouncesAuthenticatedUser(t *testing.T) {
	a, _ := newTestApp(t)
	loginTestApp(t, a)

	require.Equal(t, ScreenOverview, a.navigate(ScreenLogin))
}

func TestApp_HandleUnauthorized(t *testing.T) {
	a, out := newTestApp(t)
	loginTestApp(t, a)
	a.screen = ScreenOrders

	a.handleUnauthorized()

	require.Nil(t, a.session.CurrentUser())
	require.Equal(t, ScreenLogin, a.screen)
	require.Contains(t, out.String(), "session expired, please login again")
}

func TestApp_HandleUnauthorizedOnLoginScreenIsQuiet(t *testing.T) {
	a, out := newTestApp(t)
	a.screen = ScreenLogin

	a.handleUnauthorized()

	require.Equal(t, ScreenLogin, a.screen)
	require.NotContains(t, out.String(), "session expired")
}

func TestApp_StatusLine(t *testing.T) {
	a, _ := newTestApp(t)
	require.Equal(t, "anonymous", a.status())

	loginTestApp(t, a)
	a.screen = ScreenProducts
	require.Equal(t, "a@b.c @ products", a.status())
}
