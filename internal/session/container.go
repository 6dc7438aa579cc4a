package session

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/dmitrijs2005/shopadmin/internal/api"
	"github.com/dmitrijs2005/shopadmin/internal/logging"
	"github.com/dmitrijs2005/shopadmin/internal/models"
)

// Status is the login lifecycle state of the container.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// User-facing login failure messages. The raw transport error is logged, not
// shown.
const (
	msgBadCredentials = "invalid email or password"
	msgLoginFailed    = "login failed, please try again"
)

// Authenticator performs the two dependent login requests against the API.
//
// Contract:
//   - ExchangeCredentials: POST the email/password pair, return the issued
//     bearer token.
//   - FetchProfile: fetch the profile owning the given token. Called only
//     after a successful exchange, with that exchange's token.
type Authenticator interface {
	ExchangeCredentials(ctx context.Context, email, password string) (string, error)
	FetchProfile(ctx context.Context, token string) (models.User, error)
}

// Container is the process-wide session state machine.
//
// Transitions: Idle → Loading → Succeeded|Failed; Succeeded|Failed → Loading
// on re-login; any state → Idle on Logout. Each transition is applied
// atomically under the mutex, so no partial state is ever observable.
//
// Overlapping Login calls are not sequenced against each other: each call
// applies its own outcome when it resolves (last write wins). The CLI drives
// logins from a single goroutine, so this only matters to misuse.
type Container struct {
	mu     sync.Mutex
	cred   *Credential
	status Status
	errMsg string

	store Store
	auth  Authenticator
	log   logging.Logger

	resetFns []func()
}

// NewContainer builds a container seeded from the persisted store (which
// already discards expired records). The authenticator is bound separately
// via Bind because it is itself built on top of the API client that uses the
// container as its token source.
func NewContainer(store Store, log logging.Logger) *Container {
	return &Container{
		cred:   store.Load(),
		status: StatusIdle,
		store:  store,
		log:    log,
	}
}

// Bind attaches the authenticator used by Login. Must be called once during
// wiring, before the first Login.
func (c *Container) Bind(auth Authenticator) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.auth = auth
}

// Login exchanges the credentials for a token, then fetches the profile for
// that token, strictly in that order. Only when both succeed does the session
// become authenticated and the credential get persisted. On failure the
// container reports Failed with a user-facing message; a previously
// authenticated session, if any, is left in place rather than torn down by
// the failed attempt.
func (c *Container) Login(ctx context.Context, email, password string) (*Credential, error) {
	c.transition(StatusLoading, "")

	token, err := c.auth.ExchangeCredentials(ctx, email, password)
	if err != nil {
		c.log.Warn(ctx, "token exchange failed", "error", err)
		c.transition(StatusFailed, loginErrorMessage(err))
		return nil, err
	}

	user, err := c.auth.FetchProfile(ctx, token)
	if err != nil {
		// The backend issued a token but would not serve the profile for it.
		// The token is discarded, never stored.
		c.log.Warn(ctx, "profile fetch failed after token exchange", "error", err)
		c.transition(StatusFailed, loginErrorMessage(err))
		return nil, err
	}

	cred := &Credential{User: user, Token: token}

	c.mu.Lock()
	c.cred = cred
	c.status = StatusSucceeded
	c.errMsg = ""
	c.mu.Unlock()

	if err := c.store.Save(cred); err != nil {
		// The in-memory session is valid either way; losing persistence only
		// costs a re-login after restart.
		c.log.Warn(ctx, "could not persist session", "error", err)
	}

	c.log.Info(ctx, "logged in", "email", user.Email)
	return cred, nil
}

// Logout resets the container to its initial null-credential state, purges
// the persisted record, and notifies reset listeners.
func (c *Container) Logout() {
	c.mu.Lock()
	c.cred = nil
	c.status = StatusIdle
	c.errMsg = ""
	fns := make([]func(), len(c.resetFns))
	copy(fns, c.resetFns)
	c.mu.Unlock()

	if err := c.store.Clear(); err != nil {
		c.log.Warn(context.Background(), "could not clear persisted session", "error", err)
	}

	for _, fn := range fns {
		fn()
	}
}

// OnReset registers a listener invoked after every Logout. Feature areas use
// this to drop per-session cached state without the container knowing them.
func (c *Container) OnReset(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetFns = append(c.resetFns, fn)
}

// CurrentUser returns a copy of the authenticated user, or nil.
func (c *Container) CurrentUser() *models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cred == nil {
		return nil
	}
	u := c.cred.User
	return &u
}

// Token returns the current bearer token, or "" when unauthenticated. This
// implements the API client's token source.
func (c *Container) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cred == nil {
		return ""
	}
	return c.cred.Token
}

func (c *Container) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Err returns the user-facing message of the last failed login, or "".
func (c *Container) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

func (c *Container) transition(status Status, errMsg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = status
	c.errMsg = errMsg
}

// loginErrorMessage maps a login failure to the message shown on the login
// screen. A 401 means the credentials were wrong; anything else gets a
// generic description, with the API's detail when it offered one.
func loginErrorMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusUnauthorized {
			return msgBadCredentials
		}
		if apiErr.Detail != "" {
			return apiErr.Detail
		}
	}
	return msgLoginFailed
}
