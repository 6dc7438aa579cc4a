package session

import "github.com/dmitrijs2005/shopadmin/internal/models"

// Credential pairs the authenticated user with the bearer token proving the
// session. A credential always carries both: a token is never held without
// the user it belongs to.
type Credential struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}
