package cli

import "github.com/dmitrijs2005/shopadmin/internal/models"

// Screen is a navigation destination inside the console.
type Screen string

const (
	ScreenLogin     Screen = "login"
	ScreenOverview  Screen = "overview"
	ScreenUsers     Screen = "users"
	ScreenProducts  Screen = "products"
	ScreenCategory  Screen = "categories"
	ScreenOrders    Screen = "orders"
	ScreenInventory Screen = "inventory"
	ScreenReports   Screen = "reports"
	ScreenAddresses Screen = "addresses"
)

// Guard decides where a navigation attempt actually lands, given the current
// user. Guards are pure: they perform no I/O and consult nothing beyond their
// arguments.
type Guard func(user *models.User, dst Screen) Screen

// RequireAuth admits dst only when a user is present; anonymous visitors are
// sent to the login screen instead, dropping the attempted destination.
func RequireAuth(user *models.User, dst Screen) Screen {
	if user == nil {
		return ScreenLogin
	}
	return dst
}

// RequireAnon admits dst only when no user is present; authenticated users
// are sent to the overview screen instead.
func RequireAnon(user *models.User, dst Screen) Screen {
	if user != nil {
		return ScreenOverview
	}
	return dst
}

// guardFor returns the guard protecting dst: the login screen is
// anonymous-only, every other screen requires authentication.
func guardFor(dst Screen) Guard {
	if dst == ScreenLogin {
		return RequireAnon
	}
	return RequireAuth
}
