package cli

import (
	"context"
	"fmt"
)

// Login runs the interactive login flow. The guard bounces users who already
// hold a session to the overview instead of re-prompting them.
func (a *App) Login(ctx context.Context) error {
	if a.navigate(ScreenLogin) != ScreenLogin {
		user := a.session.CurrentUser()
		fmt.Fprintf(a.out, "already logged in as %s\n", user.Email)
		return nil
	}

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	cred, err := a.session.Login(ctx, email, password)
	if err != nil {
		// The container keeps the user-facing message; the raw error stays
		// in the logs.
		fmt.Fprintln(a.out, a.session.Err())
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s\n", cred.User.DisplayName())
	a.navigate(ScreenOverview)
	return nil
}

// Logout ends the session and returns to the login screen.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout()
	a.navigate(ScreenLogin)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// WhoAmI prints the current user.
func (a *App) WhoAmI(ctx context.Context) error {
	user := a.session.CurrentUser()
	if user == nil {
		fmt.Fprintln(a.out, "not logged in")
		return nil
	}
	role := "staff"
	if user.IsSuperuser {
		role = "superuser"
	}
	fmt.Fprintf(a.out, "%s (%s, %s)\n", user.DisplayName(), user.Email, role)
	return nil
}
