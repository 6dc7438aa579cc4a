package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/shopadmin/internal/services"
)

// Users dispatches the users screen: list (default), add, update <id>.
func (a *App) Users(ctx context.Context, args []string) error {
	if !a.enter(ScreenUsers) {
		return nil
	}

	switch sub(args) {
	case "", "list":
		return a.listUsers(ctx)
	case "add":
		return a.addUser(ctx)
	case "update":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "usage: users update <id>")
			return nil
		}
		return a.updateUser(ctx, args[1])
	default:
		fmt.Fprintln(a.out, "usage: users [list|add|update <id>]")
		return nil
	}
}

func (a *App) listUsers(ctx context.Context) error {
	users, err := a.users.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "could not load users: %v\n", err)
		return err
	}
	renderUsers(a.out, users)
	return nil
}

func (a *App) addUser(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	fullName, err := GetOptionalText(a.reader, "Full name", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.users.Create(ctx, services.CreateUserParams{
		Email:    email,
		FullName: fullName,
		Password: password,
	})
	if err != nil {
		fmt.Fprintf(a.out, "could not create user: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "created user %s (%s)\n", user.Email, user.ID)
	return nil
}

func (a *App) updateUser(ctx context.Context, rawID string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		fmt.Fprintf(a.out, "not a valid id: %q\n", rawID)
		return err
	}

	fullName, err := GetOptionalText(a.reader, "Full name", a.out)
	if err != nil {
		return err
	}
	active, err := GetBool(a.reader, "Active", true, a.out)
	if err != nil {
		return err
	}
	admin, err := GetBool(a.reader, "Superuser", false, a.out)
	if err != nil {
		return err
	}

	user, err := a.users.Update(ctx, id, services.UpdateUserParams{
		FullName:    fullName,
		IsActive:    &active,
		IsSuperuser: &admin,
	})
	if err != nil {
		fmt.Fprintf(a.out, "could not update user: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "updated user %s\n", user.Email)
	return nil
}

// sub extracts the subcommand token, tolerating no arguments.
func sub(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
