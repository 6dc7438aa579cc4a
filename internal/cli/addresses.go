package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/shopadmin/internal/services"
)

// Addresses dispatches the addresses screen: list (default), add, del <id>.
func (a *App) Addresses(ctx context.Context, args []string) error {
	if !a.enter(ScreenAddresses) {
		return nil
	}

	switch sub(args) {
	case "", "list":
		return a.listAddresses(ctx)
	case "add":
		return a.addAddress(ctx)
	case "del":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "usage: addresses del <id>")
			return nil
		}
		return a.deleteAddress(ctx, args[1])
	default:
		fmt.Fprintln(a.out, "usage: addresses [list|add|del <id>]")
		return nil
	}
}

func (a *App) listAddresses(ctx context.Context) error {
	addresses, err := a.addresses.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "could not load addresses: %v\n", err)
		return err
	}
	renderAddresses(a.out, addresses)
	return nil
}

func (a *App) addAddress(ctx context.Context) error {
	userID, err := GetUUID(a.reader, "Customer id", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	name, err := GetSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	phone, err := GetOptionalText(a.reader, "Phone", a.out)
	if err != nil {
		return err
	}
	line1, err := GetSimpleText(a.reader, "Line 1", a.out)
	if err != nil {
		return err
	}
	line2, err := GetOptionalText(a.reader, "Line 2", a.out)
	if err != nil {
		return err
	}
	city, err := GetSimpleText(a.reader, "City", a.out)
	if err != nil {
		return err
	}
	state, err := GetOptionalText(a.reader, "State", a.out)
	if err != nil {
		return err
	}
	postalCode, err := GetSimpleText(a.reader, "Postal code", a.out)
	if err != nil {
		return err
	}
	country, err := GetSimpleText(a.reader, "Country", a.out)
	if err != nil {
		return err
	}
	isDefault, err := GetBool(a.reader, "Default address", false, a.out)
	if err != nil {
		return err
	}

	address, err := a.addresses.Create(ctx, services.CreateAddressParams{
		UserID:     userID,
		Name:       name,
		Phone:      phone,
		Line1:      line1,
		Line2:      line2,
		City:       city,
		State:      state,
		PostalCode: postalCode,
		Country:    country,
		IsDefault:  isDefault,
	})
	if err != nil {
		fmt.Fprintf(a.out, "could not create address: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "created address %s for %s\n", address.ID, address.Name)
	return nil
}

func (a *App) deleteAddress(ctx context.Context, rawID string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		fmt.Fprintf(a.out, "not a valid id: %q\n", rawID)
		return err
	}
	if err := a.addresses.Delete(ctx, id); err != nil {
		fmt.Fprintf(a.out, "could not delete address: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "deleted address %s\n", id)
	return nil
}
