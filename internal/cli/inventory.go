package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const defaultLowStockThreshold = 10

// Inventory dispatches the inventory screen: list (default),
// low [threshold], adjust <product-id> <change> <reason...>.
func (a *App) Inventory(ctx context.Context, args []string) error {
	if !a.enter(ScreenInventory) {
		return nil
	}

	switch sub(args) {
	case "", "list":
		return a.listMovements(ctx)
	case "low":
		threshold := defaultLowStockThreshold
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Fprintf(a.out, "not a number: %q\n", args[1])
				return nil
			}
			threshold = n
		}
		return a.lowStock(ctx, threshold)
	case "adjust":
		if len(args) < 4 {
			fmt.Fprintln(a.out, "usage: inventory adjust <product-id> <change> <reason...>")
			return nil
		}
		return a.adjustStock(ctx, args[1], args[2], strings.Join(args[3:], " "))
	default:
		fmt.Fprintln(a.out, "usage: inventory [list|low [threshold]|adjust <product-id> <change> <reason...>]")
		return nil
	}
}

func (a *App) listMovements(ctx context.Context) error {
	movements, err := a.inventory.Movements(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "could not load movements: %v\n", err)
		return err
	}
	renderMovements(a.out, movements)
	return nil
}

func (a *App) lowStock(ctx context.Context, threshold int) error {
	report, err := a.inventory.LowStock(ctx, threshold)
	if err != nil {
		fmt.Fprintf(a.out, "could not load low-stock report: %v\n", err)
		return err
	}
	renderLowStock(a.out, report)
	return nil
}

func (a *App) adjustStock(ctx context.Context, rawID, rawChange, reason string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		fmt.Fprintf(a.out, "not a valid id: %q\n", rawID)
		return err
	}
	change, err := strconv.Atoi(rawChange)
	if err != nil {
		fmt.Fprintf(a.out, "not a number: %q\n", rawChange)
		return err
	}

	movement, err := a.inventory.AdjustProduct(ctx, id, change, reason)
	if err != nil {
		fmt.Fprintf(a.out, "could not adjust stock: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "recorded movement %s (%+d, %s)\n", movement.ID, movement.Change, movement.Reason)
	return nil
}
