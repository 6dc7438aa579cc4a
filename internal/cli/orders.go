package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/shopadmin/internal/services"
)

// Orders dispatches the orders screen: list (default), add,
// status <id> <status>.
func (a *App) Orders(ctx context.Context, args []string) error {
	if !a.enter(ScreenOrders) {
		return nil
	}

	switch sub(args) {
	case "", "list":
		return a.listOrders(ctx)
	case "add":
		return a.addOrder(ctx)
	case "status":
		if len(args) < 3 {
			fmt.Fprintln(a.out, "usage: orders status <id> <status>")
			return nil
		}
		return a.updateOrderStatus(ctx, args[1], args[2])
	default:
		fmt.Fprintln(a.out, "usage: orders [list|add|status <id> <status>]")
		return nil
	}
}

func (a *App) listOrders(ctx context.Context) error {
	orders, err := a.orders.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "could not load orders: %v\n", err)
		return err
	}
	renderOrders(a.out, orders)
	return nil
}

// addOrder collects an optional customer id and item lines until the user
// enters an empty product id. Prices are computed by the backend.
func (a *App) addOrder(ctx context.Context) error {
	userID, err := GetOptionalUUID(a.reader, "Customer id", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	var items []services.OrderItemParams
	for {
		raw, err := GetSimpleText(a.reader, "Product id (empty line to finish)", a.out)
		if err != nil {
			return err
		}
		if raw == "" {
			break
		}
		productID, err := uuid.Parse(raw)
		if err != nil {
			fmt.Fprintf(a.out, "not a valid id: %q\n", raw)
			continue
		}
		quantity, err := GetInt(a.reader, "Quantity", a.out)
		if err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
			continue
		}
		items = append(items, services.OrderItemParams{ProductID: productID, Quantity: quantity})
	}

	if len(items) == 0 {
		fmt.Fprintln(a.out, "no items, order not created")
		return nil
	}

	order, err := a.orders.Create(ctx, services.CreateOrderParams{UserID: userID, Items: items})
	if err != nil {
		fmt.Fprintf(a.out, "could not create order: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "created order %s, total %.2f\n", order.ID, order.TotalAmount)
	return nil
}

func (a *App) updateOrderStatus(ctx context.Context, rawID, status string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		fmt.Fprintf(a.out, "not a valid id: %q\n", rawID)
		return err
	}
	order, err := a.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		fmt.Fprintf(a.out, "could not update order: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "order %s is now %s\n", order.ID, order.Status)
	return nil
}
