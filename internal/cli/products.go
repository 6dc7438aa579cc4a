package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/shopadmin/internal/services"
)

// Products dispatches the products screen: list (default), add,
// update <id>, del <id>.
func (a *App) Products(ctx context.Context, args []string) error {
	if !a.enter(ScreenProducts) {
		return nil
	}

	switch sub(args) {
	case "", "list":
		return a.listProducts(ctx)
	case "add":
		return a.addProduct(ctx)
	case "update":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "usage: products update <id>")
			return nil
		}
		return a.updateProduct(ctx, args[1])
	case "del":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "usage: products del <id>")
			return nil
		}
		return a.deleteProduct(ctx, args[1])
	default:
		fmt.Fprintln(a.out, "usage: products [list|add|update <id>|del <id>]")
		return nil
	}
}

func (a *App) listProducts(ctx context.Context) error {
	products, err := a.products.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "could not load products: %v\n", err)
		return err
	}
	renderProducts(a.out, products)
	return nil
}

func (a *App) addProduct(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	description, err := GetOptionalText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	price, err := GetFloat(a.reader, "Price", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	stock, err := GetInt(a.reader, "Stock", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	categoryID, err := GetOptionalUUID(a.reader, "Category id", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	product, err := a.products.Create(ctx, services.CreateProductParams{
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		CategoryID:  categoryID,
	})
	if err != nil {
		fmt.Fprintf(a.out, "could not create product: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "created product %s (%s)\n", product.Name, product.ID)
	return nil
}

func (a *App) updateProduct(ctx context.Context, rawID string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		fmt.Fprintf(a.out, "not a valid id: %q\n", rawID)
		return err
	}

	// Empty answers leave the field unchanged.
	var params services.UpdateProductParams
	if name, err := GetOptionalText(a.reader, "Name", a.out); err != nil {
		return err
	} else {
		params.Name = name
	}
	if description, err := GetOptionalText(a.reader, "Description", a.out); err != nil {
		return err
	} else {
		params.Description = description
	}
	if raw, err := GetOptionalText(a.reader, "Price", a.out); err != nil {
		return err
	} else if raw != nil {
		price, err := GetFloatValue(*raw)
		if err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
			return err
		}
		params.Price = &price
	}
	if raw, err := GetOptionalText(a.reader, "Stock", a.out); err != nil {
		return err
	} else if raw != nil {
		stock, err := GetIntValue(*raw)
		if err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
			return err
		}
		params.Stock = &stock
	}

	product, err := a.products.Update(ctx, id, params)
	if err != nil {
		fmt.Fprintf(a.out, "could not update product: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "updated product %s\n", product.Name)
	return nil
}

func (a *App) deleteProduct(ctx context.Context, rawID string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		fmt.Fprintf(a.out, "not a valid id: %q\n", rawID)
		return err
	}
	if err := a.products.Delete(ctx, id); err != nil {
		fmt.Fprintf(a.out, "could not delete product: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "deleted product %s\n", id)
	return nil
}
