package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/shopadmin/internal/services"
)

// Categories dispatches the categories screen: list (default), add,
// update <id>, del <id>.
func (a *App) Categories(ctx context.Context, args []string) error {
	if !a.enter(ScreenCategory) {
		return nil
	}

	switch sub(args) {
	case "", "list":
		return a.listCategories(ctx)
	case "add":
		return a.addCategory(ctx)
	case "update":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "usage: categories update <id>")
			return nil
		}
		return a.updateCategory(ctx, args[1])
	case "del":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "usage: categories del <id>")
			return nil
		}
		return a.deleteCategory(ctx, args[1])
	default:
		fmt.Fprintln(a.out, "usage: categories [list|add|update <id>|del <id>]")
		return nil
	}
}

func (a *App) listCategories(ctx context.Context) error {
	categories, err := a.categories.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "could not load categories: %v\n", err)
		return err
	}
	renderCategories(a.out, categories)
	return nil
}

func (a *App) categoryParams() (services.CategoryParams, error) {
	name, err := GetSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return services.CategoryParams{}, err
	}
	description, err := GetOptionalText(a.reader, "Description", a.out)
	if err != nil {
		return services.CategoryParams{}, err
	}
	return services.CategoryParams{Name: name, Description: description}, nil
}

func (a *App) addCategory(ctx context.Context) error {
	params, err := a.categoryParams()
	if err != nil {
		return err
	}
	category, err := a.categories.Create(ctx, params)
	if err != nil {
		fmt.Fprintf(a.out, "could not create category: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "created category %s (%s)\n", category.Name, category.ID)
	return nil
}

func (a *App) updateCategory(ctx context.Context, id string) error {
	params, err := a.categoryParams()
	if err != nil {
		return err
	}
	category, err := a.categories.Update(ctx, id, params)
	if err != nil {
		fmt.Fprintf(a.out, "could not update category: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "updated category %s\n", category.Name)
	return nil
}

func (a *App) deleteCategory(ctx context.Context, id string) error {
	if err := a.categories.Delete(ctx, id); err != nil {
		fmt.Fprintf(a.out, "could not delete category: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "deleted category %s\n", id)
	return nil
}
