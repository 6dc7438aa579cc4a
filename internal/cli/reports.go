package cli

import (
	"context"
	"fmt"
	"strconv"
)

const defaultTopProductsLimit = 10

// Reports dispatches the reports screen:
// sales <start> <end> [day|week|month], top [limit].
func (a *App) Reports(ctx context.Context, args []string) error {
	if !a.enter(ScreenReports) {
		return nil
	}

	switch sub(args) {
	case "sales":
		if len(args) < 3 {
			fmt.Fprintln(a.out, "usage: reports sales <start> <end> [day|week|month]")
			return nil
		}
		groupBy := "day"
		if len(args) > 3 {
			groupBy = args[3]
		}
		return a.salesReport(ctx, args[1], args[2], groupBy)
	case "top":
		limit := defaultTopProductsLimit
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Fprintf(a.out, "not a number: %q\n", args[1])
				return nil
			}
			limit = n
		}
		return a.topProductsReport(ctx, limit)
	default:
		fmt.Fprintln(a.out, "usage: reports [sales <start> <end> [group]|top [limit]]")
		return nil
	}
}

func (a *App) salesReport(ctx context.Context, startDate, endDate, groupBy string) error {
	points, err := a.stats.Sales(ctx, startDate, endDate, groupBy)
	if err != nil {
		fmt.Fprintf(a.out, "could not load sales report: %v\n", err)
		return err
	}
	renderSales(a.out, points)
	return nil
}

func (a *App) topProductsReport(ctx context.Context, limit int) error {
	products, err := a.stats.TopProducts(ctx, "", "", limit)
	if err != nil {
		fmt.Fprintf(a.out, "could not load top products: %v\n", err)
		return err
	}
	renderTopProducts(a.out, products)
	return nil
}
