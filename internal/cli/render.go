package cli

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/dmitrijs2005/shopadmin/internal/models"
)

// Table renderers for the console. All of them write aligned columns via
// tabwriter and tolerate empty lists.

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func renderUsers(w io.Writer, users []models.User) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tEMAIL\tNAME\tACTIVE\tADMIN\tCREATED")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%t\t%s\n",
			u.ID, u.Email, orEmpty(u.FullName), u.IsActive, u.IsSuperuser,
			u.CreatedAt.Format("2006-01-02"))
	}
	tw.Flush()
}

func renderProducts(w io.Writer, products []models.Product) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tSTOCK\tACTIVE\tCATEGORY")
	for _, p := range products {
		category := ""
		if p.CategoryID != nil {
			category = p.CategoryID.String()
		}
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%d\t%t\t%s\n",
			p.ID, p.Name, p.Price, p.Stock, p.IsActive, category)
	}
	tw.Flush()
}

func renderCategories(w io.Writer, categories []models.Category) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION")
	for _, c := range categories {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.ID, c.Name, orEmpty(c.Description))
	}
	tw.Flush()
}

func renderOrders(w io.Writer, orders []models.Order) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tTOTAL\tITEMS\tCREATED")
	for _, o := range orders {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%d\t%s\n",
			o.ID, o.Status, o.TotalAmount, len(o.Items),
			o.CreatedAt.Format("2006-01-02 15:04"))
	}
	tw.Flush()
}

func renderMovements(w io.Writer, movements []models.InventoryMovement) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPRODUCT\tCHANGE\tREASON\tNOTES\tWHEN")
	for _, m := range movements {
		product := ""
		if m.ProductID != nil {
			product = m.ProductID.String()
		}
		fmt.Fprintf(tw, "%s\t%s\t%+d\t%s\t%s\t%s\n",
			m.ID, product, m.Change, m.Reason, orEmpty(m.Notes),
			m.CreatedAt.Format("2006-01-02 15:04"))
	}
	tw.Flush()
}

func renderLowStock(w io.Writer, report models.LowStockReport) {
	fmt.Fprintf(w, "Items below %d in stock:\n", report.Threshold)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTOCK\tACTIVE")
	for _, item := range report.Products {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%t\n", item.ID, item.Name, item.Stock, item.IsActive)
	}
	for _, item := range report.Variants {
		fmt.Fprintf(tw, "%s\t%s (variant)\t%d\t%t\n", item.ID, item.Name, item.Stock, item.IsActive)
	}
	tw.Flush()
}

func renderOverview(w io.Writer, stats models.OverviewStats) {
	fmt.Fprintf(w, "Revenue:         %.2f\n", stats.TotalRevenue)
	fmt.Fprintf(w, "Orders:          %d\n", stats.TotalOrders)
	fmt.Fprintf(w, "Active users:    %d\n", stats.ActiveUsers)
	fmt.Fprintf(w, "Active products: %d\n", stats.ActiveProducts)

	if len(stats.OrdersByStatus) == 0 {
		return
	}
	statuses := make([]string, 0, len(stats.OrdersByStatus))
	for status := range stats.OrdersByStatus {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)
	fmt.Fprintln(w, "Orders by status:")
	for _, status := range statuses {
		fmt.Fprintf(w, "  %-12s %d\n", status, stats.OrdersByStatus[status])
	}
}

func renderSales(w io.Writer, points []models.SalesPoint) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tREVENUE\tORDERS")
	for _, p := range points {
		fmt.Fprintf(tw, "%s\t%.2f\t%d\n", p.Date, p.Revenue, p.OrderCount)
	}
	tw.Flush()
}

func renderTopProducts(w io.Writer, products []models.TopProduct) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PRODUCT\tNAME\tREVENUE\tQUANTITY")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%d\n",
			p.ProductID, p.ProductName, p.TotalRevenue, p.TotalQuantity)
	}
	tw.Flush()
}

func renderAddresses(w io.Writer, addresses []models.Address) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSER\tNAME\tCITY\tCOUNTRY\tDEFAULT")
	for _, a := range addresses {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%t\n",
			a.ID, a.UserID, a.Name, a.City, a.Country, a.IsDefault)
	}
	tw.Flush()
}
