package models

import "github.com/google/uuid"

type OverviewStats struct {
	TotalRevenue   float64        `json:"total_revenue"`
	TotalOrders    int            `json:"total_orders"`
	ActiveUsers    int            `json:"active_users"`
	ActiveProducts int            `json:"active_products"`
	OrdersByStatus map[string]int `json:"orders_by_status"`
}

// SalesPoint is one bucket of the sales trend series. Date is returned by the
// API pre-formatted for the requested grouping (day, week, or month).
type SalesPoint struct {
	Date       string  `json:"date"`
	Revenue    float64 `json:"revenue"`
	OrderCount int     `json:"order_count"`
}

type TopProduct struct {
	ProductID     uuid.UUID `json:"product_id"`
	ProductName   string    `json:"product_name"`
	TotalRevenue  float64   `json:"total_revenue"`
	TotalQuantity int       `json:"total_quantity"`
}
