package models

import (
	"time"

	"github.com/google/uuid"
)

// InventoryMovement records a single stock adjustment, optionally tied to a
// product, a variant, or the order that caused it.
type InventoryMovement struct {
	ID         uuid.UUID  `json:"id"`
	ProductID  *uuid.UUID `json:"product_id"`
	VariantID  *uuid.UUID `json:"variant_id"`
	Change     int        `json:"change"`
	Reason     string     `json:"reason"`
	RefOrderID *uuid.UUID `json:"ref_order_id"`
	Notes      *string    `json:"notes"`
	CreatedAt  time.Time  `json:"created_at"`
}

// LowStockItem is the reduced product/variant view returned by the low-stock
// report.
type LowStockItem struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Stock    int       `json:"stock"`
	IsActive bool      `json:"is_active"`
}

// LowStockReport groups everything below the requested threshold.
type LowStockReport struct {
	Products  []LowStockItem `json:"products"`
	Variants  []LowStockItem `json:"variants"`
	Threshold int            `json:"threshold"`
}
