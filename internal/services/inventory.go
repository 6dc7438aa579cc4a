package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/shopadmin/internal/api"
	"github.com/dmitrijs2005/shopadmin/internal/models"
)

// InventoryService exposes stock movement history, the low-stock report, and
// manual stock adjustments.
type InventoryService interface {
	Movements(ctx context.Context) ([]models.InventoryMovement, error)
	LowStock(ctx context.Context, threshold int) (models.LowStockReport, error)
	AdjustProduct(ctx context.Context, productID uuid.UUID, change int, reason string) (models.InventoryMovement, error)
}

type inventoryService struct {
	api api.Requester
}

func NewInventoryService(r api.Requester) InventoryService {
	return &inventoryService{api: r}
}

func (s *inventoryService) Movements(ctx context.Context) ([]models.InventoryMovement, error) {
	var movements []models.InventoryMovement
	err := s.api.Get(ctx, "/inventory/movements", &movements)
	return movements, err
}

func (s *inventoryService) LowStock(ctx context.Context, threshold int) (models.LowStockReport, error) {
	var report models.LowStockReport
	err := s.api.Get(ctx, fmt.Sprintf("/inventory/low-stock?threshold=%d", threshold), &report)
	return report, err
}

// AdjustProduct records a manual stock change. The backend takes the
// adjustment via query parameters and answers with the resulting movement.
func (s *inventoryService) AdjustProduct(ctx context.Context, productID uuid.UUID, change int, reason string) (models.InventoryMovement, error) {
	var movement models.InventoryMovement
	path := fmt.Sprintf("/inventory/adjust/product/%s?change=%d&reason=%s", productID, change, url.QueryEscape(reason))
	err := s.api.Post(ctx, path, nil, &movement)
	return movement, err
}
