package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/shopadmin/internal/api"
	"github.com/dmitrijs2005/shopadmin/internal/models"
)

// OrderService manages orders. Unit prices and totals are computed by the
// backend; the client only sends product ids and quantities.
type OrderService interface {
	List(ctx context.Context) ([]models.Order, error)
	Create(ctx context.Context, p CreateOrderParams) (models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (models.Order, error)
}

type OrderItemParams struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

type CreateOrderParams struct {
	// UserID is optional: staff may open an order on a customer's behalf.
	UserID *uuid.UUID        `json:"user_id,omitempty"`
	Items  []OrderItemParams `json:"items"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type orderService struct {
	api api.Requester
}

func NewOrderService(r api.Requester) OrderService {
	return &orderService{api: r}
}

func (s *orderService) List(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.api.Get(ctx, "/orders", &orders)
	return orders, err
}

func (s *orderService) Create(ctx context.Context, p CreateOrderParams) (models.Order, error) {
	var order models.Order
	err := s.api.Post(ctx, "/orders", p, &order)
	return order, err
}

func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (models.Order, error) {
	var order models.Order
	err := s.api.Put(ctx, fmt.Sprintf("/orders/%s/status", id), updateStatusRequest{Status: status}, &order)
	return order, err
}
