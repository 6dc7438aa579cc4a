package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/shopadmin/internal/api"
	"github.com/dmitrijs2005/shopadmin/internal/models"
)

// ProductService manages the product catalog.
type ProductService interface {
	List(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, p CreateProductParams) (models.Product, error)
	Update(ctx context.Context, id uuid.UUID, p UpdateProductParams) (models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateProductParams struct {
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	Price       float64    `json:"price"`
	Stock       int        `json:"stock"`
	IsActive    *bool      `json:"is_active,omitempty"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
}

// UpdateProductParams carries a partial update: nil fields are left unchanged.
type UpdateProductParams struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Price       *float64   `json:"price,omitempty"`
	Stock       *int       `json:"stock,omitempty"`
	IsActive    *bool      `json:"is_active,omitempty"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
}

type productService struct {
	api api.Requester
}

func NewProductService(r api.Requester) ProductService {
	return &productService{api: r}
}

func (s *productService) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.api.Get(ctx, "/products", &products)
	return products, err
}

func (s *productService) Create(ctx context.Context, p CreateProductParams) (models.Product, error) {
	var product models.Product
	err := s.api.Post(ctx, "/products", p, &product)
	return product, err
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, p UpdateProductParams) (models.Product, error) {
	var product models.Product
	err := s.api.Put(ctx, fmt.Sprintf("/products/%s", id), p, &product)
	return product, err
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.api.Delete(ctx, fmt.Sprintf("/products/%s", id))
}
