package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/shopadmin/internal/api"
	"github.com/dmitrijs2005/shopadmin/internal/models"
)

// CategoryService manages product categories. Category ids are strings on
// the wire, see models.Category.
type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, p CategoryParams) (models.Category, error)
	Update(ctx context.Context, id string, p CategoryParams) (models.Category, error)
	Delete(ctx context.Context, id string) error
}

type CategoryParams struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type categoryService struct {
	api api.Requester
}

func NewCategoryService(r api.Requester) CategoryService {
	return &categoryService{api: r}
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := s.api.Get(ctx, "/categories", &categories)
	return categories, err
}

func (s *categoryService) Create(ctx context.Context, p CategoryParams) (models.Category, error) {
	var category models.Category
	err := s.api.Post(ctx, "/categories", p, &category)
	return category, err
}

func (s *categoryService) Update(ctx context.Context, id string, p CategoryParams) (models.Category, error) {
	var category models.Category
	err := s.api.Put(ctx, fmt.Sprintf("/categories/%s", id), p, &category)
	return category, err
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, fmt.Sprintf("/categories/%s", id))
}
