package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/shopadmin/internal/api"
	"github.com/dmitrijs2005/shopadmin/internal/models"
)

// AddressService manages customer addresses.
type AddressService interface {
	List(ctx context.Context) ([]models.Address, error)
	Create(ctx context.Context, p CreateAddressParams) (models.Address, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateAddressParams struct {
	UserID     uuid.UUID `json:"user_id"`
	Name       string    `json:"name"`
	Phone      *string   `json:"phone,omitempty"`
	Line1      string    `json:"line1"`
	Line2      *string   `json:"line2,omitempty"`
	City       string    `json:"city"`
	State      *string   `json:"state,omitempty"`
	PostalCode string    `json:"postal_code"`
	Country    string    `json:"country"`
	IsDefault  bool      `json:"is_default"`
}

type addressService struct {
	api api.Requester
}

func NewAddressService(r api.Requester) AddressService {
	return &addressService{api: r}
}

func (s *addressService) List(ctx context.Context) ([]models.Address, error) {
	var addresses []models.Address
	err := s.api.Get(ctx, "/addresses", &addresses)
	return addresses, err
}

func (s *addressService) Create(ctx context.Context, p CreateAddressParams) (models.Address, error) {
	var address models.Address
	err := s.api.Post(ctx, "/addresses", p, &address)
	return address, err
}

func (s *addressService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.api.Delete(ctx, fmt.Sprintf("/addresses/%s", id))
}
