package application

import (
	"context"
	"time"

	"booking_service/domain"
	"booking_service/errors"
)

type CatalogService struct {
	store domain.CatalogStore
}

func NewCatalogService(store domain.CatalogStore) *CatalogService {
	return &CatalogService{
		store: store,
	}
}

func (service *CatalogService) Create(ctx context.Context, destination *domain.Destination) (*domain.Destination, error) {
	if destination.Name == "" {
		return nil, &errors.ValidationError{Message: "Name cannot be empty"}
	}
	if destination.Location == "" {
		return nil, &errors.ValidationError{Message: "Location cannot be empty"}
	}
	if destination.Price < 0 {
		return nil, &errors.ValidationError{Message: "Price cannot be negative"}
	}
	if err := destination.Validate(); err != nil {
		return nil, &errors.ValidationError{Message: err.Error()}
	}

	destination.CreatedAt = time.Now().UTC()

	err := service.store.Insert(ctx, destination)
	if err != nil {
		return nil, err
	}

	return destination, nil
}

func (service *CatalogService) GetOne(ctx context.Context, id string) (*domain.Destination, error) {
	return service.store.GetOne(ctx, id)
}

func (service *CatalogService) GetAll(ctx context.Context) ([]*domain.Destination, error) {
	return service.store.GetAll(ctx)
}

func (service *CatalogService) Count(ctx context.Context) (int64, error) {
	return service.store.Count(ctx)
}
