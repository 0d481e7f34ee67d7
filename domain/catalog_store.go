package domain

import "context"

type CatalogStore interface {
	Insert(ctx context.Context, destination *Destination) error
	GetOne(ctx context.Context, id string) (*Destination, error)
	InsertMany(ctx context.Context, destinations []*Destination) error
	GetAll(ctx context.Context) ([]*Destination, error)
	Count(ctx context.Context) (int64, error)
}
