package domain

import "context"

type BookingStore interface {
	Insert(ctx context.Context, booking *Booking) error
	GetOne(ctx context.Context, bookingID string) (*Booking, error)
	GetByOwner(ctx context.Context, username string) ([]*Booking, error)
	GetByEmail(ctx context.Context, email string) ([]*Booking, error)
	GetAll(ctx context.Context) ([]*Booking, error)
	Delete(ctx context.Context, bookingID string) error
	Count(ctx context.Context) (int64, error)
}
