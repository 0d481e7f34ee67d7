package application

import (
	"context"
	"errors"

	"booking_service/domain"
	appErrors "booking_service/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory store fakes. They return copies, the way decoding from the
// driver does, so callers mutating results cannot corrupt stored records.

type inMemoryUserStore struct {
	users []*domain.User
}

func (s *inMemoryUserStore) Register(ctx context.Context, user *domain.User) error {
	for _, existing := range s.users {
		if existing.Username == user.Username {
			return errors.New("E11000 duplicate key error")
		}
	}
	user.ID = primitive.NewObjectID()
	stored := *user
	s.users = append(s.users, &stored)
	return nil
}

func (s *inMemoryUserStore) GetOneUser(ctx context.Context, username string) (*domain.User, error) {
	for _, user := range s.users {
		if user.Username == username {
			found := *user
			return &found, nil
		}
	}
	return nil, nil
}

func (s *inMemoryUserStore) GetAll(ctx context.Context) ([]*domain.User, error) {
	all := make([]*domain.User, 0, len(s.users))
	for _, user := range s.users {
		found := *user
		all = append(all, &found)
	}
	return all, nil
}

func (s *inMemoryUserStore) Count(ctx context.Context) (int64, error) {
	return int64(len(s.users)), nil
}

type inMemorySessionCache struct {
	sessions map[string]string
}

func newInMemorySessionCache() *inMemorySessionCache {
	return &inMemorySessionCache{sessions: make(map[string]string)}
}

func (c *inMemorySessionCache) PostSession(ctx context.Context, username string, token string) error {
	c.sessions[username] = token
	return nil
}

func (c *inMemorySessionCache) GetSession(ctx context.Context, username string) (string, error) {
	token, ok := c.sessions[username]
	if !ok {
		return "", errors.New("redis: nil")
	}
	return token, nil
}

func (c *inMemorySessionCache) DelSession(ctx context.Context, username string) error {
	delete(c.sessions, username)
	return nil
}

type inMemoryCatalogStore struct {
	destinations []*domain.Destination
}

func (s *inMemoryCatalogStore) Insert(ctx context.Context, destination *domain.Destination) error {
	destination.ID = primitive.NewObjectID()
	stored := *destination
	s.destinations = append(s.destinations, &stored)
	return nil
}

func (s *inMemoryCatalogStore) InsertMany(ctx context.Context, destinations []*domain.Destination) error {
	for _, destination := range destinations {
		if err := s.Insert(ctx, destination); err != nil {
			return err
		}
	}
	return nil
}

func (s *inMemoryCatalogStore) GetOne(ctx context.Context, id string) (*domain.Destination, error) {
	for _, destination := range s.destinations {
		if destination.ID.Hex() == id {
			found := *destination
			return &found, nil
		}
	}
	return nil, nil
}

func (s *inMemoryCatalogStore) GetAll(ctx context.Context) ([]*domain.Destination, error) {
	all := make([]*domain.Destination, 0, len(s.destinations))
	for _, destination := range s.destinations {
		found := *destination
		all = append(all, &found)
	}
	return all, nil
}

func (s *inMemoryCatalogStore) Count(ctx context.Context) (int64, error) {
	return int64(len(s.destinations)), nil
}

type inMemoryBookingStore struct {
	bookings []*domain.Booking
}

func (s *inMemoryBookingStore) Insert(ctx context.Context, booking *domain.Booking) error {
	booking.ID = primitive.NewObjectID()
	stored := *booking
	s.bookings = append(s.bookings, &stored)
	return nil
}

func (s *inMemoryBookingStore) GetOne(ctx context.Context, bookingID string) (*domain.Booking, error) {
	for _, booking := range s.bookings {
		if booking.BookingID == bookingID {
			found := *booking
			return &found, nil
		}
	}
	return nil, nil
}

func (s *inMemoryBookingStore) GetByOwner(ctx context.Context, username string) ([]*domain.Booking, error) {
	matched := make([]*domain.Booking, 0)
	for _, booking := range s.bookings {
		if booking.Owner == username {
			found := *booking
			matched = append(matched, &found)
		}
	}
	return matched, nil
}

func (s *inMemoryBookingStore) GetByEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	matched := make([]*domain.Booking, 0)
	for _, booking := range s.bookings {
		if booking.Email == email {
			found := *booking
			matched = append(matched, &found)
		}
	}
	return matched, nil
}

func (s *inMemoryBookingStore) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	all := make([]*domain.Booking, 0, len(s.bookings))
	for _, booking := range s.bookings {
		found := *booking
		all = append(all, &found)
	}
	return all, nil
}

func (s *inMemoryBookingStore) Delete(ctx context.Context, bookingID string) error {
	for i, booking := range s.bookings {
		if booking.BookingID == bookingID {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return nil
		}
	}
	return errors.New(appErrors.BookingNotFound)
}

func (s *inMemoryBookingStore) Count(ctx context.Context) (int64, error) {
	return int64(len(s.bookings)), nil
}
