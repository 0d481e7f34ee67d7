package startup

import (
	"context"
	"testing"

	"booking_service/domain"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserStore struct {
	users []*domain.User
}

func (s *fakeUserStore) Register(ctx context.Context, user *domain.User) error {
	stored := *user
	s.users = append(s.users, &stored)
	return nil
}

func (s *fakeUserStore) GetOneUser(ctx context.Context, username string) (*domain.User, error) {
	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) GetAll(ctx context.Context) ([]*domain.User, error) {
	return s.users, nil
}

func (s *fakeUserStore) Count(ctx context.Context) (int64, error) {
	return int64(len(s.users)), nil
}

type fakeCatalogStore struct {
	destinations []*domain.Destination
}

func (s *fakeCatalogStore) Insert(ctx context.Context, destination *domain.Destination) error {
	stored := *destination
	s.destinations = append(s.destinations, &stored)
	return nil
}

func (s *fakeCatalogStore) InsertMany(ctx context.Context, destinations []*domain.Destination) error {
	for _, destination := range destinations {
		if err := s.Insert(ctx, destination); err != nil {
			return err
		}
	}
	return nil
}

func (s *fakeCatalogStore) GetOne(ctx context.Context, id string) (*domain.Destination, error) {
	return nil, nil
}

func (s *fakeCatalogStore) GetAll(ctx context.Context) ([]*domain.Destination, error) {
	return s.destinations, nil
}

func (s *fakeCatalogStore) Count(ctx context.Context) (int64, error) {
	return int64(len(s.destinations)), nil
}

func TestSeedData_EmptyCollections(t *testing.T) {
	users := &fakeUserStore{}
	destinations := &fakeCatalogStore{}

	err := SeedData(context.Background(), users, destinations)
	assert.NoError(t, err)

	assert.Len(t, users.users, 1)
	assert.Equal(t, "admin", users.users[0].Username)
	assert.Equal(t, domain.RoleAdmin, users.users[0].Role)
	assert.Len(t, destinations.destinations, 20)

	// The seeded credential is a bcrypt hash of the default password.
	err = bcrypt.CompareHashAndPassword([]byte(users.users[0].Password), []byte("admin123"))
	assert.NoError(t, err)
}

func TestSeedData_Idempotent(t *testing.T) {
	users := &fakeUserStore{}
	destinations := &fakeCatalogStore{}
	ctx := context.Background()

	err := SeedData(ctx, users, destinations)
	assert.NoError(t, err)
	err = SeedData(ctx, users, destinations)
	assert.NoError(t, err)

	assert.Len(t, users.users, 1)
	assert.Len(t, destinations.destinations, 20)
}

func TestSeedData_NonEmptyCollectionsUntouched(t *testing.T) {
	users := &fakeUserStore{users: []*domain.User{{Username: "existing"}}}
	destinations := &fakeCatalogStore{destinations: []*domain.Destination{{Name: "Existing Trip"}}}

	err := SeedData(context.Background(), users, destinations)
	assert.NoError(t, err)

	assert.Len(t, users.users, 1)
	assert.Equal(t, "existing", users.users[0].Username)
	assert.Len(t, destinations.destinations, 1)
}
