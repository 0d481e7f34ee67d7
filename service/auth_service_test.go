package application

import (
	"context"
	"net/http"
	"testing"

	"booking_service/authorization"
	"booking_service/domain"
	appErrors "booking_service/errors"

	"github.com/stretchr/testify/assert"
)

func newAuthService() (*AuthService, *inMemoryUserStore, *inMemorySessionCache) {
	store := &inMemoryUserStore{}
	sessions := newInMemorySessionCache()
	return NewAuthService(store, sessions), store, sessions
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	service, _, _ := newAuthService()
	ctx := context.Background()

	registered, statusCode, err := service.Register(ctx, &domain.User{
		Username: "admin",
		Password: "admin123",
		Role:     domain.RoleAdmin,
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, statusCode)
	assert.Equal(t, "admin", registered.Username)
	assert.Empty(t, registered.Password)

	token, err := service.Login(ctx, &domain.Credentials{Username: "admin", Password: "admin123"})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := authorization.ClaimsFromToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, string(domain.RoleAdmin), claims.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	service, _, _ := newAuthService()
	ctx := context.Background()

	_, _, err := service.Register(ctx, &domain.User{
		Username: "admin",
		Password: "admin123",
		Role:     domain.RoleAdmin,
	})
	assert.NoError(t, err)

	_, err = service.Login(ctx, &domain.Credentials{Username: "admin", Password: "wrong"})
	assert.Error(t, err)
	assert.Equal(t, appErrors.InvalidCredentials, err.Error())
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	service, _, _ := newAuthService()

	_, err := service.Login(context.Background(), &domain.Credentials{Username: "nobody", Password: "whatever"})
	assert.Error(t, err)
	assert.Equal(t, appErrors.InvalidCredentials, err.Error())
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	service, store, _ := newAuthService()
	ctx := context.Background()

	_, statusCode, err := service.Register(ctx, &domain.User{
		Username: "alice",
		Password: "secret",
		Role:     domain.RoleUser,
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, statusCode)

	_, statusCode, err = service.Register(ctx, &domain.User{
		Username: "alice",
		Password: "other",
		Role:     domain.RoleUser,
	})
	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, statusCode)
	assert.Equal(t, appErrors.UsernameExist, err.Error())

	count, err := store.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAuthService_Register_PlaintextNeverStored(t *testing.T) {
	service, store, _ := newAuthService()
	ctx := context.Background()

	_, _, err := service.Register(ctx, &domain.User{
		Username: "bob",
		Password: "hunter22",
		Role:     domain.RoleUser,
	})
	assert.NoError(t, err)

	stored, err := store.GetOneUser(ctx, "bob")
	assert.NoError(t, err)
	assert.NotNil(t, stored)
	assert.NotEmpty(t, stored.Password)
	assert.NotEqual(t, "hunter22", stored.Password)
}

func TestAuthService_Register_Validation(t *testing.T) {
	service, _, _ := newAuthService()
	ctx := context.Background()

	_, statusCode, err := service.Register(ctx, &domain.User{Username: "", Password: "p", Role: domain.RoleUser})
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusCode)

	_, statusCode, err = service.Register(ctx, &domain.User{Username: "carol", Password: "", Role: domain.RoleUser})
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusCode)

	_, statusCode, err = service.Register(ctx, &domain.User{Username: "carol", Password: "p", Role: "superuser"})
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusCode)
}

func TestAuthService_Logout_ClearsSession(t *testing.T) {
	service, _, sessions := newAuthService()
	ctx := context.Background()

	_, _, err := service.Register(ctx, &domain.User{
		Username: "dave",
		Password: "secret",
		Role:     domain.RoleUser,
	})
	assert.NoError(t, err)

	token, err := service.Login(ctx, &domain.Credentials{Username: "dave", Password: "secret"})
	assert.NoError(t, err)

	recorded, err := sessions.GetSession(ctx, "dave")
	assert.NoError(t, err)
	assert.Equal(t, token, recorded)

	err = service.Logout(ctx, "dave")
	assert.NoError(t, err)

	_, err = sessions.GetSession(ctx, "dave")
	assert.Error(t, err)
}

func TestAuthService_GetAll_HidesHashes(t *testing.T) {
	service, _, _ := newAuthService()
	ctx := context.Background()

	_, _, err := service.Register(ctx, &domain.User{
		Username: "eve",
		Password: "secret",
		Role:     domain.RoleUser,
	})
	assert.NoError(t, err)

	users, err := service.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Empty(t, users[0].Password)
}
