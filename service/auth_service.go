package application

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"booking_service/authorization"
	"booking_service/domain"
	"booking_service/errors"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	store    domain.UserStore
	sessions domain.SessionCache
}

func NewAuthService(store domain.UserStore, sessions domain.SessionCache) *AuthService {
	return &AuthService{
		store:    store,
		sessions: sessions,
	}
}

func validateNewUser(user *domain.User) *errors.ValidationError {
	if user.Username == "" {
		return &errors.ValidationError{Message: "Username cannot be empty"}
	}
	if user.Password == "" {
		return &errors.ValidationError{Message: "Password cannot be empty"}
	}
	if user.Role != domain.RoleUser && user.Role != domain.RoleAdmin {
		return &errors.ValidationError{Message: "Role should be either 'user' or 'admin'"}
	}
	if err := user.Validate(); err != nil {
		return &errors.ValidationError{Message: "Invalid username format. It must contain only letters, numbers, underscores, and hyphens"}
	}
	return nil
}

// Register stores a new credential record with a bcrypt hash of the
// password. The duplicate check here is advisory; the unique index on
// username is what closes the race between concurrent registrations.
func (service *AuthService) Register(ctx context.Context, user *domain.User) (*domain.User, int, error) {
	if err := validateNewUser(user); err != nil {
		return nil, http.StatusBadRequest, err
	}

	existingUser, err := service.store.GetOneUser(ctx, user.Username)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if existingUser != nil {
		return nil, http.StatusConflict, fmt.Errorf(errors.UsernameExist)
	}

	pass := []byte(user.Password)
	hash, err := bcrypt.GenerateFromPassword(pass, bcrypt.DefaultCost)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	user.Password = string(hash)
	user.CreatedAt = time.Now().UTC()

	err = service.store.Register(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, http.StatusConflict, fmt.Errorf(errors.UsernameExist)
		}
		return nil, http.StatusInternalServerError, err
	}

	registered := *user
	registered.Password = ""
	return &registered, http.StatusOK, nil
}

// Login verifies the credentials and on success issues a signed token and
// records the session so it can be invalidated by an explicit logout.
func (service *AuthService) Login(ctx context.Context, credentials *domain.Credentials) (string, error) {
	user, err := service.store.GetOneUser(ctx, credentials.Username)
	if err != nil {
		return "", fmt.Errorf("Error retrieving user: %v", err)
	}

	if user == nil {
		return "", fmt.Errorf(errors.InvalidCredentials)
	}

	passError := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(credentials.Password))
	if passError != nil {
		return "", fmt.Errorf(errors.InvalidCredentials)
	}

	tokenString, err := authorization.GenerateToken(user)
	if err != nil {
		return "", fmt.Errorf(errors.ErrorToken)
	}

	err = service.sessions.PostSession(ctx, user.Username, tokenString)
	if err != nil {
		log.Println("Error recording session:", err)
		return "", err
	}

	return tokenString, nil
}

func (service *AuthService) Logout(ctx context.Context, username string) error {
	return service.sessions.DelSession(ctx, username)
}

func (service *AuthService) GetAll(ctx context.Context) ([]*domain.User, error) {
	users, err := service.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	// Hashes never leave the service layer.
	for _, user := range users {
		user.Password = ""
	}
	return users, nil
}

func (service *AuthService) Count(ctx context.Context) (int64, error) {
	return service.store.Count(ctx)
}
