package application

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"booking_service/domain"
	"booking_service/errors"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

var (
	smtpServer     = os.Getenv("SMTP_SERVER")
	smtpServerPort = 587
	smtpEmail      = os.Getenv("SMTP_AUTH_MAIL")
	smtpPassword   = os.Getenv("SMTP_AUTH_PASSWORD")
)

type BookingService struct {
	store   domain.BookingStore
	catalog domain.CatalogStore
}

func NewBookingService(store domain.BookingStore, catalog domain.CatalogStore) *BookingService {
	return &BookingService{
		store:   store,
		catalog: catalog,
	}
}

// Create stores a booking under a fresh 8-character token. The token is a
// uuid prefix, so a collision is possible in principle; at the expected
// scale the risk is accepted.
func (service *BookingService) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, int, error) {
	if booking.Name == "" {
		return nil, http.StatusBadRequest, &errors.ValidationError{Message: "Full name cannot be empty"}
	}
	if booking.Email == "" {
		return nil, http.StatusBadRequest, &errors.ValidationError{Message: "Email cannot be empty"}
	}
	if booking.DestinationID == "" {
		return nil, http.StatusBadRequest, &errors.ValidationError{Message: "Destination must be chosen"}
	}

	destination, err := service.catalog.GetOne(ctx, booking.DestinationID)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if destination == nil {
		return nil, http.StatusBadRequest, &errors.ValidationError{Message: "Chosen destination does not exist"}
	}

	// The destination name is denormalized onto the booking; there is no
	// referential integrity between the two collections.
	booking.DestinationName = destination.Name
	booking.BookingID = uuid.NewString()[:8]
	booking.CreatedAt = time.Now().UTC()

	err = service.store.Insert(ctx, booking)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	sendConfirmationMail(booking)

	return booking, http.StatusOK, nil
}

// Cancel deletes the booking with the given token. Only the owning
// traveler or an admin may cancel; the source application skipped this
// check, here the gap is closed.
func (service *BookingService) Cancel(ctx context.Context, bookingID string, claims *domain.Claims) (int, error) {
	booking, err := service.store.GetOne(ctx, bookingID)
	if err != nil {
		return http.StatusInternalServerError, err
	}
	if booking == nil {
		return http.StatusNotFound, fmt.Errorf(errors.BookingNotFound)
	}

	if claims.Role != string(domain.RoleAdmin) && booking.Owner != claims.Username {
		return http.StatusForbidden, fmt.Errorf(errors.NotBookingOwner)
	}

	err = service.store.Delete(ctx, bookingID)
	if err != nil {
		if err.Error() == errors.BookingNotFound {
			return http.StatusNotFound, err
		}
		return http.StatusInternalServerError, err
	}

	return http.StatusOK, nil
}

func (service *BookingService) GetByOwner(ctx context.Context, username string) ([]*domain.Booking, error) {
	return service.store.GetByOwner(ctx, username)
}

func (service *BookingService) GetByEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	return service.store.GetByEmail(ctx, email)
}

func (service *BookingService) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	return service.store.GetAll(ctx)
}

func (service *BookingService) Count(ctx context.Context) (int64, error) {
	return service.store.Count(ctx)
}

// Best effort; a booking is confirmed even when the mail cannot go out.
func sendConfirmationMail(booking *domain.Booking) {
	if smtpEmail == "" || smtpServer == "" {
		return
	}

	message := gomail.NewMessage()
	message.SetHeader("From", smtpEmail)
	message.SetHeader("To", booking.Email)
	message.SetHeader("Subject", "Your travel booking is confirmed")

	bodyString := fmt.Sprintf("Booking confirmed! Your booking ID is:\n%s\nDestination: %s\nTravel date: %s",
		booking.BookingID, booking.DestinationName, booking.TravelDate.Format("2006-01-02"))
	message.SetBody("text", bodyString)

	client := gomail.NewDialer(smtpServer, smtpServerPort, smtpEmail, smtpPassword)

	if err := client.DialAndSend(message); err != nil {
		log.Printf("failed to send confirmation mail because of: %s", err)
	}
}
