package domain

import (
	"encoding/json"
	"io"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Username  string             `bson:"username" json:"username" validate:"required,onlyCharAndNum"`
	Password  string             `bson:"password" json:"password,omitempty"`
	Role      UserRole           `bson:"role" json:"role" validate:"required"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

type Destination struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Location    string             `bson:"location" json:"location" validate:"required"`
	Price       float64            `bson:"price" json:"price" validate:"gte=0"`
	Description string             `bson:"description" json:"description"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}

type Booking struct {
	ID              primitive.ObjectID `bson:"_id" json:"-"`
	BookingID       string             `bson:"booking_id" json:"bookingId"`
	Name            string             `bson:"name" json:"name" validate:"required"`
	Email           string             `bson:"email" json:"email" validate:"required"`
	DestinationID   string             `bson:"destination_id" json:"destinationId" validate:"required"`
	DestinationName string             `bson:"destination_name" json:"destinationName"`
	Owner           string             `bson:"user,omitempty" json:"user,omitempty"`
	TravelDate      time.Time          `bson:"travel_date" json:"travelDate"`
	CreatedAt       time.Time          `bson:"created_at" json:"createdAt"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Claims struct {
	Username  string `json:"username" mapstructure:"username"`
	Role      string `json:"role" mapstructure:"role"`
	ExpiresAt int64  `json:"exp" mapstructure:"exp"`
}

// Counts for the admin overview tab.
type Overview struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalDestinations int64 `json:"totalDestinations"`
	TotalBookings     int64 `json:"totalBookings"`
}

func (user *User) Validate() error {
	validate := validator.New()

	err := validate.RegisterValidation("onlyCharAndNum", onlyCharactersAndNumbersField)
	if err != nil {
		return err
	}

	return validate.Struct(user)
}

func (destination *Destination) Validate() error {
	validate := validator.New()
	return validate.Struct(destination)
}

func (booking *Booking) Validate() error {
	validate := validator.New()
	return validate.Struct(booking)
}

// Allows only letters [a-z], numbers [0-9], underscores and hyphens
func onlyCharactersAndNumbersField(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(`^[-_a-zA-Z0-9]+$`)
	return re.MatchString(fl.Field().String())
}

type Users []*User
type Destinations []*Destination
type Bookings []*Booking

func (o *Users) ToJSON(w io.Writer) error {
	e := json.NewEncoder(w)
	return e.Encode(o)
}

func (o *Destinations) ToJSON(w io.Writer) error {
	e := json.NewEncoder(w)
	return e.Encode(o)
}

func (o *Bookings) ToJSON(w io.Writer) error {
	e := json.NewEncoder(w)
	return e.Encode(o)
}

func (user *User) FromJSON(reader io.Reader) error {
	d := json.NewDecoder(reader)
	return d.Decode(user)
}

func (destination *Destination) FromJSON(reader io.Reader) error {
	d := json.NewDecoder(reader)
	return d.Decode(destination)
}

func (booking *Booking) FromJSON(reader io.Reader) error {
	d := json.NewDecoder(reader)
	return d.Decode(booking)
}
