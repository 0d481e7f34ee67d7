package errors

const (
	UsernameExist             = "Username already exists"
	InvalidCredentials        = "Invalid username or password"
	BookingNotFound           = "Booking not found"
	NotBookingOwner           = "Booking belongs to another user"
	DatabaseError             = "Database error"
	InvalidRequestFormatError = "Invalid request format"
	ErrorToken                = "Error generating token"
)

type ValidationError struct {
	Message string `json:"message"`
}

func (v *ValidationError) Error() string {
	return v.Message
}
