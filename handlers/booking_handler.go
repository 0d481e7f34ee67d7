package handlers

import (
	"net/http"

	"booking_service/domain"
	appErrors "booking_service/errors"
	application "booking_service/service"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type BookingHandler struct {
	service *application.BookingService
	tracer  trace.Tracer
}

func NewBookingHandler(service *application.BookingService, tracer trace.Tracer) *BookingHandler {
	return &BookingHandler{
		service: service,
		tracer:  tracer,
	}
}

func (handler *BookingHandler) Init(router *mux.Router) {
	router.HandleFunc("/bookings", handler.Create).Methods("POST")
	router.HandleFunc("/bookings", handler.GetAll).Methods("GET")
	router.HandleFunc("/bookings/my", handler.GetMine).Methods("GET")
	router.HandleFunc("/bookings/email/{email}", handler.GetByEmail).Methods("GET")
	router.HandleFunc("/bookings/{bookingId}", handler.Cancel).Methods("DELETE")
}

func (handler *BookingHandler) Create(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.Create")
	defer span.End()

	var booking domain.Booking
	err := booking.FromJSON(req.Body)
	if err != nil {
		http.Error(writer, appErrors.InvalidRequestFormatError, http.StatusBadRequest)
		return
	}

	// The booking is always owned by the logged-in traveler, never by a
	// username supplied in the payload.
	claims := claimsFromRequest(req)
	if claims != nil {
		booking.Owner = claims.Username
	}

	created, statusCode, err := handler.service.Create(ctx, &booking)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), statusCode)
		return
	}

	jsonResponse(created, writer)
}

func (handler *BookingHandler) GetMine(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.GetMine")
	defer span.End()

	claims := claimsFromRequest(req)
	if claims == nil {
		http.Error(writer, "unauthorized", http.StatusUnauthorized)
		return
	}

	bookings, err := handler.service.GetByOwner(ctx, claims.Username)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	jsonResponse(bookings, writer)
}

func (handler *BookingHandler) GetByEmail(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.GetByEmail")
	defer span.End()

	vars := mux.Vars(req)
	email := vars["email"]

	bookings, err := handler.service.GetByEmail(ctx, email)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	jsonResponse(bookings, writer)
}

func (handler *BookingHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.GetAll")
	defer span.End()

	bookings, err := handler.service.GetAll(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	jsonResponse(bookings, writer)
}

func (handler *BookingHandler) Cancel(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.Cancel")
	defer span.End()

	claims := claimsFromRequest(req)
	if claims == nil {
		http.Error(writer, "unauthorized", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(req)
	bookingID := vars["bookingId"]

	statusCode, err := handler.service.Cancel(ctx, bookingID, claims)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), statusCode)
		return
	}

	writer.WriteHeader(http.StatusOK)
}
