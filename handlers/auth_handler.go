package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"booking_service/domain"
	"booking_service/errors"
	application "booking_service/service"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type AuthHandler struct {
	service *application.AuthService
	tracer  trace.Tracer
}

func NewAuthHandler(service *application.AuthService, tracer trace.Tracer) *AuthHandler {
	return &AuthHandler{
		service: service,
		tracer:  tracer,
	}
}

func (handler *AuthHandler) Init(router *mux.Router) {
	router.HandleFunc("/login", handler.Login).Methods("POST")
	router.HandleFunc("/logout", handler.Logout).Methods("POST")
	router.HandleFunc("/users", handler.Register).Methods("POST")
	router.HandleFunc("/users", handler.GetAll).Methods("GET")
}

func (handler *AuthHandler) Login(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "AuthHandler.Login")
	defer span.End()

	var request domain.Credentials
	err := json.NewDecoder(req.Body).Decode(&request)
	if err != nil {
		http.Error(writer, errors.InvalidRequestFormatError, http.StatusBadRequest)
		return
	}

	token, err := handler.service.Login(ctx, &request)
	if err != nil {
		if err.Error() == errors.InvalidCredentials {
			span.SetStatus(codes.Error, err.Error())
			http.Error(writer, err.Error(), http.StatusUnauthorized)
			return
		}
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}

	writer.Write([]byte(token))
}

func (handler *AuthHandler) Logout(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "AuthHandler.Logout")
	defer span.End()

	claims := claimsFromRequest(req)
	if claims == nil {
		http.Error(writer, "unauthorized", http.StatusUnauthorized)
		return
	}

	err := handler.service.Logout(ctx, claims.Username)
	if err != nil {
		log.Println(err)
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, errors.DatabaseError, http.StatusInternalServerError)
		return
	}

	writer.WriteHeader(http.StatusOK)
}

func (handler *AuthHandler) Register(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "AuthHandler.Register")
	defer span.End()

	var user domain.User
	err := user.FromJSON(req.Body)
	if err != nil {
		http.Error(writer, errors.InvalidRequestFormatError, http.StatusBadRequest)
		return
	}

	registered, statusCode, err := handler.service.Register(ctx, &user)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), statusCode)
		return
	}

	jsonResponse(registered, writer)
}

func (handler *AuthHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "AuthHandler.GetAll")
	defer span.End()

	users, err := handler.service.GetAll(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	jsonResponse(users, writer)
}
