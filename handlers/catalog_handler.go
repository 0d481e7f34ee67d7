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

type CatalogHandler struct {
	service *application.CatalogService
	tracer  trace.Tracer
}

func NewCatalogHandler(service *application.CatalogService, tracer trace.Tracer) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		tracer:  tracer,
	}
}

func (handler *CatalogHandler) Init(router *mux.Router) {
	router.HandleFunc("/destinations", handler.Create).Methods("POST")
	router.HandleFunc("/destinations", handler.GetAll).Methods("GET")
}

func (handler *CatalogHandler) Create(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "CatalogHandler.Create")
	defer span.End()

	var destination domain.Destination
	err := destination.FromJSON(req.Body)
	if err != nil {
		http.Error(writer, appErrors.InvalidRequestFormatError, http.StatusBadRequest)
		return
	}

	created, err := handler.service.Create(ctx, &destination)
	if err != nil {
		if validationErr, ok := err.(*appErrors.ValidationError); ok {
			http.Error(writer, validationErr.Message, http.StatusBadRequest)
			return
		}
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, appErrors.DatabaseError, http.StatusInternalServerError)
		return
	}

	jsonResponse(created, writer)
}

func (handler *CatalogHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "CatalogHandler.GetAll")
	defer span.End()

	destinations, err := handler.service.GetAll(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	jsonResponse(destinations, writer)
}
