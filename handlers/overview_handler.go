package handlers

import (
	"net/http"

	"booking_service/domain"
	application "booking_service/service"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// OverviewHandler serves the counts shown on the admin dashboard.
type OverviewHandler struct {
	authService    *application.AuthService
	catalogService *application.CatalogService
	bookingService *application.BookingService
	tracer         trace.Tracer
}

func NewOverviewHandler(authService *application.AuthService, catalogService *application.CatalogService, bookingService *application.BookingService, tracer trace.Tracer) *OverviewHandler {
	return &OverviewHandler{
		authService:    authService,
		catalogService: catalogService,
		bookingService: bookingService,
		tracer:         tracer,
	}
}

func (handler *OverviewHandler) Init(router *mux.Router) {
	router.HandleFunc("/overview", handler.Get).Methods("GET")
}

func (handler *OverviewHandler) Get(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "OverviewHandler.Get")
	defer span.End()

	totalUsers, err := handler.authService.Count(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	totalDestinations, err := handler.catalogService.Count(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	totalBookings, err := handler.bookingService.Count(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	overview := domain.Overview{
		TotalUsers:        totalUsers,
		TotalDestinations: totalDestinations,
		TotalBookings:     totalBookings,
	}

	jsonResponse(overview, writer)
}
