package startup

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"booking_service/casbinAuthorization"
	"booking_service/domain"
	"booking_service/handlers"
	application "booking_service/service"
	"booking_service/startup/config"
	store2 "booking_service/store"

	"github.com/casbin/casbin"
	"github.com/go-redis/redis"
	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"
)

type Server struct {
	config *config.Config
	logger *logrus.Logger
}

func NewServer(config *config.Config) *Server {
	return &Server{
		config: config,
		logger: logrus.New(),
	}
}

func (server *Server) Start() {
	tracerProvider := server.initTracerProvider()
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Printf("Error shutting down tracer provider: %v", err)
		}
	}()
	tracer := tracerProvider.Tracer("booking_service")

	mongoClient := server.initMongoClient()
	defer func(mongoClient *mongo.Client, ctx context.Context) {
		err := mongoClient.Disconnect(ctx)
		if err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}(mongoClient, context.Background())

	redisClient := server.initRedisClient()

	userStore := store2.NewUserMongoDBStore(mongoClient, tracer)
	catalogStore := store2.NewCatalogMongoDBStore(mongoClient, tracer)
	bookingStore := store2.NewBookingMongoDBStore(mongoClient, tracer)
	sessionCache := store2.NewSessionRedisCache(redisClient, tracer)

	// The storage boundary is required at boot; a seeding failure is fatal.
	if err := SeedData(context.Background(), userStore, catalogStore); err != nil {
		log.Fatalf("Error seeding initial data: %v", err)
	}

	authService := application.NewAuthService(userStore, sessionCache)
	catalogService := application.NewCatalogService(catalogStore)
	bookingService := application.NewBookingService(bookingStore, catalogStore)

	authHandler := handlers.NewAuthHandler(authService, tracer)
	catalogHandler := handlers.NewCatalogHandler(catalogService, tracer)
	bookingHandler := handlers.NewBookingHandler(bookingService, tracer)
	overviewHandler := handlers.NewOverviewHandler(authService, catalogService, bookingService, tracer)

	server.start(sessionCache, authHandler, catalogHandler, bookingHandler, overviewHandler)
}

func (server *Server) initTracerProvider() *sdktrace.TracerProvider {
	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(server.config.JaegerAddress)))
	if err != nil {
		log.Fatal(err)
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("booking_service"),
		)),
	)
	otel.SetTracerProvider(tracerProvider)
	return tracerProvider
}

func (server *Server) initMongoClient() *mongo.Client {
	client, err := store2.GetClient(server.config.BookingDBURI)
	if err != nil {
		log.Fatal(err)
	}
	return client
}

func (server *Server) initRedisClient() *redis.Client {
	client, err := store2.GetRedisClient(server.config.CacheHost, server.config.CachePort)
	if err != nil {
		log.Fatal(err)
	}
	return client
}

func (server *Server) start(sessions domain.SessionCache, authHandler *handlers.AuthHandler, catalogHandler *handlers.CatalogHandler, bookingHandler *handlers.BookingHandler, overviewHandler *handlers.OverviewHandler) {
	enforcer, err := casbin.NewEnforcerSafe("./rbac_model.conf", "./policy.csv")
	if err != nil {
		log.Fatal(err)
	}

	router := mux.NewRouter()
	router.Use(MiddlewareContentTypeSet)
	router.Use(casbinAuthorization.CasbinMiddleware(enforcer, sessions, server.logger))

	authHandler.Init(router)
	catalogHandler.Init(router)
	bookingHandler.Init(router)
	overviewHandler.Init(router)

	cors := gorillaHandlers.CORS(gorillaHandlers.AllowedOrigins([]string{"*"}))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", server.config.Port),
		Handler: cors(router),
	}

	wait := time.Second * 15
	go func() {
		if err := srv.ListenAndServe(); err != nil {
			log.Println(err)
		}
	}()

	c := make(chan os.Signal, 1)

	signal.Notify(c, os.Interrupt)
	signal.Notify(c, syscall.SIGTERM)

	<-c

	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Error Shutting Down Server %s", err)
	}
	log.Println("Server Gracefully Stopped")
}

func MiddlewareContentTypeSet(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, h *http.Request) {
		rw.Header().Add("Content-Type", "application/json")
		rw.Header().Set("X-Content-Type-Options", "nosniff")
		rw.Header().Set("X-Frame-Options", "DENY")

		next.ServeHTTP(rw, h)
	})
}
