package store

import (
	"context"
	"errors"
	"log"

	"booking_service/domain"
	appErrors "booking_service/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/trace"
)

const BOOKINGS_COLLECTION = "bookings"

type BookingMongoDBStore struct {
	bookings *mongo.Collection
	tracer   trace.Tracer
}

func NewBookingMongoDBStore(client *mongo.Client, tracer trace.Tracer) domain.BookingStore {
	bookings := client.Database(DATABASE).Collection(BOOKINGS_COLLECTION)
	return &BookingMongoDBStore{
		bookings: bookings,
		tracer:   tracer,
	}
}

func (store *BookingMongoDBStore) Insert(ctx context.Context, booking *domain.Booking) error {
	ctx, span := store.tracer.Start(ctx, "BookingStore.Insert")
	defer span.End()

	booking.ID = primitive.NewObjectID()
	result, err := store.bookings.InsertOne(ctx, booking)
	if err != nil {
		return err
	}
	booking.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (store *BookingMongoDBStore) GetOne(ctx context.Context, bookingID string) (*domain.Booking, error) {
	ctx, span := store.tracer.Start(ctx, "BookingStore.GetOne")
	defer span.End()

	filter := bson.M{"booking_id": bookingID}
	return store.filterOne(filter)
}

func (store *BookingMongoDBStore) GetByOwner(ctx context.Context, username string) ([]*domain.Booking, error) {
	ctx, span := store.tracer.Start(ctx, "BookingStore.GetByOwner")
	defer span.End()

	filter := bson.M{"user": username}
	return store.filter(filter)
}

func (store *BookingMongoDBStore) GetByEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	ctx, span := store.tracer.Start(ctx, "BookingStore.GetByEmail")
	defer span.End()

	filter := bson.M{"email": email}
	return store.filter(filter)
}

func (store *BookingMongoDBStore) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	ctx, span := store.tracer.Start(ctx, "BookingStore.GetAll")
	defer span.End()

	filter := bson.D{{}}
	return store.filter(filter)
}

func (store *BookingMongoDBStore) Delete(ctx context.Context, bookingID string) error {
	ctx, span := store.tracer.Start(ctx, "BookingStore.Delete")
	defer span.End()

	filter := bson.M{"booking_id": bookingID}
	result, err := store.bookings.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return errors.New(appErrors.BookingNotFound)
	}

	return nil
}

func (store *BookingMongoDBStore) Count(ctx context.Context) (int64, error) {
	ctx, span := store.tracer.Start(ctx, "BookingStore.Count")
	defer span.End()

	return store.bookings.CountDocuments(ctx, bson.D{{}})
}

func (store *BookingMongoDBStore) filter(filter interface{}) ([]*domain.Booking, error) {
	cursor, err := store.bookings.Find(context.TODO(), filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.TODO())

	return decodeBookings(cursor)
}

func (store *BookingMongoDBStore) filterOne(filter interface{}) (*domain.Booking, error) {
	result := store.bookings.FindOne(context.TODO(), filter)

	var booking domain.Booking
	if err := result.Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		log.Println("Error decoding booking:", err)
		return nil, err
	}

	return &booking, nil
}

func decodeBookings(cursor *mongo.Cursor) (bookings []*domain.Booking, err error) {
	for cursor.Next(context.TODO()) {
		var booking domain.Booking
		err = cursor.Decode(&booking)
		if err != nil {
			return
		}
		bookings = append(bookings, &booking)
	}
	err = cursor.Err()
	return
}
