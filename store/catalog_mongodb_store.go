package store

import (
	"context"
	"log"

	"booking_service/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/trace"
)

const DESTINATIONS_COLLECTION = "destinations"

type CatalogMongoDBStore struct {
	destinations *mongo.Collection
	tracer       trace.Tracer
}

func NewCatalogMongoDBStore(client *mongo.Client, tracer trace.Tracer) domain.CatalogStore {
	destinations := client.Database(DATABASE).Collection(DESTINATIONS_COLLECTION)
	return &CatalogMongoDBStore{
		destinations: destinations,
		tracer:       tracer,
	}
}

func (store *CatalogMongoDBStore) Insert(ctx context.Context, destination *domain.Destination) error {
	ctx, span := store.tracer.Start(ctx, "CatalogStore.Insert")
	defer span.End()

	destination.ID = primitive.NewObjectID()
	result, err := store.destinations.InsertOne(ctx, destination)
	if err != nil {
		return err
	}
	destination.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (store *CatalogMongoDBStore) InsertMany(ctx context.Context, destinations []*domain.Destination) error {
	ctx, span := store.tracer.Start(ctx, "CatalogStore.InsertMany")
	defer span.End()

	documents := make([]interface{}, 0, len(destinations))
	for _, destination := range destinations {
		destination.ID = primitive.NewObjectID()
		documents = append(documents, destination)
	}

	_, err := store.destinations.InsertMany(ctx, documents)
	return err
}

func (store *CatalogMongoDBStore) GetOne(ctx context.Context, id string) (*domain.Destination, error) {
	ctx, span := store.tracer.Start(ctx, "CatalogStore.GetOne")
	defer span.End()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	result := store.destinations.FindOne(ctx, bson.M{"_id": objectID})

	var destination domain.Destination
	if err := result.Decode(&destination); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		log.Println("Error decoding destination:", err)
		return nil, err
	}

	return &destination, nil
}

func (store *CatalogMongoDBStore) GetAll(ctx context.Context) ([]*domain.Destination, error) {
	ctx, span := store.tracer.Start(ctx, "CatalogStore.GetAll")
	defer span.End()

	filter := bson.D{{}}
	return store.filter(filter)
}

func (store *CatalogMongoDBStore) Count(ctx context.Context) (int64, error) {
	ctx, span := store.tracer.Start(ctx, "CatalogStore.Count")
	defer span.End()

	return store.destinations.CountDocuments(ctx, bson.D{{}})
}

func (store *CatalogMongoDBStore) filter(filter interface{}) ([]*domain.Destination, error) {
	cursor, err := store.destinations.Find(context.TODO(), filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.TODO())

	return decodeDestinations(cursor)
}

func decodeDestinations(cursor *mongo.Cursor) (destinations []*domain.Destination, err error) {
	for cursor.Next(context.TODO()) {
		var destination domain.Destination
		err = cursor.Decode(&destination)
		if err != nil {
			log.Println("Error decoding destination:", err)
			return
		}
		destinations = append(destinations, &destination)
	}
	err = cursor.Err()
	return
}
