package store

import (
	"context"
	"log"
	"time"

	"booking_service/domain"

	"github.com/go-redis/redis"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Session records live exactly as long as the token they back.
const sessionTTL = 60 * time.Minute

type SessionRedisCache struct {
	client *redis.Client
	tracer trace.Tracer
}

func NewSessionRedisCache(client *redis.Client, tracer trace.Tracer) domain.SessionCache {
	return &SessionRedisCache{
		client: client,
		tracer: tracer,
	}
}

func (cache *SessionRedisCache) PostSession(ctx context.Context, username string, token string) error {
	ctx, span := cache.tracer.Start(ctx, "SessionRedisCache.PostSession")
	defer span.End()

	result := cache.client.Set(sessionKey(username), token, sessionTTL)
	if result.Err() != nil {
		span.SetStatus(codes.Error, "Error posting session record")
		log.Printf("redis set error: %s", result.Err())
		return result.Err()
	}

	return nil
}

func (cache *SessionRedisCache) GetSession(ctx context.Context, username string) (string, error) {
	ctx, span := cache.tracer.Start(ctx, "SessionRedisCache.GetSession")
	defer span.End()

	result := cache.client.Get(sessionKey(username))
	token, err := result.Result()
	if err != nil {
		span.SetStatus(codes.Error, "Error getting session record")
		return "", err
	}
	return token, nil
}

func (cache *SessionRedisCache) DelSession(ctx context.Context, username string) error {
	ctx, span := cache.tracer.Start(ctx, "SessionRedisCache.DelSession")
	defer span.End()

	result := cache.client.Del(sessionKey(username))
	if result.Err() != nil {
		span.SetStatus(codes.Error, "Error deleting session record")
		log.Println(result.Err())
		return result.Err()
	}

	return nil
}

func sessionKey(username string) string {
	return "session:" + username
}
