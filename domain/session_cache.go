package domain

import "context"

type SessionCache interface {
	PostSession(ctx context.Context, username string, token string) error
	GetSession(ctx context.Context, username string) (string, error)
	DelSession(ctx context.Context, username string) error
}
