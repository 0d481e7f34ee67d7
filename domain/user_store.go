package domain

import "context"

type UserStore interface {
	Register(ctx context.Context, user *User) error
	GetOneUser(ctx context.Context, username string) (*User, error)
	GetAll(ctx context.Context) ([]*User, error)
	Count(ctx context.Context) (int64, error)
}
