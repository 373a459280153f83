package middleware

import (
	"context"

	userdomain "testtrack/internal/domain/user"
)

type contextKey int

const userKey contextKey = iota

func WithUser(ctx context.Context, user *userdomain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func UserFromContext(ctx context.Context) (*userdomain.User, bool) {
	user, ok := ctx.Value(userKey).(*userdomain.User)
	if !ok || user == nil || user.ID == "" {
		return nil, false
	}
	return user, true
}
