package auth

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	// UserIDKey carries the resolved user id on the request context.
	UserIDKey contextKey = "user_id"
	// UserRoleKey carries the resolved user role on the request context.
	UserRoleKey contextKey = "user_role"
)

// UserResolver resolves a user id to its role. Implemented by the identity
// service.
type UserResolver interface {
	ResolveRole(ctx context.Context, userID string) (string, error)
}

// UserResolverFunc is a function adapter for UserResolver.
type UserResolverFunc func(ctx context.Context, userID string) (string, error)

func (f UserResolverFunc) ResolveRole(ctx context.Context, userID string) (string, error) {
	return f(ctx, userID)
}

// Identity returns middleware that resolves a Bearer session token into the
// requesting user's id and role and attaches them to the request context
// for logging and auditing. Every endpoint stays open: requests without a
// token, or with an unresolvable one, proceed anonymously.
func Identity(resolver UserResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				return next(c)
			}
			userID, ok := UserID(strings.TrimSpace(token))
			if !ok {
				return next(c)
			}

			ctx := c.Request().Context()
			ctx = context.WithValue(ctx, UserIDKey, userID)
			if role, err := resolver.ResolveRole(ctx, userID); err == nil {
				ctx = context.WithValue(ctx, UserRoleKey, role)
			}
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(UserIDKey).(string)
	return id
}

func RoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(UserRoleKey).(string)
	return role
}
