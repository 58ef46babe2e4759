package utils

import (
	"context"

	"gearguard/internal/authz"
	"gearguard/internal/entities"
	"gearguard/pkg/contextkeys"
	apperrors "gearguard/pkg/errors"
)

// WithActor stores the authenticated caller in the request context.
func WithActor(ctx context.Context, actor authz.Actor) context.Context {
	ctx = context.WithValue(ctx, contextkeys.UserIDKey, actor.ID)
	return context.WithValue(ctx, contextkeys.UserRoleKey, actor.Role)
}

// GetActorFromCtx extracts the caller identity placed there by the auth
// middleware.
func GetActorFromCtx(ctx context.Context) (authz.Actor, error) {
	id, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok || id == 0 {
		return authz.Actor{}, apperrors.ErrActorNotFoundInContext
	}
	role, ok := ctx.Value(contextkeys.UserRoleKey).(entities.Role)
	if !ok {
		return authz.Actor{}, apperrors.ErrActorNotFoundInContext
	}
	return authz.Actor{ID: id, Role: role}, nil
}
