package middleware

import (
	"context"

	"github.com/SscSPs/erp_accounting/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// actorKey is the key used to store the authenticated actor.
const actorKey = contextKey("actor")

// WithActor returns a copy of ctx carrying the actor.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActorFromCtx retrieves the authenticated actor from a standard context.
func GetActorFromCtx(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	return actor, ok && actor.Valid()
}

// GetActorFromContext retrieves the authenticated actor from the Gin context.
// It returns the actor and a boolean indicating if it was found.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	if actorVal, exists := c.Get(string(actorKey)); exists {
		if actor, ok := actorVal.(domain.Actor); ok && actor.Valid() {
			return actor, true
		}
	}
	return GetActorFromCtx(c.Request.Context())
}
