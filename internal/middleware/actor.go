package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	actorHeader = "X-Acting-User"
	actorKey    = "acting_user"

	// DefaultActor is recorded when no identity header is sent. Role
	// handling in this panel is cosmetic; the value is an opaque label,
	// not an authenticated principal.
	DefaultActor = "Admin"
)

// Actor captures the acting-user label for attribution on attendance
// records and audit logs.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := strings.TrimSpace(c.GetHeader(actorHeader))
		if actor == "" {
			actor = DefaultActor
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

// ActorValue returns the acting-user label stored in the context.
func ActorValue(c *gin.Context) string {
	if v, exists := c.Get(actorKey); exists {
		if actor, ok := v.(string); ok && actor != "" {
			return actor
		}
	}
	return DefaultActor
}
