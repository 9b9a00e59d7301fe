package middleware

import (
	"errors"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/workflow-hq/workflow-api/internal/constants"
	apierrors "github.com/workflow-hq/workflow-api/internal/errors"
	"github.com/workflow-hq/workflow-api/internal/models"
	"github.com/workflow-hq/workflow-api/internal/services"
)

// RequireAuth restores the persisted actor reference from the session and
// re-validates it against the account store. A stale reference (account
// removed since login) clears the session and degrades to unauthenticated
// instead of surfacing an error.
func RequireAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		userID, okID := session.Get(constants.ContextKeyUserID).(uint64)
		roleStr, okRole := session.Get(constants.ContextKeyUserRole).(string)
		if !okID || !okRole {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		actor, err := authService.GetActor(models.Role(roleStr), userID)
		if err != nil {
			if errors.Is(err, services.ErrActorNotFound) {
				session.Clear()
				_ = session.Save()
				apierrors.Unauthorized(c, "Session is no longer valid")
			} else {
				apierrors.InternalError(c, "Failed to restore session")
			}
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyActor, actor)
		c.Next()
	}
}

// RequireRole gates a route to the given roles. Must run after RequireAuth.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		for _, role := range roles {
			if actor.Role == role {
				c.Next()
				return
			}
		}

		apierrors.Forbidden(c, "")
		c.Abort()
	}
}

// GetActor retrieves the current actor from context
func GetActor(c *gin.Context) (models.Actor, bool) {
	value, exists := c.Get(constants.ContextKeyActor)
	if !exists {
		return models.Actor{}, false
	}

	actor, ok := value.(models.Actor)
	if !ok || actor.IsZero() {
		return models.Actor{}, false
	}
	return actor, true
}
