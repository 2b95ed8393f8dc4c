package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/mealsnap/mealsnap/internal/common"
	"github.com/mealsnap/mealsnap/internal/server/auth"
)

const userIDKey = "userID"

// authRequired gates protected routes. It reads the Authorization header,
// verifies the bearer token, and stores the resolved user id on the gin
// context. All credential failures (missing header, malformed value, bad
// signature, expired token) produce the same 401 body so callers cannot
// probe which part was wrong. Handlers behind this middleware never see an
// unauthenticated request.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		cred, err := auth.ParseAuthorizationHeader(c.GetHeader(common.AuthorizationHeaderName))
		if err != nil {
			unauthorized(c)
			return
		}

		userID, err := auth.GetUserIDFromToken(cred.Token, s.jwtSecret)
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// userIDFromContext returns the identity resolved by authRequired.
func userIDFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
