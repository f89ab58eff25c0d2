package middleware

import (
	"strings"

	errs "github.com/amirhossein-jamali/sims-ppob/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sims-ppob/internal/domain/port/core"
	"github.com/amirhossein-jamali/sims-ppob/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/api/response"
	"github.com/gin-gonic/gin"
)

// Context keys set by the request gate
const (
	emailKey   = "auth.email"
	userIDKey  = "auth.user_id"
	payloadKey = "request.payload"
)

const bearerPrefix = "Bearer "

// Authenticate requires a valid bearer token and stores the email it was issued for
func Authenticate(tokens coreport.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), bearerPrefix)
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			response.Error(c, errs.ErrInvalidToken)
			return
		}

		email, err := tokens.Verify(token)
		if err != nil {
			response.Error(c, errs.ErrInvalidToken)
			return
		}

		c.Set(emailKey, email)
		c.Next()
	}
}

// ResolveUser maps the authenticated email to its user id.
// Must run after Authenticate.
func ResolveUser(accounts usecase.AccountUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := Email(c)
		if !ok {
			response.Error(c, errs.ErrInvalidToken)
			return
		}

		user, err := accounts.ResolveUser(c.Request.Context(), email)
		if err != nil {
			response.Error(c, err)
			return
		}

		c.Set(userIDKey, user.ID)
		c.Next()
	}
}

// Email returns the identity stored by Authenticate
func Email(c *gin.Context) (string, bool) {
	email := c.GetString(emailKey)
	return email, email != ""
}

// UserID returns the user id stored by ResolveUser
func UserID(c *gin.Context) (uint64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}
