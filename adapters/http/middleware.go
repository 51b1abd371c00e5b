package http

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/account"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/auth"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"go.uber.org/zap"
)

const (
	ginContextKeyAccount = "currentAccount"
	ginContextKeyToken   = "accessToken"
)

// ErrorMiddleware turns errors attached via c.Error into the error envelope.
// Internal details are echoed only outside production.
func ErrorMiddleware(log logger.Logger, isProduction bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		status := apperror.ToHTTPStatus(err)
		message := "Internal server error"
		details := ""

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			message = appErr.Message
			details = appErr.Details
		}

		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		}
		if status >= 500 {
			log.Error("Request failed", err, fields...)
		} else {
			log.Warn("Request rejected", append(fields, zap.Error(err))...)
		}

		body := gin.H{"status": "error", "message": message}
		if details != "" && !isProduction {
			body["details"] = details
		}
		c.JSON(status, body)
	}
}

// AuthMiddleware authenticates the bearer token and loads the account behind
// it. The three failure messages are deliberate: callers can tell a missing
// credential from an expired one, but forged, revoked and orphaned tokens all
// read the same.
func AuthMiddleware(jwtSvc *auth.JWTService, accounts account.Repository, sessions service.SessionStore, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || tokenString == authHeader {
			abortUnauthorized(c, "Authentication required")
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				abortUnauthorized(c, "Token expired")
				return
			}
			abortUnauthorized(c, "Invalid token")
			return
		}

		revoked, err := sessions.IsRevoked(c.Request.Context(), tokenString)
		if err != nil {
			log.Error("Session store lookup failed", err)
			c.Error(apperror.NewInternal("session store unavailable", err))
			c.Abort()
			return
		}
		if revoked {
			abortUnauthorized(c, "Invalid token")
			return
		}

		acc, err := accounts.FindByID(c.Request.Context(), claims.AccountID)
		if err != nil {
			// Only a missing account reads as a bad credential. A store
			// fault is a server problem and must not masquerade as one.
			if !errors.Is(err, apperror.ErrNotFound) {
				log.Error("Account lookup failed", err)
				c.Error(apperror.NewInternal("account store unavailable", err))
				c.Abort()
				return
			}
			abortUnauthorized(c, "Invalid token")
			return
		}
		if !acc.IsActive {
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set(ginContextKeyAccount, acc)
		c.Set(ginContextKeyToken, tokenString)
		c.Next()
	}
}

// AdminMiddleware gates mutating routes. It fails safe: a missing account in
// context is a wiring bug reported as an internal error, never a pass-through.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		acc, ok := GetAccountFromGinContext(c)
		if !ok {
			c.Error(apperror.NewInternal("account missing from context, is AuthMiddleware installed?", nil))
			c.Abort()
			return
		}
		if !acc.IsAdmin() {
			c.Error(apperror.NewPermissionDenied("account role is not admin"))
			c.Abort()
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.Error(apperror.NewUnauthorized(message, nil))
	c.Abort()
}

func GetAccountFromGinContext(c *gin.Context) (*account.Account, bool) {
	v, ok := c.Get(ginContextKeyAccount)
	if !ok {
		return nil, false
	}
	acc, ok := v.(*account.Account)
	return acc, ok
}

func getTokenFromGinContext(c *gin.Context) (string, bool) {
	token, ok := c.Get(ginContextKeyToken)
	if !ok {
		return "", false
	}
	s, ok := token.(string)
	return s, ok
}
