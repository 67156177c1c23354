package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthOption tunes how AuthMiddleware verifies tokens.
type AuthOption func(*[]jwt.ParserOption)

// WithIssuer rejects tokens whose iss claim differs. An empty issuer is ignored.
func WithIssuer(issuer string) AuthOption {
	return func(opts *[]jwt.ParserOption) {
		if issuer != "" {
			*opts = append(*opts, jwt.WithIssuer(issuer))
		}
	}
}

// AuthMiddleware verifies HS256 bearer tokens and puts the subject into the request context
// as the user ID. Tokens are minted elsewhere; this service only checks them.
func AuthMiddleware(jwtSecret string, options ...AuthOption) gin.HandlerFunc {
	parserOpts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	for _, opt := range options {
		opt(&parserOpts)
	}
	parser := jwt.NewParser(parserOpts...)
	key := []byte(jwtSecret)

	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		raw, msg := bearerToken(c.GetHeader("Authorization"))
		if msg != "" {
			logger.Warn("Rejected authorization header", slog.String("reason", msg))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		claims := &jwt.RegisteredClaims{}
		if _, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) { return key, nil }); err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": tokenErrorMessage(err)})
			return
		}

		if claims.Subject == "" {
			logger.Error("User ID (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		ctx := WithUserID(c.Request.Context(), claims.Subject)
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", claims.Subject)))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// bearerToken extracts the token from an Authorization header, or returns the client-facing
// reason it could not.
func bearerToken(header string) (string, string) {
	if header == "" {
		return "", "Authorization header required"
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", "Authorization header format must be Bearer {token}"
	}
	return parts[1], ""
}

func tokenErrorMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "Token has expired"
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return "Token not valid yet"
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return "Token issuer not accepted"
	default:
		return "Invalid token"
	}
}
