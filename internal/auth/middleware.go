package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/taktix-app/tryout-engine/internal/dto"
)

const userIDKey = "auth.userID"

// Claims is the token payload issued by the account service. Only the
// nested user id matters here.
type Claims struct {
	User struct {
		ID uint `json:"id"`
	} `json:"user"`
	jwt.RegisteredClaims
}

// Middleware validates the Authorization bearer token and stores the
// authenticated user id on the request context.
func Middleware(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Missing Authorization header"})
			return
		}
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authorization header must be a Bearer token"})
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			log.Warn().Err(err).Msg("Rejected invalid bearer token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid or expired token"})
			return
		}
		if claims.User.ID == 0 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Token carries no user id"})
			return
		}

		ctx.Set(userIDKey, claims.User.ID)
		ctx.Next()
	}
}

// UserID returns the authenticated user id set by Middleware. It is zero
// only on routes that skipped the middleware, which is a wiring bug.
func UserID(ctx *gin.Context) uint {
	return ctx.GetUint(userIDKey)
}
