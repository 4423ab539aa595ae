// api/middleware.go

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/skillplot/skillplot/token"
)

const (
	authorizationHeaderKey  = "authorization"
	authorizationTypeBearer = "bearer"
	authorizationPayloadKey = "authorization_payload"
)

// authMiddleware checks for a valid JWT in the "Authorization" header.
// On success the decoded claims are stored in Gin's context for handlers;
// otherwise the request is aborted with 401.
func authMiddleware(tokenMaker *token.JWTMaker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authorizationHeader := ctx.GetHeader(authorizationHeaderKey)
		if len(authorizationHeader) == 0 {
			err := errors.New("authorization header is not provided")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(err))
			return
		}

		// Expected format: "Bearer <token>".
		fields := strings.Fields(authorizationHeader)
		if len(fields) < 2 {
			err := errors.New("invalid authorization header format")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(err))
			return
		}

		authType := strings.ToLower(fields[0])
		if authType != authorizationTypeBearer {
			err := fmt.Errorf("unsupported authorization type %s", authType)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(err))
			return
		}

		payload, err := tokenMaker.VerifyToken(fields[1])
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(err))
			return
		}

		ctx.Set(authorizationPayloadKey, payload)
		ctx.Next()
	}
}

// getAuthorizationPayload retrieves the JWT claims stored by authMiddleware.
func getAuthorizationPayload(ctx *gin.Context) (jwt.MapClaims, error) {
	payload, exists := ctx.Get(authorizationPayloadKey)
	if !exists {
		return nil, errors.New("authorization payload not found")
	}

	claims, ok := payload.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid authorization payload type")
	}

	return claims, nil
}

// authUserID extracts the authenticated user's ID from the request context.
// JWT claims decode numbers as float64, so a cast is needed.
func authUserID(ctx *gin.Context) (int64, error) {
	claims, err := getAuthorizationPayload(ctx)
	if err != nil {
		return 0, err
	}

	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, errors.New("user_id claim missing or malformed")
	}

	return int64(id), nil
}
