package api

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	db "github.com/katatrina/fixfly-BE/internal/db/sqlc"
	"github.com/katatrina/fixfly-BE/internal/token"
	"github.com/rs/zerolog/log"
)

const (
	authorizationHeaderKey  = "Authorization"
	authorizationTypeBearer = "Bearer"
	authorizationPayloadKey = "authPayload"
	adminPayloadKey         = "adminPayload"
	vendorPayloadKey        = "vendorPayload"
)

func parseAuthorizationHeader(tokenMaker token.Maker, authorizationHeader string) (*token.Payload, error) {
	fields := strings.Fields(authorizationHeader)
	if len(fields) != 2 {
		return nil, errors.New("invalid authorization header format")
	}

	authorizationHeaderType := fields[0]
	if authorizationHeaderType != authorizationTypeBearer {
		return nil, errors.New("unsupported authorization header type")
	}

	accessToken := fields[1]
	return tokenMaker.VerifyToken(accessToken)
}

// authMiddleware authenticates the user.
func authMiddleware(tokenMaker token.Maker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authorizationHeader := ctx.GetHeader(authorizationHeaderKey)
		if authorizationHeader == "" {
			err := errors.New("authorization header is not provided")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(err))
			return
		}

		payload, err := parseAuthorizationHeader(tokenMaker, authorizationHeader)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(err))
			return
		}

		ctx.Set(authorizationPayloadKey, payload)
		ctx.Next()
	}
}

// optionalAuthMiddleware sets the payload when a valid token is sent and lets guests through otherwise.
func optionalAuthMiddleware(tokenMaker token.Maker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authorizationHeader := ctx.GetHeader(authorizationHeaderKey)
		if authorizationHeader == "" {
			ctx.Next()
			return
		}

		payload, err := parseAuthorizationHeader(tokenMaker, authorizationHeader)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(err))
			return
		}

		ctx.Set(authorizationPayloadKey, payload)
		ctx.Next()
	}
}

// requiredRole chỉ cho phép các role được liệt kê, dựa trên claim trong token.
func requiredRole(roles ...token.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)
		if !slices.Contains(roles, authPayload.Role) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, errorResponse(ErrInsufficientPermission))
			return
		}

		ctx.Next()
	}
}

// requiredAdminRole re-reads the user so a demoted admin loses access before the token expires.
func requiredAdminRole(dbStore db.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)
		if authPayload.Role != token.RoleAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, errorResponse(ErrInsufficientPermission))
			return
		}

		user, err := dbStore.GetUserByID(ctx, authPayload.Subject)
		if err != nil {
			if errors.Is(err, db.ErrRecordNotFound) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(errors.New("account not found")))
				return
			}

			log.Err(err).Msg("failed to get admin")
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
			return
		}

		if user.Role != db.UserRoleAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, errorResponse(ErrInsufficientPermission))
			return
		}

		ctx.Set(adminPayloadKey, &user)
		ctx.Next()
	}
}

func requiredVendorRole(dbStore db.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)
		if authPayload.Role != token.RoleVendor {
			ctx.AbortWithStatusJSON(http.StatusForbidden, errorResponse(ErrInsufficientPermission))
			return
		}

		vendor, err := dbStore.GetVendorByID(ctx, authPayload.Subject)
		if err != nil {
			if errors.Is(err, db.ErrRecordNotFound) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(errors.New("vendor account not found")))
				return
			}

			log.Err(err).Msg("failed to get vendor")
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
			return
		}

		if !vendor.IsActive {
			ctx.AbortWithStatusJSON(http.StatusForbidden, errorResponse(db.ErrVendorInactive))
			return
		}

		ctx.Set(vendorPayloadKey, &vendor)
		ctx.Next()
	}
}
