package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	db "github.com/katatrina/fixfly-BE/internal/db/sqlc"
	"github.com/katatrina/fixfly-BE/internal/token"
	"github.com/rs/zerolog/log"
)

type verifyAccessTokenRequest struct {
	AccessToken string `json:"access_token" binding:"required"`
}

type verifyAccessTokenResponse struct {
	Role   token.Role `json:"role"`
	User   *db.User   `json:"user,omitempty"`
	Vendor *db.Vendor `json:"vendor,omitempty"`
}

//	@Summary		Verify an access token
//	@Description	Returns the account the token belongs to.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		verifyAccessTokenRequest	true	"Access token"
//	@Success		200		{object}	verifyAccessTokenResponse
//	@Failure		401		{object}	Response
//	@Router			/tokens/verify [post]
func (server *Server) verifyAccessToken(c *gin.Context) {
	req := new(verifyAccessTokenRequest)

	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	claims, err := server.tokenMaker.VerifyToken(req.AccessToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	resp := verifyAccessTokenResponse{Role: claims.Role}

	if claims.Role == token.RoleVendor {
		vendor, err := server.dbStore.GetVendorByID(c, claims.Subject)
		if err != nil {
			if errors.Is(err, db.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, errorResponse(token.ErrInvalidToken))
				return
			}

			log.Err(err).Msg("failed to get vendor")
			c.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
			return
		}

		resp.Vendor = &vendor
		c.JSON(http.StatusOK, successResponse(resp))
		return
	}

	user, err := server.dbStore.GetUserByID(c, claims.Subject)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, errorResponse(token.ErrInvalidToken))
			return
		}

		log.Err(err).Msg("failed to get user")
		c.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	resp.User = &user
	c.JSON(http.StatusOK, successResponse(resp))
}
