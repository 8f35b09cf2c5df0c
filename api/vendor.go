package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	db "github.com/katatrina/fixfly-BE/internal/db/sqlc"
	"github.com/katatrina/fixfly-BE/internal/token"
	"github.com/katatrina/fixfly-BE/internal/util"
	"github.com/katatrina/fixfly-BE/internal/validator"
	"github.com/rs/zerolog/log"
)

type loginVendorResponse struct {
	Vendor               db.Vendor `json:"vendor"`
	AccessToken          string    `json:"access_token"`
	AccessTokenExpiresAt time.Time `json:"access_token_expires_at"`
}

//	@Summary		Vendor console login
//	@Tags			vendors
//	@Accept			json
//	@Produce		json
//	@Param			request	body		loginRequest	true	"Credentials"
//	@Success		200		{object}	loginVendorResponse
//	@Failure		401		{object}	Response
//	@Failure		403		{object}	Response
//	@Router			/vendors/auth/login [post]
func (server *Server) loginVendor(ctx *gin.Context) {
	req := new(loginRequest)

	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	vendor, err := server.dbStore.GetVendorByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusUnauthorized, errorResponse(errIncorrectCredentials))
			return
		}

		log.Err(err).Msg("failed to find vendor")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	if err = util.CheckPassword(req.Password, vendor.HashedPassword); err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(errIncorrectCredentials))
		return
	}

	if !vendor.IsActive {
		ctx.JSON(http.StatusForbidden, errorResponse(db.ErrVendorInactive))
		return
	}

	accessToken, accessPayload, err := server.tokenMaker.CreateToken(vendor.ID, token.RoleVendor, server.config.AccessTokenDuration)
	if err != nil {
		log.Err(err).Msg("failed to create access token")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, successResponse(loginVendorResponse{
		Vendor:               vendor,
		AccessToken:          accessToken,
		AccessTokenExpiresAt: accessPayload.ExpiresAt.Time,
	}))
}

//	@Summary		Get the signed-in vendor
//	@Tags			vendors
//	@Produce		json
//	@Security		accessToken
//	@Success		200	{object}	db.Vendor
//	@Router			/vendor/profile [get]
func (server *Server) getVendorProfile(c *gin.Context) {
	vendor := c.MustGet(vendorPayloadKey).(*db.Vendor)
	c.JSON(http.StatusOK, successResponse(vendor))
}

type listVendorsQuery struct {
	IsActive *bool `form:"is_active"`
}

//	@Summary		List vendors
//	@Tags			admin
//	@Produce		json
//	@Security		accessToken
//	@Param			is_active	query	bool	false	"Filter by active flag"
//	@Success		200			{array}	db.Vendor
//	@Router			/admin/vendors [get]
func (server *Server) listVendors(c *gin.Context) {
	var query listVendorsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	vendors, err := server.dbStore.ListVendors(c, query.IsActive)
	if err != nil {
		handleError(c, err, "vendor")
		return
	}

	c.JSON(http.StatusOK, successResponse(vendors))
}

type createVendorRequest struct {
	FullName    string   `json:"full_name" binding:"required"`
	Email       string   `json:"email" binding:"required"`
	PhoneNumber string   `json:"phone_number" binding:"required"`
	Password    string   `json:"password" binding:"required"`
	City        string   `json:"city" binding:"required"`
	Skills      []string `json:"skills"`
}

func (req *createVendorRequest) validate() (violations []*FieldViolation) {
	if err := validator.ValidateFullName(req.FullName); err != nil {
		violations = append(violations, fieldViolation("full_name", err))
	}

	if err := validator.ValidateEmail(req.Email); err != nil {
		violations = append(violations, fieldViolation("email", err))
	}

	if err := validator.ValidatePhoneNumber(req.PhoneNumber); err != nil {
		violations = append(violations, fieldViolation("phone_number", err))
	}

	if err := validator.ValidatePassword(req.Password); err != nil {
		violations = append(violations, fieldViolation("password", err))
	}

	return violations
}

//	@Summary		Create a vendor account
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			request	body		createVendorRequest	true	"Vendor details"
//	@Success		201		{object}	db.Vendor
//	@Failure		409		{object}	Response
//	@Router			/admin/vendors [post]
func (server *Server) createVendor(c *gin.Context) {
	var req createVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if violations := req.validate(); violations != nil {
		c.JSON(http.StatusBadRequest, failedValidationError(violations))
		return
	}

	hashedPassword, err := util.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("failed to hash password")
		c.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}

	vendor, err := server.dbStore.CreateVendor(c, db.CreateVendorParams{
		FullName:       strings.TrimSpace(req.FullName),
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		HashedPassword: hashedPassword,
		City:           req.City,
		Skills:         skills,
	})
	if err != nil {
		errCode, constraintName := db.ErrorDescription(err)
		if errCode == db.UniqueViolationCode && constraintName == db.UniqueVendorEmailConstraint {
			c.JSON(http.StatusConflict, errorResponse(fmt.Errorf("vendor email %s already exists", req.Email)))
			return
		}

		handleError(c, err, "vendor")
		return
	}

	c.JSON(http.StatusCreated, successResponse(vendor))
}

type updateVendorRequest struct {
	FullName    *string  `json:"full_name"`
	PhoneNumber *string  `json:"phone_number"`
	City        *string  `json:"city"`
	Skills      []string `json:"skills"`
	IsActive    *bool    `json:"is_active"`
}

//	@Summary		Update a vendor
//	@Description	Deactivating a vendor keeps their bookings but blocks new assignments and console access.
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			id		path		string				true	"Vendor ID"
//	@Param			request	body		updateVendorRequest	true	"Fields to update"
//	@Success		200		{object}	db.Vendor
//	@Router			/admin/vendors/{id} [patch]
func (server *Server) updateVendor(c *gin.Context) {
	var req updateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if req.PhoneNumber != nil {
		if err := validator.ValidatePhoneNumber(*req.PhoneNumber); err != nil {
			c.JSON(http.StatusBadRequest, failedValidationError([]*FieldViolation{fieldViolation("phone_number", err)}))
			return
		}
	}

	vendor, err := server.dbStore.UpdateVendor(c, db.UpdateVendorParams{
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		City:        req.City,
		Skills:      req.Skills,
		IsActive:    req.IsActive,
		ID:          c.Param("id"),
	})
	if err != nil {
		handleError(c, err, "vendor")
		return
	}

	c.JSON(http.StatusOK, successResponse(vendor))
}
