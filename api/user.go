package api

import (
	"context"
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
	"google.golang.org/api/idtoken"
)

type registerUserRequest struct {
	FullName    string  `json:"full_name" binding:"required"`
	Email       string  `json:"email" binding:"required"`
	PhoneNumber *string `json:"phone_number"`
	Password    string  `json:"password" binding:"required"`
}

func (req *registerUserRequest) validate() (violations []*FieldViolation) {
	if err := validator.ValidateFullName(req.FullName); err != nil {
		violations = append(violations, fieldViolation("full_name", err))
	}

	if err := validator.ValidateEmail(req.Email); err != nil {
		violations = append(violations, fieldViolation("email", err))
	}

	if req.PhoneNumber != nil {
		if err := validator.ValidatePhoneNumber(*req.PhoneNumber); err != nil {
			violations = append(violations, fieldViolation("phone_number", err))
		}
	}

	if err := validator.ValidatePassword(req.Password); err != nil {
		violations = append(violations, fieldViolation("password", err))
	}

	return violations
}

type loginUserResponse struct {
	User                 db.User   `json:"user"`
	AccessToken          string    `json:"access_token"`
	AccessTokenExpiresAt time.Time `json:"access_token_expires_at"`
}

//	@Summary		Register a customer account
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		registerUserRequest	true	"Account details"
//	@Success		201		{object}	loginUserResponse
//	@Failure		400		{object}	Response
//	@Failure		409		{object}	Response
//	@Router			/auth/register [post]
func (server *Server) registerUser(ctx *gin.Context) {
	req := new(registerUserRequest)

	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if violations := req.validate(); violations != nil {
		ctx.JSON(http.StatusBadRequest, failedValidationError(violations))
		return
	}

	hashedPassword, err := util.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("failed to hash password")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	user, err := server.dbStore.CreateUser(ctx, db.CreateUserParams{
		FullName:       strings.TrimSpace(req.FullName),
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		HashedPassword: &hashedPassword,
		Role:           db.UserRoleCustomer,
	})
	if err != nil {
		errCode, constraintName := db.ErrorDescription(err)
		if errCode == db.UniqueViolationCode && constraintName == db.UniqueEmailConstraint {
			err = fmt.Errorf("email %s already exists", req.Email)
			ctx.JSON(http.StatusConflict, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to create user")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	resp, err := server.newUserSession(user)
	if err != nil {
		log.Err(err).Msg("failed to create access token")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusCreated, successResponse(resp))
}

func (server *Server) newUserSession(user db.User) (loginUserResponse, error) {
	role := token.RoleCustomer
	if user.Role == db.UserRoleAdmin {
		role = token.RoleAdmin
	}

	accessToken, accessPayload, err := server.tokenMaker.CreateToken(user.ID, role, server.config.AccessTokenDuration)
	if err != nil {
		return loginUserResponse{}, err
	}

	return loginUserResponse{
		User:                 user,
		AccessToken:          accessToken,
		AccessTokenExpiresAt: accessPayload.ExpiresAt.Time,
	}, nil
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

var errIncorrectCredentials = errors.New("incorrect email or password")

//	@Summary		Log in with email and password
//	@Description	Used by both the customer app and the admin console.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		loginRequest	true	"Credentials"
//	@Success		200		{object}	loginUserResponse
//	@Failure		401		{object}	Response
//	@Router			/auth/login [post]
func (server *Server) loginUser(ctx *gin.Context) {
	req := new(loginRequest)

	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	user, err := server.dbStore.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusUnauthorized, errorResponse(errIncorrectCredentials))
			return
		}

		log.Err(err).Msg("failed to find user")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	// Tài khoản tạo qua Google không có mật khẩu
	if user.HashedPassword == nil || util.CheckPassword(req.Password, *user.HashedPassword) != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(errIncorrectCredentials))
		return
	}

	resp, err := server.newUserSession(user)
	if err != nil {
		log.Err(err).Msg("failed to create access token")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, successResponse(resp))
}

type loginUserWithGoogleRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

//	@Summary		Log in with a Google ID token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		loginUserWithGoogleRequest	true	"Google ID token"
//	@Success		200		{object}	loginUserResponse
//	@Failure		401		{object}	Response
//	@Router			/auth/google-login [post]
func (server *Server) loginUserWithGoogle(ctx *gin.Context) {
	req := new(loginUserWithGoogleRequest)

	if err := ctx.ShouldBindJSON(req); err != nil {
		log.Err(err).Msg("failed to bind json")
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	payload, err := server.googleIDTokenValidator.Validate(ctx, req.IDToken, server.config.GoogleClientID)
	if err != nil {
		log.Err(err).Msg("failed to validate google id token")
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	// Check identity
	user, err := server.getOrCreateGoogleUser(ctx, payload)
	if err != nil {
		log.Err(err).Msg("failed to get or create google user")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	resp, err := server.newUserSession(user)
	if err != nil {
		log.Err(err).Msg("failed to create access token")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, successResponse(resp))
}

func (server *Server) getOrCreateGoogleUser(ctx context.Context, payload *idtoken.Payload) (db.User, error) {
	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return db.User{}, errors.New("google account has no email")
	}
	email = strings.ToLower(email)
	googleAccountID := payload.Subject

	user, err := server.dbStore.GetUserByEmail(ctx, email)
	if err == nil {
		if user.GoogleAccountID != nil {
			return user, nil
		}

		// Liên kết tài khoản email có sẵn với Google
		return server.dbStore.LinkGoogleAccount(ctx, db.LinkGoogleAccountParams{
			ID:              user.ID,
			GoogleAccountID: &googleAccountID,
		})
	}

	if !errors.Is(err, db.ErrRecordNotFound) {
		return db.User{}, fmt.Errorf("failed to query user: %w", err)
	}

	// User doesn't exist - create new account
	fullName, _ := payload.Claims["name"].(string)
	if fullName == "" {
		fullName = email
	}

	return server.dbStore.CreateUser(ctx, db.CreateUserParams{
		FullName:        fullName,
		Email:           email,
		GoogleAccountID: &googleAccountID,
		Role:            db.UserRoleCustomer,
	})
}

type listUsersQuery struct {
	Role     *string `form:"role" binding:"omitempty,oneof=customer admin"`
	Page     int32   `form:"page,default=1" binding:"min=1"`
	PageSize int32   `form:"page_size,default=20" binding:"min=1,max=100"`
}

//	@Summary		List users
//	@Tags			admin
//	@Produce		json
//	@Security		accessToken
//	@Param			role		query	string	false	"customer or admin"
//	@Param			page		query	int		false	"Page number"	default(1)
//	@Param			page_size	query	int		false	"Page size"		default(20)
//	@Success		200			{array}	db.User
//	@Router			/admin/users [get]
func (server *Server) listUsers(c *gin.Context) {
	var query listUsersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	arg := db.ListUsersParams{
		Limit:  query.PageSize,
		Offset: (query.Page - 1) * query.PageSize,
	}
	if query.Role != nil {
		arg.Role = db.NullUserRole{UserRole: db.UserRole(*query.Role), Valid: true}
	}

	users, err := server.dbStore.ListUsers(c, arg)
	if err != nil {
		handleError(c, err, "user")
		return
	}

	c.JSON(http.StatusOK, successResponse(users))
}
