package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	db "github.com/katatrina/fixfly-BE/internal/db/sqlc"
	"github.com/katatrina/fixfly-BE/internal/razorpay"
	"github.com/rs/zerolog/log"
)

var (
	ErrInternalServer         = errors.New("internal server error")
	ErrInsufficientPermission = errors.New("you do not have permission to perform this action")
	ErrInvalidSignature       = errors.New("payment signature verification failed")
	ErrPaymentGatewayFailed   = errors.New("failed to create payment order")
)

// Response is the envelope every endpoint returns.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

type FieldViolation struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func fieldViolation(field string, err error) *FieldViolation {
	return &FieldViolation{
		Field:       field,
		Description: err.Error(),
	}
}

func successResponse(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

func messageResponse(message string, data interface{}) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func errorResponse(err error) Response {
	return Response{
		Success: false,
		Message: err.Error(),
	}
}

func failedValidationError(violations []*FieldViolation) Response {
	return Response{
		Success: false,
		Message: "Invalid request parameters",
		Error:   violations,
	}
}

// lifecycleErrors are rule violations the client can fix, reported as 400.
var lifecycleErrors = []error{
	db.ErrInvalidTransition,
	db.ErrOrderIDMismatch,
	db.ErrPaymentAlreadyCompleted,
	db.ErrUsageLimitExceeded,
	db.ErrDeviceNotFound,
	db.ErrVendorInactive,
	db.ErrBillingSubmitted,
	db.ErrNothingToPay,
	ErrInvalidSignature,
	razorpay.ErrPaymentNotCaptured,
}

// handleError maps store and lifecycle errors to a status code and writes the response.
// subject names the resource for the 404 message, e.g. "subscription".
func handleError(c *gin.Context, err error, subject string) {
	switch {
	case errors.Is(err, db.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, errorResponse(fmt.Errorf("%s not found", subject)))
		return
	case errors.Is(err, db.ErrVendorNotAssigned):
		c.JSON(http.StatusForbidden, errorResponse(err))
		return
	}

	for _, target := range lifecycleErrors {
		if errors.Is(err, target) {
			c.JSON(http.StatusBadRequest, errorResponse(err))
			return
		}
	}

	log.Err(err).Str("path", c.FullPath()).Msg("unexpected error")
	c.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
}
