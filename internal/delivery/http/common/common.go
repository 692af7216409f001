package http_common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/humanbelnik/movienight/internal/model"
)

const (
	CodeValidation      = "validation_error"
	CodeUnauthenticated = "not_authenticated"
	CodeForbidden       = "forbidden"
	CodeNotFound        = "not_found"
	CodeInvalidToken    = "invalid_token"
	CodeExternalService = "external_service_error"
	CodeRateLimited     = "rate_limited"
	CodeInternal        = "internal_error"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// ErrorFor maps a domain error onto a status and a stable error code.
// Anything unrecognized is reported as internal without leaking details.
func ErrorFor(err error) (int, ErrorResponse) {
	var fe *model.FieldError
	switch {
	case errors.As(err, &fe):
		return http.StatusBadRequest, ErrorResponse{Code: CodeValidation, Message: fe.Message, Field: fe.Field}
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest, ErrorResponse{Code: CodeValidation, Message: err.Error()}
	case errors.Is(err, model.ErrUnauthenticated):
		return http.StatusUnauthorized, ErrorResponse{Code: CodeUnauthenticated, Message: "authentication required"}
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden, ErrorResponse{Code: CodeForbidden, Message: "not allowed"}
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{Code: CodeNotFound, Message: "not found"}
	case errors.Is(err, model.ErrInvalidToken):
		return http.StatusBadRequest, ErrorResponse{Code: CodeInvalidToken, Message: "invalid or expired token"}
	case errors.Is(err, model.ErrExternalService):
		return http.StatusBadGateway, ErrorResponse{Code: CodeExternalService, Message: "movie database unavailable"}
	}
	return http.StatusInternalServerError, ErrorResponse{Code: CodeInternal, Message: "internal error"}
}

func Abort(ctx *gin.Context, err error) int {
	status, body := ErrorFor(err)
	ctx.AbortWithStatusJSON(status, body)
	return status
}

func BadRequest(ctx *gin.Context, field, message string) {
	ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Code:    CodeValidation,
		Message: message,
		Field:   field,
	})
}
