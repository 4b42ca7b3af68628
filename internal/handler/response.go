package handler

import (
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/tiw/gaap-web-service/internal/domain"
)

// ErrorBody is the error response shape. Successful responses return the
// resolved document directly; only failures carry a code.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse maps a domain error to its HTTP status and body
func ErrorResponse(c *app.RequestContext, err error) {
	userMessage := func(err error) string {
		if domainErr, ok := err.(*domain.DomainError); ok {
			return domainErr.UserMessage()
		}
		return "an error occurred"
	}

	switch {
	case domain.IsNotFound(err):
		c.JSON(consts.StatusNotFound, ErrorBody{
			Code:    "NOT_FOUND",
			Message: userMessage(err),
		})
	case domain.IsInvalidInput(err):
		c.JSON(consts.StatusBadRequest, ErrorBody{
			Code:    "INVALID_INPUT",
			Message: userMessage(err),
		})
	default:
		// never expose internal details
		c.JSON(consts.StatusInternalServerError, ErrorBody{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		})
	}
}

// BadRequestResponse returns a bad request response
func BadRequestResponse(c *app.RequestContext, message string) {
	c.JSON(consts.StatusBadRequest, ErrorBody{
		Code:    "BAD_REQUEST",
		Message: message,
	})
}
