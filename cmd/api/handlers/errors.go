package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jessster/cmd/api/dto"
	"jessster/gateway"
	"jessster/logger"
	"jessster/trace"
)

// statusFor maps a gateway error onto the facade's HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, gateway.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, gateway.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, gateway.ErrUnexpectedStatus):
		code := gateway.StatusCode(err)
		if code >= 400 && code < 500 {
			return code
		}
		return http.StatusBadGateway
	case errors.Is(err, gateway.ErrTransport),
		errors.Is(err, gateway.ErrNoResponseBody),
		errors.Is(err, gateway.ErrDecode):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	body := dto.ErrorResponseDTO{Error: err.Error()}

	var ge *gateway.Error
	if errors.As(err, &ge) {
		body.Error = ge.Kind.Error()
		body.Upstream = ge.Body
	}

	fields := logger.Fields{
		"path":       c.Request.URL.Path,
		"status":     status,
		"error":      err.Error(),
		"request_id": trace.RequestIDFromContext(c.Request.Context()),
	}
	if status >= http.StatusInternalServerError {
		logger.ErrorWithFields("gateway call failed", fields)
	} else {
		logger.WarnWithFields("gateway call rejected", fields)
	}
	c.JSON(status, body)
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: msg})
}
