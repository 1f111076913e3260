package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hospital-coordinator/internal/chat"
	"hospital-coordinator/pkg/response"
)

// mapError translates domain errors into HTTP responses. Only the three
// typed chat errors can reach this point; anything else is a programming
// error reported as 500.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		response.Error(c, err)
	case errors.Is(err, chat.ErrDispatchBusy):
		response.Conflict(c, err)
	case errors.Is(err, chat.ErrMissingAPIKey):
		response.Unavailable(c, err)
	default:
		response.InternalError(c, err)
	}
}
