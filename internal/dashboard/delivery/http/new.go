package http

import (
	"github.com/gin-gonic/gin"

	"hospital-coordinator/internal/dashboard"
	"hospital-coordinator/pkg/log"
)

// Handler is the public interface for the dashboard HTTP delivery layer.
type Handler interface {
	Stats(c *gin.Context)
	Revenue(c *gin.Context)
	Insurance(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc dashboard.UseCase
}

// New creates a new HTTP handler for the dashboard domain.
func New(l log.Logger, uc dashboard.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
