package http

import (
	"github.com/gin-gonic/gin"

	"hospital-coordinator/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Only the
// dispatch route is rate limited: it is the one that reaches the generator.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	chat := rg.Group("/chat")
	{
		chat.POST("/messages", mw.RateLimit(), h.Dispatch)
		chat.GET("/messages", h.History)
		chat.GET("/status", h.Status)
		chat.DELETE("/session", h.Reset)
	}
}
