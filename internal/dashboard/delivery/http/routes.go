package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the read-only dashboard endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	dash := rg.Group("/dashboard")
	{
		dash.GET("/stats", h.Stats)
		dash.GET("/revenue", h.Revenue)
		dash.GET("/insurance", h.Insurance)
	}
}
