package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	dashHTTP "hospital-coordinator/internal/dashboard/delivery/http"
	dashUC "hospital-coordinator/internal/dashboard/usecase"
)

// setupDashboardDomain initializes the dashboard domain and registers its routes.
func (srv HTTPServer) setupDashboardDomain(ctx context.Context, api *gin.RouterGroup) {
	uc := dashUC.New(srv.l)
	h := dashHTTP.New(srv.l, uc)

	// Routes: registers /api/v1/dashboard
	dashHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Dashboard domain registered")
}
