package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "hospital-coordinator/internal/chat/delivery/http"
	"hospital-coordinator/internal/chat/generator"
	chatUC "hospital-coordinator/internal/chat/usecase"
	"hospital-coordinator/internal/middleware"
)

// setupChatDomain initializes the chat domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create collaborators:  factory := generator.NewGemini(srv.geminiConfig)
//  2. Create UseCase:        uc := chatUC.New(srv.l, factory)
//  3. Create HTTP Handler:   h := chatHTTP.New(srv.l, uc)
//  4. Register Routes:       chatHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	// 1. Generator session factory
	factory := generator.NewGemini(srv.geminiConfig)

	// 2. UseCase
	uc := chatUC.New(srv.l, factory)

	// 3. HTTP Handler
	h := chatHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/chat
	chatHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Chat domain registered")
}
