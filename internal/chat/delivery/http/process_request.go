package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"hospital-coordinator/internal/chat"
)

func (h *handler) processDispatchReq(c *gin.Context) (dispatchReq, error) {
	var req dispatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return dispatchReq{}, chat.ErrEmptyMessage
	}
	if strings.TrimSpace(req.Message) == "" {
		return dispatchReq{}, chat.ErrEmptyMessage
	}
	return req, nil
}
