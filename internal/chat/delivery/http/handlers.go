package http

import (
	"github.com/gin-gonic/gin"

	"hospital-coordinator/pkg/response"
)

// Dispatch godoc
// @Summary     Send a message to the coordinator
// @Description Routes free-text input to the right specialist persona and returns the labeled reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body dispatchReq true "User message"
// @Success     200 {object} dispatchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - a dispatch is already in flight"
// @Failure     503 {object} response.Resp "Service Unavailable - generator credential missing"
// @Router      /api/v1/chat/messages [POST]
func (h *handler) Dispatch(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDispatchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Dispatch(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Dispatch: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newDispatchResp(output))
}

// History godoc
// @Summary     Conversation history
// @Description Returns the ordered turn history of the active session.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} historyResp
// @Router      /api/v1/chat/messages [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	turns := h.uc.History(ctx)
	response.OK(c, h.newHistoryResp(turns))
}

// Status godoc
// @Summary     Dispatch status
// @Description Reports whether a dispatch is in flight, so clients can disable submission.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /api/v1/chat/status [GET]
func (h *handler) Status(c *gin.Context) {
	response.OK(c, statusResp{Busy: h.uc.Busy()})
}

// Reset godoc
// @Summary     Reset the conversation
// @Description Discards the active session; the next message starts a fresh one.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/chat/session [DELETE]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	h.uc.Reset(ctx)
	response.OK(c, nil)
}
