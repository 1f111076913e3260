package http

import (
	"hospital-coordinator/internal/chat"
	"hospital-coordinator/pkg/response"
)

// --- Request DTOs ---

type dispatchReq struct {
	Message string `json:"message" binding:"required"`
}

func (r dispatchReq) toInput() chat.DispatchInput {
	return chat.DispatchInput{Text: r.Message}
}

// --- Response DTOs ---

type dispatchResp struct {
	Agent     string            `json:"agent"`
	Label     string            `json:"label"`
	Text      string            `json:"text"`
	CreatedAt response.DateTime `json:"created_at"`
}

func (h *handler) newDispatchResp(out chat.DispatchOutput) dispatchResp {
	return dispatchResp{
		Agent:     string(out.Agent),
		Label:     out.Agent.Label(),
		Text:      out.Text,
		CreatedAt: response.DateTime(out.CreatedAt),
	}
}

type turnResp struct {
	ID        string            `json:"id"`
	Author    string            `json:"author"`
	Text      string            `json:"text"`
	Agent     string            `json:"agent,omitempty"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newTurnResp(turn chat.Turn) turnResp {
	return turnResp{
		ID:        turn.ID,
		Author:    string(turn.Author),
		Text:      turn.Text,
		Agent:     string(turn.Agent),
		CreatedAt: response.DateTime(turn.CreatedAt),
	}
}

type historyResp struct {
	Turns []turnResp `json:"turns"`
	Count int        `json:"count"`
}

func (h *handler) newHistoryResp(turns []chat.Turn) historyResp {
	out := make([]turnResp, len(turns))
	for i, turn := range turns {
		out[i] = newTurnResp(turn)
	}
	return historyResp{Turns: out, Count: len(out)}
}

type statusResp struct {
	Busy bool `json:"busy"`
}
