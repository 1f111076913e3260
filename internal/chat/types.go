package chat

import "time"

// AgentType identifies which specialist persona authored a reply.
// The set is closed; it changes only together with the routing rules
// compiled into the session directive.
type AgentType string

const (
	AgentCoordinator      AgentType = "Koordinator Pusat"
	AgentPatientManager   AgentType = "Manajer Informasi Pasien"
	AgentMedicalAssistant AgentType = "Asisten Informasi Medis"
	AgentDocCreator       AgentType = "Pembuat Dokumen"
	AgentAdminHandler     AgentType = "Penangan Tugas Administratif"
	AgentUnknown          AgentType = "Sistem"
)

// Label returns the human-readable label carried in the wire tag and
// rendered by the UI. Labels and agent types map one-to-one.
func (a AgentType) Label() string {
	return string(a)
}

// Author is the writer of a turn.
type Author string

const (
	AuthorUser  Author = "user"
	AuthorAgent Author = "agent"
)

// Turn is one immutable message unit in the ordered session history.
// Agent is set only on agent-authored turns.
type Turn struct {
	ID        string
	Author    Author
	Text      string
	Agent     AgentType
	CreatedAt time.Time
}

// DispatchInput is the input for a single dispatch.
type DispatchInput struct {
	Text string // free-form user message
}

// DispatchOutput is the structured result returned to the caller.
// Agent is always a member of the closed set; unresolvable or erroring
// completions normalize to AgentUnknown with a user-facing message.
type DispatchOutput struct {
	Agent     AgentType
	Text      string
	CreatedAt time.Time
}
