package models

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatTurn is one message of the conversation sent by the client. Resume, when
// set, is the full resume state the generator must start from.
type ChatTurn struct {
	Role    Role           `json:"role" validate:"required,oneof=user assistant"`
	Content string         `json:"content" validate:"required"`
	Resume  map[string]any `json:"resume,omitempty"`
}

// HasResume reports whether the turn carries a non-empty resume snapshot.
func (t ChatTurn) HasResume() bool {
	return len(t.Resume) > 0
}

// GenerationOutcome is the result of one chat round trip.
type GenerationOutcome struct {
	AdvisoryMessage *string
	Resume          ResumeDocument
}
