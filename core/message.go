package core

import "github.com/google/uuid"

// Role identifies the author of a message.
type Role string

const (
	// RoleUser marks caller-authored messages.
	RoleUser Role = "user"
	// RoleAssistant marks model-authored messages.
	RoleAssistant Role = "assistant"
	// RoleSystem marks instruction messages.
	RoleSystem Role = "system"
)

// Message is a generic chat message as authored by the UI layer: a role, a
// plain text body (may be empty) and an ordered list of attachment
// descriptors. Role values are passed through to providers verbatim;
// validation is a caller concern.
type Message struct {
	Role        Role         `json:"role"`
	Content     string       `json:"content"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// NewID generates a new unique identifier used for session and trace
// correlation across a streamed response.
func NewID() string { return uuid.NewString() }
