package model

import (
	"time"

	"github.com/google/uuid"
)

// Message is one entry in a two-participant thread. Sender and recipient
// may be users or patients.
type Message struct {
	ID          uuid.UUID `json:"id"`
	SenderID    uuid.UUID `json:"sender_id"`
	RecipientID uuid.UUID `json:"recipient_id"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
	IsRead      bool      `json:"is_read"`
}

// Conversation is a two-participant thread. LastMessage is a denormalized
// copy of the newest message; UnreadCount is derived from the message
// collection at read time rather than maintained by hand.
type Conversation struct {
	ID           uuid.UUID   `json:"id"`
	Participants []uuid.UUID `json:"participants"`
	LastMessage  *Message    `json:"last_message,omitempty"`
	UnreadCount  int         `json:"unread_count"`
}

// Other returns the participant that is not the viewer.
func (c *Conversation) Other(viewer uuid.UUID) (uuid.UUID, bool) {
	for _, id := range c.Participants {
		if id != viewer {
			return id, true
		}
	}
	return uuid.Nil, false
}

// ConversationFilter represents inbox list parameters. Search matches the
// other participant's display name only, never the viewer's own.
type ConversationFilter struct {
	Search string    `json:"search" form:"search"`
	UserID uuid.UUID `json:"-" form:"-"`
}

// SendMessageRequest represents message send parameters.
type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}
