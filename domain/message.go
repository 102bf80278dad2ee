// Package domain contains core concepts of the chat system.
// This file defines Message values routed by the mediator.
// Messages are immutable once built.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message represents an immutable chat message.
// Recipient is empty for broadcasts.
type Message struct {
	ID        uuid.UUID // unique identifier
	Sender    string
	Recipient string
	Content   string
	CreatedAt time.Time
}

func NewMessage(sender, recipient, content string, at time.Time) Message {
	return Message{
		ID:        uuid.New(),
		Sender:    sender,
		Recipient: recipient,
		Content:   content,
		CreatedAt: at,
	}
}

func (m Message) IsPrivate() bool {
	return m.Recipient != ""
}
