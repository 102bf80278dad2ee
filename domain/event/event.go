package event

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	ParticipantJoinedType  Type = "PARTICIPANT_JOINED"
	MessageBroadcastType   Type = "MESSAGE_BROADCAST"
	PrivateMessageSentType Type = "PRIVATE_MESSAGE_SENT"
	NotificationSentType   Type = "NOTIFICATION_SENT"
	ParticipantMutedType   Type = "PARTICIPANT_MUTED"
)

// DomainEvent is emitted by the mediator once an operation has been routed.
type DomainEvent interface {
	Type() Type
	OccurredAt() time.Time
}

type ParticipantJoined struct {
	ParticipantID uuid.UUID
	Name          string
	At            time.Time
}

func (e ParticipantJoined) Type() Type            { return ParticipantJoinedType }
func (e ParticipantJoined) OccurredAt() time.Time { return e.At }

type MessageBroadcast struct {
	ID         uuid.UUID
	Author     string
	Content    string
	Lang       string
	Recipients int
	At         time.Time
}

func (e MessageBroadcast) Type() Type            { return MessageBroadcastType }
func (e MessageBroadcast) OccurredAt() time.Time { return e.At }

// PrivateMessageSent is emitted even when no recipient matched,
// Delivered is then zero.
type PrivateMessageSent struct {
	ID        uuid.UUID
	Author    string
	Recipient string
	Content   string
	Delivered int
	At        time.Time
}

func (e PrivateMessageSent) Type() Type            { return PrivateMessageSentType }
func (e PrivateMessageSent) OccurredAt() time.Time { return e.At }

type NotificationSent struct {
	Text       string
	Recipients int
	At         time.Time
}

func (e NotificationSent) Type() Type            { return NotificationSentType }
func (e NotificationSent) OccurredAt() time.Time { return e.At }

type ParticipantMuted struct {
	Moderator string
	Target    string
	Affected  int
	At        time.Time
}

func (e ParticipantMuted) Type() Type            { return ParticipantMutedType }
func (e ParticipantMuted) OccurredAt() time.Time { return e.At }
