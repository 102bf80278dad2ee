//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-mediator/domain/event"

	"github.com/google/uuid"
)

// Mediator is the routing contract participants depend on.
// Participants never hold references to each other, only to a Mediator.
type Mediator interface {
	Register(member Member)
	Broadcast(sender, message string)
	Direct(sender, recipient, message string)
	Notify(text string)
	Mute(moderator, target string)
}

// Member is the receive-hook contract the Mediator depends on.
// Hooks must not call back into the Mediator.
type Member interface {
	ID() uuid.UUID
	Name() string
	IsMuted() bool
	Mute()
	Receive(from, message string)
	ReceivePrivate(from, message string)
	ReceiveNotification(text string)
}

// Transcript renders what a participant sees.
type Transcript interface {
	Outgoing(name, message string)
	OutgoingPrivate(name, recipient, message string)
	Blocked(name string)
	Incoming(name, from, message string)
	IncomingPrivate(name, from, message string)
	Notification(name, text string)
}

type EventSink interface {
	Consume(e event.DomainEvent)
}

// Censor rewrites message content before delivery.
type Censor interface {
	Censor(content string) (string, []string)
}
