package chat

import (
	"chat-mediator/contract"
	"chat-mediator/domain"

	"github.com/google/uuid"
)

var _ contract.Member = (*User)(nil)

// User is a chat member. It only knows its mediator, never other users.
type User struct {
	participant *domain.Participant
	mediator    contract.Mediator
	transcript  contract.Transcript
}

func NewUser(name string, mediator contract.Mediator, transcript contract.Transcript) *User {
	return &User{
		participant: domain.NewParticipant(name),
		mediator:    mediator,
		transcript:  transcript,
	}
}

func (u *User) ID() uuid.UUID                  { return u.participant.ID }
func (u *User) Name() string                   { return u.participant.Name }
func (u *User) IsMuted() bool                  { return u.participant.IsMuted() }
func (u *User) Mute()                          { u.participant.Mute() }
func (u *User) State() domain.ParticipantState { return u.participant.State() }

// Send broadcasts through the mediator unless the user is muted,
// in which case nothing leaves the user.
func (u *User) Send(message string) {
	if u.IsMuted() {
		u.transcript.Blocked(u.Name())
		return
	}
	u.transcript.Outgoing(u.Name(), message)
	u.mediator.Broadcast(u.Name(), message)
}

func (u *User) SendPrivate(recipient, message string) {
	if u.IsMuted() {
		u.transcript.Blocked(u.Name())
		return
	}
	u.transcript.OutgoingPrivate(u.Name(), recipient, message)
	u.mediator.Direct(u.Name(), recipient, message)
}

func (u *User) Receive(from, message string) {
	u.transcript.Incoming(u.Name(), from, message)
}

func (u *User) ReceivePrivate(from, message string) {
	u.transcript.IncomingPrivate(u.Name(), from, message)
}

func (u *User) ReceiveNotification(text string) {
	u.transcript.Notification(u.Name(), text)
}
