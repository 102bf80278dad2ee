// Package domain contains core concepts of the chat system.
// This file defines Participant entities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"sync"

	"github.com/google/uuid"
)

type ParticipantState string

const (
	Active ParticipantState = "ACTIVE"
	Muted  ParticipantState = "MUTED"
)

// Participant is the state of a chat member.
// Names are not unique: two participants may share one and are then
// addressed together.
type Participant struct {
	ID   uuid.UUID
	Name string

	mu    sync.RWMutex
	state ParticipantState
}

func NewParticipant(name string) *Participant {
	return &Participant{
		ID:    uuid.New(),
		Name:  name,
		state: Active,
	}
}

func (p *Participant) State() ParticipantState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

func (p *Participant) IsMuted() bool {
	return p.State() == Muted
}

// Mute is irreversible: there is no transition back to Active.
func (p *Participant) Mute() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = Muted
}
