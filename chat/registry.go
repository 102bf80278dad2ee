package chat

import (
	"chat-mediator/contract"
	"sync"

	"github.com/samber/lo"
)

// Registry keeps members in registration order.
// Duplicate names are kept; lookups by name return every match.
type Registry struct {
	mu      sync.RWMutex
	members []contract.Member
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends the member at the tail.
func (r *Registry) Add(member contract.Member) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members = append(r.members, member)
}

// Snapshot returns a copy of the members so routing never iterates over a slice being appended to.
func (r *Registry) Snapshot() []contract.Member {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]contract.Member(nil), r.members...)
}

// Named returns every member called name, in registration order.
func (r *Registry) Named(name string) []contract.Member {
	return lo.Filter(r.Snapshot(), func(m contract.Member, _ int) bool {
		return m.Name() == name
	})
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members)
}
