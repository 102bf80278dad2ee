package event

import (
	"log/slog"
	"sync"

	"github.com/samber/lo"
)

// StatsHandler counts routed events per type, per author and per detected
// language. It is plugged into the mediator as an event sink.
type StatsHandler struct {
	mu       sync.Mutex
	log      *slog.Logger
	byType   map[Type]uint64
	byAuthor map[string]uint64
	byLang   map[string]uint64
}

// Stats is a point in time copy of the counters.
type Stats struct {
	ByType   map[Type]uint64
	ByAuthor map[string]uint64
	ByLang   map[string]uint64
}

func NewStatsHandler(log *slog.Logger) *StatsHandler {
	return &StatsHandler{
		log:      log,
		byType:   make(map[Type]uint64),
		byAuthor: make(map[string]uint64),
		byLang:   make(map[string]uint64),
	}
}

func (h *StatsHandler) Consume(e DomainEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.byType[e.Type()]++
	switch evt := e.(type) {
	case MessageBroadcast:
		h.byAuthor[evt.Author]++
		h.byLang[evt.Lang]++
	case PrivateMessageSent:
		h.byAuthor[evt.Author]++
	case ParticipantMuted:
		h.log.Debug("Participant muted", "target", evt.Target, "by", evt.Moderator, "affected", evt.Affected)
	}
}

func (h *StatsHandler) Snapshot() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()

	return Stats{
		ByType:   lo.Assign(h.byType),
		ByAuthor: lo.Assign(h.byAuthor),
		ByLang:   lo.Assign(h.byLang),
	}
}
