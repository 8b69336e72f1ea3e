package actionlog

import (
	"github.com/KirkDiggler/buttonmen-rules/internal/events"
)

// Listener appends every recorded attack to a repository
type Listener struct {
	repo Repository
}

// NewListener creates a listener for attack_recorded events
func NewListener(repo Repository) *Listener {
	if repo == nil {
		panic("repository is required")
	}
	return &Listener{repo: repo}
}

func (l *Listener) ID() string    { return "action-log" }
func (l *Listener) Priority() int { return events.PriorityActionLog }

// HandleEvent stores the record carried by the event. The write is bound to
// the context of the resolve call.
func (l *Listener) HandleEvent(e events.Event) error {
	re, ok := e.(*events.ResolutionEvent)
	if !ok || re.Record == nil {
		return nil
	}
	return l.repo.Append(re.Context(), re.Record)
}

// Subscribe registers the listener on the bus
func (l *Listener) Subscribe(bus *events.Bus) {
	bus.Subscribe(events.EventTypeAttackRecorded, l)
}
