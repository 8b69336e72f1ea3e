package events

import (
	"context"

	"github.com/KirkDiggler/buttonmen-rules/internal/domain/game/combat/attack"
	attackrecord "github.com/KirkDiggler/buttonmen-rules/internal/entities/attack"
)

// EventType names a resolution event
type EventType string

// Event is the interface every bus event satisfies
type Event interface {
	GetType() EventType
	GetGameID() string
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides the common part of every event
type BaseEvent struct {
	Type      EventType
	GameID    string
	Cancelled bool
}

func (e *BaseEvent) GetType() EventType { return e.Type }
func (e *BaseEvent) GetGameID() string  { return e.GameID }
func (e *BaseEvent) IsCancelled() bool  { return e.Cancelled }
func (e *BaseEvent) Cancel()            { e.Cancelled = true }

// ResolutionEvent reports the progress of one attack resolution. Record is set
// once the attack is recorded; Err is set when the resolution aborted.
// Ctx is the context of the Resolve call that produced the event.
type ResolutionEvent struct {
	BaseEvent
	Ctx      context.Context
	Phase    string
	Proposal attack.Proposal
	Record   *attackrecord.Record
	Err      error
}

// Context returns the context of the resolve call, or Background when unset
func (e *ResolutionEvent) Context() context.Context {
	if e.Ctx == nil {
		return context.Background()
	}
	return e.Ctx
}

// NewResolutionEvent creates an event of the given type
func NewResolutionEvent(eventType EventType, gameID, phase string, proposal attack.Proposal) *ResolutionEvent {
	return &ResolutionEvent{
		BaseEvent: BaseEvent{Type: eventType, GameID: gameID},
		Phase:     phase,
		Proposal:  proposal,
	}
}
