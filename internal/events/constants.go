package events

// Resolution lifecycle events
const (
	EventTypeAttackValidated   EventType = "attack_validated"
	EventTypeAttackApplied     EventType = "attack_applied"
	EventTypeCaptureResolved   EventType = "capture_resolved"
	EventTypeAttackRecorded    EventType = "attack_recorded"
	EventTypeResolutionAborted EventType = "resolution_aborted"
)

// AllEventTypes lists the resolution events in lifecycle order
func AllEventTypes() []EventType {
	return []EventType{
		EventTypeAttackValidated,
		EventTypeAttackApplied,
		EventTypeCaptureResolved,
		EventTypeAttackRecorded,
		EventTypeResolutionAborted,
	}
}

// Priority levels for listener order
const (
	PriorityAudit     = 0   // Invariant checks, metrics
	PriorityGame      = 100 // Game state machine reactions
	PriorityActionLog = 400 // Action log rendering
	PriorityDebug     = 500 // Debug output
)
