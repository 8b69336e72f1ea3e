package resolver

// Phase is the life cycle position of one resolution
type Phase int

const (
	PhaseProposed Phase = iota
	PhaseValidated
	PhaseApplied
	PhaseCaptureResolved
	PhaseRecorded
)

func (p Phase) String() string {
	switch p {
	case PhaseProposed:
		return "proposed"
	case PhaseValidated:
		return "validated"
	case PhaseApplied:
		return "applied"
	case PhaseCaptureResolved:
		return "capture_resolved"
	case PhaseRecorded:
		return "recorded"
	default:
		return "unknown"
	}
}
