package events

import "log"

// ListenerFunc adapts a function to EventListener
type ListenerFunc struct {
	ListenerID string
	Order      int
	Handle     func(Event) error
}

func (l ListenerFunc) ID() string    { return l.ListenerID }
func (l ListenerFunc) Priority() int { return l.Order }

// HandleEvent calls Handle if present
func (l ListenerFunc) HandleEvent(e Event) error {
	if l.Handle == nil {
		return nil
	}
	return l.Handle(e)
}

// LogListener writes every resolution event to the standard logger, standing
// in for the action log
type LogListener struct {
	logf func(format string, args ...any)
}

// NewLogListener creates a listener logging through log.Printf
func NewLogListener() *LogListener {
	return &LogListener{logf: log.Printf}
}

func (l *LogListener) ID() string    { return "log-listener" }
func (l *LogListener) Priority() int { return PriorityDebug }

// HandleEvent logs the event
func (l *LogListener) HandleEvent(e Event) error {
	re, ok := e.(*ResolutionEvent)
	if !ok {
		l.logf("Events: %s for game %s", e.GetType(), e.GetGameID())
		return nil
	}

	switch {
	case re.Err != nil:
		l.logf("Events: %s for game %s in phase %s: %v", re.Type, re.GameID, re.Phase, re.Err)
	case re.Record != nil:
		l.logf("Events: %s for game %s: %s", re.Type, re.GameID, re.Record)
	default:
		l.logf("Events: %s for game %s: %s %v -> %v", re.Type, re.GameID, re.Proposal.Type, re.Proposal.Attackers, re.Proposal.Defenders)
	}
	return nil
}
