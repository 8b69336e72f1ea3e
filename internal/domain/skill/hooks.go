package skill

// Hook is a named extension point skills can intercept
type Hook int

const (
	// HookAttackList lets a skill rewrite the attack types offered to its die
	HookAttackList Hook = iota
	// HookCapture lets a skill rewrite die state after a capture
	HookCapture
	// HookValidAttacker lets a skill veto its die as an attacker
	HookValidAttacker
	// HookValidTarget lets a skill veto its die as a defender
	HookValidTarget
)

var hookNames = [...]string{
	HookAttackList:    "attack_list",
	HookCapture:       "capture",
	HookValidAttacker: "valid_attacker",
	HookValidTarget:   "valid_target",
}

// AllHooks lists every hook in dispatch-independent declaration order
func AllHooks() []Hook {
	return []Hook{HookAttackList, HookCapture, HookValidAttacker, HookValidTarget}
}

func (h Hook) String() string {
	if h < HookAttackList || int(h) >= len(hookNames) {
		return "unknown"
	}
	return hookNames[h]
}

// Outcome is what a handler reports back to the dispatcher
type Outcome int

const (
	// Continue means the handler did nothing and dispatch goes on
	Continue Outcome = iota
	// Stop ends dispatch after this handler
	Stop
	// ContinueAfterMutation means the handler changed the context or a die
	ContinueAfterMutation
)

func (o Outcome) String() string {
	switch o {
	case Stop:
		return "stop"
	case ContinueAfterMutation:
		return "continue_after_mutation"
	default:
		return "continue"
	}
}
