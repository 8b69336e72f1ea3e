package skill

import "github.com/KirkDiggler/buttonmen-rules/internal/domain/die"

// Handler is the typed hook table of one skill kind. Any nil function is a
// neutral no-op so a skill only fills in the hooks it needs.
type Handler struct {
	ID     die.SkillID
	Letter string

	AttackListFunc    func(AttackListContext) (AttackListContext, Outcome)
	CaptureFunc       func(CaptureContext) (CaptureContext, Outcome, error)
	ValidAttackerFunc func(ValidityContext) bool
	ValidTargetFunc   func(ValidityContext) bool
}

// Skill returns the die-side identity of the handler
func (h Handler) Skill() die.Skill {
	return die.Skill{ID: h.ID, Letter: h.Letter}
}

// Hooks reports the hooks this handler participates in
func (h Handler) Hooks() []Hook {
	var hooks []Hook
	for _, hook := range AllHooks() {
		if h.Handles(hook) {
			hooks = append(hooks, hook)
		}
	}
	return hooks
}

// Handles reports whether the handler has a function for the hook
func (h Handler) Handles(hook Hook) bool {
	switch hook {
	case HookAttackList:
		return h.AttackListFunc != nil
	case HookCapture:
		return h.CaptureFunc != nil
	case HookValidAttacker:
		return h.ValidAttackerFunc != nil
	case HookValidTarget:
		return h.ValidTargetFunc != nil
	default:
		return false
	}
}

// AttackList invokes the attack_list hook if present
func (h Handler) AttackList(ctx AttackListContext) (AttackListContext, Outcome) {
	if h.AttackListFunc == nil {
		return ctx, Continue
	}
	return h.AttackListFunc(ctx)
}

// Capture invokes the capture hook if present
func (h Handler) Capture(ctx CaptureContext) (CaptureContext, Outcome, error) {
	if h.CaptureFunc == nil {
		return ctx, Continue, nil
	}
	return h.CaptureFunc(ctx)
}

// ValidAttacker invokes the attacker veto if present; absent means allowed
func (h Handler) ValidAttacker(ctx ValidityContext) bool {
	if h.ValidAttackerFunc == nil {
		return true
	}
	return h.ValidAttackerFunc(ctx)
}

// ValidTarget invokes the defender veto if present; absent means allowed
func (h Handler) ValidTarget(ctx ValidityContext) bool {
	if h.ValidTargetFunc == nil {
		return true
	}
	return h.ValidTargetFunc(ctx)
}
