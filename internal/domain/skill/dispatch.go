package skill

import (
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/die"
	dnderr "github.com/KirkDiggler/buttonmen-rules/internal/errors"
)

// DispatchAttackList runs the attack_list hook over the skills of the dice.
// The context goes in by value and the final context is returned.
func (r *Registry) DispatchAttackList(dice []*die.Die, ctx AttackListContext) (AttackListContext, error) {
	if err := noNilDice(dice, HookAttackList); err != nil {
		return ctx, err
	}

	out := ctx.clone()
	for _, h := range r.handlersFor(dice, HookAttackList) {
		next, outcome := h.AttackList(out.clone())
		out = next
		if outcome == Stop {
			break
		}
	}
	return out, nil
}

// DispatchCapture runs the capture hook over the skills of every participant.
// After each handler the context is checked: both slices keep their length and
// every entry is the die it replaced or a descendant of it.
func (r *Registry) DispatchCapture(dice []*die.Die, ctx CaptureContext) (CaptureContext, error) {
	for _, group := range [][]*die.Die{dice, ctx.Attackers, ctx.Defenders} {
		if err := noNilDice(group, HookCapture); err != nil {
			return ctx, err
		}
	}

	out := ctx.clone()
	for _, h := range r.handlersFor(dice, HookCapture) {
		before := out.clone()
		next, outcome, err := h.Capture(out.clone())
		if err != nil {
			return ctx, dnderr.WrapWithCode(err, dnderr.CodeInternalInconsistency, "capture handler failed").
				WithMeta(dnderr.MetaHook, HookCapture.String()).
				WithMeta(dnderr.MetaSkill, string(h.ID)).
				WithMeta(dnderr.MetaAttackType, string(ctx.Type))
		}
		if err := checkReplacements(before.Attackers, next.Attackers, "attackers"); err != nil {
			return ctx, captureInconsistency(err, h, ctx)
		}
		if err := checkReplacements(before.Defenders, next.Defenders, "defenders"); err != nil {
			return ctx, captureInconsistency(err, h, ctx)
		}

		out.Attackers = next.Attackers
		out.Defenders = next.Defenders
		if outcome == ContinueAfterMutation {
			out.Applied = append(out.Applied, h.ID)
		}
		if outcome == Stop {
			break
		}
	}
	return out, nil
}

// CanAttack reports whether every skill of the die allows it to attack
func (r *Registry) CanAttack(d *die.Die, ctx ValidityContext) bool {
	ctx.Die = d
	for _, h := range r.handlersFor([]*die.Die{d}, HookValidAttacker) {
		if !h.ValidAttacker(ctx) {
			return false
		}
	}
	return true
}

// CanBeAttacked reports whether every skill of the die allows it to be attacked
func (r *Registry) CanBeAttacked(d *die.Die, ctx ValidityContext) bool {
	ctx.Die = d
	for _, h := range r.handlersFor([]*die.Die{d}, HookValidTarget) {
		if !h.ValidTarget(ctx) {
			return false
		}
	}
	return true
}

func checkReplacements(before, after []*die.Die, side string) error {
	if len(before) != len(after) {
		return dnderr.InternalInconsistencyf("%s changed length from %d to %d", side, len(before), len(after))
	}
	for i, d := range after {
		if d == nil {
			return dnderr.InternalInconsistencyf("%s[%d] is nil", side, i)
		}
		if d.ID != before[i].ID && d.Parent != before[i].ID {
			return dnderr.InternalInconsistencyf("%s[%d] replaced %s with unrelated die %s", side, i, before[i].ID, d.ID).
				WithMeta(dnderr.MetaDieID, d.ID)
		}
	}
	return nil
}

func captureInconsistency(err error, h Handler, ctx CaptureContext) error {
	return dnderr.Wrap(err, "capture handler left a malformed context").
		WithMeta(dnderr.MetaHook, HookCapture.String()).
		WithMeta(dnderr.MetaSkill, string(h.ID)).
		WithMeta(dnderr.MetaAttackType, string(ctx.Type))
}

func noNilDice(dice []*die.Die, hook Hook) error {
	for i, d := range dice {
		if d == nil {
			return dnderr.InvalidArgumentf("%s dispatch: die %d is nil", hook, i).
				WithMeta(dnderr.MetaHook, hook.String())
		}
	}
	return nil
}
