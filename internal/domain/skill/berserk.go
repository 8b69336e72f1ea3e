package skill

import (
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/game"
	dnderr "github.com/KirkDiggler/buttonmen-rules/internal/errors"
)

// Berserk dice trade Skill attacks for Berserk attacks. After a Berserk attack
// the die loses the skill and splits in half; the first half is rerolled and
// stays in play.
func Berserk() Handler {
	return Handler{
		ID:     IDBerserk,
		Letter: "B",
		AttackListFunc: func(ctx AttackListContext) (AttackListContext, Outcome) {
			ctx.Remove(game.AttackSkill)
			ctx.Add(game.AttackBerserk)
			return ctx, ContinueAfterMutation
		},
		CaptureFunc: berserkCapture,
		ValidAttackerFunc: func(ctx ValidityContext) bool {
			return ctx.Type != game.AttackSkill
		},
	}
}

func berserkCapture(ctx CaptureContext) (CaptureContext, Outcome, error) {
	if ctx.Type != game.AttackBerserk || len(ctx.Attackers) != 1 {
		return ctx, Continue, nil
	}
	attacker := ctx.Attackers[0]
	if !attacker.HasSkill(IDBerserk) {
		return ctx, Continue, nil
	}
	if ctx.Roller == nil {
		return ctx, Continue, dnderr.InternalInconsistency("berserk capture needs a roller")
	}

	if err := attacker.RemoveSkill(IDBerserk); err != nil {
		return ctx, Continue, err
	}
	half, _, err := attacker.Split()
	if err != nil {
		return ctx, Continue, err
	}
	if err := half.Roll(ctx.Roller); err != nil {
		return ctx, Continue, err
	}

	ctx.Attackers[0] = half
	return ctx, ContinueAfterMutation, nil
}
