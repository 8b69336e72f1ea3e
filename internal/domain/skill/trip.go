package skill

import "github.com/KirkDiggler/buttonmen-rules/internal/domain/game"

// Trip dice get the Trip attack and cannot join multi-die Skill attacks
func Trip() Handler {
	return Handler{
		ID:     IDTrip,
		Letter: "t",
		AttackListFunc: func(ctx AttackListContext) (AttackListContext, Outcome) {
			ctx.Add(game.AttackTrip)
			return ctx, ContinueAfterMutation
		},
		ValidAttackerFunc: func(ctx ValidityContext) bool {
			return !(ctx.Type == game.AttackSkill && len(ctx.Attackers) > 1)
		},
	}
}
