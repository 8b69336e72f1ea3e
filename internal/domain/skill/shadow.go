package skill

import "github.com/KirkDiggler/buttonmen-rules/internal/domain/game"

// Shadow dice trade Power attacks for Shadow attacks
func Shadow() Handler {
	return Handler{
		ID:     IDShadow,
		Letter: "s",
		AttackListFunc: func(ctx AttackListContext) (AttackListContext, Outcome) {
			ctx.Remove(game.AttackPower)
			ctx.Add(game.AttackShadow)
			return ctx, ContinueAfterMutation
		},
		ValidAttackerFunc: func(ctx ValidityContext) bool {
			return ctx.Type != game.AttackPower
		},
	}
}
