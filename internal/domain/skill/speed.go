package skill

import "github.com/KirkDiggler/buttonmen-rules/internal/domain/game"

// Speed dice may capture several dice whose values add up to their own
func Speed() Handler {
	return Handler{
		ID:     IDSpeed,
		Letter: "z",
		AttackListFunc: func(ctx AttackListContext) (AttackListContext, Outcome) {
			ctx.Add(game.AttackSpeed)
			return ctx, ContinueAfterMutation
		},
	}
}
