package skill

import "github.com/KirkDiggler/buttonmen-rules/internal/domain/game"

// Stealth dice only attack, and are only captured, in multi-die Skill attacks
func Stealth() Handler {
	multiDieSkill := func(ctx ValidityContext) bool {
		return ctx.Type == game.AttackSkill && len(ctx.Attackers) > 1
	}
	return Handler{
		ID:                IDStealth,
		Letter:            "d",
		ValidAttackerFunc: multiDieSkill,
		ValidTargetFunc:   multiDieSkill,
	}
}
