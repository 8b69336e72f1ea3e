package attack

import (
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/die"
	skills "github.com/KirkDiggler/buttonmen-rules/internal/domain/skill"
)

// ShadowType is a Shadow die capturing a defender of equal or higher value
// that is not above the attacker's size
func ShadowType() Type {
	return Type{
		Name:             Shadow,
		IncompatibleWith: []Name{Power},
		RerollsAttackers: true,
		ValidateFunc:     validateShadow,
		FindFunc: func(env Env) ([]Proposal, error) {
			return pairs(env, Shadow, carrying(env.attackers(), skills.IDShadow), validateShadow), nil
		},
	}
}

func validateShadow(env Env, attackers, defenders []*die.Die) bool {
	if len(attackers) != 1 || len(defenders) != 1 || !inPlay(attackers) || !inPlay(defenders) {
		return false
	}
	a, d := attackers[0], defenders[0]
	if !a.HasSkill(skills.IDShadow) || a.Value > d.Value || a.Sides < d.Value {
		return false
	}
	return env.capable(Shadow, attackers, defenders)
}
