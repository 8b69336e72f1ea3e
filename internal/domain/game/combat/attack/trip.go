package attack

import (
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/die"
	skills "github.com/KirkDiggler/buttonmen-rules/internal/domain/skill"
	dnderr "github.com/KirkDiggler/buttonmen-rules/internal/errors"
)

// TripType rerolls a Trip attacker and its target; the target is captured if
// the attacker's new value is at least the target's new value
func TripType() Type {
	return Type{
		Name:         Trip,
		ValidateFunc: validateTrip,
		FindFunc: func(env Env) ([]Proposal, error) {
			return pairs(env, Trip, carrying(env.attackers(), skills.IDTrip), validateTrip), nil
		},
		ApplyFunc: applyTrip,
	}
}

func validateTrip(env Env, attackers, defenders []*die.Die) bool {
	if len(attackers) != 1 || len(defenders) != 1 || !inPlay(attackers) || !inPlay(defenders) {
		return false
	}
	if !attackers[0].HasSkill(skills.IDTrip) {
		return false
	}
	return env.capable(Trip, attackers, defenders)
}

func applyTrip(t Type, env Env, attackers, defenders []*die.Die) (Effects, error) {
	effects := Effects{ValueAfterTrip: make(map[string]int)}
	if env.Roller == nil {
		return effects, dnderr.InvalidArgument("trip attack needs a roller")
	}

	attacker, defender := attackers[0], defenders[0]
	if err := attacker.Roll(env.Roller); err != nil {
		return effects, err
	}
	if err := defender.Roll(env.Roller); err != nil {
		return effects, err
	}
	effects.ValueAfterTrip[defender.ID] = defender.Value

	if attacker.Value >= defender.Value {
		if err := defender.Capture(attacker.Owner); err != nil {
			return effects, err
		}
		effects.Captured = append(effects.Captured, defender.ID)
	}
	return effects, nil
}
