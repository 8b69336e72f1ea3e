package attack

import "github.com/KirkDiggler/buttonmen-rules/internal/domain/die"

// PowerType is one attacker capturing one defender of equal or lower value
func PowerType() Type {
	return Type{
		Name:             Power,
		Base:             true,
		RerollsAttackers: true,
		ValidateFunc:     validatePower,
		FindFunc: func(env Env) ([]Proposal, error) {
			return pairs(env, Power, env.attackers(), validatePower), nil
		},
	}
}

func validatePower(env Env, attackers, defenders []*die.Die) bool {
	if len(attackers) != 1 || len(defenders) != 1 || !inPlay(attackers) || !inPlay(defenders) {
		return false
	}
	if attackers[0].Value < defenders[0].Value {
		return false
	}
	return env.capable(Power, attackers, defenders)
}

// pairs enumerates every one-on-one combination the predicate accepts
func pairs(env Env, name Name, attackers []*die.Die, valid func(Env, []*die.Die, []*die.Die) bool) []Proposal {
	set := newProposalSet()
	for _, a := range attackers {
		for _, d := range env.defenders() {
			as, ds := []*die.Die{a}, []*die.Die{d}
			if valid(env, as, ds) {
				set.add(name, as, ds)
			}
		}
	}
	return set.proposals()
}

// carrying filters dice down to those with the skill
func carrying(dice []*die.Die, id die.SkillID) []*die.Die {
	var out []*die.Die
	for _, d := range dice {
		if d.HasSkill(id) {
			out = append(out, d)
		}
	}
	return out
}
