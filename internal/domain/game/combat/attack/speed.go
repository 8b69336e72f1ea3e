package attack

import (
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/die"
	skills "github.com/KirkDiggler/buttonmen-rules/internal/domain/skill"
)

// SpeedType is one Speed attacker capturing defenders whose values add up to
// its own
func SpeedType() Type {
	return valueMatching(Speed, skills.IDSpeed, true)
}

// valueMatching builds a type where a single attacker carrying the required
// skill captures any set of defenders summing to its value
func valueMatching(name Name, required die.SkillID, rerolls bool) Type {
	validate := func(env Env, attackers, defenders []*die.Die) bool {
		if len(attackers) != 1 || len(defenders) < 1 || !inPlay(attackers) || !inPlay(defenders) {
			return false
		}
		if !attackers[0].HasSkill(required) || attackers[0].Value != sum(defenders) {
			return false
		}
		return env.capable(name, attackers, defenders)
	}

	find := func(env Env) ([]Proposal, error) {
		defenders := env.defenders()
		set := newProposalSet()
		for _, a := range carrying(env.attackers(), required) {
			subsets, err := SubsetsWithSum(items(defenders), a.Value, env.Limits)
			if err != nil {
				return nil, err
			}
			for _, subset := range subsets {
				as, ds := []*die.Die{a}, choose(defenders, subset)
				if validate(env, as, ds) {
					set.add(name, as, ds)
				}
			}
		}
		return set.proposals(), nil
	}

	return Type{
		Name:             name,
		RerollsAttackers: rerolls,
		ValidateFunc:     validate,
		FindFunc:         find,
	}
}
