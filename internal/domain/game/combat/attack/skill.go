package attack

import "github.com/KirkDiggler/buttonmen-rules/internal/domain/die"

// SkillType is one or more attackers whose values add up to one defender
func SkillType() Type {
	return Type{
		Name:             Skill,
		Base:             true,
		RerollsAttackers: true,
		ValidateFunc:     validateSkill,
		FindFunc:         findSkill,
	}
}

func validateSkill(env Env, attackers, defenders []*die.Die) bool {
	if len(attackers) < 1 || len(defenders) != 1 || !inPlay(attackers) || !inPlay(defenders) {
		return false
	}
	if sum(attackers) != defenders[0].Value {
		return false
	}
	return env.capable(Skill, attackers, defenders)
}

func findSkill(env Env) ([]Proposal, error) {
	attackers := env.attackers()
	set := newProposalSet()
	for _, d := range env.defenders() {
		subsets, err := SubsetsWithSum(items(attackers), d.Value, env.Limits)
		if err != nil {
			return nil, err
		}
		for _, subset := range subsets {
			as, ds := choose(attackers, subset), []*die.Die{d}
			if validateSkill(env, as, ds) {
				set.add(Skill, as, ds)
			}
		}
	}
	return set.proposals(), nil
}
