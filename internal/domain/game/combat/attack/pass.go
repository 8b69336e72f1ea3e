package attack

import "github.com/KirkDiggler/buttonmen-rules/internal/domain/die"

// PassType gives up the turn. It is only legal when nothing else is.
func PassType() Type {
	return Type{
		Name:     Pass,
		Fallback: true,
		ValidateFunc: func(_ Env, attackers, defenders []*die.Die) bool {
			return len(attackers) == 0 && len(defenders) == 0
		},
		FindFunc: func(Env) ([]Proposal, error) {
			return []Proposal{{Type: Pass, Attackers: []string{}, Defenders: []string{}}}, nil
		},
		ApplyFunc: func(Type, Env, []*die.Die, []*die.Die) (Effects, error) {
			return Effects{}, nil
		},
	}
}
