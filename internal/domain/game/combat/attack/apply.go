package attack

import (
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/die"
	dnderr "github.com/KirkDiggler/buttonmen-rules/internal/errors"
)

// StandardApply captures every defender for the attacking player and, when the
// type asks for it, rerolls the attackers. Attackers with DoesReroll unset keep
// their value.
func StandardApply(t Type, env Env, attackers, defenders []*die.Die) (Effects, error) {
	var effects Effects
	if len(attackers) == 0 {
		return effects, nil
	}
	if t.RerollsAttackers && env.Roller == nil {
		return effects, dnderr.InvalidArgumentf("%s attack needs a roller", t.Name)
	}

	captor := attackers[0].Owner
	for _, d := range defenders {
		if err := d.Capture(captor); err != nil {
			return effects, err
		}
		effects.Captured = append(effects.Captured, d.ID)
	}

	if t.RerollsAttackers {
		for _, a := range attackers {
			if !a.DoesReroll {
				continue
			}
			if err := a.Roll(env.Roller); err != nil {
				return effects, err
			}
		}
	}
	return effects, nil
}

func items(dice []*die.Die) []Item {
	out := make([]Item, len(dice))
	for i, d := range dice {
		out[i] = Item{Value: d.Value, Class: d.RecipeStatus()}
	}
	return out
}

func choose(dice []*die.Die, indices []int) []*die.Die {
	out := make([]*die.Die, len(indices))
	for i, idx := range indices {
		out[i] = dice[idx]
	}
	return out
}
