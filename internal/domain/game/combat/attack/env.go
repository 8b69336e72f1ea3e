package attack

import (
	"github.com/KirkDiggler/buttonmen-rules/internal/dice"
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/die"
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/game"
	skills "github.com/KirkDiggler/buttonmen-rules/internal/domain/skill"
)

// Env is everything an attack type reads. Game is never mutated through Env;
// Roller is only needed by Apply.
type Env struct {
	Game   *game.Game
	Skills *skills.Registry
	Limits SearchLimits
	Roller dice.Roller
}

func (e Env) skillRegistry() *skills.Registry {
	if e.Skills == nil {
		return skills.Default()
	}
	return e.Skills
}

// attackers returns the rolled, in-play dice of the attacking player
func (e Env) attackers() []*die.Die {
	return rolled(e.Game.Attacker.Active())
}

// defenders returns the rolled, in-play dice of the defending player
func (e Env) defenders() []*die.Die {
	return rolled(e.Game.Defender.Active())
}

// capable runs the skill vetoes for every participant
func (e Env) capable(name Name, attackers, defenders []*die.Die) bool {
	ctx := skills.ValidityContext{
		Game:      e.Game,
		Type:      name,
		Attackers: attackers,
		Defenders: defenders,
	}
	for _, d := range attackers {
		if !e.skillRegistry().CanAttack(d, ctx) {
			return false
		}
	}
	for _, d := range defenders {
		if !e.skillRegistry().CanBeAttacked(d, ctx) {
			return false
		}
	}
	return true
}

func rolled(dice []*die.Die) []*die.Die {
	out := make([]*die.Die, 0, len(dice))
	for _, d := range dice {
		if d.Rolled() {
			out = append(out, d)
		}
	}
	return out
}

// inPlay reports whether every die can take part in an attack
func inPlay(dice []*die.Die) bool {
	for _, d := range dice {
		if d == nil || d.OutOfPlay || !d.Rolled() {
			return false
		}
	}
	return true
}

func sum(dice []*die.Die) int {
	total := 0
	for _, d := range dice {
		total += d.Value
	}
	return total
}
