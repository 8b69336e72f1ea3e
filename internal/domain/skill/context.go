package skill

import (
	"github.com/KirkDiggler/buttonmen-rules/internal/dice"
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/die"
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/game"
)

// AttackListContext carries the candidate attack types offered to one die.
// Game and Die are read-only for handlers.
type AttackListContext struct {
	Game  *game.Game
	Die   *die.Die
	Types []game.AttackType
}

// Has reports whether the type is a candidate
func (c AttackListContext) Has(t game.AttackType) bool {
	for _, existing := range c.Types {
		if existing == t {
			return true
		}
	}
	return false
}

// Add appends the type unless already present
func (c *AttackListContext) Add(t game.AttackType) {
	if !c.Has(t) {
		c.Types = append(c.Types, t)
	}
}

// Remove drops the type if present
func (c *AttackListContext) Remove(t game.AttackType) {
	kept := make([]game.AttackType, 0, len(c.Types))
	for _, existing := range c.Types {
		if existing != t {
			kept = append(kept, existing)
		}
	}
	c.Types = kept
}

func (c AttackListContext) clone() AttackListContext {
	c.Types = append([]game.AttackType(nil), c.Types...)
	return c
}

// CaptureContext carries the participants of a resolved attack.
// Handlers may mutate the participating dice through their primitives and may
// replace an entry with the same die or one of its descendants.
type CaptureContext struct {
	Game      *game.Game
	Type      game.AttackType
	Attackers []*die.Die
	Defenders []*die.Die
	Roller    dice.Roller

	// Applied lists the skills whose handler reported a mutation, in dispatch order
	Applied []die.SkillID
}

func (c CaptureContext) clone() CaptureContext {
	c.Attackers = append([]*die.Die(nil), c.Attackers...)
	c.Defenders = append([]*die.Die(nil), c.Defenders...)
	c.Applied = append([]die.SkillID(nil), c.Applied...)
	return c
}

// ValidityContext is the input of the capability checks.
// Attackers and Defenders hold the full proposed combination.
type ValidityContext struct {
	Game      *game.Game
	Type      game.AttackType
	Die       *die.Die
	Attackers []*die.Die
	Defenders []*die.Die
}
