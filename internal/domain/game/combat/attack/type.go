package attack

import (
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/die"
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/game"
)

// Name is the unique key of an attack type
type Name = game.AttackType

const (
	Power   = game.AttackPower
	Skill   = game.AttackSkill
	Speed   = game.AttackSpeed
	Berserk = game.AttackBerserk
	Trip    = game.AttackTrip
	Shadow  = game.AttackShadow
	Pass    = game.AttackPass
)

// Effects describes what Apply did to the participants
type Effects struct {
	// Captured holds the ids of the defenders that changed side
	Captured []string
	// ValueAfterTrip holds the post-trip value of each tripped defender
	ValueAfterTrip map[string]int
}

// Type is one entry of the attack strategy table. The functions are pure over
// the environment except Apply, which mutates the dice it is handed.
type Type struct {
	Name Name

	// IncompatibleWith lists the types this one suppresses when both are offered
	IncompatibleWith []Name

	// Base types are offered to every die before the attack_list hook runs
	Base bool

	// Fallback types are legal only when no other type has a proposal
	Fallback bool

	// RerollsAttackers makes the standard apply reroll the attackers after capture
	RerollsAttackers bool

	ValidateFunc func(env Env, attackers, defenders []*die.Die) bool
	FindFunc     func(env Env) ([]Proposal, error)
	ApplyFunc    func(t Type, env Env, attackers, defenders []*die.Die) (Effects, error)
}

// Validate reports whether the combination is a legal attack of this type
func (t Type) Validate(env Env, attackers, defenders []*die.Die) bool {
	if t.ValidateFunc == nil {
		return false
	}
	return t.ValidateFunc(env, attackers, defenders)
}

// Find enumerates every distinct legal combination of this type
func (t Type) Find(env Env) ([]Proposal, error) {
	if t.FindFunc == nil {
		return nil, nil
	}
	return t.FindFunc(env)
}

// Apply performs the attack on the dice it is given. Callers hand it clones.
func (t Type) Apply(env Env, attackers, defenders []*die.Die) (Effects, error) {
	if t.ApplyFunc == nil {
		return StandardApply(t, env, attackers, defenders)
	}
	return t.ApplyFunc(t, env, attackers, defenders)
}

// Suppresses reports whether this type suppresses the other one
func (t Type) Suppresses(other Name) bool {
	for _, n := range t.IncompatibleWith {
		if n == other {
			return true
		}
	}
	return false
}
