package game

import "strings"

// State is the phase of the game state machine the engine reads.
// The state machine itself lives outside the engine.
type State int

const (
	StateSpecifyDice State = iota
	StateChooseAuxiliaryDice
	StateStartTurn
	StateEndTurn
	StateEndGame
)

var stateNames = [...]string{
	"SPECIFY_DICE",
	"CHOOSE_AUXILIARY_DICE",
	"START_TURN",
	"END_TURN",
	"END_GAME",
}

// String returns the string representation of the state
func (s State) String() string {
	if s < StateSpecifyDice || int(s) >= len(stateNames) {
		return "UNKNOWN"
	}
	return stateNames[s]
}

// ParseState accepts START_TURN or start_turn style names
func ParseState(name string) (State, bool) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range stateNames {
		if n == upper {
			return State(i), true
		}
	}
	return 0, false
}

// AttackType names an attack type (Power, Skill, Speed, ...)
type AttackType string

const (
	AttackPower   AttackType = "Power"
	AttackSkill   AttackType = "Skill"
	AttackSpeed   AttackType = "Speed"
	AttackBerserk AttackType = "Berserk"
	AttackTrip    AttackType = "Trip"
	AttackShadow  AttackType = "Shadow"
	AttackPass    AttackType = "Pass"
)
