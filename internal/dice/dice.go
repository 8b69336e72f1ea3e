package dice

import (
	"errors"
	"fmt"
)

// ErrInvalidSides is returned when a die with fewer than one side is rolled
var ErrInvalidSides = errors.New("invalid dice size")

// RollResult holds the faces of a roll over one or more sub-dice
type RollResult struct {
	Sides []int
	Rolls []int
	Total int
}

// Roll rolls one face per entry of sides with the given roller.
// Twin dice pass two entries and use the total.
func Roll(r Roller, sides ...int) (*RollResult, error) {
	if len(sides) == 0 {
		return nil, errors.New("invalid dice count")
	}

	out := &RollResult{
		Sides: append([]int(nil), sides...),
		Rolls: make([]int, len(sides)),
	}
	for i, s := range sides {
		if s < 1 {
			return nil, ErrInvalidSides
		}
		face, err := r.RollFace(s)
		if err != nil {
			return nil, err
		}
		if face < 1 || face > s {
			return nil, fmt.Errorf("roller returned %d for d%d", face, s)
		}
		out.Rolls[i] = face
		out.Total += face
	}

	return out, nil
}
