package dice

import "math/rand/v2"

// randomRoller implements Roller with the process-wide math/rand source
type randomRoller struct{}

// NewRandomRoller creates a new random dice roller
func NewRandomRoller() Roller {
	return &randomRoller{}
}

// RollFace implements Roller.RollFace
func (r *randomRoller) RollFace(sides int) (int, error) {
	if sides < 1 {
		return 0, ErrInvalidSides
	}
	return rand.IntN(sides) + 1, nil
}
