package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller produces new face values for dice
// This allows us to inject different implementations for testing and replays
type Roller interface {
	// RollFace returns a face value in [1, sides]
	RollFace(sides int) (int, error)
}
