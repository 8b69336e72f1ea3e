package game

import (
	"sync"

	"github.com/KirkDiggler/buttonmen-rules/internal/domain/die"
)

// PlayerID identifies a player
type PlayerID = die.PlayerID

// Roster is the ordered dice of one player
type Roster struct {
	Player PlayerID
	Dice   []*die.Die
}

// Active returns the dice still in play, in roster order
func (r *Roster) Active() []*die.Die {
	active := make([]*die.Die, 0, len(r.Dice))
	for _, d := range r.Dice {
		if d != nil && !d.OutOfPlay {
			active = append(active, d)
		}
	}
	return active
}

// Find returns the die with the given id and its roster index, or -1
func (r *Roster) Find(id string) (*die.Die, int) {
	for i, d := range r.Dice {
		if d != nil && d.ID == id {
			return d, i
		}
	}
	return nil, -1
}

// Game is the minimal game state the attack engine reads: the phase, the round
// and the rosters of the attacking and defending player.
//
// One attack resolution at a time may run against a game; the resolver takes the
// game lock for its duration.
type Game struct {
	ID       string
	State    State
	Round    int
	Attacker Roster
	Defender Roster

	mu sync.Mutex
}

// Lock serializes resolutions against this game
func (g *Game) Lock() { g.mu.Lock() }

// Unlock releases the game lock
func (g *Game) Unlock() { g.mu.Unlock() }

// AttackPhase reports whether attacks may be made in the current state
func (g *Game) AttackPhase() bool {
	return g.State == StateStartTurn
}

// AllDice returns every die of both rosters, attacker first
func (g *Game) AllDice() []*die.Die {
	all := make([]*die.Die, 0, len(g.Attacker.Dice)+len(g.Defender.Dice))
	all = append(all, g.Attacker.Dice...)
	return append(all, g.Defender.Dice...)
}
