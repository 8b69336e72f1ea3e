package game_test

import (
	"testing"

	"github.com/KirkDiggler/buttonmen-rules/internal/domain/die"
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/game"
	"github.com/stretchr/testify/assert"
)

func TestStateNames(t *testing.T) {
	assert.Equal(t, "START_TURN", game.StateStartTurn.String())
	assert.Equal(t, "UNKNOWN", game.State(42).String())

	state, ok := game.ParseState("choose_auxiliary_dice")
	assert.True(t, ok)
	assert.Equal(t, game.StateChooseAuxiliaryDice, state)

	_, ok = game.ParseState("lobby")
	assert.False(t, ok)
}

func TestRoster(t *testing.T) {
	a := die.New("a", "p1", die.Plain(6))
	b := die.New("b", "p1", die.Plain(8))
	b.OutOfPlay = true
	r := game.Roster{Player: "p1", Dice: []*die.Die{a, b}}

	assert.Equal(t, []*die.Die{a}, r.Active())

	found, idx := r.Find("b")
	assert.Same(t, b, found)
	assert.Equal(t, 1, idx)

	found, idx = r.Find("missing")
	assert.Nil(t, found)
	assert.Equal(t, -1, idx)
}

func TestGame(t *testing.T) {
	g := &game.Game{
		State:    game.StateSpecifyDice,
		Attacker: game.Roster{Player: "p1", Dice: []*die.Die{die.New("a", "p1", die.Plain(6))}},
		Defender: game.Roster{Player: "p2", Dice: []*die.Die{die.New("b", "p2", die.Plain(6))}},
	}
	assert.False(t, g.AttackPhase())
	g.State = game.StateStartTurn
	assert.True(t, g.AttackPhase())
	assert.Len(t, g.AllDice(), 2)
}
