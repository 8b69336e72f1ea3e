package testutils

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/KirkDiggler/buttonmen-rules/internal/domain/die"
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/game"
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/skill"
	"github.com/stretchr/testify/require"
)

const (
	AttackerID game.PlayerID = "p1"
	DefenderID game.PlayerID = "p2"
)

// CreateTestDie parses a recipe with the builtin skills and gives it a value.
// Swing and option dice get the smallest size that can show the value; a value
// of 0 leaves the die unrolled.
func CreateTestDie(t testing.TB, id string, owner die.PlayerID, recipe string, value int) *die.Die {
	t.Helper()

	d, err := die.ParseRecipe(id, owner, recipe, skill.Default())
	require.NoError(t, err)

	switch d.Size.Kind {
	case die.SizeSwing:
		low, high, _ := die.SwingRange(d.Size.Swing)
		require.LessOrEqual(t, value, high, "value %d does not fit %s", value, recipe)
		require.NoError(t, d.SetSwing(max(low, value)))
	case die.SizeOption:
		for _, opt := range d.Size.Sides {
			if opt >= value {
				require.NoError(t, d.ChooseOption(opt))
				break
			}
		}
	}

	require.LessOrEqual(t, value, d.Sides, "value %d does not fit %s", value, recipe)
	d.Value = value
	if d.Size.Kind == die.SizeTwin && value > 0 {
		first := max(1, min(value-1, d.Size.Sides[0]))
		d.SubValues = []int{first, value - first}
	}
	return d
}

// ParseTestDie reads "recipe:value", e.g. "B(20):7"
func ParseTestDie(t testing.TB, id string, owner die.PlayerID, status string) *die.Die {
	t.Helper()

	recipe, valueText, ok := strings.Cut(status, ":")
	require.True(t, ok, "die %q needs recipe:value", status)
	value, err := strconv.Atoi(valueText)
	require.NoError(t, err)
	return CreateTestDie(t, id, owner, recipe, value)
}

// CreateTestRoster builds a roster with ids prefix1, prefix2, ...
func CreateTestRoster(t testing.TB, player game.PlayerID, prefix string, statuses ...string) game.Roster {
	t.Helper()

	roster := game.Roster{Player: player, Dice: make([]*die.Die, len(statuses))}
	for i, status := range statuses {
		roster.Dice[i] = ParseTestDie(t, fmt.Sprintf("%s%d", prefix, i+1), player, status)
	}
	return roster
}

// CreateTestGame builds a game in the attack phase. Attacker dice are a1, a2, ...
// and defender dice d1, d2, ...
func CreateTestGame(t testing.TB, attacker, defender []string) *game.Game {
	t.Helper()

	return &game.Game{
		ID:       "game-1",
		State:    game.StateStartTurn,
		Round:    1,
		Attacker: CreateTestRoster(t, AttackerID, "a", attacker...),
		Defender: CreateTestRoster(t, DefenderID, "d", defender...),
	}
}

// SnapshotDice deep copies every die of the game for later comparison
func SnapshotDice(g *game.Game) []*die.Die {
	all := g.AllDice()
	out := make([]*die.Die, len(all))
	for i, d := range all {
		out[i] = d.Clone()
	}
	return out
}
