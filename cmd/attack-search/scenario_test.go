package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/buttonmen-rules/internal/config"
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/die"
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/game"
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/game/combat/attack"
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/skill"
	"github.com/KirkDiggler/buttonmen-rules/internal/repositories/actionlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario(t *testing.T) {
	s, err := loadScenario(filepath.Join("testdata", "berserk.json"))
	require.NoError(t, err)

	g, err := s.game(skill.Default())
	require.NoError(t, err)

	assert.Equal(t, "game-berserk", g.ID)
	assert.Equal(t, game.StateStartTurn, g.State)
	assert.Equal(t, 2, g.Round)
	require.Len(t, g.Attacker.Dice, 3)
	require.Len(t, g.Defender.Dice, 4)

	assert.Equal(t, "B(20):7", g.Attacker.Dice[0].RecipeStatus())
	assert.Equal(t, "z(X=12):5", g.Attacker.Dice[1].RecipeStatus())
	assert.Equal(t, []int{2, 4}, g.Attacker.Dice[2].SubValues)
	assert.Equal(t, "d3", g.Defender.Dice[2].ID)
	assert.Equal(t, die.PlayerID("p2"), g.Defender.Dice[2].Owner)
}

func TestDieJSON_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		entry dieJSON
	}{
		{name: "bad recipe", entry: dieJSON{Recipe: "(x)"}},
		{name: "value too high", entry: dieJSON{Recipe: "(6)", Value: 7}},
		{name: "sides on a plain die", entry: dieJSON{Recipe: "(6)", Sides: 8}},
		{name: "swing out of range", entry: dieJSON{Recipe: "(X)", Sides: 30}},
		{name: "twin without faces", entry: dieJSON{Recipe: "(4,4)", Value: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.entry.die("a1", "p1", skill.Default())
			assert.Error(t, err)
		})
	}
}

func TestRun_ResolvesPickedProposal(t *testing.T) {
	t.Setenv("ROLLER_SERVER_SEED", "server")
	cfg, err := config.Load()
	require.NoError(t, err)

	var out bytes.Buffer
	err = run(context.Background(), cfg, actionlog.NewInMemoryRepository(), filepath.Join("testdata", "berserk.json"), attack.Berserk, 0, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Berserk: 1 proposal(s)")
	assert.Contains(t, out.String(), "[a1] -> [d1 d2]")
	assert.Contains(t, out.String(), "Fingerprint: ")
	assert.Contains(t, out.String(), "Action log of game-berserk: 1 entries")
}
