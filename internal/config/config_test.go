package config_test

import (
	"testing"
	"time"

	"github.com/KirkDiggler/buttonmen-rules/internal/config"
	"github.com/KirkDiggler/buttonmen-rules/internal/dice"
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/game/combat/attack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, attack.DefaultLimits(), cfg.Limits())
	assert.False(t, cfg.LogEvents)
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, 24*time.Hour, cfg.Redis.LogTTL)
	assert.IsType(t, dice.NewRandomRoller(), cfg.NewRoller())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SEARCH_MAX_DICE", "10")
	t.Setenv("SEARCH_BRUTE_FORCE", "4")
	t.Setenv("ROLLER_SERVER_SEED", "server")
	t.Setenv("ROLLER_CLIENT_SEED", "client")
	t.Setenv("ROLLER_NONCE", "3")
	t.Setenv("LOG_EVENTS", "true")
	t.Setenv("REDIS_URL", "redis://localhost:6379/1")
	t.Setenv("ACTION_LOG_TTL", "90m")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, attack.SearchLimits{MaxDice: 10, BruteForceThreshold: 4}, cfg.Limits())
	assert.True(t, cfg.LogEvents)
	assert.Equal(t, uint64(3), cfg.Roller.Nonce)
	assert.Equal(t, "redis://localhost:6379/1", cfg.Redis.URL)
	assert.Equal(t, 90*time.Minute, cfg.Redis.LogTTL)

	roller, ok := cfg.NewRoller().(*dice.SeededRoller)
	require.True(t, ok)
	expected := dice.NewSeededRoller("server", "client", 3)
	for i := 0; i < 5; i++ {
		got, err := roller.RollFace(20)
		require.NoError(t, err)
		want, err := expected.RollFace(20)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "not a number", key: "SEARCH_MAX_DICE", value: "many"},
		{name: "zero dice", key: "SEARCH_MAX_DICE", value: "0"},
		{name: "negative threshold", key: "SEARCH_BRUTE_FORCE", value: "-1"},
		{name: "bad bool", key: "LOG_EVENTS", value: "maybe"},
		{name: "bad duration", key: "ACTION_LOG_TTL", value: "soon"},
		{name: "negative ttl", key: "ACTION_LOG_TTL", value: "-1h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
