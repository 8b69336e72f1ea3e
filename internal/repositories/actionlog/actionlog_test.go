package actionlog_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/buttonmen-rules/internal/domain/die"
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/game"
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/game/combat/attack"
	attackrecord "github.com/KirkDiggler/buttonmen-rules/internal/entities/attack"
	"github.com/KirkDiggler/buttonmen-rules/internal/events"
	"github.com/KirkDiggler/buttonmen-rules/internal/repositories/actionlog"
	"github.com/KirkDiggler/buttonmen-rules/internal/testutils"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func testRecord(t testing.TB, id, gameID string) *attackrecord.Record {
	attacker := testutils.ParseTestDie(t, "a1", testutils.AttackerID, "(6):5")
	defender := testutils.ParseTestDie(t, "d1", testutils.DefenderID, "(8):3")
	pre := attackrecord.NewSnapshot([]*die.Die{attacker}, []*die.Die{defender})

	return attackrecord.NewRecord(attackrecord.Params{
		ID:       id,
		GameID:   gameID,
		Round:    1,
		Type:     game.AttackPower,
		State:    game.StateStartTurn,
		Pre:      pre,
		Post:     pre,
		Captured: []string{"d1"},
	})
}

func TestNewEntry(t *testing.T) {
	rec := testRecord(t, "attack-1", "game-1")

	entry, err := actionlog.NewEntry(rec)
	require.NoError(t, err)

	fingerprint, err := rec.Fingerprint()
	require.NoError(t, err)
	canonical, err := rec.Canonical()
	require.NoError(t, err)

	assert.Equal(t, "attack-1", entry.ID)
	assert.Equal(t, "Power", entry.AttackType)
	assert.Equal(t, fingerprint, entry.Fingerprint)
	assert.Equal(t, json.RawMessage(canonical), entry.Record)
	assert.True(t, entry.Verify())

	entry.Record = json.RawMessage(`{"id":"forged"}`)
	assert.False(t, entry.Verify())

	_, err = actionlog.NewEntry(nil)
	assert.Error(t, err)
}

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := actionlog.NewInMemoryRepository()

	require.NoError(t, repo.Append(ctx, testRecord(t, "attack-1", "game-1")))
	require.NoError(t, repo.Append(ctx, testRecord(t, "attack-2", "game-1")))
	require.NoError(t, repo.Append(ctx, testRecord(t, "attack-3", "game-2")))

	entries, err := repo.List(ctx, "game-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "attack-1", entries[0].ID)
	assert.Equal(t, "attack-2", entries[1].ID)

	entries, err = repo.List(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListener(t *testing.T) {
	repo := actionlog.NewInMemoryRepository()
	bus := events.NewBus()
	actionlog.NewListener(repo).Subscribe(bus)
	proposal := attack.Proposal{Type: attack.Power, Attackers: []string{"a1"}, Defenders: []string{"d1"}}

	event := events.NewResolutionEvent(events.EventTypeAttackRecorded, "game-1", "recorded", proposal)
	event.Record = testRecord(t, "attack-1", "game-1")
	require.NoError(t, bus.Emit(event))

	// other phases carry no record
	require.NoError(t, bus.Emit(events.NewResolutionEvent(events.EventTypeAttackApplied, "game-1", "applied", proposal)))

	entries, err := repo.List(context.Background(), "game-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Verify())

	assert.Panics(t, func() { actionlog.NewListener(nil) })
}

func TestListener_UsesResolveContext(t *testing.T) {
	repo := actionlog.NewInMemoryRepository()
	listener := actionlog.NewListener(repo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	event := events.NewResolutionEvent(events.EventTypeAttackRecorded, "game-1", "recorded", attack.Proposal{Type: attack.Power})
	event.Ctx = ctx
	event.Record = testRecord(t, "attack-1", "game-1")

	err := listener.HandleEvent(event)
	assert.ErrorIs(t, err, context.Canceled)

	entries, err := repo.List(context.Background(), "game-1")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       actionlog.Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = actionlog.NewRedisRepository(&actionlog.RedisRepoConfig{
		Client: s.mockClient,
		LogTTL: time.Hour,
	})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) TestAppend() {
	ctx := context.Background()
	rec := testRecord(s.T(), "attack-1", "game-1")

	entry, err := actionlog.NewEntry(rec)
	s.Require().NoError(err)
	data, err := json.Marshal(entry)
	s.Require().NoError(err)

	// Happy path
	s.mock.ExpectTxPipeline()
	s.mock.ExpectRPush("game:game-1:attacks", data).SetVal(1)
	s.mock.ExpectExpire("game:game-1:attacks", time.Hour).SetVal(true)
	s.mock.ExpectTxPipelineExec()
	s.NoError(s.repo.Append(ctx, rec))

	// Dependency error
	s.mock.ExpectTxPipeline()
	s.mock.ExpectRPush("game:game-1:attacks", data).SetErr(errors.New("redis error"))
	s.Error(s.repo.Append(ctx, rec))
}

func (s *RedisRepoTestSuite) TestAppend_WithoutTTL() {
	repo := actionlog.NewRedisRepository(&actionlog.RedisRepoConfig{Client: s.mockClient})
	rec := testRecord(s.T(), "attack-1", "game-1")

	entry, err := actionlog.NewEntry(rec)
	s.Require().NoError(err)
	data, err := json.Marshal(entry)
	s.Require().NoError(err)

	s.mock.ExpectTxPipeline()
	s.mock.ExpectRPush("game:game-1:attacks", data).SetVal(1)
	s.mock.ExpectTxPipelineExec()
	s.NoError(repo.Append(context.Background(), rec))
}

func (s *RedisRepoTestSuite) TestList() {
	ctx := context.Background()

	first, err := actionlog.NewEntry(testRecord(s.T(), "attack-1", "game-1"))
	s.Require().NoError(err)
	second, err := actionlog.NewEntry(testRecord(s.T(), "attack-2", "game-1"))
	s.Require().NoError(err)
	a, err := json.Marshal(first)
	s.Require().NoError(err)
	b, err := json.Marshal(second)
	s.Require().NoError(err)

	s.mock.ExpectLRange("game:game-1:attacks", 0, -1).SetVal([]string{string(a), string(b)})
	entries, err := s.repo.List(ctx, "game-1")
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal("attack-2", entries[1].ID)
	s.True(entries[0].Verify())
	s.True(entries[1].Verify())

	s.mock.ExpectLRange("game:game-1:attacks", 0, -1).SetVal([]string{"not json"})
	_, err = s.repo.List(ctx, "game-1")
	s.Error(err)

	s.mock.ExpectLRange("game:game-1:attacks", 0, -1).SetErr(errors.New("redis error"))
	_, err = s.repo.List(ctx, "game-1")
	s.Error(err)
}

func TestNewRedisRepository_RequiresClient(t *testing.T) {
	assert.Panics(t, func() { actionlog.NewRedisRepository(nil) })
	assert.Panics(t, func() { actionlog.NewRedisRepository(&actionlog.RedisRepoConfig{}) })
}
