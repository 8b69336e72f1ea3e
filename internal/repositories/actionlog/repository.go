package actionlog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	attackrecord "github.com/KirkDiggler/buttonmen-rules/internal/entities/attack"
	dnderr "github.com/KirkDiggler/buttonmen-rules/internal/errors"
)

// Repository defines the interface for attack record storage operations
type Repository interface {
	// Append adds a record to the end of its game's log
	Append(ctx context.Context, record *attackrecord.Record) error

	// List returns the log of a game, oldest first
	List(ctx context.Context, gameID string) ([]Entry, error)
}

// Entry is a stored attack record. Record holds the canonical JSON the
// fingerprint was computed over.
type Entry struct {
	ID          string          `json:"id"`
	GameID      string          `json:"gameId"`
	Round       int             `json:"round"`
	AttackType  string          `json:"attackType"`
	Fingerprint string          `json:"fingerprint"`
	Record      json.RawMessage `json:"record"`
}

// NewEntry canonicalizes a record for storage
func NewEntry(record *attackrecord.Record) (Entry, error) {
	if record == nil {
		return Entry{}, dnderr.InvalidArgument("record is required")
	}

	canonical, err := record.Canonical()
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		ID:          record.ID(),
		GameID:      record.GameID(),
		Round:       record.Round(),
		AttackType:  string(record.Type()),
		Fingerprint: fingerprint(canonical),
		Record:      canonical,
	}, nil
}

// Verify reports whether the stored bytes still match the fingerprint
func (e Entry) Verify() bool {
	return fingerprint(e.Record) == e.Fingerprint
}

func fingerprint(canonical []byte) string {
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:])
}
