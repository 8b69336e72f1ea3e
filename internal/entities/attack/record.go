package attack

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gowebpki/jcs"

	"github.com/KirkDiggler/buttonmen-rules/internal/domain/die"
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/game"
	dnderr "github.com/KirkDiggler/buttonmen-rules/internal/errors"
)

// Snapshot is the view of the participants at one point of a resolution
type Snapshot struct {
	Attackers []die.View `json:"attacker"`
	Defenders []die.View `json:"defender"`
}

// NewSnapshot takes views of the dice
func NewSnapshot(attackers, defenders []*die.Die) Snapshot {
	return Snapshot{Attackers: views(attackers), Defenders: views(defenders)}
}

func views(dice []*die.Die) []die.View {
	out := make([]die.View, len(dice))
	for i, d := range dice {
		out[i] = d.View()
	}
	return out
}

func (s Snapshot) clone() Snapshot {
	return Snapshot{Attackers: cloneViews(s.Attackers), Defenders: cloneViews(s.Defenders)}
}

func cloneViews(in []die.View) []die.View {
	out := make([]die.View, len(in))
	for i, v := range in {
		out[i] = v.Clone()
	}
	return out
}

// Turndown is one value decrease paid toward a Fire-assisted attack
type Turndown struct {
	DieID string `json:"dieId"`
	From  int    `json:"from"`
	To    int    `json:"to"`
}

// FireCache is the turndown metadata of an attack, when any was paid
type FireCache struct {
	Turndowns []Turndown `json:"turndowns"`
}

// Params are the inputs of NewRecord
type Params struct {
	ID            string
	GameID        string
	Round         int
	Type          game.AttackType
	State         game.State
	Pre           Snapshot
	Post          Snapshot
	Captured      []string
	AppliedSkills []die.SkillID
	FireCache     *FireCache
}

// Record is the immutable outcome of one resolved attack: the pre and post
// snapshots the action log renders. Accessors hand out copies.
type Record struct {
	p Params
}

// NewRecord freezes the params into a record
func NewRecord(p Params) *Record {
	p.Pre = p.Pre.clone()
	p.Post = p.Post.clone()
	p.Captured = append([]string{}, p.Captured...)
	p.AppliedSkills = append([]die.SkillID{}, p.AppliedSkills...)
	if p.FireCache != nil {
		p.FireCache = &FireCache{Turndowns: append([]Turndown{}, p.FireCache.Turndowns...)}
	}
	return &Record{p: p}
}

func (r *Record) ID() string            { return r.p.ID }
func (r *Record) GameID() string        { return r.p.GameID }
func (r *Record) Round() int            { return r.p.Round }
func (r *Record) Type() game.AttackType { return r.p.Type }
func (r *Record) State() game.State     { return r.p.State }
func (r *Record) Pre() Snapshot         { return r.p.Pre.clone() }
func (r *Record) Post() Snapshot        { return r.p.Post.clone() }

// Captured returns the ids of the defenders that changed side
func (r *Record) Captured() []string {
	return append([]string{}, r.p.Captured...)
}

// AppliedSkills returns the skills whose capture hook changed a die
func (r *Record) AppliedSkills() []die.SkillID {
	return append([]die.SkillID{}, r.p.AppliedSkills...)
}

// FireCache returns the turndown metadata or nil
func (r *Record) FireCache() *FireCache {
	if r.p.FireCache == nil {
		return nil
	}
	return &FireCache{Turndowns: append([]Turndown{}, r.p.FireCache.Turndowns...)}
}

type recordJSON struct {
	ID            string          `json:"id"`
	GameID        string          `json:"gameId"`
	Round         int             `json:"round"`
	Type          game.AttackType `json:"attackType"`
	State         string          `json:"gameState"`
	Pre           Snapshot        `json:"preAttackDice"`
	Post          Snapshot        `json:"postAttackDice"`
	Captured      []string        `json:"captured"`
	AppliedSkills []die.SkillID   `json:"appliedSkills"`
	FireCache     *FireCache      `json:"fireCache,omitempty"`
}

// MarshalJSON encodes the record for the action log
func (r *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		ID:            r.p.ID,
		GameID:        r.p.GameID,
		Round:         r.p.Round,
		Type:          r.p.Type,
		State:         r.p.State.String(),
		Pre:           r.p.Pre,
		Post:          r.p.Post,
		Captured:      r.p.Captured,
		AppliedSkills: r.p.AppliedSkills,
		FireCache:     r.p.FireCache,
	})
}

// Canonical returns the JCS (RFC 8785) encoding of the record
func (r *Record) Canonical() ([]byte, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to encode attack record")
	}
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to canonicalize attack record")
	}
	return canonical, nil
}

// Fingerprint is the hex sha256 of the canonical encoding. Replaying a game
// from the same seeds reproduces the same fingerprints.
func (r *Record) Fingerprint() (string, error) {
	canonical, err := r.Canonical()
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

func (r *Record) String() string {
	attackers := make([]string, len(r.p.Pre.Attackers))
	for i, v := range r.p.Pre.Attackers {
		attackers[i] = v.RecipeStatus
	}
	defenders := make([]string, len(r.p.Pre.Defenders))
	for i, v := range r.p.Pre.Defenders {
		defenders[i] = v.RecipeStatus
	}
	if r.p.Type == game.AttackPass {
		return fmt.Sprintf("round %d: %s", r.p.Round, r.p.Type)
	}
	return fmt.Sprintf("round %d: %s [%s] -> [%s], captured %d",
		r.p.Round, r.p.Type, strings.Join(attackers, " "), strings.Join(defenders, " "), len(r.p.Captured))
}
