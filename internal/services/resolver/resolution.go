package resolver

import (
	"context"
	"log"
	"slices"

	"github.com/KirkDiggler/buttonmen-rules/internal/domain/die"
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/game"
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/game/combat/attack"
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/skill"
	attackrecord "github.com/KirkDiggler/buttonmen-rules/internal/entities/attack"
	dnderr "github.com/KirkDiggler/buttonmen-rules/internal/errors"
	"github.com/KirkDiggler/buttonmen-rules/internal/events"
)

// resolution is one pass through the attack life cycle. Everything up to the
// commit works on clones, so an error leaves the game untouched. Events are
// queued and only delivered once the game lock is released.
type resolution struct {
	*service
	ctx       context.Context
	game      *game.Game
	attackEnv attack.Env
	proposal  attack.Proposal
	phase     Phase

	typ       attack.Type
	attackers participants
	defenders participants

	pending []*events.ResolutionEvent
}

func (r *resolution) run() (*attackrecord.Record, error) {
	r.phase = PhaseProposed
	if err := r.validate(); err != nil {
		return nil, err
	}
	r.phase = PhaseValidated
	r.queue(r.event(events.EventTypeAttackValidated))

	attackers, defenders := r.attackers.clones(), r.defenders.clones()
	effects, err := r.typ.Apply(r.attackEnv, attackers, defenders)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to apply %s attack", r.typ.Name).
			WithMeta(dnderr.MetaAttackType, string(r.typ.Name))
	}
	r.phase = PhaseApplied
	r.queue(r.event(events.EventTypeAttackApplied))

	captured, err := r.skills.DispatchCapture(append(slices.Clone(attackers), defenders...), skill.CaptureContext{
		Game:      r.game,
		Type:      r.typ.Name,
		Attackers: attackers,
		Defenders: defenders,
		Roller:    r.roller,
	})
	if err != nil {
		return nil, err
	}
	r.phase = PhaseCaptureResolved
	r.queue(r.event(events.EventTypeCaptureResolved))

	post := attackrecord.Snapshot{
		Attackers: postViews(r.attackers.dice, captured.Attackers, effects),
		Defenders: postViews(r.defenders.dice, captured.Defenders, effects),
	}
	record := attackrecord.NewRecord(attackrecord.Params{
		ID:            r.uuidGenerator.New(),
		GameID:        r.game.ID,
		Round:         r.game.Round,
		Type:          r.typ.Name,
		State:         r.game.State,
		Pre:           attackrecord.NewSnapshot(r.attackers.dice, r.defenders.dice),
		Post:          post,
		Captured:      effects.Captured,
		AppliedSkills: captured.Applied,
	})

	r.commit(captured.Attackers, captured.Defenders)
	r.phase = PhaseRecorded

	log.Printf("Resolver: Recorded %s", record)
	event := r.event(events.EventTypeAttackRecorded)
	event.Record = record
	r.queue(event)

	return record, nil
}

// validate runs the Proposed checks. Referencing a die that is out of play is
// an engine bug; everything else is a rejected proposal.
func (r *resolution) validate() error {
	typ, ok := r.attackTypes.Lookup(r.proposal.Type)
	if !ok {
		return r.invalid("unknown attack type %q", r.proposal.Type)
	}
	r.typ = typ

	var err error
	if r.attackers, err = r.lookup(&r.game.Attacker, r.proposal.Attackers, "attacker"); err != nil {
		return err
	}
	if r.defenders, err = r.lookup(&r.game.Defender, r.proposal.Defenders, "defender"); err != nil {
		return err
	}

	legal, err := r.attackTypes.LegalTypes(r.attackEnv)
	if err != nil {
		return err
	}
	if !slices.Contains(legal, typ.Name) {
		return r.invalid("%s is not a legal attack type now (legal: %v)", typ.Name, legal)
	}
	if !typ.Validate(r.attackEnv, r.attackers.dice, r.defenders.dice) {
		return r.invalid("%s attack %v -> %v is not valid", typ.Name, r.proposal.Attackers, r.proposal.Defenders)
	}
	return nil
}

func (r *resolution) lookup(roster *game.Roster, ids []string, side string) (participants, error) {
	var p participants
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return p, r.invalid("%s %s listed twice", side, id)
		}
		seen[id] = true

		d, idx := roster.Find(id)
		if d == nil {
			return p, r.invalid("unknown %s die %s", side, id)
		}
		if d.OutOfPlay {
			return p, dnderr.InternalInconsistencyf("%s die %s is out of play", side, id).
				WithMeta(dnderr.MetaDieID, id).
				WithMeta(dnderr.MetaAttackType, string(r.proposal.Type)).
				WithMeta(dnderr.MetaGameID, r.game.ID)
		}
		p.dice = append(p.dice, d)
		p.indices = append(p.indices, idx)
	}
	return p, nil
}

// commit swaps the resolved dice into the rosters in place
func (r *resolution) commit(attackers, defenders []*die.Die) {
	for i, idx := range r.attackers.indices {
		r.game.Attacker.Dice[idx] = attackers[i]
	}
	for i, idx := range r.defenders.indices {
		r.game.Defender.Dice[idx] = defenders[i]
	}
}

func (r *resolution) invalid(format string, args ...any) error {
	return dnderr.InvalidAttackf(format, args...).
		WithMeta(dnderr.MetaAttackType, string(r.proposal.Type)).
		WithMeta(dnderr.MetaGameID, r.game.ID)
}

func (r *resolution) event(eventType events.EventType) *events.ResolutionEvent {
	event := events.NewResolutionEvent(eventType, r.game.ID, r.phase.String(), r.proposal)
	event.Ctx = r.ctx
	return event
}

func (r *resolution) queue(event *events.ResolutionEvent) {
	r.pending = append(r.pending, event)
}

// postViews snapshots the resolved dice with the transition fields the action
// log needs to describe what happened to each of them
func postViews(before, after []*die.Die, effects attack.Effects) []die.View {
	out := make([]die.View, len(after))
	for i, d := range after {
		v := d.View()
		pre := before[i]

		switch {
		case d.Parent == pre.ID:
			v.RecipeBeforeSplitting = pre.Recipe()
		case d.Sides > pre.Sides:
			v.RecipeBeforeGrowing = pre.Recipe()
		case d.Sides < pre.Sides:
			v.RecipeBeforeShrinking = pre.Recipe()
		}
		if value, ok := effects.ValueAfterTrip[pre.ID]; ok {
			v.ValueAfterTripAttack = &value
		}
		out[i] = v
	}
	return out
}
