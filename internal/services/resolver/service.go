package resolver

import (
	"context"
	"log"
	"slices"

	"github.com/KirkDiggler/buttonmen-rules/internal/dice"
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/die"
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/game"
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/game/combat/attack"
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/skill"
	attackrecord "github.com/KirkDiggler/buttonmen-rules/internal/entities/attack"
	dnderr "github.com/KirkDiggler/buttonmen-rules/internal/errors"
	"github.com/KirkDiggler/buttonmen-rules/internal/events"
	"github.com/KirkDiggler/buttonmen-rules/internal/uuid"
)

// Service lists, searches and resolves attacks against a game
type Service interface {
	// ListLegalAttackTypes returns the attack types with at least one legal
	// combination, or Pass when there is none
	ListLegalAttackTypes(ctx context.Context, g *game.Game) ([]attack.Name, error)

	// FindAttacks enumerates the legal combinations of one attack type
	FindAttacks(ctx context.Context, g *game.Game, name attack.Name) ([]attack.Proposal, error)

	// Resolve validates and performs an attack. On error no die of the game changed.
	Resolve(ctx context.Context, g *game.Game, proposal attack.Proposal) (*attackrecord.Record, error)
}

type service struct {
	attackTypes   *attack.Registry
	skills        *skill.Registry
	roller        dice.Roller
	uuidGenerator uuid.Generator
	eventBus      *events.Bus
	limits        attack.SearchLimits
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	AttackTypes   *attack.Registry
	Skills        *skill.Registry
	Roller        dice.Roller
	UUIDGenerator uuid.Generator
	EventBus      *events.Bus
	Limits        attack.SearchLimits
}

// NewService creates a new resolver service. Registries are frozen here.
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("config is required")
	}
	if cfg.Roller == nil {
		panic("roller is required")
	}

	svc := &service{
		attackTypes: cfg.AttackTypes,
		skills:      cfg.Skills,
		roller:      cfg.Roller,
		eventBus:    cfg.EventBus,
		limits:      cfg.Limits,
	}

	if svc.attackTypes == nil {
		svc.attackTypes = attack.Default()
	}
	if svc.skills == nil {
		svc.skills = skill.Default()
	}
	svc.attackTypes.Freeze()
	svc.skills.Freeze()

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.limits == (attack.SearchLimits{}) {
		svc.limits = attack.DefaultLimits()
	}

	return svc
}

func (s *service) env(g *game.Game) attack.Env {
	return attack.Env{Game: g, Skills: s.skills, Limits: s.limits, Roller: s.roller}
}

func (s *service) ListLegalAttackTypes(ctx context.Context, g *game.Game) ([]attack.Name, error) {
	if err := checkCall(ctx, g); err != nil {
		return nil, err
	}

	g.Lock()
	defer g.Unlock()

	return s.attackTypes.LegalTypes(s.env(g))
}

func (s *service) FindAttacks(ctx context.Context, g *game.Game, name attack.Name) ([]attack.Proposal, error) {
	if err := checkCall(ctx, g); err != nil {
		return nil, err
	}
	typ, ok := s.attackTypes.Lookup(name)
	if !ok {
		return nil, dnderr.InvalidAttackf("unknown attack type %q", name).
			WithMeta(dnderr.MetaAttackType, string(name))
	}

	g.Lock()
	defer g.Unlock()

	env := s.env(g)
	available, err := s.available(env, typ)
	if err != nil || !available {
		return nil, err
	}
	return typ.Find(env)
}

// available reports whether the type can be chosen right now: fallback types
// must be legal, the others offered by the attack_list hook
func (s *service) available(env attack.Env, typ attack.Type) (bool, error) {
	names, err := s.attackTypes.OfferedTypes(env)
	if typ.Fallback {
		names, err = s.attackTypes.LegalTypes(env)
	}
	if err != nil {
		return false, err
	}
	return slices.Contains(names, typ.Name), nil
}

func (s *service) Resolve(ctx context.Context, g *game.Game, proposal attack.Proposal) (*attackrecord.Record, error) {
	if err := checkCall(ctx, g); err != nil {
		return nil, err
	}

	r := &resolution{service: s, ctx: ctx, game: g, attackEnv: s.env(g), proposal: proposal}

	record, err := r.runLocked()

	// listeners may call back into the service for this game
	for _, event := range r.pending {
		s.emit(event)
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *resolution) runLocked() (*attackrecord.Record, error) {
	r.game.Lock()
	defer r.game.Unlock()

	record, err := r.run()
	if err != nil {
		r.abort(err)
	}
	return record, err
}

func (r *resolution) abort(err error) {
	if dnderr.IsInternalInconsistency(err) {
		log.Printf("Resolver: INTERNAL INCONSISTENCY in game %s during %s of %s attack: %v (meta: %v)",
			r.game.ID, r.phase, r.proposal.Type, err, dnderr.GetMeta(err))
	} else {
		log.Printf("Resolver: Rejected %s attack in game %s: %v", r.proposal.Type, r.game.ID, err)
	}

	event := r.event(events.EventTypeResolutionAborted)
	event.Err = err
	r.queue(event)
}

func (s *service) emit(event *events.ResolutionEvent) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Emit(event); err != nil {
		log.Printf("Resolver: Listener failed on %s for game %s: %v", event.Type, event.GameID, err)
	}
}

func checkCall(ctx context.Context, g *game.Game) error {
	if g == nil {
		return dnderr.InvalidArgument("game is required")
	}
	if err := ctx.Err(); err != nil {
		return dnderr.Wrap(err, "resolution cancelled")
	}
	return nil
}

// participants keeps the live dice of a proposal and their roster positions
type participants struct {
	dice    []*die.Die
	indices []int
}

func (p participants) clones() []*die.Die {
	out := make([]*die.Die, len(p.dice))
	for i, d := range p.dice {
		out[i] = d.Clone()
	}
	return out
}
