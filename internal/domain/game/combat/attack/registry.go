package attack

import (
	"log"
	"sync"

	"github.com/KirkDiggler/buttonmen-rules/internal/domain/die"
	skills "github.com/KirkDiggler/buttonmen-rules/internal/domain/skill"
	dnderr "github.com/KirkDiggler/buttonmen-rules/internal/errors"
)

// Registry is the catalog of attack types in registration order. Like the
// skill registry it is built at startup, frozen, then shared read-only.
type Registry struct {
	mu     sync.RWMutex
	frozen bool
	types  []Type
	byName map[Name]int
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{byName: make(map[Name]int)}
}

// Register adds an attack type
func (r *Registry) Register(t Type) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return dnderr.InvalidArgumentf("cannot register attack type %s: registry is frozen", t.Name)
	}
	if t.Name == "" {
		return dnderr.InvalidArgument("attack type name is required")
	}
	if t.ValidateFunc == nil || t.FindFunc == nil {
		return dnderr.InvalidArgumentf("attack type %s needs validate and find functions", t.Name)
	}
	if _, exists := r.byName[t.Name]; exists {
		return dnderr.InvalidArgumentf("attack type %s already registered", t.Name)
	}

	r.byName[t.Name] = len(r.types)
	r.types = append(r.types, t)
	return nil
}

// MustRegister registers the types or panics
func (r *Registry) MustRegister(types ...Type) *Registry {
	for _, t := range types {
		if err := r.Register(t); err != nil {
			panic(err)
		}
	}
	return r
}

// Freeze makes the registry read-only
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Lookup returns the type registered under the name
func (r *Registry) Lookup(name Name) (Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byName[name]
	if !ok {
		return Type{}, false
	}
	return r.types[i], true
}

// Types returns the registered types in registration order
func (r *Registry) Types() []Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Type(nil), r.types...)
}

// Names returns the registered names in registration order
func (r *Registry) Names() []Name {
	types := r.Types()
	names := make([]Name, len(types))
	for i, t := range types {
		names[i] = t.Name
	}
	return names
}

// OfferedTypes runs the attack_list hook for every active attacker die and
// returns the union of what survives suppression, in registration order.
// Outside the attack phase nothing is offered.
func (r *Registry) OfferedTypes(env Env) ([]Name, error) {
	if env.Game == nil || !env.Game.AttackPhase() {
		return nil, nil
	}

	var base []Name
	for _, t := range r.Types() {
		if t.Base {
			base = append(base, t.Name)
		}
	}

	offered := make(map[Name]bool)
	for _, d := range env.attackers() {
		ctx := skills.AttackListContext{Game: env.Game, Die: d, Types: base}
		out, err := env.skillRegistry().DispatchAttackList([]*die.Die{d}, ctx)
		if err != nil {
			return nil, dnderr.Wrapf(err, "attack_list dispatch failed for die %s", d.ID)
		}
		for _, name := range r.suppress(out.Types) {
			offered[name] = true
		}
	}

	var names []Name
	for _, t := range r.Types() {
		if offered[t.Name] {
			names = append(names, t.Name)
		}
	}
	return names, nil
}

// suppress drops unknown names and every name suppressed by another candidate
func (r *Registry) suppress(candidates []Name) []Name {
	var known []Type
	for _, name := range candidates {
		t, ok := r.Lookup(name)
		if !ok {
			log.Printf("AttackRegistry: ignoring unknown attack type %q offered by a skill", name)
			continue
		}
		known = append(known, t)
	}

	var kept []Name
	for _, t := range known {
		suppressed := false
		for _, other := range known {
			if other.Name != t.Name && other.Suppresses(t.Name) {
				suppressed = true
				break
			}
		}
		if !suppressed {
			kept = append(kept, t.Name)
		}
	}
	return kept
}

// LegalTypes returns the offered types that have at least one proposal. When
// none has, the fallback types (Pass) are legal instead.
func (r *Registry) LegalTypes(env Env) ([]Name, error) {
	if env.Game == nil || !env.Game.AttackPhase() {
		return nil, nil
	}

	offered, err := r.OfferedTypes(env)
	if err != nil {
		return nil, err
	}

	var legal []Name
	for _, name := range offered {
		t, _ := r.Lookup(name)
		if t.Fallback {
			continue
		}
		proposals, err := t.Find(env)
		if err != nil {
			return nil, dnderr.Wrapf(err, "failed to search %s attacks", name)
		}
		if len(proposals) > 0 {
			legal = append(legal, name)
		}
	}
	if len(legal) > 0 {
		return legal, nil
	}

	for _, t := range r.Types() {
		if t.Fallback {
			legal = append(legal, t.Name)
		}
	}
	return legal, nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the frozen registry of builtin attack types
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry().MustRegister(
			PowerType(),
			SkillType(),
			SpeedType(),
			BerserkType(),
			TripType(),
			ShadowType(),
			PassType(),
		)
		defaultRegistry.Freeze()
	})
	return defaultRegistry
}
