package skill

import (
	"sync"

	"github.com/KirkDiggler/buttonmen-rules/internal/domain/die"
	dnderr "github.com/KirkDiggler/buttonmen-rules/internal/errors"
)

// Registry holds the skill handlers in registration order. It is populated at
// startup and frozen; after Freeze it is read-only and shared by every game.
type Registry struct {
	mu       sync.RWMutex
	frozen   bool
	handlers []Handler
	byID     map[die.SkillID]int
	byLetter map[string]int
}

// NewRegistry creates an empty, unfrozen registry
func NewRegistry() *Registry {
	return &Registry{
		byID:     make(map[die.SkillID]int),
		byLetter: make(map[string]int),
	}
}

// Register adds a handler. Ids and letters must be unique.
func (r *Registry) Register(h Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return dnderr.InvalidArgumentf("cannot register skill %s: registry is frozen", h.ID)
	}
	if h.ID == "" {
		return dnderr.InvalidArgument("skill id is required")
	}
	if len(h.Letter) != 1 {
		return dnderr.InvalidArgumentf("skill %s needs a one character letter, got %q", h.ID, h.Letter)
	}
	if _, exists := r.byID[h.ID]; exists {
		return dnderr.InvalidArgumentf("skill %s already registered", h.ID)
	}
	if other, exists := r.byLetter[h.Letter]; exists {
		return dnderr.InvalidArgumentf("letter %s of skill %s already used by %s", h.Letter, h.ID, r.handlers[other].ID)
	}

	r.byID[h.ID] = len(r.handlers)
	r.byLetter[h.Letter] = len(r.handlers)
	r.handlers = append(r.handlers, h)
	return nil
}

// MustRegister registers the handlers or panics
func (r *Registry) MustRegister(handlers ...Handler) *Registry {
	for _, h := range handlers {
		if err := r.Register(h); err != nil {
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

// Frozen reports whether Freeze was called
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Lookup returns the handler registered for the skill
func (r *Registry) Lookup(id die.SkillID) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byID[id]
	if !ok {
		return Handler{}, false
	}
	return r.handlers[i], true
}

// ByLetter resolves a recipe letter
func (r *Registry) ByLetter(letter string) (die.Skill, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byLetter[letter]
	if !ok {
		return die.Skill{}, false
	}
	return r.handlers[i].Skill(), true
}

// Order returns the registration position of the skill
func (r *Registry) Order(id die.SkillID) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byID[id]
	return i, ok
}

// Skills lists the registered skills in registration order
func (r *Registry) Skills() []die.Skill {
	r.mu.RLock()
	defer r.mu.RUnlock()
	skills := make([]die.Skill, len(r.handlers))
	for i, h := range r.handlers {
		skills[i] = h.Skill()
	}
	return skills
}

// handlersFor returns the handlers of the distinct skills carried by the dice
// that take part in the hook, in registration order. Unregistered skills are
// skipped.
func (r *Registry) handlersFor(dice []*die.Die, hook Hook) []Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	present := make([]bool, len(r.handlers))
	for _, d := range dice {
		if d == nil {
			continue
		}
		for _, s := range d.Skills {
			if i, ok := r.byID[s.ID]; ok {
				present[i] = true
			}
		}
	}

	var out []Handler
	for i, h := range r.handlers {
		if present[i] && h.Handles(hook) {
			out = append(out, h)
		}
	}
	return out
}
