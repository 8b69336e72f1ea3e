package skill

import (
	"sync"

	"github.com/KirkDiggler/buttonmen-rules/internal/domain/die"
)

// Builtin skill ids
const (
	IDBerserk die.SkillID = "Berserk"
	IDSpeed   die.SkillID = "Speed"
	IDTrip    die.SkillID = "Trip"
	IDShadow  die.SkillID = "Shadow"
	IDStealth die.SkillID = "Stealth"
)

// Builtins returns the builtin handlers in their registration order
func Builtins() []Handler {
	return []Handler{
		Berserk(),
		Speed(),
		Trip(),
		Shadow(),
		Stealth(),
	}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the frozen registry of builtin skills
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry().MustRegister(Builtins()...)
		defaultRegistry.Freeze()
	})
	return defaultRegistry
}
