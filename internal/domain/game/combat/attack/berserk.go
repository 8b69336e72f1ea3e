package attack

import skills "github.com/KirkDiggler/buttonmen-rules/internal/domain/skill"

// BerserkType is the Speed attack of Berserk dice. The attacker is not rerolled
// here; the Berserk capture hook splits it and rerolls the half that remains.
func BerserkType() Type {
	t := valueMatching(Berserk, skills.IDBerserk, false)
	t.IncompatibleWith = []Name{Skill}
	return t
}
