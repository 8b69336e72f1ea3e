package die

// View is an immutable projection of a die for attack records and the action log.
// The transitional fields are only set when the matching transition happened.
type View struct {
	ID           string    `json:"id"`
	Owner        PlayerID  `json:"owner"`
	Recipe       string    `json:"recipe"`
	RecipeStatus string    `json:"recipeStatus"`
	Value        int       `json:"value"`
	Max          int       `json:"max"`
	Skills       []SkillID `json:"skills"`
	DoesReroll   bool      `json:"doesReroll"`
	Captured     bool      `json:"captured"`
	OutOfPlay    bool      `json:"outOfPlay"`

	RecipeBeforeSplitting string `json:"recipeBeforeSplitting,omitempty"`
	RecipeBeforeGrowing   string `json:"recipeBeforeGrowing,omitempty"`
	RecipeBeforeShrinking string `json:"recipeBeforeShrinking,omitempty"`
	ValueAfterTripAttack  *int   `json:"valueAfterTripAttack,omitempty"`
}

// View takes a snapshot of the die
func (d *Die) View() View {
	skills := d.SkillIDs()
	if skills == nil {
		skills = []SkillID{}
	}
	return View{
		ID:           d.ID,
		Owner:        d.Owner,
		Recipe:       d.Recipe(),
		RecipeStatus: d.RecipeStatus(),
		Value:        d.Value,
		Max:          d.Sides,
		Skills:       skills,
		DoesReroll:   d.DoesReroll,
		Captured:     d.Captured(),
		OutOfPlay:    d.OutOfPlay,
	}
}

// Clone returns a deep copy of the view
func (v View) Clone() View {
	v.Skills = append([]SkillID{}, v.Skills...)
	if v.ValueAfterTripAttack != nil {
		value := *v.ValueAfterTripAttack
		v.ValueAfterTripAttack = &value
	}
	return v
}
