package die

import (
	"fmt"

	"github.com/KirkDiggler/buttonmen-rules/internal/dice"
	dnderr "github.com/KirkDiggler/buttonmen-rules/internal/errors"
)

// PlayerID identifies the player owning or capturing a die
type PlayerID string

// SkillID names a die skill (Berserk, Speed, ...)
type SkillID string

// Skill is a skill attached to a die together with its recipe letter
type Skill struct {
	ID     SkillID
	Letter string
}

// Die is the mutable unit of game state.
//
// Value is 0 until the die is rolled; afterwards 1 <= Value <= Sides.
// Once OutOfPlay is set every mutating primitive refuses to run.
type Die struct {
	ID    string
	Owner PlayerID

	Value int
	Sides int
	Size  Size

	// SubValues holds the faces of the sub-dice of a twin die
	SubValues []int

	Skills []Skill

	OutOfPlay  bool
	CapturedBy PlayerID
	DoesReroll bool

	// Parent is the id of the die this one was split from
	Parent string
}

// New creates an unrolled die. Plain, twin and option dice get their sides right away
// (option dice take the first option); swing dice need SetSwing before rolling.
func New(id string, owner PlayerID, size Size, skills ...Skill) *Die {
	d := &Die{
		ID:         id,
		Owner:      owner,
		Size:       size.clone(),
		DoesReroll: true,
	}
	for _, s := range skills {
		if !d.HasSkill(s.ID) {
			d.Skills = append(d.Skills, s)
		}
	}

	switch size.Kind {
	case SizePlain, SizeOption:
		if len(size.Sides) > 0 {
			d.Sides = size.Sides[0]
		}
	case SizeTwin:
		for _, s := range size.Sides {
			d.Sides += s
		}
	}

	return d
}

// Rolled reports whether the die has a face value
func (d *Die) Rolled() bool {
	return d.Value > 0
}

// Captured reports whether the die changed side
func (d *Die) Captured() bool {
	return d.CapturedBy != ""
}

// HasSkill reports whether the die carries the skill
func (d *Die) HasSkill(id SkillID) bool {
	for _, s := range d.Skills {
		if s.ID == id {
			return true
		}
	}
	return false
}

// SkillIDs returns the ids of the attached skills in attachment order
func (d *Die) SkillIDs() []SkillID {
	ids := make([]SkillID, len(d.Skills))
	for i, s := range d.Skills {
		ids[i] = s.ID
	}
	return ids
}

// Roll gives the die a new face value within its current range
func (d *Die) Roll(roller dice.Roller) error {
	if err := d.mutable("roll"); err != nil {
		return err
	}
	if d.Sides < 1 {
		return dnderr.InvalidArgumentf("die %s has no size to roll", d.ID).
			WithMeta(dnderr.MetaDieID, d.ID)
	}

	sides := []int{d.Sides}
	if d.Size.Kind == SizeTwin {
		sides = d.Size.Sides
	}

	result, err := dice.Roll(roller, sides...)
	if err != nil {
		return dnderr.Wrapf(err, "failed to roll die %s", d.ID)
	}

	d.Value = result.Total
	if d.Size.Kind == SizeTwin {
		d.SubValues = result.Rolls
	}
	return nil
}

// SetSides changes the number of faces and rerolls, since the old value may no
// longer be in range. The die becomes a plain die of the new size.
func (d *Die) SetSides(sides int, roller dice.Roller) error {
	if err := d.mutable("set sides"); err != nil {
		return err
	}
	if sides < 1 {
		return dnderr.InvalidArgumentf("die %s cannot have %d sides", d.ID, sides)
	}

	before := d.Clone()
	d.Size = Plain(sides)
	d.Sides = sides
	d.SubValues = nil
	if err := d.Roll(roller); err != nil {
		*d = *before
		return err
	}
	return nil
}

// SetSwing picks the current size of a swing die and clears its value
func (d *Die) SetSwing(sides int) error {
	if err := d.mutable("set swing"); err != nil {
		return err
	}
	if d.Size.Kind != SizeSwing {
		return dnderr.InvalidArgumentf("die %s is not a swing die", d.ID)
	}
	low, high, ok := SwingRange(d.Size.Swing)
	if !ok || sides < low || sides > high {
		return dnderr.InvalidArgumentf("swing %s=%d outside %d-%d", d.Size.Swing, sides, low, high)
	}

	d.Sides = sides
	d.Value = 0
	return nil
}

// ChooseOption picks one of the sizes of an option die and clears its value
func (d *Die) ChooseOption(sides int) error {
	if err := d.mutable("choose option"); err != nil {
		return err
	}
	if d.Size.Kind != SizeOption {
		return dnderr.InvalidArgumentf("die %s is not an option die", d.ID)
	}
	for _, opt := range d.Size.Sides {
		if opt == sides {
			d.Sides = sides
			d.Value = 0
			return nil
		}
	}
	return dnderr.InvalidArgumentf("die %s has no option %d", d.ID, sides)
}

// AddSkill attaches a skill if not already present
func (d *Die) AddSkill(s Skill) error {
	if err := d.mutable("add skill"); err != nil {
		return err
	}
	if !d.HasSkill(s.ID) {
		d.Skills = append(d.Skills, s)
	}
	return nil
}

// RemoveSkill detaches a skill; removing an absent skill is a no-op
func (d *Die) RemoveSkill(id SkillID) error {
	if err := d.mutable("remove skill"); err != nil {
		return err
	}
	kept := d.Skills[:0]
	for _, s := range d.Skills {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	d.Skills = kept
	return nil
}

// Capture moves the die to the capturing player and takes it out of play
func (d *Die) Capture(by PlayerID) error {
	if err := d.mutable("capture"); err != nil {
		return err
	}
	d.CapturedBy = by
	d.OutOfPlay = true
	return nil
}

// Split returns two plain descendants. The first keeps ceil(sides/2), the second
// floor(sides/2) (a 1-sider yields two 1-siders). Swing, twin and option status is
// dropped, skills are copied, and both halves are unrolled.
func (d *Die) Split() (*Die, *Die, error) {
	if err := d.mutable("split"); err != nil {
		return nil, nil, err
	}
	if d.Sides < 1 {
		return nil, nil, dnderr.InvalidArgumentf("die %s has no size to split", d.ID)
	}

	second := d.Sides / 2
	first := d.Sides - second
	if second == 0 {
		second = 1
	}

	return d.descendant(1, first), d.descendant(2, second), nil
}

func (d *Die) descendant(n, sides int) *Die {
	child := d.Clone()
	child.ID = fmt.Sprintf("%s.%d", d.ID, n)
	child.Parent = d.ID
	child.Size = Plain(sides)
	child.Sides = sides
	child.Value = 0
	child.SubValues = nil
	return child
}

// Clone returns a deep copy
func (d *Die) Clone() *Die {
	c := *d
	c.Size = d.Size.clone()
	c.SubValues = append([]int(nil), d.SubValues...)
	c.Skills = append([]Skill(nil), d.Skills...)
	return &c
}

func (d *Die) mutable(op string) error {
	if d.OutOfPlay {
		return dnderr.InternalInconsistencyf("cannot %s die %s: out of play", op, d.ID).
			WithMeta(dnderr.MetaDieID, d.ID)
	}
	return nil
}
