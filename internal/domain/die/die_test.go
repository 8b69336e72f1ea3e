package die_test

import (
	"testing"

	mockdice "github.com/KirkDiggler/buttonmen-rules/internal/dice/mock"
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/die"
	dnderr "github.com/KirkDiggler/buttonmen-rules/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type letterLookup map[string]die.Skill

func (l letterLookup) ByLetter(letter string) (die.Skill, bool) {
	s, ok := l[letter]
	return s, ok
}

var (
	berserk = die.Skill{ID: "Berserk", Letter: "B"}
	speed   = die.Skill{ID: "Speed", Letter: "z"}
	lookup  = letterLookup{"B": berserk, "z": speed}
)

func TestParseRecipe(t *testing.T) {
	tests := []struct {
		name       string
		recipe     string
		wantRecipe string
		wantSides  int
		wantKind   die.SizeKind
		wantSkills []die.SkillID
		wantErr    bool
	}{
		{name: "plain", recipe: "(20)", wantRecipe: "(20)", wantSides: 20, wantKind: die.SizePlain},
		{name: "berserk", recipe: "B(20)", wantRecipe: "B(20)", wantSides: 20, wantKind: die.SizePlain, wantSkills: []die.SkillID{"Berserk"}},
		{name: "swing", recipe: "z(X)", wantRecipe: "z(X)", wantSides: 0, wantKind: die.SizeSwing, wantSkills: []die.SkillID{"Speed"}},
		{name: "twin", recipe: "(4,4)", wantRecipe: "(4,4)", wantSides: 8, wantKind: die.SizeTwin},
		{name: "option", recipe: "Bz(4/12)", wantRecipe: "Bz(4/12)", wantSides: 4, wantKind: die.SizeOption, wantSkills: []die.SkillID{"Berserk", "Speed"}},
		{name: "duplicate skill letters collapse", recipe: "BB(6)", wantRecipe: "B(6)", wantSides: 6, wantKind: die.SizePlain, wantSkills: []die.SkillID{"Berserk"}},
		{name: "unknown letter", recipe: "q(6)", wantErr: true},
		{name: "empty size", recipe: "B()", wantErr: true},
		{name: "zero sides", recipe: "(0)", wantErr: true},
		{name: "no parens", recipe: "20", wantErr: true},
		{name: "unclosed", recipe: "(20", wantErr: true},
		{name: "three part twin", recipe: "(4,4,4)", wantErr: true},
		{name: "unknown swing", recipe: "(Q)", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := die.ParseRecipe("d1", "p1", tt.recipe, lookup)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dnderr.IsInvalidArgument(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRecipe, d.Recipe())
			assert.Equal(t, tt.wantSides, d.Sides)
			assert.Equal(t, tt.wantKind, d.Size.Kind)
			if tt.wantSkills == nil {
				assert.Empty(t, d.SkillIDs())
			} else {
				assert.Equal(t, tt.wantSkills, d.SkillIDs())
			}
			assert.False(t, d.Rolled())
			assert.True(t, d.DoesReroll)
		})
	}
}

func TestRecipeStatus(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{3, 2, 4})

	swing, err := die.ParseRecipe("d1", "p1", "z(X)", lookup)
	require.NoError(t, err)
	require.NoError(t, swing.SetSwing(7))
	require.NoError(t, swing.Roll(roller))
	assert.Equal(t, "z(X=7):3", swing.RecipeStatus())

	twin, err := die.ParseRecipe("d2", "p1", "(4,4)", lookup)
	require.NoError(t, err)
	require.NoError(t, twin.Roll(roller))
	assert.Equal(t, 6, twin.Value)
	assert.Equal(t, []int{2, 4}, twin.SubValues)
	assert.Equal(t, "(4,4):6", twin.RecipeStatus())
}

func TestSwingAndOptionChoices(t *testing.T) {
	swing := die.New("d1", "p1", die.Swing("X"))
	assert.Error(t, swing.SetSwing(3))
	assert.Error(t, swing.SetSwing(21))
	require.NoError(t, swing.SetSwing(20))
	assert.Equal(t, 20, swing.Sides)
	assert.Error(t, swing.ChooseOption(4))

	option := die.New("d2", "p1", die.Option(4, 12))
	assert.Error(t, option.ChooseOption(6))
	require.NoError(t, option.ChooseOption(12))
	assert.Equal(t, 12, option.Sides)
	assert.Equal(t, "(4/12=12):0", option.RecipeStatus())
}

func TestRoll_UnsizedSwingFails(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	swing := die.New("d1", "p1", die.Swing("X"))

	err := swing.Roll(roller)
	require.Error(t, err)
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestSetSides_RecomputesValue(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{20, 5})

	d := die.New("d1", "p1", die.Plain(20))
	require.NoError(t, d.Roll(roller))
	require.Equal(t, 20, d.Value)

	require.NoError(t, d.SetSides(10, roller))
	assert.Equal(t, 10, d.Sides)
	assert.Equal(t, 5, d.Value)
	assert.Equal(t, "(10)", d.Recipe())
}

func TestSetSides_RollFailureRestores(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{12})

	d := die.New("d1", "p1", die.Plain(20))
	require.NoError(t, d.Roll(roller))

	require.Error(t, d.SetSides(10, roller))
	assert.Equal(t, 20, d.Sides)
	assert.Equal(t, 12, d.Value)
	assert.Equal(t, "(20)", d.Recipe())
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name        string
		size        die.Size
		swing       int
		wantFirst   int
		wantSecond  int
		wantRecipes [2]string
	}{
		{name: "even", size: die.Plain(20), wantFirst: 10, wantSecond: 10, wantRecipes: [2]string{"B(10)", "B(10)"}},
		{name: "odd", size: die.Plain(7), wantFirst: 4, wantSecond: 3, wantRecipes: [2]string{"B(4)", "B(3)"}},
		{name: "one sider", size: die.Plain(1), wantFirst: 1, wantSecond: 1, wantRecipes: [2]string{"B(1)", "B(1)"}},
		{name: "swing dropped", size: die.Swing("X"), swing: 13, wantFirst: 7, wantSecond: 6, wantRecipes: [2]string{"B(7)", "B(6)"}},
		{name: "twin dropped", size: die.Twin(4, 4), wantFirst: 4, wantSecond: 4, wantRecipes: [2]string{"B(4)", "B(4)"}},
		{name: "option dropped", size: die.Option(4, 12), wantFirst: 2, wantSecond: 2, wantRecipes: [2]string{"B(2)", "B(2)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := die.New("d1", "p1", tt.size, berserk)
			if tt.swing > 0 {
				require.NoError(t, d.SetSwing(tt.swing))
			}

			first, second, err := d.Split()
			require.NoError(t, err)

			assert.Equal(t, tt.wantFirst, first.Sides)
			assert.Equal(t, tt.wantSecond, second.Sides)
			assert.Equal(t, tt.wantRecipes[0], first.Recipe())
			assert.Equal(t, tt.wantRecipes[1], second.Recipe())
			assert.Equal(t, "d1.1", first.ID)
			assert.Equal(t, "d1.2", second.ID)
			assert.Equal(t, "d1", first.Parent)
			assert.False(t, first.Rolled())
			assert.True(t, first.HasSkill("Berserk"))

			// descendants do not alias the parent
			require.NoError(t, first.RemoveSkill("Berserk"))
			assert.True(t, d.HasSkill("Berserk"))
		})
	}
}

func TestSkills(t *testing.T) {
	d := die.New("d1", "p1", die.Plain(6), berserk)

	require.NoError(t, d.AddSkill(speed))
	require.NoError(t, d.AddSkill(speed))
	assert.Equal(t, []die.SkillID{"Berserk", "Speed"}, d.SkillIDs())
	assert.Equal(t, "Bz(6)", d.Recipe())

	require.NoError(t, d.RemoveSkill("Berserk"))
	require.NoError(t, d.RemoveSkill("Berserk"))
	assert.Equal(t, []die.SkillID{"Speed"}, d.SkillIDs())
}

func TestOutOfPlayIsImmutable(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{4, 1})

	d := die.New("d1", "p1", die.Plain(6), berserk)
	require.NoError(t, d.Roll(roller))
	require.NoError(t, d.Capture("p2"))
	assert.True(t, d.Captured())
	assert.True(t, d.OutOfPlay)

	before := d.Clone()

	_, _, splitErr := d.Split()
	errs := []error{
		d.Roll(roller),
		d.SetSides(4, roller),
		d.RemoveSkill("Berserk"),
		d.AddSkill(speed),
		d.Capture("p1"),
		splitErr,
	}
	for _, err := range errs {
		require.Error(t, err)
		assert.True(t, dnderr.IsInternalInconsistency(err))
	}

	assert.Equal(t, before, d)
	assert.Equal(t, 1, roller.Remaining())
}

func TestView(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{9})

	d := die.New("d1", "p1", die.Plain(12), speed)
	require.NoError(t, d.Roll(roller))

	v := d.View()
	assert.Equal(t, "d1", v.ID)
	assert.Equal(t, "z(12)", v.Recipe)
	assert.Equal(t, "z(12):9", v.RecipeStatus)
	assert.Equal(t, 9, v.Value)
	assert.Equal(t, 12, v.Max)
	assert.Equal(t, []die.SkillID{"Speed"}, v.Skills)
	assert.False(t, v.Captured)

	trip := 3
	v.ValueAfterTripAttack = &trip
	c := v.Clone()
	*c.ValueAfterTripAttack = 5
	c.Skills[0] = "Berserk"
	assert.Equal(t, 3, *v.ValueAfterTripAttack)
	assert.Equal(t, die.SkillID("Speed"), v.Skills[0])

	// no skills renders as an empty list, not null
	assert.Equal(t, []die.SkillID{}, die.New("d2", "p1", die.Plain(4)).View().Skills)
}
