package dice_test

import (
	"testing"

	"github.com/KirkDiggler/buttonmen-rules/internal/dice"
	mockdice "github.com/KirkDiggler/buttonmen-rules/internal/dice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoll_WithManualMock(t *testing.T) {
	tests := []struct {
		name       string
		setupRolls []int
		sides      []int
		wantTotal  int
		wantRolls  []int
		wantErr    bool
	}{
		{
			name:       "single d20",
			setupRolls: []int{15},
			sides:      []int{20},
			wantTotal:  15,
			wantRolls:  []int{15},
		},
		{
			name:       "twin 4,4",
			setupRolls: []int{3, 4},
			sides:      []int{4, 4},
			wantTotal:  7,
			wantRolls:  []int{3, 4},
		},
		{
			name:       "not enough rolls",
			setupRolls: []int{2},
			sides:      []int{6, 6},
			wantErr:    true,
		},
		{
			name:       "invalid roll for die size",
			setupRolls: []int{7},
			sides:      []int{6},
			wantErr:    true,
		},
		{
			name:    "zero sided die",
			sides:   []int{0},
			wantErr: true,
		},
		{
			name:    "no sub dice",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := mockdice.NewManualMockRoller()
			roller.SetRolls(tt.setupRolls)

			result, err := dice.Roll(roller, tt.sides...)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, result.Total)
			assert.Equal(t, tt.wantRolls, result.Rolls)
		})
	}
}

func TestManualMockRoller_Sequential(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{20, 1})

	face, err := roller.RollFace(20)
	require.NoError(t, err)
	assert.Equal(t, 20, face)
	assert.Equal(t, 1, roller.Remaining())

	face, err = roller.RollFace(4)
	require.NoError(t, err)
	assert.Equal(t, 1, face)

	_, err = roller.RollFace(20)
	assert.Error(t, err)

	roller.Reset()
	roller.SetNextRoll(3)
	face, err = roller.RollFace(6)
	require.NoError(t, err)
	assert.Equal(t, 3, face)
}

func TestRoll_WithGomock(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := mockdice.NewMockRoller(ctrl)

	gomock.InOrder(
		roller.EXPECT().RollFace(6).Return(2, nil),
		roller.EXPECT().RollFace(6).Return(5, nil),
	)

	result, err := dice.Roll(roller, 6, 6)
	require.NoError(t, err)
	assert.Equal(t, 7, result.Total)
	assert.Equal(t, []int{2, 5}, result.Rolls)
}

func TestRoll_RejectsOutOfRangeFace(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := mockdice.NewMockRoller(ctrl)
	roller.EXPECT().RollFace(4).Return(9, nil)

	_, err := dice.Roll(roller, 4)
	assert.Error(t, err)
}

func TestRandomRoller_BasicFunctionality(t *testing.T) {
	roller := dice.NewRandomRoller()

	for i := 0; i < 200; i++ {
		face, err := roller.RollFace(6)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, face, 1)
		assert.LessOrEqual(t, face, 6)
	}

	_, err := roller.RollFace(0)
	assert.ErrorIs(t, err, dice.ErrInvalidSides)
}

func TestSeededRoller_Reproducible(t *testing.T) {
	first := dice.NewSeededRoller("server", "client", 1)
	second := dice.NewSeededRoller("server", "client", 1)
	other := dice.NewSeededRoller("server", "client", 2)

	var a, b, c []int
	// 20 faces crosses the 32 byte round boundary twice
	for i := 0; i < 20; i++ {
		fa, err := first.RollFace(20)
		require.NoError(t, err)
		fb, err := second.RollFace(20)
		require.NoError(t, err)
		fc, err := other.RollFace(20)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, fa, 1)
		assert.LessOrEqual(t, fa, 20)
		a, b, c = append(a, fa), append(b, fb), append(c, fc)
	}

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
