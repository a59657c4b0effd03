package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActionCodes(t *testing.T) {
	require.Equal(t, 140, NumActions)
	require.Equal(t, Action(0), PawnAction(North))
	require.Equal(t, Action(11), PawnAction(SouthWest))
	require.Equal(t, Action(12), WallAction(Horizontal, 0))
	require.Equal(t, Action(75), WallAction(Horizontal, 63))
	require.Equal(t, Action(76), WallAction(Vertical, 0))
	require.Equal(t, Action(139), WallAction(Vertical, 63))

	orientation, ix := Action(100).Wall()
	require.Equal(t, Vertical, orientation)
	require.Equal(t, 24, ix)

	require.True(t, Action(11).IsPawn())
	require.False(t, Action(12).IsPawn())
	require.True(t, Action(12).IsWall())
	require.False(t, Action(140).IsWall())
	require.False(t, Action(-1).Valid())
}

func TestDirectionDelta(t *testing.T) {
	require.Equal(t, Tile(13), North.From(4))
	require.Equal(t, Tile(22), NorthNorth.From(4))
	require.Equal(t, Tile(30), SouthWest.From(40))
	require.Panics(t, func() { Direction(12).Delta() })
	require.Panics(t, func() { Direction(-1).Delta() })
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		input string
		want  Action
	}{
		{"0", PawnAction(North)},
		{"139", WallAction(Vertical, 63)},
		{"n", PawnAction(North)},
		{" SW ", PawnAction(SouthWest)},
		{"ee", PawnAction(EastEast)},
		{"H12", WallAction(Horizontal, 12)},
		{"v3", WallAction(Vertical, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAction(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	for _, input := range []string{"", "140", "-1", "X", "H64", "V", "Hx", "NNE"} {
		t.Run("reject "+input, func(t *testing.T) {
			_, err := ParseAction(input)
			require.ErrorIs(t, err, ErrInvalidAction)
		})
	}
}

func TestActionString(t *testing.T) {
	for a := Action(0); int(a) < NumActions; a++ {
		parsed, err := ParseAction(a.String())
		require.NoError(t, err)
		require.Equal(t, a, parsed, "%s should name action %d", a, int(a))
	}
	require.Equal(t, "H0", WallAction(Horizontal, 0).String())
	require.Equal(t, "Action(140)", Action(140).String())
}
