package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpponentsMirrorAlliesAtReset(t *testing.T) {
	for _, unit := range []int{12, 15} {
		b := newTestBoard(t, WithUnit(unit))
		st := b.GetState()
		require.Len(t, st.Opponents, len(st.Allies))

		for _, a := range st.Allies {
			found := false
			for _, o := range st.Opponents {
				if o.Number == a.Number && o.Role == a.Role &&
					near(o.X, 1-a.X) && o.Y == a.Y {
					found = true
					assert.Equal(t, ColorOpp, o.Color)
					break
				}
			}
			assert.True(t, found, "unit %d: no mirror for ally %d", unit, a.Number)
		}
	}
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-12 && d > -1e-12
}

func TestBenchSizing(t *testing.T) {
	cases := []struct {
		name  string
		unit  int
		first int
		size  int
	}{
		{"fifteens", 15, 16, 8},
		{"twelves", 12, 13, 6},
		{"unknown falls back", 7, 16, 8},
		{"zero falls back", 0, 16, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBoard(t)
			b.Reset(tc.unit)
			bench := b.Bench()
			require.Len(t, bench, tc.size)
			for i, p := range bench {
				assert.Equal(t, tc.first+i, p.Number)
				assert.Equal(t, RoleBench, p.Role)
			}
		})
	}
}

func TestUnknownUnitUsesFifteenFormation(t *testing.T) {
	b := newTestBoard(t)
	b.Reset(13)
	assert.Equal(t, 15, b.Unit())
	assert.Equal(t, Allies(15), b.GetState().Allies)
}

func TestFormationRolesAndNumbers(t *testing.T) {
	for _, unit := range []int{12, 15} {
		allies := Allies(unit)
		require.Len(t, allies, unit)
		seen := map[int]bool{}
		for i, p := range allies {
			assert.Equal(t, i+1, p.Number)
			assert.False(t, seen[p.Number])
			seen[p.Number] = true
			assert.Contains(t, []Role{RoleFW, RoleBK}, p.Role)
			assert.LessOrEqual(t, p.X, allyLimit, "allies stay in their own half")
		}
	}
}

func TestFifteenSplitsEightForwardsSevenBacks(t *testing.T) {
	var fw, bk int
	for _, p := range Allies(15) {
		switch p.Role {
		case RoleFW:
			fw++
			assert.Equal(t, ColorFW, p.Color)
		case RoleBK:
			bk++
			assert.Equal(t, ColorBK, p.Color)
		}
	}
	assert.Equal(t, 8, fw)
	assert.Equal(t, 7, bk)
}
