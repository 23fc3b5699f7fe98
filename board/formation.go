package board

import "math"

const (
	ColorFW    = "#e74c3c"
	ColorBK    = "#3498db"
	ColorBench = "#ffffff"
	ColorOpp   = "#8e44ad"
)

const (
	midlineY  = 0.50
	rowStep   = 0.09
	allyLimit = 0.49 - 0.005

	benchY     = 0.92
	benchLeft  = 0.08
	benchPitch = 0.04
)

// slot is a formation position relative to the midline anchor.
type slot struct {
	x, dy float64
	role  Role
}

var fifteenSlots = []slot{
	// front row
	{0.36, -rowStep, RoleFW},
	{0.40, -rowStep, RoleFW},
	{0.44, -rowStep, RoleFW},
	// locks
	{0.42, 0, RoleFW},
	{0.46, 0, RoleFW},
	// flankers and eight
	{0.28, -2 * rowStep, RoleFW},
	{0.46, 2 * rowStep, RoleFW},
	{0.42, rowStep, RoleFW},
	// halves
	{0.48, -0.04, RoleBK},
	{0.46, 0.04, RoleBK},
	// midfield line
	{0.38, 0.18, RoleBK},
	{0.42, 0.18, RoleBK},
	{0.46, 0.18, RoleBK},
	// wing, fullback
	{0.48, 0.24, RoleBK},
	{0.44, 0.30, RoleBK},
}

// Twelve-a-side keeps a six-man pack and six backs, numbered 1..12 so the
// bench continues from 13.
var twelveSlots = []slot{
	{0.36, -rowStep, RoleFW},
	{0.40, -rowStep, RoleFW},
	{0.44, -rowStep, RoleFW},
	{0.42, 0, RoleFW},
	{0.46, 0, RoleFW},
	{0.28, -2 * rowStep, RoleFW},
	{0.48, -0.04, RoleBK},
	{0.46, 0.04, RoleBK},
	{0.38, 0.18, RoleBK},
	{0.42, 0.18, RoleBK},
	{0.46, 0.18, RoleBK},
	{0.44, 0.30, RoleBK},
}

// BenchSize returns the number of replacements carried for a unit size.
func BenchSize(unit int) int {
	if NormalizeUnit(unit) == 12 {
		return 6
	}
	return 8
}

// Allies builds the starting ally formation for unit. Unknown units get the
// fifteen-a-side formation.
func Allies(unit int) []Player {
	slots := fifteenSlots
	if NormalizeUnit(unit) == 12 {
		slots = twelveSlots
	}
	out := make([]Player, 0, len(slots))
	for i, s := range slots {
		color := ColorFW
		if s.role == RoleBK {
			color = ColorBK
		}
		out = append(out, Player{
			X:      math.Min(s.x, allyLimit),
			Y:      midlineY + s.dy,
			Role:   s.role,
			Number: i + 1,
			Color:  color,
		})
	}
	return out
}

// Opponents mirrors the ally formation across the halfway line.
func Opponents(unit int) []Player {
	return mirror(Allies(unit))
}

func mirror(allies []Player) []Player {
	out := make([]Player, 0, len(allies))
	for _, p := range allies {
		out = append(out, Player{
			X:      1 - p.X,
			Y:      p.Y,
			Role:   p.Role,
			Number: p.Number,
			Color:  ColorOpp,
		})
	}
	return out
}

// Bench lines the replacements up along the bottom edge, numbered on from
// the starting roster.
func Bench(unit int) []Player {
	unit = NormalizeUnit(unit)
	n := BenchSize(unit)
	out := make([]Player, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Player{
			X:      benchLeft + float64(i)*benchPitch,
			Y:      benchY,
			Role:   RoleBench,
			Number: unit + 1 + i,
			Color:  ColorBench,
		})
	}
	return out
}
