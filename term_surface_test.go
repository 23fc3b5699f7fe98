package main

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrumboard/board"
)

func TestLineRune(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   rune
	}{
		{0, 0, '·'},
		{5, 0, '─'},
		{-5, 1, '─'},
		{0, 4, '│'},
		{1, -4, '│'},
		{3, 3, '╲'},
		{-3, -3, '╲'},
		{3, -3, '╱'},
	}
	for _, tt := range tests {
		assert.Equal(t, string(tt.want), string(lineRune(tt.dx, tt.dy)), "dx=%v dy=%v", tt.dx, tt.dy)
	}
}

func TestTermSurfaceSize(t *testing.T) {
	s := newTermSurface(10, 5)
	w, h := s.Size()
	assert.Equal(t, 80.0, w)
	assert.Equal(t, 80.0, h)

	s = newTermSurface(0, -1)
	assert.Len(t, s.Plain(), 1)
}

func TestTermSurfaceDisc(t *testing.T) {
	s := newTermSurface(10, 5)
	s.DrawArc(44, 40, 12, 0, 2*math.Pi, board.Pen{Color: "#222222", Fill: "#e74c3c"})

	assert.Equal(t, "#e74c3c", s.cells[2][5].bg)
	assert.Empty(t, s.cells[0][0].bg)

	// smaller than a cell still shows up
	s.DrawArc(4, 8, 1, 0, 2*math.Pi, board.Pen{Fill: "#3498db"})
	assert.Equal(t, "#3498db", s.cells[0][0].bg)
}

func TestTermSurfaceDiscCoversExactlyItsCells(t *testing.T) {
	discs := []struct{ cx, cy, r float64 }{
		{44, 40, 12},
		{0, 0, 20},    // clipped at the top-left corner
		{78, 78, 30},  // clipped at the bottom-right corner
		{-50, 40, 12}, // entirely off the grid
	}
	for _, d := range discs {
		s := newTermSurface(10, 5)
		s.DrawArc(d.cx, d.cy, d.r, 0, 2*math.Pi, board.Pen{Fill: "#e74c3c"})
		for y := 0; y < 5; y++ {
			for x := 0; x < 10; x++ {
				px := (float64(x) + 0.5) * cellWidth
				py := (float64(y) + 0.5) * cellHeight
				want := ""
				if math.Hypot(px-d.cx, py-d.cy) <= d.r {
					want = "#e74c3c"
				}
				if cx, cy, ok := s.cellAt(d.cx, d.cy); ok && cx == x && cy == y {
					want = "#e74c3c"
				}
				assert.Equal(t, want, s.cells[y][x].bg, "disc %v cell (%d,%d)", d, x, y)
			}
		}
	}
}

func TestTermSurfaceText(t *testing.T) {
	s := newTermSurface(10, 5)
	s.DrawText("12", 44, 40, "#ffffff")
	assert.Equal(t, "     12   ", s.Plain()[2])

	s.DrawText("off", -100, 40, "#ffffff")
	assert.Equal(t, "     12   ", s.Plain()[2])
}

func TestTermSurfaceDashedLine(t *testing.T) {
	s := newTermSurface(20, 1)
	s.DrawLine(0, 8, 160, 8, board.Pen{Color: "#ffffff", Dashed: true})
	row := s.Plain()[0]
	assert.Contains(t, row, "─")
	assert.Contains(t, strings.TrimSpace(row), " ")
}

func TestTermSurfaceRendersBoard(t *testing.T) {
	b := board.New()
	s := newTermSurface(120, 40)
	b.Attach(s)

	plain := strings.Join(s.Plain(), "\n")
	assert.Contains(t, plain, "│", "goal and try lines")
	require.Len(t, s.roster, 15+8)
	assert.Equal(t, 1, s.roster[0].Player.Number)

	lines := s.Lines(&point{X: 0, Y: 0})
	require.Len(t, lines, 40)
	assert.Contains(t, lines[0], "█")

	b.SetSide("OPP")
	assert.Empty(t, s.roster, "the ally roster is hidden with allies")
}

func TestTermSurfaceClear(t *testing.T) {
	s := newTermSurface(4, 2)
	s.FillRect(0, 0, 32, 32, "#238d23")
	s.DrawText("x", 4, 8, "#ffffff")
	s.DrawRoster([]board.RosterRow{{}})
	s.Clear()

	assert.Equal(t, []string{"    ", "    "}, s.Plain())
	assert.Empty(t, s.cells[1][3].bg)
	assert.Nil(t, s.roster)
}
