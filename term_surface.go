package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"scrumboard/board"
)

type cell struct {
	ch rune
	fg string
	bg string
}

// termSurface rasterises board drawing calls onto a grid of terminal cells.
// Each cell stands for cellWidth x cellHeight pixels.
type termSurface struct {
	cols   int
	rows   int
	cells  [][]cell
	roster []board.RosterRow
}

func newTermSurface(cols, rows int) *termSurface {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	s := &termSurface{cols: cols, rows: rows}
	s.cells = make([][]cell, rows)
	for y := range s.cells {
		s.cells[y] = make([]cell, cols)
	}
	s.Clear()
	return s
}

func (s *termSurface) Size() (float64, float64) {
	return float64(s.cols) * cellWidth, float64(s.rows) * cellHeight
}

func (s *termSurface) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = cell{ch: ' '}
		}
	}
	s.roster = nil
}

func (s *termSurface) FillRect(x, y, w, h float64, color string) {
	for cy := 0; cy < s.rows; cy++ {
		py := (float64(cy) + 0.5) * cellHeight
		if py < y || py > y+h {
			continue
		}
		for cx := 0; cx < s.cols; cx++ {
			px := (float64(cx) + 0.5) * cellWidth
			if px < x || px > x+w {
				continue
			}
			s.cells[cy][cx].bg = color
		}
	}
}

func (s *termSurface) DrawLine(x1, y1, x2, y2 float64, pen board.Pen) {
	dx := (x2 - x1) / cellWidth
	dy := (y2 - y1) / cellHeight
	ch := lineRune(dx, dy)
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))*2)) + 1
	for i := 0; i <= steps; i++ {
		if pen.Dashed && (i/3)%2 == 1 {
			continue
		}
		t := float64(i) / float64(steps)
		s.stroke(x1+(x2-x1)*t, y1+(y2-y1)*t, ch, pen.Color)
	}
}

// lineRune picks a box-drawing glyph for a segment measured in cells.
func lineRune(dx, dy float64) rune {
	ax, ay := math.Abs(dx), math.Abs(dy)
	switch {
	case ax == 0 && ay == 0:
		return '·'
	case ay < 0.4*ax:
		return '─'
	case ax < 0.4*ay:
		return '│'
	case dx*dy > 0:
		return '╲'
	default:
		return '╱'
	}
}

func (s *termSurface) DrawArc(cx, cy, r, a0, a1 float64, pen board.Pen) {
	if pen.Fill != "" {
		x0, y0 := s.clampCell(cx-r, cy-r)
		x1, y1 := s.clampCell(cx+r, cy+r)
		for y := y0; y <= y1; y++ {
			py := (float64(y) + 0.5) * cellHeight
			for x := x0; x <= x1; x++ {
				px := (float64(x) + 0.5) * cellWidth
				if math.Hypot(px-cx, py-cy) <= r {
					s.cells[y][x] = cell{ch: ' ', bg: pen.Fill}
				}
			}
		}
		// a disc smaller than a cell still gets one
		if x, y, ok := s.cellAt(cx, cy); ok {
			s.cells[y][x] = cell{ch: ' ', bg: pen.Fill}
		}
		return
	}
	if pen.Color == "" {
		return
	}
	steps := int(math.Ceil(math.Abs(a1-a0)*r/(cellWidth/2))) + 1
	for i := 0; i <= steps; i++ {
		if pen.Dashed && (i/3)%2 == 1 {
			continue
		}
		a := a0 + (a1-a0)*float64(i)/float64(steps)
		s.stroke(cx+r*math.Cos(a), cy+r*math.Sin(a), '·', pen.Color)
	}
}

func (s *termSurface) DrawText(text string, x, y float64, color string) {
	runes := []rune(text)
	cx, cy, ok := s.cellAt(x, y)
	if !ok {
		return
	}
	start := cx - (len(runes)-1)/2
	for i, r := range runes {
		col := start + i
		if col < 0 || col >= s.cols {
			continue
		}
		s.cells[cy][col].ch = r
		s.cells[cy][col].fg = color
	}
}

func (s *termSurface) DrawRoster(rows []board.RosterRow) {
	s.roster = rows
}

func (s *termSurface) stroke(px, py float64, ch rune, color string) {
	x, y, ok := s.cellAt(px, py)
	if !ok {
		return
	}
	s.cells[y][x].ch = ch
	s.cells[y][x].fg = color
}

// clampCell is cellAt pinned to the grid edges.
func (s *termSurface) clampCell(px, py float64) (int, int) {
	x := int(math.Floor(px / cellWidth))
	y := int(math.Floor(py / cellHeight))
	x = max(0, min(x, s.cols-1))
	y = max(0, min(y, s.rows-1))
	return x, y
}

func (s *termSurface) cellAt(px, py float64) (int, int, bool) {
	x := int(math.Floor(px / cellWidth))
	y := int(math.Floor(py / cellHeight))
	if x < 0 || y < 0 || x >= s.cols || y >= s.rows {
		return 0, 0, false
	}
	return x, y, true
}

// Lines renders the grid with colour runs, marking the keyboard pointer
// when one is shown.
func (s *termSurface) Lines(cursor *point) []string {
	out := make([]string, s.rows)
	for y, row := range s.cells {
		var line strings.Builder
		var run strings.Builder
		runFg, runBg := "", ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			line.WriteString(cellStyle(runFg, runBg).Render(run.String()))
			run.Reset()
		}
		for x, c := range row {
			if cursor != nil && cursor.X == x && cursor.Y == y {
				c.ch = '█'
				c.fg = "#ff00ff"
			}
			if c.fg != runFg || c.bg != runBg {
				flush()
				runFg, runBg = c.fg, c.bg
			}
			run.WriteRune(c.ch)
		}
		flush()
		out[y] = line.String()
	}
	return out
}

// Plain returns the grid without colour, one string per row.
func (s *termSurface) Plain() []string {
	out := make([]string, s.rows)
	for y, row := range s.cells {
		runes := make([]rune, len(row))
		for x, c := range row {
			runes[x] = c.ch
		}
		out[y] = string(runes)
	}
	return out
}

func cellStyle(fg, bg string) lipgloss.Style {
	style := lipgloss.NewStyle()
	if fg != "" {
		style = style.Foreground(lipgloss.Color(fg))
	}
	if bg != "" {
		style = style.Background(lipgloss.Color(bg))
	}
	return style
}
