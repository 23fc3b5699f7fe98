package board

import (
	"math"
	"sort"
	"strconv"
)

// Pen describes how a shape is stroked or filled. An empty Fill means the
// shape is only outlined; an empty Color means it is only filled.
type Pen struct {
	Color  string
	Fill   string
	Width  float64
	Dashed bool
}

// Surface is the drawing target for Render. Coordinates are pixels.
type Surface interface {
	Size() (w, h float64)
	Clear()
	FillRect(x, y, w, h float64, color string)
	DrawLine(x1, y1, x2, y2 float64, pen Pen)
	// DrawArc draws the arc of radius r from angle a0 to a1, in radians.
	DrawArc(cx, cy, r, a0, a1 float64, pen Pen)
	// DrawText centres s on (x, y).
	DrawText(s string, x, y float64, color string)
}

// RosterSurface is implemented by surfaces that can show the roster panel.
type RosterSurface interface {
	Surface
	DrawRoster(rows []RosterRow)
}

const (
	colorGrass     = "#238d23"
	colorLine      = "#ffffff"
	colorArrow     = "#ffff00"
	colorOutline   = "#222222"
	colorBall      = "#f8f0d8"
	colorBallPanel = "#cc0044"
	colorDark      = "#111111"

	arrowHead = 12.0
)

// Render redraws the whole scene from scratch, back to front.
func (b *Board) Render(s Surface) {
	w, h := s.Size()
	size := Size{W: w, H: h}
	s.Clear()
	drawPitch(s, size)

	for _, a := range b.scene.Arrows {
		drawArrow(s, a, size)
	}
	if a, ok := b.ArrowPreview(); ok {
		drawArrow(s, a, size)
	}

	sc := &b.scene
	if sc.Side != SideOpp {
		drawPlayers(s, sc.Allies, sc.visible, size)
	}
	if sc.Side != SideAlly {
		drawPlayers(s, sc.Opponents, sc.visible, size)
	}
	if sc.benchVisible() {
		drawPlayers(s, sc.Bench, nil, size)
	}
	drawBall(s, sc.Ball, size)

	if rs, ok := s.(RosterSurface); ok {
		rs.DrawRoster(b.Roster())
	}
}

func drawPitch(s Surface, size Size) {
	g := Pitch(size)
	s.FillRect(g.Left, g.Top, g.Width, g.Height, colorGrass)

	frame := Pen{Color: colorLine, Width: 2}
	l, t, r, btm := g.Left, g.Top, g.Left+g.Width, g.Top+g.Height
	s.DrawLine(l, t, r, t, frame)
	s.DrawLine(r, t, r, btm, frame)
	s.DrawLine(r, btm, l, btm, frame)
	s.DrawLine(l, btm, l, t, frame)

	for _, line := range g.Lines {
		pen := Pen{Color: colorLine, Width: 2, Dashed: line.Dashed}
		if line.Thick {
			pen.Width = 3
		}
		s.DrawLine(line.From.X, line.From.Y, line.To.X, line.To.Y, pen)
	}
	s.DrawArc(g.Centre.X, g.Centre.Y, g.CircleRadius, 0, 2*math.Pi, Pen{Color: colorLine, Width: 2, Dashed: true})
}

func drawArrow(s Surface, a Arrow, size Size) {
	from, to := ToPixel(a.From, size), ToPixel(a.To, size)
	pen := Pen{Color: colorArrow, Width: 3}
	s.DrawLine(from.X, from.Y, to.X, to.Y, pen)

	ang := math.Atan2(to.Y-from.Y, to.X-from.X)
	for _, side := range []float64{-1, 1} {
		theta := ang + side*math.Pi/6
		s.DrawLine(to.X, to.Y, to.X-arrowHead*math.Cos(theta), to.Y-arrowHead*math.Sin(theta), pen)
	}
}

func drawPlayers(s Surface, list []Player, filter func(Player) bool, size Size) {
	for _, p := range list {
		if filter != nil && !filter(p) {
			continue
		}
		drawPlayer(s, p, size)
	}
}

func drawPlayer(s Surface, p Player, size Size) {
	c := ToPixel(p.Pos(), size)
	s.DrawArc(c.X, c.Y, PlayerRadius, 0, 2*math.Pi, Pen{Color: colorOutline, Fill: p.Color, Width: 1.5})
	if p.Number == 0 {
		return
	}
	s.DrawText(strconv.Itoa(p.Number), c.X, c.Y, labelColor(p.Color))
}

// labelColor keeps jersey numbers legible on white shirts.
func labelColor(fill string) string {
	switch fill {
	case "#fff", "#ffffff", "#FFF", "#FFFFFF", "white":
		return colorDark
	}
	return colorLine
}

func drawBall(s Surface, ball Ball, size Size) {
	c := ToPixel(Point{X: ball.X, Y: ball.Y}, size)
	s.DrawArc(c.X, c.Y, BallRadius, 0, 2*math.Pi, Pen{Color: colorOutline, Fill: colorBall, Width: 1.4})
	s.DrawArc(c.X, c.Y, BallRadius-3, 0, 2*math.Pi, Pen{Color: colorBallPanel, Width: 2})
	s.DrawLine(c.X-BallRadius+3, c.Y, c.X+BallRadius-3, c.Y, Pen{Color: colorOutline, Width: 1.2, Dashed: true})
}

// RosterRow is one entry in the name panel.
type RosterRow struct {
	Target Target
	Player Player
}

// Roster lists the own-team players currently on show, in jersey order.
// Players without a number sort last.
func (b *Board) Roster() []RosterRow {
	s := &b.scene
	var rows []RosterRow
	if s.Side != SideOpp {
		for i, p := range s.Allies {
			if s.visible(p) {
				rows = append(rows, RosterRow{Target: Target{Roster: RosterAlly, Index: i}, Player: p})
			}
		}
	}
	if s.benchVisible() {
		for i, p := range s.Bench {
			rows = append(rows, RosterRow{Target: Target{Roster: RosterBench, Index: i}, Player: p})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return sortKey(rows[i].Player) < sortKey(rows[j].Player)
	})
	return rows
}

func sortKey(p Player) int {
	if p.Number < 1 {
		return math.MaxInt
	}
	return p.Number
}
