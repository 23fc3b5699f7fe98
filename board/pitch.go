package board

// Real-world pitch dimensions in metres.
const (
	FieldLength = 100.0 // goal line to goal line
	InGoalDepth = 10.0
	FieldWidth  = 70.0
	TotalLength = FieldLength + 2*InGoalDepth

	CentreCircleRadius = 10.0
)

// PitchLine is one marking in pixel space.
type PitchLine struct {
	Name     string
	From, To Vec
	Dashed   bool
	Thick    bool
}

// PitchGeometry is the pitch projected into a canvas.
type PitchGeometry struct {
	Left, Top, Width, Height float64
	Lines                    []PitchLine
	Centre                   Vec
	CircleRadius             float64
}

// Pitch maps the fixed real-world markings into the drawable area of a
// canvas, which is the canvas less Margin on every side.
func Pitch(size Size) PitchGeometry {
	g := PitchGeometry{
		Left:   Margin,
		Top:    Margin,
		Width:  size.W - 2*Margin,
		Height: size.H - 2*Margin,
	}
	x := func(m float64) float64 { return g.Left + m/TotalLength*g.Width }
	y := func(m float64) float64 { return g.Top + m/FieldWidth*g.Height }
	across := func(name string, m float64, dashed, thick bool) PitchLine {
		return PitchLine{Name: name, From: Vec{x(m), y(0)}, To: Vec{x(m), y(FieldWidth)}, Dashed: dashed, Thick: thick}
	}
	along := func(name string, m float64) PitchLine {
		return PitchLine{Name: name, From: Vec{x(0), y(m)}, To: Vec{x(TotalLength), y(m)}, Dashed: true}
	}

	half := InGoalDepth + FieldLength/2
	g.Lines = []PitchLine{
		across("goal-left", InGoalDepth, false, true),
		across("goal-right", InGoalDepth+FieldLength, false, true),
		across("halfway", half, false, false),
		across("22-left", InGoalDepth+22, false, false),
		across("22-right", InGoalDepth+FieldLength-22, false, false),
		across("10-left", half-10, false, false),
		across("10-right", half+10, false, false),
		across("5-left", InGoalDepth+5, true, false),
		across("5-right", InGoalDepth+FieldLength-5, true, false),
		along("5-top", 5),
		along("15-top", 15),
		along("15-bottom", FieldWidth-15),
		along("5-bottom", FieldWidth-5),
	}
	g.Centre = Vec{x(half), y(FieldWidth / 2)}
	g.CircleRadius = CentreCircleRadius / FieldWidth * g.Height
	return g
}
