package board

import "strings"

// Point is a position in normalized board space, each axis in [0,1].
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Role string

const (
	RoleFW    Role = "FW"
	RoleBK    Role = "BK"
	RoleBench Role = "BENCH"
)

type View string

const (
	ViewAll View = "ALL"
	ViewFW  View = "FW"
	ViewBK  View = "BK"
)

type Side string

const (
	SideBoth Side = "BOTH"
	SideAlly Side = "ALLY"
	SideOpp  Side = "OPP"
)

type Tool string

const (
	ToolMove  Tool = "MOVE"
	ToolArrow Tool = "ARROW"
	ToolBall  Tool = "BALL"
)

// Roster identifies which list a player belongs to.
type Roster int

const (
	RosterAlly Roster = iota
	RosterOpp
	RosterBench
)

func (r Roster) String() string {
	switch r {
	case RosterAlly:
		return "ALLY"
	case RosterOpp:
		return "OPP"
	case RosterBench:
		return "BENCH"
	default:
		return "UNKNOWN"
	}
}

type Player struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Role   Role    `json:"role"`
	Number int     `json:"no,omitempty"`
	Color  string  `json:"color"`
	Name   string  `json:"name,omitempty"`
}

func (p Player) Pos() Point { return Point{X: p.X, Y: p.Y} }

type Ball struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Arrow struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// Scene is the complete board model. Transient gesture state lives on
// Board, never here, so a Scene can be cloned into history as-is.
type Scene struct {
	Unit      int
	View      View
	Side      Side
	Tool      Tool
	Allies    []Player
	Opponents []Player
	Bench     []Player
	Arrows    []Arrow
	Ball      Ball
}

func (s *Scene) roster(r Roster) []Player {
	switch r {
	case RosterAlly:
		return s.Allies
	case RosterOpp:
		return s.Opponents
	default:
		return s.Bench
	}
}

// visible reports whether p passes the view filter.
func (s *Scene) visible(p Player) bool {
	return s.View == ViewAll || Role(s.View) == p.Role
}

func (s *Scene) benchVisible() bool {
	return s.View == ViewAll && s.Side != SideOpp
}

// NormalizeView maps anything but FW/BK to ALL.
func NormalizeView(v string) View {
	switch View(strings.ToUpper(strings.TrimSpace(v))) {
	case ViewFW:
		return ViewFW
	case ViewBK:
		return ViewBK
	default:
		return ViewAll
	}
}

// NormalizeSide maps anything but ALLY/OPP to BOTH.
func NormalizeSide(s string) Side {
	switch Side(strings.ToUpper(strings.TrimSpace(s))) {
	case SideAlly:
		return SideAlly
	case SideOpp:
		return SideOpp
	default:
		return SideBoth
	}
}

// NormalizeTool maps anything but ARROW/BALL to MOVE.
func NormalizeTool(t string) Tool {
	switch Tool(strings.ToUpper(strings.TrimSpace(t))) {
	case ToolArrow:
		return ToolArrow
	case ToolBall:
		return ToolBall
	default:
		return ToolMove
	}
}

// NormalizeUnit fails closed to fifteen-a-side.
func NormalizeUnit(unit int) int {
	if unit == 12 {
		return 12
	}
	return 15
}

func validUnit(unit int) bool { return unit == 12 || unit == 15 }
