package board

import (
	"errors"
	"strconv"
	"strings"
)

type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// PointerEvent is one device-independent pointer sample in pixel space.
// Mouse, touch and keyboard adapters all reduce to this vocabulary.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

type GestureState int

const (
	Idle GestureState = iota
	DraggingPlayer
	DraggingBall
	DrawingArrow
)

func (g GestureState) String() string {
	switch g {
	case Idle:
		return "IDLE"
	case DraggingPlayer:
		return "DRAG"
	case DraggingBall:
		return "BALL"
	case DrawingArrow:
		return "ARROW"
	default:
		return "UNKNOWN"
	}
}

type gesture struct {
	state  GestureState
	target Target
	start  Point
	now    Point
}

// ErrInvalidNumber rejects a jersey number that is not a positive integer.
var ErrInvalidNumber = errors.New("jersey number must be a positive whole number")

func (b *Board) idle() bool { return b.gesture.state == Idle }

// Gesture reports the current interaction state.
func (b *Board) Gesture() GestureState { return b.gesture.state }

// ArrowPreview returns the in-progress arrow while one is being drawn.
func (b *Board) ArrowPreview() (Arrow, bool) {
	if b.gesture.state != DrawingArrow {
		return Arrow{}, false
	}
	return Arrow{From: b.gesture.start, To: b.gesture.now}, true
}

// Apply advances the gesture state machine by one pointer event and reports
// whether the scene needs redrawing.
func (b *Board) Apply(ev PointerEvent) bool {
	px := Vec{X: ev.X, Y: ev.Y}
	at := ToNormalized(px, b.size)

	var dirty bool
	switch ev.Kind {
	case PointerDown:
		dirty = b.pointerDown(px, at)
	case PointerMove:
		dirty = b.pointerMove(px, at)
	case PointerUp:
		dirty = b.pointerUp()
	}
	if dirty {
		b.render()
	}
	return dirty
}

func (b *Board) pointerDown(px Vec, at Point) bool {
	if !b.idle() {
		return false
	}
	switch {
	case b.scene.Tool == ToolArrow:
		b.gesture = gesture{state: DrawingArrow, start: at, now: at}
		return true
	case b.scene.Tool == ToolBall && b.hitBall(px):
		b.pushHistory()
		b.gesture = gesture{state: DraggingBall}
		return true
	}
	// Touch input has no hover phase, so refresh it at the press point.
	b.updateHover(px)
	if b.hover == nil {
		return false
	}
	b.pushHistory()
	b.gesture = gesture{state: DraggingPlayer, target: *b.hover}
	return true
}

func (b *Board) pointerMove(px Vec, at Point) bool {
	switch b.gesture.state {
	case DraggingPlayer:
		list := b.scene.roster(b.gesture.target.Roster)
		if i := b.gesture.target.Index; i >= 0 && i < len(list) {
			list[i].X, list[i].Y = at.X, at.Y
		}
		return true
	case DraggingBall:
		b.scene.Ball = Ball{X: at.X, Y: at.Y}
		return true
	case DrawingArrow:
		b.gesture.now = at
		return true
	default:
		prev := b.hover
		b.updateHover(px)
		return !sameTarget(prev, b.hover)
	}
}

func (b *Board) pointerUp() bool {
	switch b.gesture.state {
	case DraggingPlayer, DraggingBall:
		b.gesture = gesture{}
	case DrawingArrow:
		b.pushHistory()
		b.scene.Arrows = append(b.scene.Arrows, Arrow{From: b.gesture.start, To: b.gesture.now})
		b.gesture = gesture{}
	default:
		return false
	}
	b.flushPending()
	return true
}

func (b *Board) updateHover(px Vec) {
	t, ok := b.hitPlayer(px)
	if !ok {
		b.hover = nil
		b.cursor = CursorDefault
		return
	}
	b.hover = &t
	b.cursor = CursorGrab
}

// hitPlayer finds the topmost visible player under px. Later entries are
// drawn above earlier ones, so lists are scanned from the back.
func (b *Board) hitPlayer(px Vec) (Target, bool) {
	s := &b.scene
	if s.Side != SideOpp {
		if i, ok := b.hit(s.Allies, px, s.visible); ok {
			return Target{Roster: RosterAlly, Index: i}, true
		}
	}
	if s.Side != SideAlly {
		if i, ok := b.hit(s.Opponents, px, s.visible); ok {
			return Target{Roster: RosterOpp, Index: i}, true
		}
	}
	if s.benchVisible() {
		if i, ok := b.hit(s.Bench, px, nil); ok {
			return Target{Roster: RosterBench, Index: i}, true
		}
	}
	return Target{}, false
}

func (b *Board) hit(list []Player, px Vec, filter func(Player) bool) (int, bool) {
	for i := len(list) - 1; i >= 0; i-- {
		p := list[i]
		if filter != nil && !filter(p) {
			continue
		}
		if dist2(ToPixel(p.Pos(), b.size), px) <= HitRadius*HitRadius {
			return i, true
		}
	}
	return 0, false
}

func (b *Board) hitBall(px Vec) bool {
	r := BallRadius + PlayerRadius
	ball := ToPixel(Point{X: b.scene.Ball.X, Y: b.scene.Ball.Y}, b.size)
	return dist2(ball, px) <= r*r
}

// EditableAt returns the ally or opponent whose jersey number may be edited
// at px. Bench players are never editable.
func (b *Board) EditableAt(x, y float64) (Target, bool) {
	// allies and opponents are tested before the bench, so a bench hit
	// means nothing editable is under the pointer
	t, ok := b.hitPlayer(Vec{X: x, Y: y})
	if !ok || t.Roster == RosterBench {
		return Target{}, false
	}
	return t, true
}

// SetNumber applies a jersey number typed by the user. Empty input cancels
// the edit. Number edits bypass the undo history.
func (b *Board) SetNumber(t Target, input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	if t.Roster == RosterBench {
		return nil
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || strings.ContainsAny(input, "+-") {
		return ErrInvalidNumber
	}
	list := b.scene.roster(t.Roster)
	if t.Index < 0 || t.Index >= len(list) {
		return nil
	}
	list[t.Index].Number = n
	b.render()
	return nil
}

// SetName labels a player from the roster panel. Names are not undoable.
func (b *Board) SetName(t Target, name string) {
	list := b.scene.roster(t.Roster)
	if t.Index < 0 || t.Index >= len(list) {
		return
	}
	list[t.Index].Name = strings.TrimSpace(name)
	b.render()
}

func sameTarget(a, b *Target) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
