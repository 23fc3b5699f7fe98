// Package board is the tactics-board engine: a rugby pitch scene, the
// pointer gesture state machine that edits it, a bounded undo history and an
// immediate-mode renderer that draws onto any Surface.
//
// A Board is not safe for concurrent use. It is meant to be owned by a
// single UI loop that feeds it pointer events and calls Render.
package board

import "go.uber.org/zap"

// Pixel radii used for drawing and hit-testing.
const (
	PlayerRadius = 12.0
	HitRadius    = 14.0
	BallRadius   = 10.0
	Margin       = 24.0
)

// Target addresses one player in one roster.
type Target struct {
	Roster Roster
	Index  int
}

type Cursor int

const (
	CursorDefault Cursor = iota
	CursorGrab
)

type Board struct {
	scene Scene
	size  Size
	hist  history

	gesture gesture
	hover   *Target
	cursor  Cursor

	// replacements requested mid-gesture, applied once the gesture ends
	pending []func()

	surface Surface
	log     *zap.Logger
}

type Option func(*Board)

func WithLogger(l *zap.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.log = l
		}
	}
}

// WithUnit sets the unit size of the initial formation.
func WithUnit(unit int) Option {
	return func(b *Board) { b.scene.Unit = unit }
}

// WithSize sets the pixel size used for hit-testing before any surface is
// attached.
func WithSize(w, h float64) Option {
	return func(b *Board) { b.size = Size{W: w, H: h} }
}

func New(opts ...Option) *Board {
	b := &Board{
		scene: Scene{Unit: 15, View: ViewAll, Side: SideBoth, Tool: ToolMove},
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.Reset(b.scene.Unit)
	return b
}

// Attach makes s the render target, adopts its size and redraws.
func (b *Board) Attach(s Surface) {
	b.surface = s
	if s != nil {
		w, h := s.Size()
		b.size = Size{W: w, H: h}
	}
	b.render()
}

// Resize changes the pixel projection. Stored coordinates are unaffected.
func (b *Board) Resize(w, h float64) {
	b.size = Size{W: w, H: h}
	b.render()
}

func (b *Board) Size() Size { return b.size }

func (b *Board) Unit() int      { return b.scene.Unit }
func (b *Board) View() View     { return b.scene.View }
func (b *Board) Side() Side     { return b.scene.Side }
func (b *Board) Tool() Tool     { return b.scene.Tool }
func (b *Board) Cursor() Cursor { return b.cursor }

// HistoryLen reports how many undo steps are available.
func (b *Board) HistoryLen() int { return b.hist.len() }

// Hover returns the player under the pointer, if any.
func (b *Board) Hover() (Target, bool) {
	if b.hover == nil {
		return Target{}, false
	}
	return *b.hover, true
}

// Player returns a copy of the addressed player.
func (b *Board) Player(t Target) (Player, bool) {
	list := b.scene.roster(t.Roster)
	if t.Index < 0 || t.Index >= len(list) {
		return Player{}, false
	}
	return list[t.Index], true
}

// Bench returns a copy of the internal bench roster.
func (b *Board) Bench() []Player { return clonePlayers(b.scene.Bench) }

// Reset regenerates both formations and the bench for unit and clears
// arrows, the ball and gesture state. The undo history is kept, so a reset
// can be undone.
func (b *Board) Reset(unit int) {
	if !b.idle() {
		b.queue(func() { b.Reset(unit) })
		return
	}
	unit = NormalizeUnit(unit)
	b.scene.Unit = unit
	b.scene.Allies = Allies(unit)
	b.scene.Opponents = Opponents(unit)
	b.scene.Bench = Bench(unit)
	b.scene.Arrows = []Arrow{}
	b.scene.Ball = Ball{X: 0.5, Y: 0.5}
	b.clearTransients()
	b.log.Debug("board reset", zap.Int("unit", unit))
	b.render()
}

func (b *Board) SetView(v string) {
	b.scene.View = NormalizeView(v)
	b.render()
}

func (b *Board) SetSide(s string) {
	b.scene.Side = NormalizeSide(s)
	b.render()
}

// SetTool only affects how later gestures are read, so it does not redraw.
func (b *Board) SetTool(t string) {
	b.scene.Tool = NormalizeTool(t)
}

// Undo restores the most recent snapshot. An empty history is a no-op.
// Mid-gesture it waits for the gesture to end.
func (b *Board) Undo() {
	if !b.idle() {
		b.queue(b.Undo)
		return
	}
	snap, ok := b.hist.pop()
	if !ok {
		return
	}
	snap.restore(&b.scene)
	b.clearTransients()
	b.render()
}

func (b *Board) pushHistory() {
	b.hist.push(takeSnapshot(&b.scene))
}

func (b *Board) clearTransients() {
	b.gesture = gesture{}
	b.hover = nil
	b.cursor = CursorDefault
}

func (b *Board) queue(fn func()) {
	b.pending = append(b.pending, fn)
	b.log.Debug("scene replacement queued until gesture ends", zap.Int("pending", len(b.pending)))
}

func (b *Board) flushPending() {
	pending := b.pending
	b.pending = nil
	for _, fn := range pending {
		fn()
	}
}

func (b *Board) render() {
	if b.surface != nil {
		b.Render(b.surface)
	}
}
