package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ally #6 sits alone at (0.28, 0.32) in the fifteen-a-side formation.
const (
	flankerX = 0.28
	flankerY = 0.32
	flanker  = 5
)

func TestArrowCommit(t *testing.T) {
	b := newTestBoard(t)
	b.SetTool("ARROW")

	down(b, 0.2, 0.2)
	assert.Equal(t, DrawingArrow, b.Gesture())
	assert.Zero(t, b.HistoryLen(), "an uncommitted arrow has no history entry")

	move(b, 0.5, 0.4)
	preview, ok := b.ArrowPreview()
	require.True(t, ok)
	assert.InDelta(t, 0.5, preview.To.X, 1e-9)

	move(b, 0.8, 0.8)
	up(b)

	arrows := b.GetState().Arrows
	require.Len(t, arrows, 1)
	assert.InDelta(t, 0.2, arrows[0].From.X, 1e-9)
	assert.InDelta(t, 0.2, arrows[0].From.Y, 1e-9)
	assert.InDelta(t, 0.8, arrows[0].To.X, 1e-9)
	assert.InDelta(t, 0.8, arrows[0].To.Y, 1e-9)
	assert.Equal(t, 1, b.HistoryLen())
	assert.Equal(t, Idle, b.Gesture())

	b.Undo()
	assert.Empty(t, b.GetState().Arrows, "undo removes the committed arrow")
}

func TestZeroLengthArrowIsCommitted(t *testing.T) {
	b := newTestBoard(t)
	b.SetTool("ARROW")
	down(b, 0.3, 0.3)
	up(b)

	arrows := b.GetState().Arrows
	require.Len(t, arrows, 1)
	assert.Equal(t, arrows[0].From, arrows[0].To)
}

func TestDragTeleportsPlayerAndUndoesInOneStep(t *testing.T) {
	b := newTestBoard(t)
	before := b.GetState().Allies[flanker]

	move(b, flankerX, flankerY)
	target, ok := b.Hover()
	require.True(t, ok)
	assert.Equal(t, Target{Roster: RosterAlly, Index: flanker}, target)
	assert.Equal(t, CursorGrab, b.Cursor())

	down(b, flankerX+0.005, flankerY)
	assert.Equal(t, DraggingPlayer, b.Gesture())
	move(b, 0.6, 0.1)
	move(b, 0.65, 0.15)
	up(b)

	after := b.GetState().Allies[flanker]
	assert.InDelta(t, 0.65, after.X, 1e-9)
	assert.InDelta(t, 0.15, after.Y, 1e-9)
	assert.Equal(t, 1, b.HistoryLen())

	b.Undo()
	assert.Equal(t, before, b.GetState().Allies[flanker])
	assert.Zero(t, b.HistoryLen())
}

func TestDragDoesNotChangeOwnership(t *testing.T) {
	b := newTestBoard(t)
	drag(b, flankerX, flankerY, 0.9, 0.5)

	st := b.GetState()
	assert.Len(t, st.Allies, 15)
	assert.Len(t, st.Opponents, 15)
	assert.Equal(t, 6, st.Allies[flanker].Number)
}

func TestPressOnEmptyPitchDoesNothing(t *testing.T) {
	b := newTestBoard(t)
	assert.False(t, down(b, 0.1, 0.1))
	assert.Equal(t, Idle, b.Gesture())
	assert.Zero(t, b.HistoryLen())
	assert.False(t, up(b))
}

func TestBallNeedsBallTool(t *testing.T) {
	b := newTestBoard(t)

	drag(b, 0.5, 0.5, 0.2, 0.2)
	assert.Equal(t, Ball{X: 0.5, Y: 0.5}, b.GetState().Ball)
	assert.Zero(t, b.HistoryLen())

	b.SetTool("BALL")
	down(b, 0.5, 0.5)
	assert.Equal(t, DraggingBall, b.Gesture())
	move(b, 0.2, 0.25)
	up(b)

	ball := b.GetState().Ball
	assert.InDelta(t, 0.2, ball.X, 1e-9)
	assert.InDelta(t, 0.25, ball.Y, 1e-9)
	assert.Equal(t, 1, b.HistoryLen())

	b.Undo()
	assert.Equal(t, Ball{X: 0.5, Y: 0.5}, b.GetState().Ball)
}

func TestBallToolStillGrabsPlayers(t *testing.T) {
	b := newTestBoard(t)
	b.SetTool("BALL")
	down(b, flankerX, flankerY)
	assert.Equal(t, DraggingPlayer, b.Gesture())
}

func TestBallHitRadiusCoversBallAndPlayer(t *testing.T) {
	b := newTestBoard(t)
	b.SetTool("BALL")
	// 21px right of centre is inside BallRadius+PlayerRadius
	cx, cy := px(0.5, 0.5)
	b.Apply(PointerEvent{Kind: PointerDown, X: cx + 21, Y: cy})
	assert.Equal(t, DraggingBall, b.Gesture())
	up(b)

	b.Apply(PointerEvent{Kind: PointerDown, X: cx + 23, Y: cy})
	assert.NotEqual(t, DraggingBall, b.Gesture())
}

func TestHitPriorityFavoursLaterPlayer(t *testing.T) {
	b := newTestBoard(t)
	b.SetState(Patch{
		Allies: []Player{
			{X: 0.3, Y: 0.3, Role: RoleFW, Number: 1, Color: ColorFW},
			{X: 0.3, Y: 0.3, Role: RoleFW, Number: 2, Color: ColorFW},
		},
		Opponents: []Player{},
	})

	drag(b, 0.3, 0.3, 0.7, 0.7)

	allies := b.GetState().Allies
	assert.Equal(t, Point{X: 0.3, Y: 0.3}, allies[0].Pos())
	assert.InDelta(t, 0.7, allies[1].X, 1e-9)
}

func TestHitPriorityAlliesBeforeOpponents(t *testing.T) {
	b := newTestBoard(t)
	b.SetState(Patch{
		Allies:    []Player{{X: 0.3, Y: 0.3, Role: RoleFW, Number: 1}},
		Opponents: []Player{{X: 0.3, Y: 0.3, Role: RoleFW, Number: 1}},
	})
	move(b, 0.3, 0.3)
	target, ok := b.Hover()
	require.True(t, ok)
	assert.Equal(t, RosterAlly, target.Roster)
}

func TestOppSideGatesAlliesAndBench(t *testing.T) {
	for _, view := range []string{"ALL", "FW", "BK"} {
		t.Run(view, func(t *testing.T) {
			b := newTestBoard(t)
			b.SetSide("OPP")
			b.SetView(view)
			st := b.GetState()

			for _, p := range append(st.Allies, b.Bench()...) {
				down(b, p.X, p.Y)
				assert.Equal(t, Idle, b.Gesture(), "player %d %s", p.Number, p.Role)
				up(b)
			}
			assert.Zero(t, b.HistoryLen())

			rec := &recorder{w: testW, h: testH}
			b.Render(rec)
			for _, fill := range []string{ColorFW, ColorBK, ColorBench} {
				assert.Zero(t, rec.count("arc "+colorOutline+" "+fill), fill)
			}
		})
	}
}

func TestViewFilterGatesRoles(t *testing.T) {
	b := newTestBoard(t)
	b.SetView("BK")

	down(b, flankerX, flankerY) // #6 is a forward
	assert.Equal(t, Idle, b.Gesture())

	fullback := b.GetState().Allies[14]
	down(b, fullback.X, fullback.Y)
	assert.Equal(t, DraggingPlayer, b.Gesture())
}

func TestBenchOnlyHittableInAllView(t *testing.T) {
	b := newTestBoard(t)
	reserve := b.Bench()[0]

	b.SetView("FW")
	down(b, reserve.X, reserve.Y)
	assert.Equal(t, Idle, b.Gesture())

	b.SetView("ALL")
	down(b, reserve.X, reserve.Y)
	assert.Equal(t, DraggingPlayer, b.Gesture())
	move(b, 0.2, 0.2)
	up(b)
	assert.InDelta(t, 0.2, b.Bench()[0].X, 1e-9)
}

func TestHistoryBound(t *testing.T) {
	b := newTestBoard(t)
	b.SetTool("ARROW")
	for i := 0; i < 60; i++ {
		down(b, 0.1, 0.1)
		move(b, 0.2, 0.2)
		up(b)
		assert.LessOrEqual(t, b.HistoryLen(), HistoryLimit)
	}
	require.Equal(t, HistoryLimit, b.HistoryLen())
	require.Len(t, b.GetState().Arrows, 60)

	for i := 0; i < HistoryLimit; i++ {
		b.Undo()
		assert.Len(t, b.GetState().Arrows, 59-i)
	}
	b.Undo()
	assert.Len(t, b.GetState().Arrows, 10, "states older than the limit are gone")
}

func TestUndoOnEmptyHistoryIsSilent(t *testing.T) {
	b := newTestBoard(t)
	before := b.GetState()
	b.Undo()
	assert.Equal(t, before, b.GetState())
}

func TestUndoRestoresView(t *testing.T) {
	b := newTestBoard(t)
	drag(b, flankerX, flankerY, 0.3, 0.3)
	b.SetView("BK")
	b.SetSide("ALLY")
	b.Undo()
	assert.Equal(t, ViewAll, b.View())
	assert.Equal(t, SideAlly, b.Side(), "side is not part of a snapshot")
}

func TestJerseyNumberEdit(t *testing.T) {
	b := newTestBoard(t)
	x, y := px(flankerX, flankerY)
	target, ok := b.EditableAt(x, y)
	require.True(t, ok)
	assert.Equal(t, Target{Roster: RosterAlly, Index: flanker}, target)

	cases := []struct {
		name    string
		input   string
		wantErr error
		want    int
	}{
		{"empty cancels", "", nil, 6},
		{"blank cancels", "   ", nil, 6},
		{"letters rejected", "six", ErrInvalidNumber, 6},
		{"mixed rejected", "6a", ErrInvalidNumber, 6},
		{"negative rejected", "-4", ErrInvalidNumber, 6},
		{"zero rejected", "0", ErrInvalidNumber, 6},
		{"valid", " 21 ", nil, 21},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := b.SetNumber(target, tc.input)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			}
			p, _ := b.Player(target)
			assert.Equal(t, tc.want, p.Number)
		})
	}
	assert.Zero(t, b.HistoryLen(), "number edits are not undoable")
}

func TestBenchIsNotEditable(t *testing.T) {
	b := newTestBoard(t)
	reserve := b.Bench()[2]
	x, y := px(reserve.X, reserve.Y)
	_, ok := b.EditableAt(x, y)
	assert.False(t, ok)
}

func TestSetNameTrims(t *testing.T) {
	b := newTestBoard(t)
	target := Target{Roster: RosterBench, Index: 0}
	b.SetName(target, "  Tane ")
	p, ok := b.Player(target)
	require.True(t, ok)
	assert.Equal(t, "Tane", p.Name)
}

func TestReplacementWaitsForGestureToEnd(t *testing.T) {
	b := newTestBoard(t)
	move(b, flankerX, flankerY)
	down(b, flankerX, flankerY)
	require.Equal(t, DraggingPlayer, b.Gesture())

	ball := Ball{X: 0.1, Y: 0.9}
	b.SetState(Patch{Ball: &ball})
	b.Reset(12)
	move(b, 0.3, 0.3)
	assert.Equal(t, Ball{X: 0.5, Y: 0.5}, b.GetState().Ball)
	assert.Equal(t, 15, b.Unit())

	up(b)
	assert.Equal(t, 12, b.Unit(), "queued calls run in order once idle")
	assert.Equal(t, Ball{X: 0.5, Y: 0.5}, b.GetState().Ball)
	assert.Len(t, b.GetState().Allies, 12)
}

func TestMovingWithoutHoverChangeIsClean(t *testing.T) {
	b := newTestBoard(t)
	assert.False(t, move(b, 0.1, 0.1))
	assert.True(t, move(b, flankerX, flankerY))
	assert.False(t, move(b, flankerX+0.001, flankerY))
	assert.True(t, move(b, 0.1, 0.1))
	assert.Equal(t, CursorDefault, b.Cursor())
}
