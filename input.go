package main

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"scrumboard/board"
)

// cellToPixel maps a terminal cell to the pixel at its centre.
func cellToPixel(x, y int) (float64, float64) {
	return (float64(x) + 0.5) * cellWidth, (float64(y) + 0.5) * cellHeight
}

// handleMouse translates terminal mouse reports into board pointer events.
func (m *model) handleMouse(msg tea.MouseMsg) {
	if m.mode != ModeNormal || m.help || m.surface == nil {
		return
	}

	if msg.X >= m.canvasCols() || msg.Y >= m.canvasRows() {
		switch msg.Type {
		case tea.MouseLeft:
			if !m.pointerHeld {
				m.clickRoster(msg.Y)
			}
		case tea.MouseRelease:
			m.release()
		}
		return
	}

	px, py := cellToPixel(msg.X, msg.Y)
	switch msg.Type {
	case tea.MouseLeft:
		// some terminals repeat the button while dragging
		if m.pointerHeld {
			m.board.Apply(board.PointerEvent{Kind: board.PointerMove, X: px, Y: py})
			return
		}
		if m.isDoubleClick(msg.X, msg.Y) {
			m.startNumberEdit(px, py)
			return
		}
		m.pointerHeld = true
		m.board.Apply(board.PointerEvent{Kind: board.PointerDown, X: px, Y: py})
	case tea.MouseMotion:
		m.board.Apply(board.PointerEvent{Kind: board.PointerMove, X: px, Y: py})
	case tea.MouseRelease:
		m.release()
	}
}

func (m *model) release() {
	if !m.pointerHeld {
		return
	}
	m.pointerHeld = false
	m.board.Apply(board.PointerEvent{Kind: board.PointerUp})
}

// isDoubleClick records a press and reports whether it completes a double
// click on the same cell.
func (m *model) isDoubleClick(x, y int) bool {
	now := m.now()
	double := !m.lastPress.IsZero() &&
		now.Sub(m.lastPress) <= doubleClickTime &&
		x == m.lastPressX && y == m.lastPressY
	if double {
		m.lastPress = now.Add(-2 * doubleClickTime)
	} else {
		m.lastPress = now
	}
	m.lastPressX, m.lastPressY = x, y
	return double
}

// startNumberEdit opens the jersey number prompt for the player at px.
func (m *model) startNumberEdit(px, py float64) {
	target, ok := m.board.EditableAt(px, py)
	if !ok {
		return
	}
	p, _ := m.board.Player(target)
	m.editTarget = target
	m.inputText = ""
	if p.Number > 0 {
		m.inputText = strconv.Itoa(p.Number)
	}
	m.inputCursor = len(m.inputText)
	m.mode = ModeNumberInput
	m.errorMessage = ""
	m.successMessage = ""
}

func (m *model) commitNumberEdit() {
	if err := m.board.SetNumber(m.editTarget, m.inputText); err != nil {
		m.errorMessage = err.Error()
	}
	m.mode = ModeNormal
	m.inputText = ""
	m.inputCursor = 0
}

func (m *model) clickRoster(row int) {
	rows := m.board.Roster()
	i := row - 1 // header line
	if i < 0 || i >= len(rows) {
		return
	}
	m.rosterFocus = true
	m.rosterIndex = i
}
