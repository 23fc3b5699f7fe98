package main

import "scrumboard/board"

// handleNavigation moves the keyboard pointer and feeds the move to the
// board, so hjkl plus space drives the same gestures as a mouse.
func (m *model) handleNavigation(key string, speed int) {
	if m.rosterFocus {
		m.handleRosterMove(key)
		return
	}
	m.handleCursorMove(key, speed)
	m.showCursor = true
	px, py := cellToPixel(m.cursorX, m.cursorY)
	m.board.Apply(board.PointerEvent{Kind: board.PointerMove, X: px, Y: py})
}

func (m *model) handleCursorMove(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.cursorX -= speed
	case "l", "right", "L", "shift+right":
		m.cursorX += speed
	case "k", "up", "K", "shift+up":
		m.cursorY -= speed
	case "j", "down", "J", "shift+down":
		m.cursorY += speed
	}
	m.ensureCursorInBounds()
}

func (m *model) handleRosterMove(key string) {
	n := len(m.board.Roster())
	if n == 0 {
		m.rosterIndex = 0
		return
	}
	switch key {
	case "k", "up", "K", "shift+up":
		m.rosterIndex--
	case "j", "down", "J", "shift+down":
		m.rosterIndex++
	}
	if m.rosterIndex < 0 {
		m.rosterIndex = n - 1
	}
	if m.rosterIndex >= n {
		m.rosterIndex = 0
	}
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 3
	default:
		return 1
	}
}

// togglePointer presses or releases the keyboard pointer.
func (m *model) togglePointer() {
	m.showCursor = true
	if m.pointerHeld {
		m.release()
		return
	}
	px, py := cellToPixel(m.cursorX, m.cursorY)
	m.pointerHeld = true
	m.board.Apply(board.PointerEvent{Kind: board.PointerDown, X: px, Y: py})
}

func (m *model) ensureCursorInBounds() {
	if m.cursorX < 0 {
		m.cursorX = 0
	}
	if m.cursorY < 0 {
		m.cursorY = 0
	}
	if cols := m.canvasCols(); m.cursorX >= cols {
		m.cursorX = cols - 1
	}
	if rows := m.canvasRows(); m.cursorY >= rows {
		m.cursorY = rows - 1
	}
}

func (m *model) canvasCols() int {
	cols := m.width
	if m.showRoster() {
		cols -= rosterWidth
	}
	if cols < 1 {
		cols = 1
	}
	return cols
}

// canvasRows leaves room for the status line.
func (m *model) canvasRows() int {
	rows := m.height - 1
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *model) showRoster() bool {
	return m.width-rosterWidth >= minCanvasCols
}
