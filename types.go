package main

import (
	"time"

	"go.uber.org/zap"

	"scrumboard/board"
)

type model struct {
	width  int
	height int

	board   *board.Board
	surface *termSurface
	title   string

	mode Mode
	help bool

	// keyboard pointer, in cells
	cursorX     int
	cursorY     int
	showCursor  bool
	pointerHeld bool

	// last press, for double-click detection
	lastPress  time.Time
	lastPressX int
	lastPressY int

	editTarget   board.Target
	inputText    string
	inputCursor  int
	rosterFocus  bool
	rosterIndex  int
	rosterTarget board.Target

	filename          string
	pendingPath       string
	fileList          []string
	selectedFileIndex int
	fileOp            FileOperation
	confirmAction     ConfirmAction
	pendingUnit       int

	errorMessage   string
	successMessage string

	config *Config
	log    *zap.Logger
	now    func() time.Time
}

type point struct {
	X, Y int
}
