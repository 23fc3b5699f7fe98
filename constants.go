package main

import "time"

type Mode int

const (
	ModeNormal Mode = iota
	ModeNumberInput
	ModeNameInput
	ModeTitleInput
	ModeFileInput
	ModeConfirm
)

type FileOperation int

const (
	FileOpExport FileOperation = iota
	FileOpExportPNG
	FileOpImport
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmReset
	ConfirmSwitchUnit
	ConfirmOverwriteFile
)

const (
	// pixels per terminal cell; cells are roughly twice as tall as wide
	cellWidth  = 8.0
	cellHeight = 16.0

	rosterWidth     = 26
	minCanvasCols   = 40
	doubleClickTime = 400 * time.Millisecond

	pngWidth  = 1248
	pngHeight = 748
)
