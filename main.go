package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"scrumboard/board"
)

func main() {
	config := loadConfig()
	logger, err := newLogger(config)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	m := initialModel(config, logger)
	if len(os.Args) > 1 {
		if err := m.importJSON(os.Args[1]); err != nil {
			log.Fatal(err)
		}
		m.title = trimExt(filepath.Base(os.Args[1]))
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

func initialModel(config *Config, logger *zap.Logger) model {
	b := board.New(
		board.WithLogger(logger.Named("board")),
		board.WithUnit(config.DefaultUnit),
	)
	return model{
		board:             b,
		title:             config.Title,
		mode:              ModeNormal,
		selectedFileIndex: -1,
		config:            config,
		log:               logger,
		now:               time.Now,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// resize rebuilds the terminal surface for a new window size. The board
// keeps normalized positions, so nothing moves relative to the pitch.
func (m *model) resize(width, height int) {
	m.width = width
	m.height = height
	m.surface = newTermSurface(m.canvasCols(), m.canvasRows())
	m.board.Attach(m.surface)
	m.ensureCursorInBounds()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.help {
		switch msg.String() {
		case "?", "esc", "q":
			m.help = false
		}
		return m, nil
	}

	switch m.mode {
	case ModeNumberInput, ModeNameInput, ModeTitleInput:
		switch msg.Type {
		case tea.KeyEscape:
			m.closeInput()
		case tea.KeyEnter:
			m.commitInput()
		default:
			m.editInput(msg)
		}
		return m, nil

	case ModeFileInput:
		m.handleFileKey(msg)
		return m, nil

	case ModeConfirm:
		switch msg.String() {
		case "y", "Y":
			return m.confirm()
		case "n", "N", "esc":
			m.mode = ModeNormal
			m.pendingPath = ""
		}
		return m, nil
	}

	m.errorMessage = ""
	m.successMessage = ""

	switch key := msg.String(); key {
	case "q":
		if !m.config.Confirmations {
			return m, tea.Quit
		}
		m.askConfirm(ConfirmQuit)
	case "?":
		m.help = true
	case "esc":
		m.rosterFocus = false
		m.showCursor = false
	case "m":
		m.board.SetTool(string(board.ToolMove))
	case "a":
		m.board.SetTool(string(board.ToolArrow))
	case "b":
		m.board.SetTool(string(board.ToolBall))
	case "v":
		m.board.SetView(string(nextView(m.board.View())))
	case "s":
		m.board.SetSide(string(nextSide(m.board.Side())))
	case "u":
		m.board.Undo()
	case "r":
		m.pendingUnit = m.board.Unit()
		m.askConfirm(ConfirmReset)
	case "t":
		m.pendingUnit = 27 - m.board.Unit()
		m.askConfirm(ConfirmSwitchUnit)
	case "#":
		m.showCursor = true
		m.startNumberEdit(cellToPixel(m.cursorX, m.cursorY))
	case "enter":
		if m.rosterFocus {
			m.startNameEdit()
		} else {
			m.showCursor = true
			m.startNumberEdit(cellToPixel(m.cursorX, m.cursorY))
		}
	case "tab":
		m.rosterFocus = !m.rosterFocus && m.showRoster()
		m.handleRosterMove("")
	case "T":
		m.mode = ModeTitleInput
		m.inputText = m.title
		m.inputCursor = len([]rune(m.inputText))
	case "e":
		m.startFileInput(FileOpExport)
	case "P":
		m.startFileInput(FileOpExportPNG)
	case "o":
		m.startFileInput(FileOpImport)
	case "y":
		if err := copyPlay(m.board); err != nil {
			m.errorMessage = err.Error()
		} else {
			m.successMessage = "Copied play to clipboard"
		}
	case "p":
		if err := pastePlay(m.board); err != nil {
			m.log.Warn("paste failed", zapErr(err))
			m.errorMessage = err.Error()
		} else {
			m.successMessage = "Pasted play from clipboard"
		}
	case " ":
		m.togglePointer()
	case "h", "j", "k", "l", "left", "right", "up", "down",
		"H", "J", "K", "L", "shift+left", "shift+right", "shift+up", "shift+down":
		m.handleNavigation(key, m.getMoveSpeed(key))
	}
	return m, nil
}

func nextView(v board.View) board.View {
	switch v {
	case board.ViewAll:
		return board.ViewFW
	case board.ViewFW:
		return board.ViewBK
	default:
		return board.ViewAll
	}
}

func nextSide(s board.Side) board.Side {
	switch s {
	case board.SideBoth:
		return board.SideAlly
	case board.SideAlly:
		return board.SideOpp
	default:
		return board.SideBoth
	}
}

// askConfirm asks before destructive actions unless confirmations are off.
func (m *model) askConfirm(action ConfirmAction) {
	if !m.config.Confirmations && action != ConfirmOverwriteFile {
		m.confirmAction = action
		m.confirm()
		return
	}
	m.confirmAction = action
	m.mode = ModeConfirm
}

func (m *model) confirm() (tea.Model, tea.Cmd) {
	m.mode = ModeNormal
	switch m.confirmAction {
	case ConfirmQuit:
		return *m, tea.Quit
	case ConfirmReset, ConfirmSwitchUnit:
		m.board.Reset(m.pendingUnit)
		m.successMessage = fmt.Sprintf("Reset to %d-a-side", m.board.Unit())
	case ConfirmOverwriteFile:
		m.writeFile(m.pendingPath)
		m.pendingPath = ""
	}
	return *m, nil
}

func (m *model) startNameEdit() {
	rows := m.board.Roster()
	if m.rosterIndex < 0 || m.rosterIndex >= len(rows) {
		return
	}
	row := rows[m.rosterIndex]
	m.rosterTarget = row.Target
	m.inputText = row.Player.Name
	m.inputCursor = len([]rune(m.inputText))
	m.mode = ModeNameInput
}

func (m *model) commitInput() {
	switch m.mode {
	case ModeNumberInput:
		m.commitNumberEdit()
		return
	case ModeNameInput:
		m.board.SetName(m.rosterTarget, m.inputText)
	case ModeTitleInput:
		if title := strings.TrimSpace(m.inputText); title != "" {
			m.title = title
		}
	}
	m.closeInput()
}

func (m *model) closeInput() {
	m.mode = ModeNormal
	m.inputText = ""
	m.inputCursor = 0
}

// editInput applies a key to the text prompt.
func (m *model) editInput(msg tea.KeyMsg) {
	text := []rune(m.inputText)
	if m.inputCursor > len(text) {
		m.inputCursor = len(text)
	}
	switch msg.Type {
	case tea.KeyBackspace:
		if m.inputCursor > 0 {
			text = append(text[:m.inputCursor-1], text[m.inputCursor:]...)
			m.inputCursor--
		}
	case tea.KeyDelete:
		if m.inputCursor < len(text) {
			text = append(text[:m.inputCursor], text[m.inputCursor+1:]...)
		}
	case tea.KeyLeft:
		if m.inputCursor > 0 {
			m.inputCursor--
		}
	case tea.KeyRight:
		if m.inputCursor < len(text) {
			m.inputCursor++
		}
	case tea.KeyHome:
		m.inputCursor = 0
	case tea.KeyEnd:
		m.inputCursor = len(text)
	case tea.KeySpace, tea.KeyRunes:
		ins := msg.Runes
		if msg.Type == tea.KeySpace {
			ins = []rune{' '}
		}
		rest := append([]rune{}, text[m.inputCursor:]...)
		text = append(append(text[:m.inputCursor], ins...), rest...)
		m.inputCursor += len(ins)
	}
	m.inputText = string(text)
}

func (m *model) startFileInput(op FileOperation) {
	m.mode = ModeFileInput
	m.fileOp = op
	m.fileList = nil
	m.selectedFileIndex = -1
	if op == FileOpImport {
		m.filename = ""
		m.scanPlays()
		return
	}
	m.filename = trimExt(playFilename(m.title, ".json"))
}

func (m *model) handleFileKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModeNormal
		m.filename = ""
		m.errorMessage = ""
	case tea.KeyEnter:
		m.commitFileInput()
	case tea.KeyUp, tea.KeyDown:
		if m.fileOp != FileOpImport || len(m.fileList) == 0 {
			return
		}
		// only browse while the name still matches a listed file
		if m.filename != "" && (m.selectedFileIndex < 0 || m.filename != trimExt(m.fileList[m.selectedFileIndex])) {
			return
		}
		n := len(m.fileList)
		if msg.Type == tea.KeyUp {
			m.selectedFileIndex = (m.selectedFileIndex - 1 + n) % n
		} else {
			m.selectedFileIndex = (m.selectedFileIndex + 1) % n
		}
		m.filename = trimExt(m.fileList[m.selectedFileIndex])
	case tea.KeyBackspace:
		if r := []rune(m.filename); len(r) > 0 {
			m.filename = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.filename += " "
	case tea.KeyRunes:
		m.filename += string(msg.Runes)
	}
}

func (m *model) commitFileInput() {
	name := strings.TrimSpace(m.filename)
	switch m.fileOp {
	case FileOpImport:
		if name == "" {
			m.errorMessage = "no play selected"
			return
		}
		path := m.playPath(playFilename(name, ".json"))
		if err := m.importJSON(path); err != nil {
			m.errorMessage = err.Error()
			return
		}
		m.title = trimExt(filepath.Base(path))
		m.successMessage = "Opened " + path
		m.mode = ModeNormal
		m.errorMessage = ""
	case FileOpExport, FileOpExportPNG:
		ext := ".json"
		if m.fileOp == FileOpExportPNG {
			ext = ".png"
		}
		filename := playFilename(name, ext)
		path, err := m.config.GetSavePath(filename)
		if err != nil {
			m.log.Error("export failed", zapFile(filename), zapErr(err))
			m.errorMessage = err.Error()
			return
		}
		m.filename = filename
		if _, err := os.Stat(path); err == nil && m.config.Confirmations {
			m.pendingPath = path
			m.askConfirm(ConfirmOverwriteFile)
			return
		}
		m.mode = ModeNormal
		m.writeFile(path)
	}
}

func (m *model) writeFile(path string) {
	var err error
	if m.fileOp == FileOpExportPNG {
		err = m.exportPNG(path)
	} else {
		err = m.exportJSON(path)
	}
	if err != nil {
		m.errorMessage = err.Error()
		return
	}
	if m.fileOp == FileOpExport {
		m.title = trimExt(filepath.Base(path))
	}
	m.successMessage = "Saved " + path
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}
	if m.surface == nil {
		return ""
	}

	var body string
	if m.mode == ModeFileInput && m.fileOp == FileOpImport {
		body = m.fileListView()
	} else {
		var cursor *point
		if m.showCursor {
			cursor = &point{X: m.cursorX, Y: m.cursorY}
		}
		body = strings.Join(m.surface.Lines(cursor), "\n")
	}
	if m.showRoster() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.rosterView())
	}
	return body + "\n" + m.statusLine()
}

var (
	rosterHeader   = lipgloss.NewStyle().Bold(true).Underline(true)
	rosterSelected = lipgloss.NewStyle().Reverse(true)
	rosterDim      = lipgloss.NewStyle().Faint(true)
	fileBox        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func (m model) rosterView() string {
	lines := []string{rosterHeader.Render("Roster")}
	for i, row := range m.surface.roster {
		fg := "#ffffff"
		if strings.EqualFold(row.Player.Color, board.ColorBench) {
			fg = "#111111"
		}
		no := "  "
		if row.Player.Number > 0 {
			no = fmt.Sprintf("%2d", row.Player.Number)
		}
		name := rosterDim.Render("-")
		if row.Player.Name != "" {
			name = row.Player.Name
		}
		line := cellStyle(fg, row.Player.Color).Render(no) + " " + name
		if m.rosterFocus && i == m.rosterIndex {
			line = rosterSelected.Render(">") + " " + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	if limit := m.canvasRows(); len(lines) > limit {
		lines = lines[:limit]
	}
	return lipgloss.NewStyle().
		Width(rosterWidth).
		MaxWidth(rosterWidth).
		Height(m.canvasRows()).
		PaddingLeft(1).
		Render(strings.Join(lines, "\n"))
}

func (m model) fileListView() string {
	var lines []string
	if len(m.fileList) == 0 {
		lines = append(lines, "No saved plays in "+m.config.SaveDir())
	}
	for i, name := range m.fileList {
		if i == m.selectedFileIndex {
			lines = append(lines, rosterSelected.Render("> "+trimExt(name)))
		} else {
			lines = append(lines, "  "+trimExt(name))
		}
	}
	return lipgloss.Place(m.canvasCols(), m.canvasRows(), lipgloss.Center, lipgloss.Center,
		fileBox.Render(strings.Join(lines, "\n")))
}

func (m model) statusLine() string {
	switch m.mode {
	case ModeNumberInput:
		if m.editTarget.Roster == board.RosterOpp {
			return "Mode: NUMBER | Opponent jersey number: " + m.inputText + " | Enter=confirm, Esc=cancel"
		}
		return "Mode: NUMBER | Jersey number: " + m.inputText + " | Enter=confirm, Esc=cancel"
	case ModeNameInput:
		return "Mode: NAME | Player name: " + m.inputText + " | Enter=confirm, Esc=cancel"
	case ModeTitleInput:
		return "Mode: TITLE | Play title: " + m.inputText + " | Enter=confirm, Esc=cancel"
	case ModeFileInput:
		var op string
		switch m.fileOp {
		case FileOpExport:
			op = "Export"
		case FileOpExportPNG:
			op = "Export PNG"
		case FileOpImport:
			op = "Open"
		}
		status := fmt.Sprintf("Mode: FILE | %s filename: %s", op, m.filename)
		if m.errorMessage != "" {
			status = fmt.Sprintf("Mode: FILE | ERROR: %s | %s filename: %s", m.errorMessage, op, m.filename)
		}
		if m.fileOp == FileOpImport {
			return status + " | ↑/↓=navigate, Enter=confirm, Esc=cancel"
		}
		return status + " | Enter=confirm, Esc=cancel"
	case ModeConfirm:
		var message string
		switch m.confirmAction {
		case ConfirmQuit:
			message = "Quit? (y/n)"
		case ConfirmReset:
			message = "Reset the board? Arrows and moves will be lost. (y/n)"
		case ConfirmSwitchUnit:
			message = fmt.Sprintf("Switch to %d-a-side? The board will be reset. (y/n)", m.pendingUnit)
		case ConfirmOverwriteFile:
			message = fmt.Sprintf("File %s already exists. Overwrite? (y/n)", m.filename)
		}
		return "Mode: CONFIRM | " + message
	}

	status := fmt.Sprintf("%s | %d-a-side | View: %s | Side: %s | Tool: %s",
		m.title, m.board.Unit(), m.board.View(), m.board.Side(), m.board.Tool())
	if g := m.board.Gesture(); g != board.Idle {
		status += " | " + g.String()
	} else if m.board.Cursor() == board.CursorGrab {
		status += " | grab"
	}
	if n := m.board.HistoryLen(); n > 0 {
		status += fmt.Sprintf(" | Undo: %d", n)
	}
	if m.successMessage != "" {
		status += " | " + m.successMessage
	}
	if m.errorMessage != "" {
		status += " | ERROR: " + m.errorMessage
	} else if m.successMessage == "" {
		status += " | ? for help | q to quit"
	}
	return status
}

func (m model) helpView() string {
	helpLines := []string{
		"Scrumboard Help",
		"===============",
		"",
		"Pointer:",
		"--------",
		"  Mouse            Press, drag and release on the pitch",
		"  Double-click     Edit the jersey number of a player",
		"  h/←/j/↓/k/↑/l/→  Move the keyboard pointer",
		"  Shift+h/j/k/l    Move the keyboard pointer faster",
		"  Space            Press / release the keyboard pointer",
		"  # or Enter       Edit the jersey number under the keyboard pointer",
		"",
		"Tools:",
		"------",
		"  m                Move players",
		"  a                Draw arrows",
		"  b                Move the ball (players can still be grabbed)",
		"",
		"Board:",
		"------",
		"  v                Cycle view: ALL → FW → BK",
		"  s                Cycle side: BOTH → ALLY → OPP",
		"  u                Undo",
		"  r                Reset the board",
		"  t                Switch between 12 and 15 a side",
		"",
		"Roster:",
		"-------",
		"  Tab              Focus the roster panel",
		"  j/k              Select a player",
		"  Enter            Name the selected player",
		"",
		"Plays:",
		"------",
		"  T                Set the play title",
		"  e                Export the play as JSON",
		"  P                Export the board as PNG",
		"  o                Open a saved play",
		"  y                Copy the play to the clipboard",
		"  p                Paste a play from the clipboard",
		"",
		"General:",
		"  Esc              Hide the keyboard pointer / leave the roster",
		"  ?                Toggle this help screen",
		"  q/Ctrl+C         Quit",
	}

	visible := m.height - 1
	if visible < 1 {
		visible = 1
	}
	if len(helpLines) > visible {
		helpLines = helpLines[:visible]
	}
	return strings.Join(helpLines, "\n") + "\nPress ? or Esc to close help"
}
