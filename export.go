package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"

	"scrumboard/board"
)

// writePlay saves the board state as indented JSON.
func writePlay(b *board.Board, filename string) error {
	data, err := b.GetState().MarshalIndent()
	if err != nil {
		return fmt.Errorf("encode play: %w", err)
	}
	data = append(data, '\n')
	return os.WriteFile(filename, data, 0644)
}

// readPlay merges a saved play into the board. The file is not validated
// beyond being a JSON object; unknown or malformed fields are skipped.
func readPlay(b *board.Board, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	if err := b.SetStateJSON(data); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return nil
}

func copyPlay(b *board.Board) error {
	data, err := b.GetState().MarshalIndent()
	if err != nil {
		return fmt.Errorf("encode play: %w", err)
	}
	return clipboard.WriteAll(string(data))
}

func pastePlay(b *board.Board) error {
	text, err := readClipboardText()
	if err != nil {
		return fmt.Errorf("read clipboard: %w", err)
	}
	text = cleanClipboardText(text)
	if text == "" {
		return fmt.Errorf("clipboard is empty")
	}
	return b.SetStateJSON([]byte(text))
}

func (m *model) exportJSON(filename string) error {
	if err := writePlay(m.board, filename); err != nil {
		m.log.Error("export failed", zapFile(filename), zapErr(err))
		return err
	}
	m.log.Info("play exported", zapFile(filename))
	return nil
}

func (m *model) exportPNG(filename string) error {
	if err := renderPNG(m.board, filename, pngWidth, pngHeight); err != nil {
		m.log.Error("png export failed", zapFile(filename), zapErr(err))
		return err
	}
	m.log.Info("png exported", zapFile(filename))
	return nil
}

func (m *model) importJSON(filename string) error {
	if err := readPlay(m.board, filename); err != nil {
		m.log.Error("import failed", zapFile(filename), zapErr(err))
		return err
	}
	m.log.Info("play imported", zapFile(filename))
	return nil
}
