package main

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

func cleanClipboardText(text string) string {
	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r == '\r' || r == '\t' || r >= 32 {
			result.WriteRune(r)
		}
	}
	normalized := strings.ReplaceAll(result.String(), "\r\n", "\n")
	return strings.TrimSpace(normalized)
}

// playFilename turns a play title into a file name with ext.
func playFilename(title, ext string) string {
	var name strings.Builder
	for _, r := range strings.TrimSpace(title) {
		switch {
		case r == '/' || r == '\\' || r == ':' || r == '*' || r == '?' || r == '"' || r == '<' || r == '>' || r == '|':
			name.WriteRune('_')
		case r < 32:
			continue
		default:
			name.WriteRune(r)
		}
	}
	base := strings.Trim(name.String(), ". ")
	if base == "" {
		base = "play"
	}
	if strings.HasSuffix(strings.ToLower(base), ext) {
		return base
	}
	return base + ext
}

func zapFile(filename string) zap.Field { return zap.String("file", filename) }

func zapErr(err error) zap.Field { return zap.Error(err) }
