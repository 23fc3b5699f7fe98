package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// scanPlayFiles lists saved plays in dir, most recently changed first.
func scanPlayFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	type play struct {
		name string
		mod  int64
	}
	var plays []play
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".json") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		plays = append(plays, play{name: entry.Name(), mod: info.ModTime().UnixNano()})
	}
	sort.SliceStable(plays, func(i, j int) bool {
		if plays[i].mod != plays[j].mod {
			return plays[i].mod > plays[j].mod
		}
		return plays[i].name < plays[j].name
	})

	names := make([]string, len(plays))
	for i, p := range plays {
		names[i] = p.name
	}
	return names
}

func (m *model) scanPlays() {
	m.fileList = scanPlayFiles(m.config.SaveDir())
	if len(m.fileList) == 0 {
		m.selectedFileIndex = -1
		return
	}
	m.selectedFileIndex = 0
	m.filename = trimExt(m.fileList[0])
}

func (m *model) playPath(name string) string {
	return filepath.Join(m.config.SaveDir(), name)
}

func trimExt(name string) string {
	if strings.HasSuffix(strings.ToLower(name), ".json") {
		return name[:len(name)-len(".json")]
	}
	return name
}
