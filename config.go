package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	SaveDirectory string
	DefaultUnit   int
	Confirmations bool
	LogFile       string
	Title         string
}

func defaultConfig() *Config {
	return &Config{
		SaveDirectory: "",
		DefaultUnit:   15,
		Confirmations: true,
		Title:         "play",
	}
}

func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}
	return readConfig(filepath.Join(homeDir, ".scrumboardrc"), homeDir)
}

// readConfig parses a KEY=value rc file. Missing files and unknown keys are
// ignored; every setting falls back to its default.
func readConfig(path, homeDir string) *Config {
	config := defaultConfig()

	values, err := godotenv.Read(path)
	if err != nil {
		return config
	}

	for key, value := range values {
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "savedirectory", "save_directory", "savedir":
			config.SaveDirectory = expandPath(value, homeDir)
		case "defaultunit", "default_unit", "unit":
			if n, err := strconv.Atoi(value); err == nil {
				config.DefaultUnit = n
			}
		case "confirmations", "confirm":
			config.Confirmations = strings.ToLower(value) == "true"
		case "logfile", "log_file":
			config.LogFile = expandPath(value, homeDir)
		case "title":
			if value != "" {
				config.Title = value
			}
		}
	}

	return config
}

func expandPath(value, homeDir string) string {
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "~") {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

// GetSavePath places filename in the save directory, creating it if needed.
func (c *Config) GetSavePath(filename string) (string, error) {
	if c.SaveDirectory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		return "", fmt.Errorf("save directory: %w", err)
	}
	return filepath.Join(c.SaveDirectory, filename), nil
}

// SaveDir is the directory plays are listed from.
func (c *Config) SaveDir() string {
	if c.SaveDirectory == "" {
		return "."
	}
	return c.SaveDirectory
}
