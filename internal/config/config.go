package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"
)

type Config struct {
	BaseDir  string
	InputDir string
	TempDir  string

	InputFile  string
	OutputFile string

	AmendmentCodes []string

	LogLevel  string
	LogFormat string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	base := getEnv("ECO_BASE_DIR", cwd)
	cfg := Config{
		BaseDir:  base,
		InputDir: getEnv("ECO_INPUT_DIR", filepath.Join(base, "Input")),
		TempDir:  getEnv("ECO_TEMP_DIR", filepath.Join(base, "Temp")),

		InputFile:  getEnv("ECO_INPUT_FILE", "ECO_release.csv"),
		OutputFile: getEnv("ECO_OUTPUT_FILE", "cleanECO.csv"),

		AmendmentCodes: splitCodes(getEnv("ECO_AMENDMENT_CODES", "AFPRST")),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// InputPath is where the raw feed is read from. An absolute InputFile wins
// over InputDir.
func (c Config) InputPath() string {
	return resolve(c.InputDir, c.InputFile)
}

func (c Config) OutputPath() string {
	return resolve(c.TempDir, c.OutputFile)
}

func (c Config) Validate() error {
	if err := c.Require("ECO_INPUT_FILE", c.InputFile); err != nil {
		return err
	}
	if err := c.Require("ECO_OUTPUT_FILE", c.OutputFile); err != nil {
		return err
	}
	if len(c.AmendmentCodes) == 0 {
		return fmt.Errorf("ECO_AMENDMENT_CODES must list at least one code")
	}
	for _, code := range c.AmendmentCodes {
		if utf8.RuneCountInString(code) != 1 {
			return fmt.Errorf("amendment code %q must be a single character", code)
		}
	}
	return nil
}

func (c Config) Require(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required env var: %s", name)
	}
	return nil
}

func resolve(dir, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}

// splitCodes accepts "AFPRST" as well as "A,F,P".
func splitCodes(value string) []string {
	value = strings.NewReplacer(",", "", " ", "").Replace(value)
	out := make([]string, 0, len(value))
	for _, r := range value {
		out = append(out, string(r))
	}
	return out
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
