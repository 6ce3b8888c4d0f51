package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	fileName   = "config.yml"
	xdgCfgFile = "tictactoe/config.yml"
)

var (
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrInvalidGlyph    = errors.New("invalid marker glyph")
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"TICTACTOE_LOG_FILE"`
	UI       UI     `yaml:"ui"`
}

// UI holds the look and input settings of the terminal host.
type UI struct {
	DisableMouse bool `yaml:"disable-mouse" env:"TICTACTOE_DISABLE_MOUSE"`

	XColor    string `yaml:"x-color" env-default:"green"`
	OColor    string `yaml:"o-color" env-default:"red"`
	GridColor string `yaml:"grid-color" env-default:"blue"`
	XGlyph    string `yaml:"x-glyph" env-default:"X"`
	OGlyph    string `yaml:"o-glyph" env-default:"O"`
}

// MustLoad - load all configurations from the file at path, or from the environment when path is empty.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read env: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Locate - returns config.yml from baseDir if present, then the XDG config location, or "" when neither exists.
func Locate(baseDir string) string {
	local := filepath.Join(baseDir, fileName)
	if _, err := os.Stat(local); err == nil {
		return local
	}

	if path, err := xdg.SearchConfigFile(xdgCfgFile); err == nil {
		return path
	}

	return ""
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, that.LogLevel)
	}

	for _, glyph := range []string{that.UI.XGlyph, that.UI.OGlyph} {
		if err := validateGlyph(glyph); err != nil {
			return err
		}
	}

	return nil
}

func validateGlyph(glyph string) error {
	if utf8.RuneCountInString(glyph) != 1 {
		return fmt.Errorf("%w: %q must be a single character", ErrInvalidGlyph, glyph)
	}

	// control characters would break the grid
	r, _ := utf8.DecodeRuneInString(glyph)
	if r < 32 || (r >= 127 && r <= 159) {
		return fmt.Errorf("%w: %q is a control character", ErrInvalidGlyph, glyph)
	}

	return nil
}
