// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package logging builds the zerolog logger used by the capture driver.
package logging

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/rs/zerolog"
)

// Environment variables read by ApplyEnv.
const (
	// EnvLogLevel names the minimum level (see ParseLevel).
	EnvLogLevel = "CAPTURE_LOG_LEVEL"
	// EnvLogTimestamp toggles the timestamp column.
	EnvLogTimestamp = "CAPTURE_LOG_TIMESTAMP"
	// EnvLogNoColor disables ANSI colours.
	EnvLogNoColor = "CAPTURE_LOG_NOCOLOR"
)

// ErrUnknownLevel is returned by SetLevel for a name ParseLevel rejects.
var ErrUnknownLevel = ierrors.New("unknown log level")

// Profile selects the default logger settings.
type Profile int

const (
	// ProfileRuntime logs at info with timestamps and colour.
	ProfileRuntime Profile = iota
	// ProfileTest logs at debug without timestamps or colour.
	ProfileTest
)

// Config controls the console logger.
type Config struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
}

// DefaultConfig returns the settings for profile before env overrides.
func DefaultConfig(profile Profile) Config {
	switch profile {
	case ProfileTest:
		return Config{Level: zerolog.DebugLevel, NoColor: true}
	default:
		return Config{Level: zerolog.InfoLevel, Timestamp: true}
	}
}

// Logger builds a logger from cfg.
func (cfg Config) Logger(out io.Writer, app string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    cfg.NoColor,
	}
	ctx := zerolog.New(output).Level(cfg.Level).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	return ctx.Str("app", app).Logger()
}

// ApplyEnv overrides cfg from the CAPTURE_LOG_* variables read through getenv.
// Unparseable values are ignored.
func ApplyEnv(cfg *Config, getenv func(string) string) {
	if lvl, ok := ParseLevel(getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}
	if v, ok := parseBool(getenv(EnvLogTimestamp)); ok {
		cfg.Timestamp = v
	}
	if v, ok := parseBool(getenv(EnvLogNoColor)); ok {
		cfg.NoColor = v
	}
}

// SetLevel sets cfg.Level from a level name, as given on the command line.
func (cfg *Config) SetLevel(raw string) error {
	lvl, ok := ParseLevel(raw)
	if !ok {
		return ierrors.Wrapf(ErrUnknownLevel, "%q", raw)
	}
	cfg.Level = lvl
	return nil
}

// ParseLevel maps a level name to a zerolog level.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
