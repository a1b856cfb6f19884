// ABOUTME: Settings loaded from PAGECOLS_* environment variables via envconfig
// ABOUTME: CLI flags are layered on top with Merge; Validate rejects bad modes and sizes

package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "PAGECOLS"

// Display modes.
const (
	ModeRaw   = "raw"   // clear, print, wait for a key
	ModeTea   = "tea"   // Bubble Tea alternate-screen pager
	ModePrint = "print" // write every frame, no interaction
)

var modes = []string{ModeRaw, ModeTea, ModePrint}

// ErrInvalidSetting is wrapped by every Validate failure.
var ErrInvalidSetting = errors.New("invalid setting")

// Settings holds the resolved configuration. Field names map to
// PAGECOLS_WIDTH, PAGECOLS_LOG_LEVEL and so on; split_words is used
// instead of explicit envconfig tags so unprefixed variables such as
// MODE are never consulted.
type Settings struct {
	Width    int    `split_words:"true" default:"0"`
	Height   int    `split_words:"true" default:"0"`
	Status   bool   `split_words:"true" default:"false"`
	Mode     string `split_words:"true" default:"raw"`
	LogLevel string `split_words:"true" default:"info"`
	LogFile  string `split_words:"true"`
}

// Overrides carries values set explicitly on the command line. Nil
// fields leave the environment value in place.
type Overrides struct {
	Width    *int
	Height   *int
	Status   *bool
	Mode     *string
	LogLevel *string
}

// Load reads Settings from the environment.
func Load() (*Settings, error) {
	var s Settings
	if err := envconfig.Process(EnvPrefix, &s); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &s, nil
}

// Default returns the settings used when nothing is configured.
func Default() *Settings {
	return &Settings{
		Mode:     ModeRaw,
		LogLevel: "info",
	}
}

// Merge applies command-line overrides onto s and returns the result.
func Merge(s *Settings, o Overrides) *Settings {
	if s == nil {
		s = Default()
	}
	result := *s

	if o.Width != nil {
		result.Width = *o.Width
	}
	if o.Height != nil {
		result.Height = *o.Height
	}
	if o.Status != nil {
		result.Status = *o.Status
	}
	if o.Mode != nil {
		result.Mode = *o.Mode
	}
	if o.LogLevel != nil {
		result.LogLevel = *o.LogLevel
	}
	return &result
}

// Validate checks the mode and that explicit sizes are not negative.
// Zero means "ask the terminal".
func (s *Settings) Validate() error {
	s.Mode = strings.ToLower(strings.TrimSpace(s.Mode))
	if !slices.Contains(modes, s.Mode) {
		return fmt.Errorf("%w: mode %q (want one of %s)", ErrInvalidSetting, s.Mode, strings.Join(modes, ", "))
	}
	if s.Width < 0 {
		return fmt.Errorf("%w: width %d", ErrInvalidSetting, s.Width)
	}
	if s.Height < 0 {
		return fmt.Errorf("%w: height %d", ErrInvalidSetting, s.Height)
	}
	return nil
}
