package config

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/datekit/pkg/environment"
	"github.com/dmitrymomot/datekit/pkg/logger"
)

// Humanize styles accepted by Settings.HumanizeStyle.
const (
	HumanizeShort = "short"
	HumanizeFull  = "full"
)

// Settings is the environment-driven configuration of the datekit CLI.
type Settings struct {
	Env           string `env:"DATEKIT_ENV" envDefault:"development"`
	Locale        string `env:"DATEKIT_LOCALE" envDefault:"en"`
	LocaleDir     string `env:"DATEKIT_LOCALE_DIR"`
	HumanizeStyle string `env:"DATEKIT_HUMANIZE_STYLE" envDefault:"short"`
	LogLevel      string `env:"DATEKIT_LOG_LEVEL" envDefault:"warn"`
	LogFormat     string `env:"DATEKIT_LOG_FORMAT" envDefault:"text"`
}

// LoadSettings loads and validates Settings. The result is cached like any
// other type passed to Load.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := Load(&s); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks every enumerated field and reports all problems at once.
func (s Settings) Validate() error {
	var errs []error
	if _, err := environment.Parse(s.Env); err != nil {
		errs = append(errs, err)
	}
	if s.Locale == "" {
		errs = append(errs, errors.New("DATEKIT_LOCALE must not be empty"))
	}
	if s.HumanizeStyle != HumanizeShort && s.HumanizeStyle != HumanizeFull {
		errs = append(errs, fmt.Errorf("DATEKIT_HUMANIZE_STYLE must be %q or %q, got %q", HumanizeShort, HumanizeFull, s.HumanizeStyle))
	}
	if _, err := logger.ParseLevel(s.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if _, err := logger.ParseFormat(s.LogFormat); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidSettings}, errs...)...)
	}
	return nil
}

// Environment returns the parsed DATEKIT_ENV value.
func (s Settings) Environment() environment.Environment {
	env, _ := environment.Parse(s.Env)
	return env
}
