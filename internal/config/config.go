// Package config provides YAML-based configuration loading for Quiztris.
// Game rules (board size, points per line, strike limit) are fixed in the
// engine; configuration only covers quiz options and presentation.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/quiztris/internal/quiz"
)

// Config is the complete Quiztris configuration.
type Config struct {
	Quiz     QuizConfig     `yaml:"quiz"`
	Feedback FeedbackConfig `yaml:"feedback"`
	Display  DisplayConfig  `yaml:"display"`
	Server   ServerConfig   `yaml:"server"`
}

// QuizConfig controls question generation.
type QuizConfig struct {
	DedupeAnswers bool `yaml:"dedupe_answers"`
}

// Options returns the generator options for this section.
func (q QuizConfig) Options() quiz.Options {
	return quiz.Options{Dedupe: q.DedupeAnswers}
}

// FeedbackConfig defines how long answer feedback stays on screen.
type FeedbackConfig struct {
	CorrectDelayMs int `yaml:"correct_delay_ms"`
	WrongDelayMs   int `yaml:"wrong_delay_ms"`
}

// CorrectDelay returns the pause after a correct answer.
func (f FeedbackConfig) CorrectDelay() time.Duration {
	return time.Duration(f.CorrectDelayMs) * time.Millisecond
}

// WrongDelay returns the pause after a wrong answer.
func (f FeedbackConfig) WrongDelay() time.Duration {
	return time.Duration(f.WrongDelayMs) * time.Millisecond
}

// DisplayConfig defines cell glyphs and colors for the board.
// Colors are ANSI 256-color codes as strings.
type DisplayConfig struct {
	Filled     string            `yaml:"filled"`
	Preview    string            `yaml:"preview"`
	Empty      string            `yaml:"empty"`
	StackColor string            `yaml:"stack_color"`
	Colors     map[string]string `yaml:"colors"` // keyed by shape kind: I, O, T, S, Z
}

// ServerConfig holds defaults for the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// ShapeColor returns the configured color for a shape kind, falling back
// to the stack color.
func (d DisplayConfig) ShapeColor(kind string) string {
	if c, ok := d.Colors[kind]; ok && c != "" {
		return c
	}
	return d.StackColor
}

// Validate checks the configuration for values the game cannot use.
func (c Config) Validate() error {
	var errs []error
	if c.Feedback.CorrectDelayMs < 0 {
		errs = append(errs, fmt.Errorf("feedback.correct_delay_ms must not be negative, got %d", c.Feedback.CorrectDelayMs))
	}
	if c.Feedback.WrongDelayMs < 0 {
		errs = append(errs, fmt.Errorf("feedback.wrong_delay_ms must not be negative, got %d", c.Feedback.WrongDelayMs))
	}
	if c.Display.Filled == "" {
		errs = append(errs, errors.New("display.filled must not be empty"))
	}
	if c.Display.Preview == "" {
		errs = append(errs, errors.New("display.preview must not be empty"))
	}
	if c.Display.Empty == "" {
		errs = append(errs, errors.New("display.empty must not be empty"))
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		errs = append(errs, fmt.Errorf("server.idle_timeout_minutes must not be negative, got %d", c.Server.IdleTimeoutMinutes))
	}
	return errors.Join(errs...)
}
