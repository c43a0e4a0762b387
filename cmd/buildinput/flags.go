package main

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// levelFlag is a pflag.Value holding a slog level.
type levelFlag slog.Level

var _ pflag.Value = (*levelFlag)(nil)

func (l *levelFlag) String() string {
	return strings.ToLower(slog.Level(*l).String())
}

func (l *levelFlag) Set(s string) error {
	var level slog.Level
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("unknown log level %q", s)
	}
	*l = levelFlag(level)
	return nil
}

func (l *levelFlag) Type() string {
	return "level"
}

func (l *levelFlag) Level() slog.Level {
	return slog.Level(*l)
}

// choiceFlag is a pflag.Value restricted to a fixed set of strings.
type choiceFlag struct {
	value   string
	choices []string
}

var _ pflag.Value = (*choiceFlag)(nil)

func newChoiceFlag(def string, choices ...string) choiceFlag {
	return choiceFlag{value: def, choices: choices}
}

func (c *choiceFlag) String() string {
	return c.value
}

func (c *choiceFlag) Set(s string) error {
	if !slices.Contains(c.choices, s) {
		return fmt.Errorf("must be one of %s", c.Choices())
	}
	c.value = s
	return nil
}

func (c *choiceFlag) Type() string {
	return "string"
}

// Choices returns the allowed values joined with "|".
func (c *choiceFlag) Choices() string {
	return strings.Join(c.choices, "|")
}
