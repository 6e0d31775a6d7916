package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// introEnv holds optional environment overrides; nil fields were not set
type introEnv struct {
	Enabled        *bool    `env:"INVITE_INTRO_ENABLED"`
	ShowEveryVisit *bool    `env:"INVITE_INTRO_SHOW_EVERY_VISIT"`
	StarCount      *float64 `env:"INVITE_INTRO_STAR_COUNT"`
	WarpMs         *float64 `env:"INVITE_INTRO_WARP_MS"`
	FadeMs         *float64 `env:"INVITE_INTRO_FADE_MS"`
	AccentRatio    *float64 `env:"INVITE_INTRO_ACCENT_RATIO"`
	ReducedMotion  *bool    `env:"INVITE_REDUCED_MOTION"`
	Store          *string  `env:"INVITE_STORE"`
}

// ApplyEnv overlays INVITE_* environment variables onto cfg
func ApplyEnv(cfg *Config) error {
	var e introEnv
	if err := env.Parse(&e); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if e.Enabled != nil {
		cfg.Intro.Enabled = *e.Enabled
	}
	if e.ShowEveryVisit != nil {
		cfg.Intro.ShowEveryVisit = *e.ShowEveryVisit
	}
	if e.StarCount != nil {
		cfg.Intro.StarCount = *e.StarCount
	}
	if e.WarpMs != nil {
		cfg.Intro.WarpDurationMs = *e.WarpMs
	}
	if e.FadeMs != nil {
		cfg.Intro.FadeDurationMs = *e.FadeMs
	}
	if e.AccentRatio != nil {
		cfg.Intro.AccentStarRatio = *e.AccentRatio
	}
	if e.ReducedMotion != nil {
		cfg.ReducedMotion = *e.ReducedMotion
	}
	if e.Store != nil {
		cfg.Store = *e.Store
	}
	return nil
}
