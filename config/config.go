// Package config loads the page configuration object and normalizes the intro settings
package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/lixenwraith/invite/parameter"
)

//go:embed default.json
var defaultJSON []byte

// Default title lines used when the configuration leaves them empty
const (
	DefaultTitleLine1 = "ВАС ХОТЯТ КОЕ-КУДА"
	DefaultTitleLine2 = "ПРИГЛАСИТЬ"
)

// Intro is the raw intro block as written in the configuration file
// Counts and durations are plain JSON numbers; fractional values are accepted
type Intro struct {
	Enabled         bool    `json:"enabled"`
	ShowEveryVisit  bool    `json:"showEveryVisit"`
	TitleLine1      string  `json:"titleLine1"`
	TitleLine2      string  `json:"titleLine2"`
	CoordsText      string  `json:"coordsText"`
	DateLine        string  `json:"dateLine"`
	AccentStarRatio float64 `json:"accentStarRatio"`
	StarCount       float64 `json:"starCount"`
	WarpDurationMs  float64 `json:"warpDurationMs"`
	FadeDurationMs  float64 `json:"fadeDurationMs"`
}

// CoupleNames holds the hosts' names
type CoupleNames struct {
	Groom string `json:"groom"`
	Bride string `json:"bride"`
}

// TimelineItem is one row of the day schedule
type TimelineItem struct {
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Contact is one organizer contact card
type Contact struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
	Messenger string `json:"messenger"`
}

// Config is the page configuration object
type Config struct {
	Intro           Intro          `json:"intro"`
	CoupleNames     CoupleNames    `json:"coupleNames"`
	EventDateISO    string         `json:"eventDateISO"`
	EventTime       string         `json:"eventTime"`
	EventTitle      string         `json:"eventTitle"`
	HeroSubtitle    string         `json:"heroSubtitle"`
	HeroDescription string         `json:"heroDescription"`
	LocationTitle   string         `json:"locationTitle"`
	LocationAddress string         `json:"locationAddress"`
	LocationTime    string         `json:"locationTime"`
	TimelineItems   []TimelineItem `json:"timelineItems"`
	Contacts        []Contact      `json:"contacts"`

	// Store is the seen-flag store URL, see store.Open
	Store string `json:"store"`

	// ReducedMotion is the platform motion preference; not part of the page object
	ReducedMotion bool `json:"-"`
}

// IntroSettings are the clamped, typed intro parameters consumed by the overlay
type IntroSettings struct {
	Enabled        bool
	ShowEveryVisit bool

	TitleLine1 string
	TitleLine2 string
	CoordsText string
	DateLine   string

	WarpDuration time.Duration
	FadeDuration time.Duration
	StarCount    int
	AccentRatio  float64
}

// Default returns the embedded configuration
func Default() *Config {
	cfg := &Config{}
	if err := json.Unmarshal(defaultJSON, cfg); err != nil {
		// Embedded file is part of the build
		panic(fmt.Sprintf("config: embedded default is invalid: %v", err))
	}
	return cfg
}

// Load reads path over the defaults and applies environment overrides
// An empty path loads only the defaults and the environment
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := Decode(data, cfg); err != nil {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode unmarshals data over cfg; keys missing from data keep their current value
func Decode(data []byte, cfg *Config) error {
	if len(data) == 0 {
		return errors.New("empty configuration")
	}
	return json.Unmarshal(data, cfg)
}

// IntroSettings clamps the raw intro block into the ranges the overlay accepts
func (c *Config) IntroSettings() IntroSettings {
	in := c.Intro

	title1 := in.TitleLine1
	if title1 == "" {
		title1 = DefaultTitleLine1
	}
	title2 := in.TitleLine2
	if title2 == "" {
		title2 = DefaultTitleLine2
	}

	return IntroSettings{
		Enabled:        in.Enabled,
		ShowEveryVisit: in.ShowEveryVisit,
		TitleLine1:     title1,
		TitleLine2:     title2,
		CoordsText:     in.CoordsText,
		DateLine:       in.DateLine,
		WarpDuration: clampMillis(in.WarpDurationMs,
			parameter.WarpDurationMin, parameter.WarpDurationMax, parameter.WarpDurationDefault),
		FadeDuration: clampMillis(in.FadeDurationMs,
			parameter.FadeDurationMin, parameter.FadeDurationMax, parameter.FadeDurationDefault),
		StarCount: int(ClampNumber(in.StarCount,
			parameter.StarCountMin, parameter.StarCountMax, parameter.StarCountDefault)),
		AccentRatio: ClampFloat(in.AccentStarRatio, parameter.AccentRatioMin, parameter.AccentRatioMax, parameter.AccentRatioDefault),
	}
}

// ClampInt bounds v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// ClampNumber bounds v to [lo, hi]; zero and non-finite values take def first
func ClampNumber(v, lo, hi, def float64) float64 {
	if v == 0 {
		v = def
	}
	return ClampFloat(v, lo, hi, def)
}

// clampMillis reads ms as milliseconds with ClampNumber semantics
func clampMillis(ms float64, lo, hi, def time.Duration) time.Duration {
	unit := float64(time.Millisecond)
	v := ClampNumber(ms, float64(lo)/unit, float64(hi)/unit, float64(def)/unit)
	return time.Duration(v * unit)
}

// ClampFloat bounds v to [lo, hi]; NaN and infinities fall back to def
func ClampFloat(v, lo, hi, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = def
	}
	return math.Min(math.Max(v, lo), hi)
}
