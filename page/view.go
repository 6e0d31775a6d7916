// Package page renders the invitation page shown once the intro is dismissed
package page

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/invite/config"
	"github.com/lixenwraith/invite/parameter/visual"
	"github.com/lixenwraith/invite/render"
)

// Tone selects a line's colour
type Tone uint8

const (
	ToneText Tone = iota
	ToneAccent
	ToneMuted
	ToneHeading
)

// Line is one rendered row of the page
type Line struct {
	Text   string
	Tone   Tone
	Center bool
}

// View is the scrollable invitation page
type View struct {
	cfg    *config.Config
	start  time.Time
	hasEnd bool
	scroll int

	// Locked, when set and true, suppresses scrolling
	Locked func() bool
}

// NewView builds a view over cfg; an unparsable event date disables the countdown
func NewView(cfg *config.Config, loc *time.Location) *View {
	v := &View{cfg: cfg}
	if start, err := EventStart(cfg.EventDateISO, cfg.EventTime, loc); err == nil {
		v.start = start
		v.hasEnd = true
	}
	return v
}

// DisplayNames joins the couple's names, skipping empty ones
func DisplayNames(n config.CoupleNames) string {
	var parts []string
	for _, s := range []string{strings.TrimSpace(n.Groom), strings.TrimSpace(n.Bride)} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " и ")
}

// FormatCountdown renders the countdown row
func FormatCountdown(c Countdown) string {
	return fmt.Sprintf("%d дн.  %02d ч  %02d мин  %02d с", c.Days, c.Hours, c.Minutes, c.Seconds)
}

// Lines builds the page content at now
func (v *View) Lines(now time.Time) []Line {
	cfg := v.cfg
	var out []Line
	add := func(text string, tone Tone, center bool) {
		out = append(out, Line{Text: text, Tone: tone, Center: center})
	}
	blank := func() { add("", ToneText, false) }

	blank()
	if names := DisplayNames(cfg.CoupleNames); names != "" {
		add(Upper(names), ToneHeading, true)
	}
	if cfg.HeroSubtitle != "" {
		add(cfg.HeroSubtitle, ToneAccent, true)
	}
	if d := FormatDate(cfg.EventDateISO); d != "" {
		add(strings.TrimSpace(d+"  "+cfg.EventTime), ToneText, true)
	}
	if cfg.HeroDescription != "" {
		blank()
		add(cfg.HeroDescription, ToneMuted, true)
	}

	if v.hasEnd {
		blank()
		add(Upper("до события"), ToneHeading, true)
		add(FormatCountdown(Remaining(v.start, now)), ToneAccent, true)
	}

	if weeks, eventDay, ok := CalendarMonth(cfg.EventDateISO); ok {
		blank()
		add(Upper(FormatMonthYear(cfg.EventDateISO)), ToneHeading, true)
		header := make([]string, len(weekdaysShort))
		for i, d := range weekdaysShort {
			header[i] = d + " "
		}
		add(strings.Join(header, ""), ToneMuted, true)
		for _, week := range weeks {
			add(formatWeek(week, eventDay), ToneText, true)
		}
	}

	if cfg.LocationAddress != "" {
		blank()
		title := cfg.LocationTitle
		if title == "" {
			title = "Локация"
		}
		add(Upper(title), ToneHeading, true)
		add(cfg.LocationAddress, ToneText, true)
		if cfg.LocationTime != "" {
			add(cfg.LocationTime, ToneMuted, true)
		}
	}

	if len(cfg.TimelineItems) > 0 {
		blank()
		add(Upper("программа дня"), ToneHeading, true)
		for _, item := range cfg.TimelineItems {
			row := item.Time + "  " + item.Title
			if item.Description != "" {
				row += " · " + item.Description
			}
			add(row, ToneText, true)
		}
	}

	if len(cfg.Contacts) > 0 {
		blank()
		add(Upper("контакты"), ToneHeading, true)
		for _, c := range cfg.Contacts {
			add(strings.Join(nonEmpty(c.Name, c.Role, c.Phone, c.Messenger), " · "), ToneText, true)
		}
	}

	blank()
	add("↑/↓ прокрутка · q выход", ToneMuted, true)
	return out
}

// formatWeek renders seven 3-column day cells; the event day carries a heart
func formatWeek(week [7]int, eventDay int) string {
	var b strings.Builder
	for _, day := range week {
		switch {
		case day == 0:
			b.WriteString("   ")
		case day == eventDay:
			fmt.Fprintf(&b, "%2d♥", day)
		default:
			fmt.Fprintf(&b, "%2d ", day)
		}
	}
	return b.String()
}

func nonEmpty(values ...string) []string {
	out := values[:0:0]
	for _, s := range values {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Scroll returns the current scroll offset in rows
func (v *View) Scroll() int {
	return v.scroll
}

// HandleKey applies scrolling keys; returns true if the key was consumed
func (v *View) HandleKey(ev *tcell.EventKey, pageRows int) bool {
	if v.Locked != nil && v.Locked() {
		return false
	}
	pageRows = max(pageRows-1, 1)
	switch ev.Key() {
	case tcell.KeyUp:
		v.scroll--
	case tcell.KeyDown:
		v.scroll++
	case tcell.KeyPgUp:
		v.scroll -= pageRows
	case tcell.KeyPgDn:
		v.scroll += pageRows
	case tcell.KeyHome:
		v.scroll = 0
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			v.scroll--
		case 'j':
			v.scroll++
		default:
			return false
		}
	default:
		return false
	}
	v.scroll = max(v.scroll, 0)
	return true
}

// Draw renders the page at now, clamping the scroll offset to the content
func (v *View) Draw(screen tcell.Screen, now time.Time, mode render.ColorMode) {
	w, h := screen.Size()
	bg := render.FromVisual(visual.RgbPageBackground)
	base := render.Style(render.FromVisual(visual.RgbPageText), bg, mode)
	for y := 0; y < h; y++ {
		render.FillRow(screen, y, base)
	}

	lines := v.Lines(now)
	v.scroll = min(v.scroll, max(len(lines)-h, 0))

	for row := 0; row < h; row++ {
		i := row + v.scroll
		if i >= len(lines) {
			break
		}
		ln := lines[i]
		style := render.Style(ToneColor(ln.Tone), bg, mode)
		if ln.Tone == ToneHeading {
			style = style.Bold(true)
		}
		if ln.Center {
			render.CenterText(screen, row, ln.Text, style)
		} else {
			render.DrawText(screen, min(2, w), row, ln.Text, style)
		}
	}
}

// ToneColor maps a line tone to its palette colour
func ToneColor(t Tone) render.RGB {
	switch t {
	case ToneAccent, ToneHeading:
		return render.FromVisual(visual.RgbPageAccent)
	case ToneMuted:
		return render.FromVisual(visual.RgbPageMuted)
	default:
		return render.FromVisual(visual.RgbPageText)
	}
}
