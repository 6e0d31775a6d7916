package page

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/invite/config"
	"github.com/lixenwraith/invite/render"
)

func TestEventStart(t *testing.T) {
	start, err := EventStart("2026-04-26", "16:00", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 4, 26, 16, 0, 0, 0, time.UTC), start)

	start, err = EventStart("2026-04-26", "", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 0, start.Hour())

	_, err = EventStart("26.04.2026", "16:00", time.UTC)
	assert.Error(t, err)
}

func TestRemaining(t *testing.T) {
	target := time.Date(2026, 4, 26, 16, 0, 0, 0, time.UTC)

	c := Remaining(target, target.Add(-(49*time.Hour + 5*time.Minute + 7*time.Second + 300*time.Millisecond)))
	assert.Equal(t, Countdown{Days: 2, Hours: 1, Minutes: 5, Seconds: 7}, c)

	assert.True(t, Remaining(target, target).Zero())
	assert.True(t, Remaining(target, target.Add(time.Hour)).Zero(), "zero after the event")
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "26 апреля 2026 г.", FormatDate("2026-04-26"))
	assert.Equal(t, "1 января 2027 г.", FormatDate("2027-01-01"))
	assert.Equal(t, "", FormatDate("bad"))
	assert.Equal(t, "апрель 2026 г.", FormatMonthYear("2026-04-26"))
}

func TestUpper(t *testing.T) {
	assert.Equal(t, "ИГОРЬ И МАРГАРИТА", Upper("Игорь и Маргарита"))
}

func TestCalendarMonth(t *testing.T) {
	weeks, eventDay, ok := CalendarMonth("2026-04-26")
	require.True(t, ok)
	assert.Equal(t, 26, eventDay)
	require.Len(t, weeks, 5)

	// April 2026 starts on a Wednesday
	assert.Equal(t, [7]int{0, 0, 1, 2, 3, 4, 5}, weeks[0])
	assert.Equal(t, 26, weeks[3][6])
	assert.Equal(t, [7]int{27, 28, 29, 30, 0, 0, 0}, weeks[4])

	_, _, ok = CalendarMonth("")
	assert.False(t, ok)
}

func TestFormatWeek(t *testing.T) {
	assert.Equal(t, "20 21 22 23 24 25 26♥", formatWeek([7]int{20, 21, 22, 23, 24, 25, 26}, 26))
	assert.Equal(t, "       1  2  3  4  5 ", formatWeek([7]int{0, 0, 1, 2, 3, 4, 5}, 26))
}

func TestDisplayNames(t *testing.T) {
	assert.Equal(t, "Игорь и Маргарита", DisplayNames(config.CoupleNames{Groom: "Игорь", Bride: "Маргарита"}))
	assert.Equal(t, "Маргарита", DisplayNames(config.CoupleNames{Groom: " ", Bride: "Маргарита"}))
	assert.Equal(t, "", DisplayNames(config.CoupleNames{}))
}

func TestView_Lines(t *testing.T) {
	cfg := config.Default()
	v := NewView(cfg, time.UTC)

	now := time.Date(2026, 4, 25, 16, 0, 0, 0, time.UTC)
	var text []string
	for _, ln := range v.Lines(now) {
		text = append(text, ln.Text)
	}
	joined := strings.Join(text, "\n")

	assert.Contains(t, joined, "ИГОРЬ И МАРГАРИТА")
	assert.Contains(t, joined, "26 апреля 2026 г.  16:00")
	assert.Contains(t, joined, "1 дн.  00 ч  00 мин  00 с")
	assert.Contains(t, joined, "АПРЕЛЬ 2026 Г.")
	assert.Contains(t, joined, "15:30  Сбор гостей")
	assert.Contains(t, joined, "Игорь · Жених · 89299151462 · @jeezab")
}

func TestView_NoCountdownWithoutDate(t *testing.T) {
	cfg := config.Default()
	cfg.EventDateISO = ""
	v := NewView(cfg, time.UTC)
	for _, ln := range v.Lines(time.Now()) {
		assert.NotContains(t, ln.Text, "дн.")
	}
}

func TestView_ScrollIgnoredWhileLocked(t *testing.T) {
	v := NewView(config.Default(), time.UTC)
	locked := true
	v.Locked = func() bool { return locked }

	down := tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)
	assert.False(t, v.HandleKey(down, 10))
	assert.Zero(t, v.Scroll())

	locked = false
	assert.True(t, v.HandleKey(down, 10))
	assert.Equal(t, 1, v.Scroll())

	assert.True(t, v.HandleKey(tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), 10))
	assert.Equal(t, 10, v.Scroll())

	assert.True(t, v.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), 10))
	assert.Equal(t, 9, v.Scroll())

	assert.True(t, v.HandleKey(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone), 10))
	assert.Zero(t, v.Scroll())

	assert.True(t, v.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), 10))
	assert.Zero(t, v.Scroll(), "scroll never goes negative")

	assert.False(t, v.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 10))
}

func TestView_DrawClampsScroll(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(60, 20)

	v := NewView(config.Default(), time.UTC)
	for range 500 {
		v.HandleKey(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), 20)
	}
	v.Draw(screen, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), render.ColorModeTrueColor)

	lines := len(v.Lines(time.Now()))
	assert.Equal(t, lines-20, v.Scroll())

	// Last row holds the key hint
	var row strings.Builder
	for x := 0; x < 60; x++ {
		r, _, _, _ := screen.GetContent(x, 19)
		row.WriteRune(r)
	}
	assert.Contains(t, row.String(), "q выход")
}
