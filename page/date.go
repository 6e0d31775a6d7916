package page

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var monthsGenitive = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

var monthsNominative = [...]string{
	"январь", "февраль", "март", "апрель", "май", "июнь",
	"июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь",
}

// Weekday headers, Monday first
var weekdaysShort = [...]string{"пн", "вт", "ср", "чт", "пт", "сб", "вс"}

var upper = cases.Upper(language.Russian)

// ParseISODate parses YYYY-MM-DD at local midnight
func ParseISODate(iso string) (time.Time, bool) {
	t, err := time.ParseInLocation("2006-01-02", iso, time.Local)
	return t, err == nil
}

// FormatDate renders iso as a long Russian date, e.g. "26 апреля 2026 г."; empty on parse failure
func FormatDate(iso string) string {
	t, ok := ParseISODate(iso)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%d %s %d г.", t.Day(), monthsGenitive[t.Month()-1], t.Year())
}

// FormatMonthYear renders iso as "апрель 2026 г."; empty on parse failure
func FormatMonthYear(iso string) string {
	t, ok := ParseISODate(iso)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s %d г.", monthsNominative[t.Month()-1], t.Year())
}

// Upper upper-cases s with Russian casing rules
func Upper(s string) string {
	return upper.String(s)
}

// CalendarMonth returns the weeks of the month containing iso, Monday first
// Days outside the month are 0; eventDay is the day of month of iso
func CalendarMonth(iso string) (weeks [][7]int, eventDay int, ok bool) {
	t, ok := ParseISODate(iso)
	if !ok {
		return nil, 0, false
	}
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	offset := (int(first.Weekday()) + 6) % 7

	var week [7]int
	col := offset
	for day := 1; day <= daysInMonth; day++ {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks, t.Day(), true
}
