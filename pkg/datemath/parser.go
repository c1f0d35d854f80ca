package datemath

import (
	"fmt"
	"strings"
	"time"
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser resolves relative dates against a base time in a fixed location.
// Results keep the base time of day.
type Parser struct {
	location *time.Location
	now      func() time.Time
}

// NewParser creates a new date parser for the given IANA timezone string,
// e.g. "Asia/Ho_Chi_Minh". "" and "Local" mean the host timezone.
func NewParser(timezone string) (*Parser, error) {
	if timezone == "" || timezone == "Local" {
		return &Parser{location: time.Local, now: time.Now}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc, now: time.Now}, nil
}

// SetClock overrides the clock used by Now. Intended for tests.
func (p *Parser) SetClock(now func() time.Time) {
	p.now = now
}

// Location returns the parser timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Now returns the current moment in the parser timezone.
func (p *Parser) Now() time.Time {
	return p.now().In(p.location)
}

// AddDays shifts base by n calendar days, keeping the wall clock.
func (p *Parser) AddDays(base time.Time, n int) time.Time {
	return base.In(p.location).AddDate(0, 0, n)
}

// NextWeekday returns the next occurrence of target strictly after base's day.
// When base already falls on target the result is one week later.
func (p *Parser) NextWeekday(base time.Time, target time.Weekday) time.Time {
	base = base.In(p.location)
	return base.AddDate(0, 0, DaysUntil(base.Weekday(), target))
}

// DaysUntil is the forward distance in days from one weekday to the next
// occurrence of another, in 1..7.
func DaysUntil(from, target time.Weekday) int {
	days := (int(target) - int(from) + 7) % 7
	if days == 0 {
		days = 7
	}
	return days
}

// LookupWeekday maps an English weekday name to time.Weekday.
func LookupWeekday(name string) (time.Weekday, bool) {
	wd, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	return wd, ok
}

// Parse converts a relative date phrase ("tomorrow", "next week", "friday",
// "next monday") to an absolute time.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))
	baseTime = baseTime.In(p.location)

	switch relative {
	case "tomorrow":
		return p.AddDays(baseTime, 1), nil
	case "next week":
		return p.AddDays(baseTime, 7), nil
	}

	if wd, ok := LookupWeekday(strings.TrimPrefix(relative, "next ")); ok {
		return p.NextWeekday(baseTime, wd), nil
	}

	return baseTime, fmt.Errorf("unknown relative date: %q", relative)
}
