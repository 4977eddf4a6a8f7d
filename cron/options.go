package cron

import (
	"fmt"
	"strings"
)

// Options selects the grammar an expression is validated against.
// The zero value is the classic 5-field grammar without extensions.
type Options struct {
	// Seconds requires a leading seconds field (6 fields instead of 5).
	Seconds bool
	// Alias enables three letter month (jan-dec) and weekday (sun-sat) names.
	Alias bool
	// AllowBlankDay enables ? in day-of-month or day-of-week, never both.
	AllowBlankDay bool
	// AllowSevenAsSunday raises the day-of-week upper bound from 6 to 7.
	AllowSevenAsSunday bool
	// AllowHashed enables H and H(a-b) in every field.
	AllowHashed bool
	// AllowLast enables L, L-n and LW in day-of-month and L, nL in day-of-week.
	AllowLast bool
	// AllowWeekday enables nW (and LW together with AllowLast) in day-of-month.
	AllowWeekday bool
}

// Dialect names a preset of Options matching a well-known cron flavour.
type Dialect string

const (
	// DialectStandard is the POSIX crontab grammar.
	DialectStandard Dialect = "standard"
	// DialectExtended adds names and Sunday as 7, as accepted by most crontab implementations.
	DialectExtended Dialect = "extended"
	// DialectQuartz is the Quartz scheduler grammar without the optional year field.
	// Names are off because a named field is lowercased, which rejects nL.
	DialectQuartz Dialect = "quartz"
	// DialectJenkins is the Jenkins trigger grammar with hashed values. Names are
	// off so H stays valid in day-of-week.
	DialectJenkins Dialect = "jenkins"
)

// ParseDialect resolves a dialect name, ignoring case and surrounding spaces.
func ParseDialect(name string) (Dialect, error) {
	switch d := Dialect(lower(strings.TrimSpace(name))); d {
	case DialectStandard, DialectExtended, DialectQuartz, DialectJenkins:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDialect, name)
	}
}

// Options returns the preset for the dialect. Unknown dialects yield the zero Options.
func (d Dialect) Options() Options {
	switch d {
	case DialectExtended:
		return Options{Alias: true, AllowSevenAsSunday: true}
	case DialectQuartz:
		return Options{
			Seconds:            true,
			AllowBlankDay:      true,
			AllowSevenAsSunday: true,
			AllowLast:          true,
			AllowWeekday:       true,
		}
	case DialectJenkins:
		return Options{AllowSevenAsSunday: true, AllowHashed: true}
	default:
		return Options{}
	}
}
