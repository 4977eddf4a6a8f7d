package cron

// Field identifies a positional slot of a cron expression.
type Field uint8

const (
	FieldSeconds Field = iota
	FieldMinutes
	FieldHours
	FieldDayOfMonth
	FieldMonth
	FieldDayOfWeek
)

// String returns the human readable field name.
func (f Field) String() string {
	switch f {
	case FieldSeconds:
		return "second"
	case FieldMinutes:
		return "minute"
	case FieldHours:
		return "hour"
	case FieldDayOfMonth:
		return "day-of-month"
	case FieldMonth:
		return "month"
	case FieldDayOfWeek:
		return "day-of-week"
	default:
		return "unknown"
	}
}

// Cron field boundary constants.
const (
	fieldCountStandard    = 5  // minute hour day-of-month month day-of-week
	fieldCountWithSeconds = 6  // seconds prepended
	maxSecond             = 59 // maximum value for second field
	maxMinute             = 59 // maximum value for minute field
	maxHour               = 23 // maximum value for hour field
	minDayOfMonth         = 1  // minimum value for day-of-month field
	maxDayOfMonth         = 31 // maximum value for day-of-month field
	minMonth              = 1  // minimum value for month field
	maxMonth              = 12 // maximum value for month field
	maxDayOfWeek          = 6  // maximum value for day-of-week field
	maxDayOfWeekSunday    = 7  // day-of-week maximum when 7 also means Sunday
	splitParts            = 2  // number of parts when splitting step or range expressions
)

var (
	standardLayout    = []Field{FieldMinutes, FieldHours, FieldDayOfMonth, FieldMonth, FieldDayOfWeek}
	withSecondsLayout = []Field{FieldSeconds, FieldMinutes, FieldHours, FieldDayOfMonth, FieldMonth, FieldDayOfWeek}
)

// grammar is the rule set for one field under one set of Options.
// It is built per call and never mutated afterwards.
type grammar struct {
	field    Field
	min      int
	max      int
	hashed   bool
	last     bool
	weekday  bool
	blankDay bool
	aliases  map[string]int
}

func grammarFor(field Field, opts Options) grammar {
	g := grammar{field: field, hashed: opts.AllowHashed}

	switch field {
	case FieldSeconds:
		g.max = maxSecond
	case FieldMinutes:
		g.max = maxMinute
	case FieldHours:
		g.max = maxHour
	case FieldDayOfMonth:
		g.min, g.max = minDayOfMonth, maxDayOfMonth
		g.last = opts.AllowLast
		g.weekday = opts.AllowWeekday
		g.blankDay = opts.AllowBlankDay
	case FieldMonth:
		g.min, g.max = minMonth, maxMonth

		if opts.Alias {
			g.aliases = monthAliases
		}
	case FieldDayOfWeek:
		g.max = maxDayOfWeek
		if opts.AllowSevenAsSunday {
			g.max = maxDayOfWeekSunday
		}

		g.last = opts.AllowLast
		g.blankDay = opts.AllowBlankDay

		if opts.Alias {
			g.aliases = weekdayAliases
		}
	}

	return g
}

func (g grammar) isDayField() bool {
	return g.field == FieldDayOfMonth || g.field == FieldDayOfWeek
}

func (g grammar) isNamedField() bool {
	return g.field == FieldMonth || g.field == FieldDayOfWeek
}

func (g grammar) inBounds(n int) bool {
	return n >= g.min && n <= g.max
}

// allows reports whether c may appear anywhere in the field text.
func (g grammar) allows(c byte) bool {
	switch {
	case isDigit(c):
		return true
	case c == '-' || c == ',' || c == '/' || c == '*':
		return true
	case c == 'H' || c == '(' || c == ')':
		return true
	case isLetter(c) && g.aliases != nil:
		return true
	case c == 'L' || c == 'W':
		return g.isDayField()
	default:
		return false
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
