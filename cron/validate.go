package cron

import "strings"

// IsValid reports whether expr is a valid cron expression under opts.
func IsValid(expr string, opts Options) bool {
	return validate(expr, opts) == nil
}

// Validate returns nil when expr is valid under opts. Otherwise the error wraps
// ErrInvalidExpression; per-field failures are reported as *FieldError.
func Validate(expr string, opts Options) error {
	return validate(expr, opts)
}

func validate(expr string, opts Options) error {
	fields := strings.Fields(expr)

	layout := standardLayout
	if opts.Seconds {
		layout = withSecondsLayout
	}

	if len(fields) != len(layout) {
		return invalidf("expected %d fields, got %d", len(layout), len(fields))
	}

	for i, field := range layout {
		if err := grammarFor(field, opts).check(fields[i]); err != nil {
			return &FieldError{Field: field, Value: fields[i], Err: err}
		}
	}

	days, weekdays := fields[len(fields)-3], fields[len(fields)-1]
	if !compatible(days, weekdays, opts.AllowBlankDay) {
		return invalidf("day-of-month and day-of-week cannot both be %q", blankDayMarker)
	}

	return nil
}

// compatible rejects a blank day-of-month together with a blank day-of-week.
func compatible(days, weekdays string, allowBlankDay bool) bool {
	return !(allowBlankDay && days == blankDayMarker && weekdays == blankDayMarker)
}

// check validates the whole text of one field.
func (g grammar) check(value string) error {
	if value == blankDayMarker {
		return g.checkRange(rangeExpr{from: token{kind: tokenBlankDay, text: value}})
	}

	if g.isNamedField() && hasAliasStep(value) {
		return invalidf("names cannot be used as a step")
	}

	if g.aliases != nil {
		value = lower(value)
	}

	for i := 0; i < len(value); i++ {
		if !g.allows(value[i]) {
			return invalidf("unexpected character %q", value[i])
		}
	}

	for _, condition := range strings.Split(value, ",") {
		if err := g.checkCondition(condition); err != nil {
			return err
		}
	}

	return nil
}

// checkCondition validates one list element: a range-part with an optional /step.
func (g grammar) checkCondition(condition string) error {
	if condition == "" {
		return invalidf("empty list element")
	}

	part, step, hasStep := strings.Cut(condition, "/")
	if hasStep {
		if err := g.checkStep(step); err != nil {
			return err
		}
	}

	r, err := g.lexRange(part)
	if err != nil {
		return err
	}

	return g.checkRange(r)
}

// checkStep requires a positive decimal integer once names are resolved.
// Hashed values are not steps.
func (g grammar) checkStep(step string) error {
	if step == "" {
		return invalidf("missing step value")
	}

	if strings.Contains(step, "/") {
		return invalidf("more than one step in %q", step)
	}

	n, ok := parseDigits(g.resolveAliases(step))
	if !ok || n <= 0 {
		return invalidf("step %q must be a positive integer", step)
	}

	return nil
}

func (g grammar) checkRange(r rangeExpr) error {
	if !r.span {
		return g.checkToken(r.from)
	}

	if !r.from.plain() || !r.to.plain() {
		return invalidf("%q-%q: only numbers and names can be range endpoints", r.from.text, r.to.text)
	}

	if err := g.checkToken(r.from); err != nil {
		return err
	}

	if err := g.checkToken(r.to); err != nil {
		return err
	}

	if r.from.value > r.to.value {
		return invalidf("range %s-%s is inverted", r.from.text, r.to.text)
	}

	return nil
}

func (g grammar) checkToken(t token) error {
	switch t.kind {
	case tokenWildcard:
		return nil
	case tokenBlankDay:
		if !g.blankDay {
			return invalidf("%q is not allowed here", blankDayMarker)
		}

		return nil
	case tokenHashed:
		if !t.ranged {
			return nil
		}

		if t.value > t.upper || !g.inBounds(t.value) || !g.inBounds(t.upper) {
			return invalidf("hashed range %s out of bounds [%d, %d]", t.text, g.min, g.max)
		}

		return nil
	case tokenLast:
		if t.last == lastDay || t.last == lastDayWeekday {
			return nil
		}
	}

	if !g.inBounds(t.value) {
		return invalidf("value %s out of bounds [%d, %d]", t.text, g.min, g.max)
	}

	return nil
}
