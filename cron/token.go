package cron

import (
	"strconv"
	"strings"
)

const (
	wildcard       = "*"
	blankDayMarker = "?"
	hashedMarker   = "H"
	lastMarker     = "L"
	lastWeekday    = "LW"
)

type tokenKind uint8

const (
	tokenWildcard       tokenKind = iota // *
	tokenBlankDay                        // ?
	tokenInteger                         // 5
	tokenAlias                           // jan, mon-fri, janfeb
	tokenHashed                          // H, H(a-b)
	tokenLast                            // L, L-n, LW, nL
	tokenNearestWeekday                  // nW
)

type lastKind uint8

const (
	lastDay           lastKind = iota // L
	lastDayOffset                     // L-n, day-of-month only
	lastDayWeekday                    // LW, day-of-month only
	lastDayOccurrence                 // nL, day-of-week only
)

// token is one lexed endpoint of a range.
type token struct {
	kind   tokenKind
	value  int
	upper  int // hashed range upper bound
	ranged bool
	last   lastKind
	text   string
}

// plain reports whether the token may be used as either side of a-b.
func (t token) plain() bool {
	return t.kind == tokenInteger || t.kind == tokenAlias
}

// rangeExpr is the range-part of a condition: one token, or two joined by '-'.
type rangeExpr struct {
	from token
	to   token
	span bool
}

// lexRange tokenizes the part of a condition that precedes an optional step.
func (g grammar) lexRange(part string) (rangeExpr, error) {
	if part == wildcard {
		return rangeExpr{from: token{kind: tokenWildcard, text: part}}, nil
	}

	if g.hashed && strings.HasPrefix(part, hashedMarker) {
		tok, err := lexHashed(part)

		return rangeExpr{from: tok}, err
	}

	sides := strings.Split(part, "-")

	switch len(sides) {
	case 1:
		tok, err := g.lexEndpoint(part)

		return rangeExpr{from: tok}, err
	case splitParts:
		if g.last && g.field == FieldDayOfMonth && sides[0] == lastMarker {
			n, ok := parseDigits(sides[1])
			if !ok {
				return rangeExpr{}, invalidf("malformed last-day offset %q", part)
			}

			return rangeExpr{from: token{kind: tokenLast, last: lastDayOffset, value: n, text: part}}, nil
		}

		from, err := g.lexEndpoint(sides[0])
		if err != nil {
			return rangeExpr{}, err
		}

		to, err := g.lexEndpoint(sides[1])
		if err != nil {
			return rangeExpr{}, err
		}

		return rangeExpr{from: from, to: to, span: true}, nil
	default:
		return rangeExpr{}, invalidf("range %q has more than two endpoints", part)
	}
}

// lexEndpoint classifies a single range endpoint.
func (g grammar) lexEndpoint(raw string) (token, error) {
	if raw == "" {
		return token{}, invalidf("missing value")
	}

	if n, ok := parseDigits(raw); ok {
		return token{kind: tokenInteger, value: n, text: raw}, nil
	}

	if n, ok := parseDigits(g.resolveAliases(raw)); ok {
		return token{kind: tokenAlias, value: n, text: raw}, nil
	}

	if g.last {
		if tok, ok := g.lexLast(raw); ok {
			return tok, nil
		}
	}

	if g.weekday {
		if n, ok := parseSuffixed(raw, 'W'); ok {
			return token{kind: tokenNearestWeekday, value: n, text: raw}, nil
		}
	}

	return token{}, invalidf("unexpected value %q", raw)
}

func (g grammar) lexLast(raw string) (token, bool) {
	switch {
	case raw == lastMarker:
		return token{kind: tokenLast, last: lastDay, text: raw}, true
	case raw == lastWeekday && g.field == FieldDayOfMonth && g.weekday:
		return token{kind: tokenLast, last: lastDayWeekday, text: raw}, true
	case g.field == FieldDayOfWeek:
		if n, ok := parseSuffixed(raw, 'L'); ok {
			return token{kind: tokenLast, last: lastDayOccurrence, value: n, text: raw}, true
		}
	}

	return token{}, false
}

// lexHashed accepts exactly "H" or "H(a-b)" with decimal bounds.
func lexHashed(raw string) (token, error) {
	if raw == hashedMarker {
		return token{kind: tokenHashed, text: raw}, nil
	}

	inner, ok := strings.CutPrefix(raw, hashedMarker+"(")
	if ok {
		inner, ok = strings.CutSuffix(inner, ")")
	}

	if !ok {
		return token{}, invalidf("malformed hashed value %q", raw)
	}

	lo, hi, ok := strings.Cut(inner, "-")
	if !ok {
		return token{}, invalidf("hashed value %q needs a range", raw)
	}

	from, okFrom := parseDigits(lo)
	to, okTo := parseDigits(hi)

	if !okFrom || !okTo {
		return token{}, invalidf("malformed hashed range %q", raw)
	}

	return token{kind: tokenHashed, ranged: true, value: from, upper: to, text: raw}, nil
}

// parseDigits parses a non-empty run of ASCII digits. Signs, spaces and any
// trailing characters are rejected rather than ignored.
func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}

	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, false
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}

	return n, true
}

// parseSuffixed parses "<digits><suffix>", e.g. "15W" or "5L".
func parseSuffixed(s string, suffix byte) (int, bool) {
	if len(s) < splitParts || s[len(s)-1] != suffix {
		return 0, false
	}

	return parseDigits(s[:len(s)-1])
}
