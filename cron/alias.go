package cron

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const aliasLength = 3

var monthAliases = map[string]int{
	"jan": 1,
	"feb": 2,
	"mar": 3,
	"apr": 4,
	"may": 5,
	"jun": 6,
	"jul": 7,
	"aug": 8,
	"sep": 9,
	"oct": 10,
	"nov": 11,
	"dec": 12,
}

var weekdayAliases = map[string]int{
	"sun": 0,
	"mon": 1,
	"tue": 2,
	"wed": 3,
	"thu": 4,
	"fri": 5,
	"sat": 6,
}

// resolveAliases replaces, left to right, every run of three letters that
// names a month or weekday with its number, e.g. "jan-mar" becomes "1-3" and
// "janfeb" becomes "12". Unknown runs are kept and fail numeric parsing.
// s must already be lowercased.
func (g grammar) resolveAliases(s string) string {
	if g.aliases == nil {
		return s
	}

	var b strings.Builder

	for i := 0; i < len(s); {
		if i+aliasLength <= len(s) && isLetterRun(s[i:i+aliasLength]) {
			run := s[i : i+aliasLength]
			if n, ok := g.aliases[run]; ok {
				b.WriteString(strconv.Itoa(n))
			} else {
				b.WriteString(run)
			}

			i += aliasLength

			continue
		}

		b.WriteByte(s[i])
		i++
	}

	return b.String()
}

func isLetterRun(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) {
			return false
		}
	}

	return true
}

// hasAliasStep reports whether a step value starts with a letter, e.g. "*/jan".
func hasAliasStep(value string) bool {
	for i := 0; i+1 < len(value); i++ {
		if value[i] == '/' && isLetter(value[i+1]) {
			return true
		}
	}

	return false
}

// lower applies the Unicode default lowercase mapping. A Caser keeps internal
// state, so one is built per call; callers lower a whole field at once.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
