//go:build unit

package cron

import (
	"testing"

	robfig "github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
)

// The shared subset of the grammar (numbers, lists, ranges, steps, wildcards)
// must agree with robfig/cron, which most schedulers in the wild execute with.
func TestAgreesWithRobfigStandardParser(t *testing.T) {
	t.Parallel()

	accepted := []string{
		"* * * * *",
		"0 0 * * *",
		"*/5 * * * *",
		"30 6 * * 1-5",
		"0 9-17 * * *",
		"0 6,12,18 * * *",
		"0 0 1 */3 *",
		"1-10/2,11-20/2 * * * *",
		"1-10,*/2 * * * *",
		"05 05 * * *",
		"5/15 * * * *",
		"59 23 31 12 6",
	}

	rejected := []string{
		"* * * *",
		"60 * * * *",
		"* 24 * * *",
		"* * 0 * *",
		"* * 32 * *",
		"* * * 0 *",
		"* * * 13 *",
		"* * * * 7",
		"10-1 * * * *",
		"*/0 * * * *",
		"1-10-20 * * * *",
	}

	for _, expr := range accepted {
		assert.True(t, IsValid(expr, Options{}), "lib-cron should accept %q", expr)

		_, err := robfig.ParseStandard(expr)
		assert.NoError(t, err, "robfig should accept %q", expr)
	}

	for _, expr := range rejected {
		assert.False(t, IsValid(expr, Options{}), "lib-cron should reject %q", expr)

		_, err := robfig.ParseStandard(expr)
		assert.Error(t, err, "robfig should reject %q", expr)
	}
}

func TestAgreesWithRobfigSecondsParser(t *testing.T) {
	t.Parallel()

	parser := robfig.NewParser(robfig.Second | robfig.Minute | robfig.Hour | robfig.Dom | robfig.Month | robfig.Dow)
	opts := Options{Seconds: true, Alias: true}

	accepted := []string{
		"0 * * * * *",
		"*/10 0 12 * * mon-fri",
		"0 30 8 1,15 jan-jun *",
		"10,*/15,12-14,15-30/5 10,*/15,12-14,15-30/5 10,*/12,12-14,5-10/2 10,*/7,12-15,15-30/5 1,*/3,4-5,jun-oct/2 0,*/3,2-4,mon-fri/2",
	}

	rejected := []string{
		"* * * * *",
		"60 * * * * *",
		"0 0 0 30-1 * *",
	}

	for _, expr := range accepted {
		assert.True(t, IsValid(expr, opts), "lib-cron should accept %q", expr)

		_, err := parser.Parse(expr)
		assert.NoError(t, err, "robfig should accept %q", expr)
	}

	for _, expr := range rejected {
		assert.False(t, IsValid(expr, opts), "lib-cron should reject %q", expr)

		_, err := parser.Parse(expr)
		assert.Error(t, err, "robfig should reject %q", expr)
	}
}
