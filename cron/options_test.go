//go:build unit

package cron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDialect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected Dialect
	}{
		{input: "standard", expected: DialectStandard},
		{input: "EXTENDED", expected: DialectExtended},
		{input: " Quartz ", expected: DialectQuartz},
		{input: "jenkins", expected: DialectJenkins},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			d, err := ParseDialect(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d)
		})
	}

	for _, input := range []string{"", "vixie", "quartz2"} {
		_, err := ParseDialect(input)
		assert.ErrorIs(t, err, ErrUnknownDialect, input)
	}
}

func TestDialectOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Options{}, DialectStandard.Options())
	assert.Equal(t, Options{}, Dialect("unknown").Options())

	extended := DialectExtended.Options()
	assert.True(t, extended.Alias)
	assert.True(t, extended.AllowSevenAsSunday)
	assert.False(t, extended.Seconds)

	quartz := DialectQuartz.Options()
	assert.True(t, quartz.Seconds)
	assert.True(t, quartz.AllowBlankDay)
	assert.True(t, quartz.AllowLast)
	assert.True(t, quartz.AllowWeekday)
	assert.False(t, quartz.AllowHashed)
	assert.False(t, quartz.Alias)

	jenkins := DialectJenkins.Options()
	assert.True(t, jenkins.AllowHashed)
	assert.False(t, jenkins.Seconds)
	assert.False(t, jenkins.AllowLast)
	assert.False(t, jenkins.Alias)
}

func TestDialects_Expressions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dialect Dialect
		expr    string
		valid   bool
	}{
		{dialect: DialectStandard, expr: "*/5 * * * *", valid: true},
		{dialect: DialectStandard, expr: "0 0 * * sun"},
		{dialect: DialectExtended, expr: "0 0 * * sun", valid: true},
		{dialect: DialectExtended, expr: "0 0 * * 7", valid: true},
		{dialect: DialectQuartz, expr: "0 0 12 ? * 3", valid: true},
		{dialect: DialectQuartz, expr: "0 15 10 ? * 6L", valid: true},
		{dialect: DialectQuartz, expr: "0 0 12 ? * WED"},
		{dialect: DialectQuartz, expr: "0 0 12 15W * ?", valid: true},
		{dialect: DialectQuartz, expr: "0 12 * * *"},
		{dialect: DialectJenkins, expr: "H H(0-7) * * 1-5", valid: true},
		{dialect: DialectJenkins, expr: "H/15 * * * *", valid: true},
		{dialect: DialectJenkins, expr: "H H * * H", valid: true},
		{dialect: DialectJenkins, expr: "* * L * *"},
	}

	for _, tt := range tests {
		t.Run(string(tt.dialect)+" "+tt.expr, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.valid, IsValid(tt.expr, tt.dialect.Options()))
		})
	}
}
