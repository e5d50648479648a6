package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseISODuration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "hours and minutes", input: "PT2H30M", want: 150},
		{name: "minutes only", input: "PT45M", want: 45},
		{name: "hours only", input: "PT3H", want: 180},
		{name: "empty string", input: "", want: 0},
		{name: "zero token", input: "PT0M", want: 0},
		{name: "large hours", input: "PT14H5M", want: 845},
		{name: "single digit minute", input: "PT1H5M", want: 65},
		{name: "malformed hours component", input: "PTxH30M", want: 30},
		{name: "malformed minutes component", input: "PT2HxxM", want: 120},
		{name: "both components malformed", input: "PTaHbM", want: 0},
		{name: "missing PT prefix", input: "2H30M", want: 150},
		{name: "garbage", input: "not-a-duration", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseISODuration(tt.input))
		})
	}
}

func TestParseISODuration_NeverNegative(t *testing.T) {
	inputs := []string{"PT-1H", "PT-30M", "PT-1H-30M"}
	for _, in := range inputs {
		assert.GreaterOrEqual(t, ParseISODuration(in), 0, "input %q", in)
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{150, "2h 30m"},
		{45, "45m"},
		{180, "3h"},
		{0, "0m"},
		{60, "1h"},
		{845, "14h 5m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMinutes(tt.minutes))
	}
}
