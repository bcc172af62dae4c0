package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"iso date", "2024-03-05", "2024-03-05"},
		{"rfc3339", "2024-03-05T10:30:00Z", "2024-03-05"},
		{"rfc3339 with millis", "2024-03-05T23:30:00.000Z", "2024-03-05"},
		{"slash form", "2024/03/05", "2024-03-05"},
		{"offset rolls into utc", "2024-03-05T23:30:00+05:00", "2024-03-05"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeDate(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeDateRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "not-a-date", "2024-13-40", "05-03-2024"} {
		_, err := NormalizeDate(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestValidMonth(t *testing.T) {
	assert.True(t, ValidMonth("2024-01"))
	assert.True(t, ValidMonth("2024-12"))
	assert.False(t, ValidMonth("2024-13"))
	assert.False(t, ValidMonth("2024-1"))
	assert.False(t, ValidMonth("2024-01-05"))
	assert.False(t, ValidMonth(""))
}

func TestPiecePatchClamp(t *testing.T) {
	clamped := PiecePatch{BoilerBig: -3, BoilerSmall: 7.9}.Clamp()
	assert.Equal(t, 0, clamped.BoilerBig)
	assert.Equal(t, 7, clamped.BoilerSmall)
}
