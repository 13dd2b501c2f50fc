package contract

import (
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetColorLabel(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	assert.Equal(t, HighValue, GetColorLabel(92))
	assert.Equal(t, MediumValue, GetColorLabel(60))
	assert.Equal(t, LowValue, GetColorLabel(12))
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 10))
	assert.Equal(t, "Acme In...", TruncateText("Acme Industrial Supply", 10))
	assert.Equal(t, "Düş...", TruncateText("Düşük riskli", 6))
	assert.Equal(t, "abcdef", TruncateText("abcdef", 3), "too narrow to truncate")
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "TRUE", "1"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, v, s)
	}
	for _, s := range []string{"no", "False", "0"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.False(t, v, s)
	}
	_, err := ParseBoolString("sure")
	assert.Error(t, err)
}

func TestParseID(t *testing.T) {
	id, err := ParseID("benchmark", " 42 ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "0", "-3", "abc", "1.5"} {
		_, err := ParseID("benchmark", bad)
		assert.Error(t, err, bad)
	}
}

func TestSentinelErrorsWrap(t *testing.T) {
	err := errors.Join(errors.New("context"), ErrCriterionNotFound)
	assert.ErrorIs(t, err, ErrCriterionNotFound)
	assert.NotErrorIs(t, err, ErrAlternativeNotFound)
}
