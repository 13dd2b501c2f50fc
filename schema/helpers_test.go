package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "-", FormatValue(nil, 2))
	assert.Equal(t, "12.50", FormatValue(Float64Ptr(12.5), 2))
	assert.Equal(t, "13", FormatValue(Float64Ptr(12.5), 0))
}

func TestStringPtr(t *testing.T) {
	assert.Nil(t, StringPtr("   "))
	if p := StringPtr("Low"); assert.NotNil(t, p) {
		assert.Equal(t, "Low", *p)
	}
}

func TestSplitProsCons(t *testing.T) {
	pros, cons := SplitProsCons([]ProCon{
		{Kind: ProKind, Description: "fast delivery"},
		{Kind: ConKind, Description: "expensive"},
		{Kind: ProKind, Description: "good support"},
	})
	assert.Equal(t, []string{"fast delivery", "good support"}, pros)
	assert.Equal(t, []string{"expensive"}, cons)
}

func TestParseProConKind(t *testing.T) {
	tests := []struct {
		in   string
		want ProConKind
		ok   bool
	}{
		{"pro", ProKind, true},
		{" Advantage ", ProKind, true},
		{"Avantaj", ProKind, true},
		{"con", ConKind, true},
		{"DISADVANTAGE", ConKind, true},
		{"dezavantaj", ConKind, true},
		{"maybe", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseProConKind(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
