package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/popeskul/pnba-gateway/internal/models"
)

func TestNormalizePhoneNumber_Success(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected models.PhoneNumber
	}{
		{name: "already normalized", input: "+15550100", expected: "+15550100"},
		{name: "missing plus", input: "15550100", expected: "+15550100"},
		{name: "internal spaces", input: "+1 555 0100", expected: "+15550100"},
		{name: "tabs and newlines", input: "\t1 555\n0100 ", expected: "+15550100"},
		{name: "space after plus", input: "+ 44 20 7946 0958", expected: "+442079460958"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := models.NormalizePhoneNumber(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)

			again, err := models.NormalizePhoneNumber(got.String())
			require.NoError(t, err)
			assert.Equal(t, got, again, "normalization must be idempotent")
		})
	}
}

func TestNormalizePhoneNumber_Failure(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "only whitespace", input: "   "},
		{name: "only plus", input: "+"},
		{name: "double plus", input: "++15550100"},
		{name: "plus in the middle", input: "1555+0100"},
		{name: "letters", input: "+1555CALLME"},
		{name: "dashes", input: "+1-555-0100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := models.NormalizePhoneNumber(tt.input)
			assert.ErrorIs(t, err, models.ErrInvalidPhoneNumber)
		})
	}
}

func TestPhoneNumber_Equality(t *testing.T) {
	a, err := models.NormalizePhoneNumber("+1 555 0100")
	require.NoError(t, err)
	b, err := models.NormalizePhoneNumber("15550100")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestMaskDigits(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "+15550100", expected: "+****0100"},
		{input: "+0100", expected: "+0100"},
		{input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, models.MaskDigits(tt.input))
		})
	}

	assert.Equal(t, "+*****0199", models.PhoneNumber("+155550199").Masked())
}
