package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"opticpro-backend/utils"
)

func TestNormalizePhoneCommonFormats(t *testing.T) {
	inputs := []string{
		"2345678901",
		"234-567-8901",
		"(234) 567-8901",
		"234 567 8901",
		"+1 (234) 567-8901",
		"1-234-567-8901",
	}
	for _, in := range inputs {
		assert.Equal(t, "2345678901", utils.NormalizePhone(in), "input %q", in)
	}
}

func TestNormalizePhoneKeepsOddLengths(t *testing.T) {
	assert.Equal(t, "12345", utils.NormalizePhone("1-23-45"))
	assert.Equal(t, "", utils.NormalizePhone("no digits here"))
	// 11 digits without a leading 1 is not a country-code case.
	assert.Equal(t, "23456789012", utils.NormalizePhone("23456789012"))
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, utils.ValidatePhone("2345678901"))
	assert.False(t, utils.ValidatePhone("234567890"))
	assert.False(t, utils.ValidatePhone("23456789012"))
	assert.False(t, utils.ValidatePhone(""))
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "(234) 567-8901", utils.FormatPhone("2345678901"))
	// Anything that is not 10 digits passes through untouched.
	assert.Equal(t, "12345", utils.FormatPhone("12345"))
	assert.Equal(t, "", utils.FormatPhone(""))
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, utils.ValidateEmail("shop@example.com"))
	assert.False(t, utils.ValidateEmail("not-an-email"))
	assert.False(t, utils.ValidateEmail("missing@domain"))
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("hunter2hunter2")
	assert.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("hunter2hunter2", hash))
	assert.False(t, utils.CheckPasswordHash("wrong", hash))
}
