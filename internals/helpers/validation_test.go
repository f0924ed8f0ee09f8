package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordMeetsComplexity(t *testing.T) {
	tests := []struct {
		name string
		pwd  string
		want bool
	}{
		{"lengkap", "Str0ng@pass", true},
		{"tanpa huruf besar", "str0ng@pass", false},
		{"tanpa huruf kecil", "STR0NG@PASS", false},
		{"tanpa angka", "Strong@pass", false},
		{"tanpa simbol", "Str0ngpass", false},
		{"kosong", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PasswordMeetsComplexity(tt.pwd))
		})
	}
}

func TestIsValidMsisdn(t *testing.T) {
	valid := []string{
		"+2348012345678",
		"2348012345678",
		"08012345678",
		"07012345678",
		"09112345678",
	}
	for _, tel := range valid {
		assert.True(t, IsValidMsisdn(tel), tel)
	}

	invalid := []string{
		"06012345678",    // prefix operator tidak dikenal
		"+2358012345678", // kode negara salah
		"0801234567",     // kurang digit
		"080123456789",   // kelebihan digit
		"abc",
		"",
	}
	for _, tel := range invalid {
		assert.False(t, IsValidMsisdn(tel), tel)
	}
}

func TestIsPastDate(t *testing.T) {
	now := time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC)

	assert.True(t, IsPastDate("2001-05-17", now))
	assert.True(t, IsPastDate("2026-08-28", now)) // kemarin
	assert.False(t, IsPastDate("2026-08-29", now))
	assert.False(t, IsPastDate("2031-01-01", now))
	assert.False(t, IsPastDate("31-01-2001", now)) // format salah
	assert.False(t, IsPastDate("", now))
}

func TestValidateStructWithCustomTags(t *testing.T) {
	type payload struct {
		Tel         string `json:"tel" validate:"required,nigerian_msisdn"`
		Password    string `json:"password" validate:"required,min=8,password_complexity"`
		DateOfBirth string `json:"date_of_birth" validate:"required,datetime=2006-01-02,past_date"`
	}

	err := Validate().Struct(payload{Tel: "08012345678", Password: "Str0ng@pass", DateOfBirth: "1999-12-31"})
	require.NoError(t, err)

	err = Validate().Struct(payload{Tel: "12345", Password: "weak", DateOfBirth: "2031-01-01"})
	require.Error(t, err)

	fields := ValidationErrorsToMap(err)
	assert.Contains(t, fields, "tel")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "date_of_birth")
}

func TestValidationErrorsToMapNil(t *testing.T) {
	assert.Nil(t, ValidationErrorsToMap(nil))
}
