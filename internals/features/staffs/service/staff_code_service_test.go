package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatStaffCode(t *testing.T) {
	aug2026 := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "TC26080001", FormatStaffCode(aug2026, 1))
	assert.Equal(t, "TC26080017", FormatStaffCode(aug2026, 17))
	assert.Equal(t, "TC26081234", FormatStaffCode(aug2026, 1234))

	// bulan satu digit tetap dua karakter
	jan2027 := time.Date(2027, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "TC27010003", FormatStaffCode(jan2027, 3))
}

func TestFormatStaffCodeLength(t *testing.T) {
	code := FormatStaffCode(time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), 9999)
	assert.Len(t, code, 10)
}
