package service

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	model "tutorhub_backend/internals/features/verification/model"
)

func TestRandomOtpCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := randomOtpCode()
		require.NoError(t, err)
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		// selalu 6 digit, tanpa leading zero
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestCheckOtpRecord(t *testing.T) {
	now := time.Now()
	hash, err := bcrypt.GenerateFromPassword([]byte("482913"), bcrypt.MinCost)
	require.NoError(t, err)

	fresh := &model.PhoneOtpModel{
		PhoneOtpCode:      string(hash),
		PhoneOtpExpiresAt: now.Add(5 * time.Minute),
	}
	stale := &model.PhoneOtpModel{
		PhoneOtpCode:      string(hash),
		PhoneOtpExpiresAt: now.Add(-1 * time.Minute),
	}

	assert.NoError(t, checkOtpRecord(fresh, "482913", now))
	assert.ErrorIs(t, checkOtpRecord(fresh, "000000", now), ErrOtpMismatch)

	// OTP kedaluwarsa ditolak duluan, bahkan dengan kode yang benar
	assert.ErrorIs(t, checkOtpRecord(stale, "482913", now), ErrOtpExpired)
	assert.ErrorIs(t, checkOtpRecord(stale, "000000", now), ErrOtpExpired)
}
