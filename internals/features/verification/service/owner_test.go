package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "tutorhub_backend/internals/features/verification/model"
)

func TestTargetForKnownKinds(t *testing.T) {
	tests := []struct {
		kind        model.OwnerKind
		table       string
		idColumn    string
		emailCol    string
		telCol      string
		emailVerCol string
		telVerCol   string
	}{
		{model.OwnerStudent, "students", "student_id", "student_email", "student_tel", "student_email_verified_at", "student_tel_verified_at"},
		{model.OwnerStaff, "staffs", "staff_id", "staff_email", "staff_tel", "staff_email_verified_at", "staff_tel_verified_at"},
		{model.OwnerGuardian, "guardians", "guardian_id", "guardian_email", "guardian_tel", "guardian_email_verified_at", "guardian_tel_verified_at"},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			target, err := targetFor(tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.table, target.Table)
			assert.Equal(t, tt.idColumn, target.IDColumn)
			assert.Equal(t, tt.emailCol, target.EmailColumn)
			assert.Equal(t, tt.telCol, target.TelColumn)
			assert.Equal(t, tt.emailVerCol, target.EmailVerifiedCol)
			assert.Equal(t, tt.telVerCol, target.TelVerifiedCol)
		})
	}
}

func TestTargetForUnknownKind(t *testing.T) {
	_, err := targetFor(model.OwnerKind("vendor"))
	assert.ErrorIs(t, err, ErrUnknownOwnerKind)
}

func TestOwnerKindValid(t *testing.T) {
	assert.True(t, model.OwnerStudent.Valid())
	assert.True(t, model.OwnerStaff.Valid())
	assert.True(t, model.OwnerGuardian.Valid())
	assert.False(t, model.OwnerKind("vendor").Valid())
	assert.False(t, model.OwnerKind("").Valid())
}
