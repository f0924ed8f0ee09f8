package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "tutorhub_backend/internals/helpers"
)

func validRegisterStaffRequest() RegisterStaffRequest {
	return RegisterStaffRequest{
		Firstname:   "Ngozi",
		Surname:     "Okafor",
		Email:       "ngozi.okafor@tutorhub.ng",
		Tel:         "08012345678",
		Gender:      "female",
		DateOfBirth: "1991-03-14",
		Location:    "Lagos",
		Address:     "12 Adeola Odeku Street",
		Role:        "tutor",
	}
}

func TestRegisterStaffRequestInductedBy(t *testing.T) {
	// inducted_by opsional
	req := validRegisterStaffRequest()
	require.NoError(t, helper.Validate().Struct(req))

	id := "8f14e45f-ceea-467f-a8fb-9486715a612b"
	req.InductedBy = &id
	require.NoError(t, helper.Validate().Struct(req))

	bad := "bukan-uuid"
	req.InductedBy = &bad
	err := helper.Validate().Struct(req)
	require.Error(t, err)
	assert.Contains(t, helper.ValidationErrorsToMap(err), "inducted_by")
}

func TestRegisterStaffRequestDateOfBirth(t *testing.T) {
	req := validRegisterStaffRequest()
	req.DateOfBirth = "2031-01-01"

	err := helper.Validate().Struct(req)
	require.Error(t, err)
	assert.Contains(t, helper.ValidationErrorsToMap(err), "date_of_birth")
}
