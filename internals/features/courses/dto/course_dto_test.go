package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "tutorhub_backend/internals/helpers"
)

func TestCreateCourseRequestPrice(t *testing.T) {
	// Harga 0 legal (course gratis)
	zero := 0.0
	req := CreateCourseRequest{Title: "Free Mathematics Clinic", Price: &zero}
	require.NoError(t, helper.Validate().Struct(req))

	// Harga wajib diisi
	req = CreateCourseRequest{Title: "Free Mathematics Clinic"}
	err := helper.Validate().Struct(req)
	require.Error(t, err)
	assert.Contains(t, helper.ValidationErrorsToMap(err), "price")

	// Harga negatif ditolak
	negative := -100.0
	req = CreateCourseRequest{Title: "Free Mathematics Clinic", Price: &negative}
	err = helper.Validate().Struct(req)
	require.Error(t, err)
	assert.Contains(t, helper.ValidationErrorsToMap(err), "price")
}
