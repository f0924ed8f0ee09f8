package controller

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coursemodel "tutorhub_backend/internals/features/courses/model"
	"tutorhub_backend/internals/features/payments/dto"
	"tutorhub_backend/internals/features/payments/model"
)

func sampleEnrollment() coursemodel.CourseEnrollmentModel {
	return coursemodel.CourseEnrollmentModel{
		CourseEnrollmentID:           uuid.New(),
		CourseEnrollmentStudentID:    uuid.New(),
		CourseEnrollmentBillingCycle: coursemodel.BillingCycleQuarterly,
		CourseEnrollmentCost:         78947.37,
	}
}

func TestBuildManualPaymentDefaults(t *testing.T) {
	enrollment := sampleEnrollment()
	req := dto.CreatePaymentRequest{
		StudentID:          enrollment.CourseEnrollmentStudentID.String(),
		CourseEnrollmentID: enrollment.CourseEnrollmentID.String(),
		Method:             "card",
	}

	payment, err := buildManualPayment(&req, &enrollment)
	require.NoError(t, err)

	// Tanpa status/amount dari caller: pending + biaya enrollment
	assert.Equal(t, model.PaymentStatusPending, payment.PaymentStatus)
	assert.Equal(t, enrollment.CourseEnrollmentCost, payment.PaymentAmount)
	assert.Equal(t, model.DefaultCurrency, payment.PaymentCurrency)
	assert.Equal(t, coursemodel.BillingCycleQuarterly, payment.PaymentBillingCycle)
	assert.Nil(t, payment.PaymentPaidAt)
	assert.Nil(t, payment.PaymentGatewayReference)
}

func TestBuildManualPaymentHonorsCallerFields(t *testing.T) {
	enrollment := sampleEnrollment()
	amount := 5000.0
	ref := "MANUAL-2026-001"
	paidAt := "2026-08-01T09:30:00+01:00"
	req := dto.CreatePaymentRequest{
		StudentID:          enrollment.CourseEnrollmentStudentID.String(),
		CourseEnrollmentID: enrollment.CourseEnrollmentID.String(),
		Method:             "manual",
		Status:             model.PaymentStatusSuccessful,
		Amount:             &amount,
		GatewayReference:   &ref,
		Meta:               map[string]any{"note": "cash at desk"},
		PaidAt:             &paidAt,
	}

	payment, err := buildManualPayment(&req, &enrollment)
	require.NoError(t, err)

	assert.Equal(t, model.PaymentStatusSuccessful, payment.PaymentStatus)
	assert.Equal(t, 5000.0, payment.PaymentAmount)
	require.NotNil(t, payment.PaymentGatewayReference)
	assert.Equal(t, ref, *payment.PaymentGatewayReference)

	require.NotNil(t, payment.PaymentPaidAt)
	want, err := time.Parse(time.RFC3339, paidAt)
	require.NoError(t, err)
	assert.True(t, payment.PaymentPaidAt.Equal(want))

	var meta map[string]any
	require.NoError(t, sonic.Unmarshal(payment.PaymentMeta, &meta))
	assert.Equal(t, "cash at desk", meta["note"])
}

func TestBuildManualPaymentRejectsBadPaidAt(t *testing.T) {
	enrollment := sampleEnrollment()
	paidAt := "01-08-2026"
	req := dto.CreatePaymentRequest{
		StudentID:          enrollment.CourseEnrollmentStudentID.String(),
		CourseEnrollmentID: enrollment.CourseEnrollmentID.String(),
		Method:             "manual",
		PaidAt:             &paidAt,
	}

	_, err := buildManualPayment(&req, &enrollment)
	assert.Error(t, err)
}
