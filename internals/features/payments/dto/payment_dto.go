package dto

import (
	"time"

	"gorm.io/datatypes"

	"tutorhub_backend/internals/features/payments/model"
)

/* ===================== Requests ===================== */

// CreatePaymentRequest: jalur manual-entry admin. Status, nominal, referensi
// gateway, meta, dan paid_at boleh diisi langsung oleh caller.
type CreatePaymentRequest struct {
	StudentID          string         `json:"student_id" validate:"required,uuid4"`
	CourseEnrollmentID string         `json:"course_enrollment_id" validate:"required,uuid4"`
	Method             string         `json:"method" validate:"required,oneof=card bank_transfer ussd wallet manual"`
	Gateway            *string        `json:"gateway" validate:"omitempty,oneof=midtrans manual"`
	Status             string         `json:"status" validate:"omitempty,oneof=pending successful failed cancelled refunded"`
	Amount             *float64       `json:"amount" validate:"omitempty,gte=0"`
	GatewayReference   *string        `json:"gateway_reference" validate:"omitempty,max=100"`
	Meta               map[string]any `json:"meta" validate:"omitempty"`
	PaidAt             *string        `json:"paid_at" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// InitiatePaymentRequest: jalur student. Tagihan selalu dibuat pending,
// nominal diambil dari biaya enrollment.
type InitiatePaymentRequest struct {
	StudentID          string  `json:"student_id" validate:"required,uuid4"`
	CourseEnrollmentID string  `json:"course_enrollment_id" validate:"required,uuid4"`
	Method             string  `json:"method" validate:"required,oneof=card bank_transfer ussd wallet manual"`
	Gateway            *string `json:"gateway" validate:"omitempty,oneof=midtrans manual"`
}

type ConfirmPaymentRequest struct {
	GatewayReference string         `json:"gateway_reference" validate:"required,max=100"`
	Meta             map[string]any `json:"meta" validate:"omitempty"`
}

/* ===================== Responses ===================== */

type PaymentResponse struct {
	PaymentID          string         `json:"payment_id"`
	StudentID          string         `json:"student_id"`
	CourseEnrollmentID string         `json:"course_enrollment_id"`
	Amount             float64        `json:"amount"`
	Currency           string         `json:"currency"`
	Method             string         `json:"method"`
	Gateway            *string        `json:"gateway,omitempty"`
	GatewayReference   *string        `json:"gateway_reference,omitempty"`
	Status             string         `json:"status"`
	BillingCycle       string         `json:"billing_cycle"`
	Meta               datatypes.JSON `json:"meta,omitempty"`
	PaidAt             *time.Time     `json:"paid_at,omitempty"`
	Token              *string        `json:"token,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
}

func ToPaymentResponse(m *model.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:          m.PaymentID.String(),
		StudentID:          m.PaymentStudentID.String(),
		CourseEnrollmentID: m.PaymentCourseEnrollmentID.String(),
		Amount:             m.PaymentAmount,
		Currency:           m.PaymentCurrency,
		Method:             m.PaymentMethod,
		Gateway:            m.PaymentGateway,
		GatewayReference:   m.PaymentGatewayReference,
		Status:             m.PaymentStatus,
		BillingCycle:       m.PaymentBillingCycle,
		Meta:               m.PaymentMeta,
		PaidAt:             m.PaymentPaidAt,
		Token:              m.PaymentToken,
		CreatedAt:          m.CreatedAt,
	}
}

func ToPaymentResponses(ms []model.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToPaymentResponse(&ms[i]))
	}
	return out
}
