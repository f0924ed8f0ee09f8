package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ===================== Constants ===================== */

const (
	PaymentStatusPending    = "pending"
	PaymentStatusSuccessful = "successful"
	PaymentStatusFailed     = "failed"
	PaymentStatusCancelled  = "cancelled"
	PaymentStatusRefunded   = "refunded"
)

const (
	PaymentMethodCard         = "card"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodUssd         = "ussd"
	PaymentMethodWallet       = "wallet"
	PaymentMethodManual       = "manual"
)

const DefaultCurrency = "NGN"

/* ===================== Model ===================== */

type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	PaymentStudentID          uuid.UUID `gorm:"column:payment_student_id;type:uuid;not null;index" json:"payment_student_id"`
	PaymentCourseEnrollmentID uuid.UUID `gorm:"column:payment_course_enrollment_id;type:uuid;not null;index" json:"payment_course_enrollment_id"`

	PaymentAmount   float64 `gorm:"column:payment_amount;type:numeric(12,2);not null" json:"payment_amount"`
	PaymentCurrency string  `gorm:"column:payment_currency;type:varchar(3);not null;default:'NGN'" json:"payment_currency"`

	PaymentMethod  string  `gorm:"column:payment_method;type:varchar(20);not null" json:"payment_method"`
	PaymentGateway *string `gorm:"column:payment_gateway;type:varchar(30)" json:"payment_gateway,omitempty"`

	// Referensi transaksi dari gateway, unik lintas pembayaran
	PaymentGatewayReference *string `gorm:"column:payment_gateway_reference;type:varchar(100);unique" json:"payment_gateway_reference,omitempty"`

	PaymentStatus       string `gorm:"column:payment_status;type:varchar(10);not null;default:'pending'" json:"payment_status"`
	PaymentBillingCycle string `gorm:"column:payment_billing_cycle;type:varchar(15);not null" json:"payment_billing_cycle"`

	PaymentMeta datatypes.JSON `gorm:"column:payment_meta;type:jsonb" json:"payment_meta,omitempty"`

	PaymentPaidAt *time.Time `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`

	// Token Snap (gateway midtrans)
	PaymentToken *string `gorm:"column:payment_token;type:varchar(100)" json:"payment_token,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (PaymentModel) TableName() string { return "payments" }

/* ===================== State machine ===================== */

// IsTerminal: failed, cancelled, dan refunded tidak bisa berubah lagi.
func (p *PaymentModel) IsTerminal() bool {
	switch p.PaymentStatus {
	case PaymentStatusFailed, PaymentStatusCancelled, PaymentStatusRefunded:
		return true
	}
	return false
}

// CanTransitionTo memvalidasi perpindahan status:
// pending → successful | failed | cancelled, successful → refunded.
func (p *PaymentModel) CanTransitionTo(next string) bool {
	switch p.PaymentStatus {
	case PaymentStatusPending:
		return next == PaymentStatusSuccessful ||
			next == PaymentStatusFailed ||
			next == PaymentStatusCancelled
	case PaymentStatusSuccessful:
		return next == PaymentStatusRefunded
	}
	return false
}
