package model

import (
	"time"

	"github.com/google/uuid"
)

/* ===================== Constants ===================== */

// Jenis pemilik token verifikasi (student/staff/guardian).
// Disimpan sebagai discriminator di kolom verifiable_type.
type OwnerKind string

const (
	OwnerStudent  OwnerKind = "student"
	OwnerStaff    OwnerKind = "staff"
	OwnerGuardian OwnerKind = "guardian"
)

func (k OwnerKind) Valid() bool {
	switch k {
	case OwnerStudent, OwnerStaff, OwnerGuardian:
		return true
	}
	return false
}

/* ===================== Model ===================== */

type EmailVerificationModel struct {
	EmailVerificationID uuid.UUID `gorm:"column:email_verification_id;type:uuid;default:gen_random_uuid();primaryKey" json:"email_verification_id"`

	EmailVerificationVerifiableType OwnerKind `gorm:"column:email_verification_verifiable_type;type:varchar(20);not null;index:idx_email_verification_verifiable" json:"email_verification_verifiable_type"`
	EmailVerificationVerifiableID   uuid.UUID `gorm:"column:email_verification_verifiable_id;type:uuid;not null;index:idx_email_verification_verifiable" json:"email_verification_verifiable_id"`

	EmailVerificationToken     string    `gorm:"column:email_verification_token;type:varchar(100);not null;unique" json:"-"`
	EmailVerificationExpiresAt time.Time `gorm:"column:email_verification_expires_at;not null" json:"email_verification_expires_at"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (EmailVerificationModel) TableName() string { return "email_verifications" }
