package model

import (
	"time"

	"github.com/google/uuid"
)

// PhoneOtp di-keying by nomor telepon, bukan by pemilik,
// student/staff/guardian memakai tabel yang sama.
type PhoneOtpModel struct {
	PhoneOtpID uuid.UUID `gorm:"column:phone_otp_id;type:uuid;default:gen_random_uuid();primaryKey" json:"phone_otp_id"`

	PhoneOtpTel       string    `gorm:"column:phone_otp_tel;type:varchar(20);not null;index" json:"phone_otp_tel"`
	PhoneOtpCode      string    `gorm:"column:phone_otp_code;type:varchar(100);not null" json:"-"` // bcrypt hash, bukan plaintext
	PhoneOtpExpiresAt time.Time `gorm:"column:phone_otp_expires_at;not null" json:"phone_otp_expires_at"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PhoneOtpModel) TableName() string { return "phone_otps" }
