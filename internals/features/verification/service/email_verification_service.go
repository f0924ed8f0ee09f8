// file: internals/features/verification/service/email_verification_service.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tutorhub_backend/internals/configs"
	model "tutorhub_backend/internals/features/verification/model"
	"tutorhub_backend/internals/platform/mailer"
)

const EmailTokenTTL = 30 * time.Minute

var (
	ErrTokenInvalidOrExpired = errors.New("invalid or expired verification token")
	ErrOwnerNotFound         = errors.New("owner not found for verification token")
)

type EmailVerificationService struct {
	Mailer mailer.Service
}

func NewEmailVerificationService(m mailer.Service) *EmailVerificationService {
	return &EmailVerificationService{Mailer: m}
}

// Send membuat token baru untuk pemilik (token lama dihapus dulu, maksimal
// satu token hidup per pemilik) lalu kirim email verifikasi.
// HARUS dipanggil di dalam transaksi caller: gagal kirim = seluruh operasi rollback.
func (s *EmailVerificationService) Send(tx *gorm.DB, kind model.OwnerKind, ownerID uuid.UUID, email string) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownOwnerKind, kind)
	}

	if err := tx.
		Where("email_verification_verifiable_type = ? AND email_verification_verifiable_id = ?", kind, ownerID).
		Delete(&model.EmailVerificationModel{}).Error; err != nil {
		return err
	}

	token := uuid.NewString()
	rec := model.EmailVerificationModel{
		EmailVerificationVerifiableType: kind,
		EmailVerificationVerifiableID:   ownerID,
		EmailVerificationToken:          token,
		EmailVerificationExpiresAt:      time.Now().Add(EmailTokenTTL),
	}
	if err := tx.Create(&rec).Error; err != nil {
		return err
	}

	verifyURL := fmt.Sprintf("%s/%ss/verify-email?token=%s", configs.AppURL, kind, token)
	msg := mailer.Message{
		To:      email,
		Subject: "Verify your email address",
		PlainText: fmt.Sprintf(
			"Welcome to TutorHub!\n\nVerify your email by visiting:\n%s\n\nThis link expires in 30 minutes.",
			verifyURL,
		),
		HTML: fmt.Sprintf(
			`<p>Welcome to TutorHub!</p><p><a href="%s">Verify your email</a></p><p>This link expires in 30 minutes.</p>`,
			verifyURL,
		),
	}
	if err := s.Mailer.Send(msg); err != nil {
		return fmt.Errorf("email dispatch failed: %w", err)
	}
	return nil
}

// Verify mengonsumsi token: set email_verified_at pemilik lalu hapus token
// (sekali pakai). Token yang sudah dikonsumsi atau kedaluwarsa → ErrTokenInvalidOrExpired.
func (s *EmailVerificationService) Verify(db *gorm.DB, token string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var rec model.EmailVerificationModel
		if err := tx.
			Where("email_verification_token = ? AND email_verification_expires_at > ?", token, time.Now()).
			First(&rec).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTokenInvalidOrExpired
			}
			return err
		}

		ok, err := markEmailVerified(tx, rec.EmailVerificationVerifiableType, rec.EmailVerificationVerifiableID, time.Now())
		if err != nil {
			return err
		}
		if !ok {
			return ErrOwnerNotFound
		}

		return tx.Delete(&rec).Error
	})
}
