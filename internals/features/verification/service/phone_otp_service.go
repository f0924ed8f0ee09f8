// file: internals/features/verification/service/phone_otp_service.go
package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	model "tutorhub_backend/internals/features/verification/model"
	"tutorhub_backend/internals/platform/sms"
)

const PhoneOtpTTL = 10 * time.Minute

var (
	ErrOtpNotFound = errors.New("otp not found")
	ErrOtpExpired  = errors.New("otp expired")
	ErrOtpMismatch = errors.New("invalid otp")
	ErrOtpDispatch = errors.New("sms dispatch failed")
)

type PhoneOtpService struct {
	Sms sms.Sender
}

func NewPhoneOtpService(s sms.Sender) *PhoneOtpService {
	return &PhoneOtpService{Sms: s}
}

// SendOtp menghapus OTP lama untuk nomor tsb, generate kode 6 digit,
// kirim SMS, lalu simpan hash-nya. Gagal kirim = rollback (tidak ada
// baris OTP nyangkut tanpa SMS terkirim).
// HARUS dipanggil di dalam transaksi caller.
func (s *PhoneOtpService) SendOtp(tx *gorm.DB, tel string) error {
	if err := tx.Where("phone_otp_tel = ?", tel).Delete(&model.PhoneOtpModel{}).Error; err != nil {
		return err
	}

	code, err := randomOtpCode()
	if err != nil {
		return err
	}

	message := fmt.Sprintf("Your verification code is %s. It expires in 10 minutes.", code)
	if err := s.Sms.Send(tel, message); err != nil {
		return fmt.Errorf("%w: %v", ErrOtpDispatch, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	rec := model.PhoneOtpModel{
		PhoneOtpTel:       tel,
		PhoneOtpCode:      string(hash),
		PhoneOtpExpiresAt: time.Now().Add(PhoneOtpTTL),
	}
	if err := tx.Create(&rec).Error; err != nil {
		return err
	}

	// TEMP: log kode sampai provider SMS asli diintegrasikan
	log.Printf("[INFO] OTP for %s is %s", tel, code)
	return nil
}

// VerifyOtp mencocokkan kode terhadap hash OTP terbaru untuk nomor tsb.
// Urutan cek: ada → belum kedaluwarsa → hash cocok. Sukses = set
// tel_verified_at pemilik + hapus semua OTP nomor itu, satu transaksi.
func (s *PhoneOtpService) VerifyOtp(db *gorm.DB, kind model.OwnerKind, tel, code string) error {
	var rec model.PhoneOtpModel
	if err := db.
		Where("phone_otp_tel = ?", tel).
		Order("created_at DESC").
		First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOtpNotFound
		}
		return err
	}

	if err := checkOtpRecord(&rec, code, time.Now()); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		ok, err := markTelVerifiedByTel(tx, kind, tel, time.Now())
		if err != nil {
			return err
		}
		if !ok {
			return ErrOwnerNotFound
		}
		return tx.Where("phone_otp_tel = ?", tel).Delete(&model.PhoneOtpModel{}).Error
	})
}

// checkOtpRecord: kedaluwarsa dicek duluan sebelum hash dibandingkan,
// jadi OTP basi selalu ditolak walau kodenya benar.
func checkOtpRecord(rec *model.PhoneOtpModel, code string, now time.Time) error {
	if now.After(rec.PhoneOtpExpiresAt) {
		return ErrOtpExpired
	}
	if err := bcrypt.CompareHashAndPassword([]byte(rec.PhoneOtpCode), []byte(code)); err != nil {
		return ErrOtpMismatch
	}
	return nil
}

func randomOtpCode() (string, error) {
	// 100000..999999, crypto/rand
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
