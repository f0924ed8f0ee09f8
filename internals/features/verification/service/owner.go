// file: internals/features/verification/service/owner.go
package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "tutorhub_backend/internals/features/verification/model"
)

var ErrUnknownOwnerKind = errors.New("unknown verification owner kind")

// ownerTarget memetakan jenis pemilik ke tabel & kolomnya.
// Dispatch lewat tabel enumerated, bukan inspeksi tipe runtime.
type ownerTarget struct {
	Table            string
	IDColumn         string
	EmailColumn      string
	TelColumn        string
	EmailVerifiedCol string
	TelVerifiedCol   string
	SoftDeleteColumn string
}

var ownerTargets = map[model.OwnerKind]ownerTarget{
	model.OwnerStudent: {
		Table:            "students",
		IDColumn:         "student_id",
		EmailColumn:      "student_email",
		TelColumn:        "student_tel",
		EmailVerifiedCol: "student_email_verified_at",
		TelVerifiedCol:   "student_tel_verified_at",
		SoftDeleteColumn: "deleted_at",
	},
	model.OwnerStaff: {
		Table:            "staffs",
		IDColumn:         "staff_id",
		EmailColumn:      "staff_email",
		TelColumn:        "staff_tel",
		EmailVerifiedCol: "staff_email_verified_at",
		TelVerifiedCol:   "staff_tel_verified_at",
		SoftDeleteColumn: "deleted_at",
	},
	model.OwnerGuardian: {
		Table:            "guardians",
		IDColumn:         "guardian_id",
		EmailColumn:      "guardian_email",
		TelColumn:        "guardian_tel",
		EmailVerifiedCol: "guardian_email_verified_at",
		TelVerifiedCol:   "guardian_tel_verified_at",
		SoftDeleteColumn: "deleted_at",
	},
}

func targetFor(kind model.OwnerKind) (ownerTarget, error) {
	t, ok := ownerTargets[kind]
	if !ok {
		return ownerTarget{}, fmt.Errorf("%w: %q", ErrUnknownOwnerKind, kind)
	}
	return t, nil
}

// markEmailVerified set kolom email_verified_at pemilik. 0 row = pemilik hilang.
func markEmailVerified(tx *gorm.DB, kind model.OwnerKind, ownerID uuid.UUID, now interface{}) (bool, error) {
	t, err := targetFor(kind)
	if err != nil {
		return false, err
	}
	res := tx.Table(t.Table).
		Where(fmt.Sprintf("%s = ? AND %s IS NULL", t.IDColumn, t.SoftDeleteColumn), ownerID).
		Update(t.EmailVerifiedCol, now)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// markTelVerifiedByTel set kolom tel_verified_at berdasarkan nomor telepon.
func markTelVerifiedByTel(tx *gorm.DB, kind model.OwnerKind, tel string, now interface{}) (bool, error) {
	t, err := targetFor(kind)
	if err != nil {
		return false, err
	}
	res := tx.Table(t.Table).
		Where(fmt.Sprintf("%s = ? AND %s IS NULL", t.TelColumn, t.SoftDeleteColumn), tel).
		Update(t.TelVerifiedCol, now)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
