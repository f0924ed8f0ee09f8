package service

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"tutorhub_backend/internals/features/staffs/model"
)

// FormatStaffCode menyusun nomor induk: TC + YYMM + urutan 4 digit.
// Contoh: TC26080017.
func FormatStaffCode(t time.Time, seq int64) string {
	return fmt.Sprintf("TC%s%04d", t.Format("0601"), seq)
}

// NextStaffCode menghitung nomor induk berikutnya. Urutan = total staff
// yang pernah dibuat (termasuk yang sudah dihapus) + 1, supaya nomor
// tidak pernah dipakai ulang.
func NextStaffCode(tx *gorm.DB, now time.Time) (string, error) {
	var count int64
	if err := tx.Unscoped().Model(&model.StaffModel{}).Count(&count).Error; err != nil {
		return "", err
	}
	return FormatStaffCode(now, count+1), nil
}
