package database

import (
	"log"

	"gorm.io/gorm"

	classmodel "tutorhub_backend/internals/features/classes/model"
	coursemodel "tutorhub_backend/internals/features/courses/model"
	guardianmodel "tutorhub_backend/internals/features/guardians/model"
	paymentmodel "tutorhub_backend/internals/features/payments/model"
	staffmodel "tutorhub_backend/internals/features/staffs/model"
	studentmodel "tutorhub_backend/internals/features/students/model"
	subjectmodel "tutorhub_backend/internals/features/subjects/model"
	vmodel "tutorhub_backend/internals/features/verification/model"
)

// MigrateAll menjalankan auto-migration seluruh tabel. Urutan mengikuti
// dependensi foreign key.
func MigrateAll(db *gorm.DB) {
	// gen_random_uuid() butuh pgcrypto
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error; err != nil {
		log.Printf("[WARNING] Gagal membuat extension pgcrypto: %v", err)
	}

	if err := db.AutoMigrate(
		&studentmodel.StudentModel{},
		&guardianmodel.GuardianModel{},
		&staffmodel.StaffModel{},
		&vmodel.EmailVerificationModel{},
		&vmodel.PhoneOtpModel{},
		&coursemodel.CourseModel{},
		&coursemodel.CourseEnrollmentModel{},
		&subjectmodel.SubjectModel{},
		&subjectmodel.SubjectsEnrollmentModel{},
		&classmodel.ClassModel{},
		&classmodel.ClassStaffModel{},
		&classmodel.ClassScheduleModel{},
		&classmodel.ClassSessionModel{},
		&paymentmodel.PaymentModel{},
	); err != nil {
		log.Fatalf("[ERROR] Auto-migration gagal: %v", err)
	}

	log.Println("[SUCCESS] Auto-migration selesai")
}
