package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tutorhub_backend/internals/features/courses/dto"
	"tutorhub_backend/internals/features/courses/model"
	"tutorhub_backend/internals/features/courses/service"
	studentmodel "tutorhub_backend/internals/features/students/model"
	helper "tutorhub_backend/internals/helpers"
)

type CourseEnrollmentController struct {
	DB *gorm.DB
}

func NewCourseEnrollmentController(db *gorm.DB) *CourseEnrollmentController {
	return &CourseEnrollmentController{DB: db}
}

// Enroll mendaftarkan student ke course. Syarat: KEDUA kontak student sudah
// terverifikasi (403), course ada dan aktif (404), belum pernah enroll di
// course yang sama (409). Biaya dihitung dari harga dasar + siklus tagihan.
func (ctl *CourseEnrollmentController) Enroll(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID course tidak valid")
	}

	var req dto.EnrollCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID student tidak valid")
	}

	var student studentmodel.StudentModel
	if err := ctl.DB.First(&student, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data student")
	}
	if !student.IsFullyVerified() {
		return helper.JsonError(c, fiber.StatusForbidden, "Verifikasi email dan nomor telepon terlebih dahulu")
	}

	var course model.CourseModel
	if err := ctl.DB.
		Where("course_id = ? AND course_status = ?", courseID, model.CourseStatusActive).
		First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan atau tidak aktif")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat course")
	}

	// Tanggal mulai selalu hari ini, bukan dari request
	startDate := time.Now().Truncate(24 * time.Hour)

	cost, err := service.ComputeCost(course.CoursePrice, req.BillingCycle)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Siklus tagihan tidak valid")
	}
	endDate, err := service.ComputeEndDate(startDate, req.BillingCycle)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Siklus tagihan tidak valid")
	}

	enrollment := model.CourseEnrollmentModel{
		CourseEnrollmentStudentID:    student.StudentID,
		CourseEnrollmentCourseID:     course.CourseID,
		CourseEnrollmentStartDate:    startDate,
		CourseEnrollmentEndDate:      endDate,
		CourseEnrollmentBillingCycle: req.BillingCycle,
		CourseEnrollmentCost:         cost,
		CourseEnrollmentStatus:       model.EnrollmentStatusActive,
	}

	tx := ctl.DB.Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulai transaksi")
	}
	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Student sudah terdaftar di course ini")
		}
		log.Printf("[ERROR] create enrollment: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan enrollment")
	}
	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan enrollment")
	}

	enrollment.Course = &course
	return helper.JsonCreated(c, "Enrollment berhasil dibuat", dto.ToCourseEnrollmentResponse(&enrollment))
}

// EnrollmentsByStudent: daftar enrollment milik satu student (+ course).
func (ctl *CourseEnrollmentController) EnrollmentsByStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID student tidak valid")
	}

	var enrollments []model.CourseEnrollmentModel
	if err := ctl.DB.
		Preload("Course").
		Where("course_enrollment_student_id = ?", studentID).
		Order("created_at DESC").
		Find(&enrollments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat enrollment")
	}

	out := make([]dto.CourseEnrollmentResponse, 0, len(enrollments))
	for i := range enrollments {
		out = append(out, dto.ToCourseEnrollmentResponse(&enrollments[i]))
	}
	return helper.JsonOK(c, "Daftar enrollment student", out)
}

// Cancel membatalkan enrollment yang masih berjalan.
func (ctl *CourseEnrollmentController) Cancel(c *fiber.Ctx) error {
	enrollmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID enrollment tidak valid")
	}

	var enrollment model.CourseEnrollmentModel
	if err := ctl.DB.First(&enrollment, "course_enrollment_id = ?", enrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Enrollment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat enrollment")
	}
	if enrollment.CourseEnrollmentStatus == model.EnrollmentStatusCancelled ||
		enrollment.CourseEnrollmentStatus == model.EnrollmentStatusExpired {
		return helper.JsonError(c, fiber.StatusConflict, "Enrollment sudah berakhir")
	}

	if err := ctl.DB.Model(&enrollment).
		Update("course_enrollment_status", model.EnrollmentStatusCancelled).Error; err != nil {
		log.Printf("[ERROR] cancel enrollment: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membatalkan enrollment")
	}
	return helper.JsonUpdated(c, "Enrollment berhasil dibatalkan", nil)
}
