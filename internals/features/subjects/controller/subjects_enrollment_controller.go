package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	coursemodel "tutorhub_backend/internals/features/courses/model"
	"tutorhub_backend/internals/features/subjects/dto"
	"tutorhub_backend/internals/features/subjects/model"
	helper "tutorhub_backend/internals/helpers"
)

type SubjectsEnrollmentController struct {
	DB *gorm.DB
}

func NewSubjectsEnrollmentController(db *gorm.DB) *SubjectsEnrollmentController {
	return &SubjectsEnrollmentController{DB: db}
}

// Enroll mendaftarkan student ke subject di bawah enrollment course yang
// masih aktif. Subject harus aktif dan memang bagian dari course tsb.
func (ctl *SubjectsEnrollmentController) Enroll(c *fiber.Ctx) error {
	var req dto.EnrollSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	courseEnrollmentID, _ := uuid.Parse(req.CourseEnrollmentID)
	subjectID, _ := uuid.Parse(req.SubjectID)

	var courseEnrollment coursemodel.CourseEnrollmentModel
	if err := ctl.DB.First(&courseEnrollment, "course_enrollment_id = ?", courseEnrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Enrollment course tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat enrollment course")
	}
	if courseEnrollment.CourseEnrollmentStatus != coursemodel.EnrollmentStatusActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Enrollment course tidak aktif")
	}

	var subject model.SubjectModel
	if err := ctl.DB.
		Where("subject_id = ? AND subject_status = ?", subjectID, model.SubjectStatusActive).
		First(&subject).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject tidak ditemukan atau tidak aktif")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat subject")
	}

	// Subject harus terikat ke course milik enrollment
	courseID := courseEnrollment.CourseEnrollmentCourseID.String()
	inCourse := false
	for _, id := range subject.SubjectCourses {
		if id == courseID {
			inCourse = true
			break
		}
	}
	if !inCourse {
		return helper.JsonError(c, fiber.StatusBadRequest, "Subject bukan bagian dari course enrollment ini")
	}

	enrollment := model.SubjectsEnrollmentModel{
		SubjectEnrollmentCourseEnrollmentID: courseEnrollment.CourseEnrollmentID,
		SubjectEnrollmentSubjectID:          subject.SubjectID,
		SubjectEnrollmentStudentID:          courseEnrollment.CourseEnrollmentStudentID,
	}
	if err := ctl.DB.Create(&enrollment).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Student sudah terdaftar di subject ini")
		}
		log.Printf("[ERROR] create subject enrollment: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan enrollment subject")
	}

	enrollment.Subject = &subject
	return helper.JsonCreated(c, "Enrollment subject berhasil dibuat", dto.ToSubjectsEnrollmentResponse(&enrollment))
}

// ByCourseEnrollment: subject yang diambil di bawah satu enrollment course.
func (ctl *SubjectsEnrollmentController) ByCourseEnrollment(c *fiber.Ctx) error {
	courseEnrollmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID enrollment tidak valid")
	}

	var enrollments []model.SubjectsEnrollmentModel
	if err := ctl.DB.
		Preload("Subject").
		Where("subject_enrollment_course_enrollment_id = ?", courseEnrollmentID).
		Order("created_at ASC").
		Find(&enrollments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat enrollment subject")
	}

	out := make([]dto.SubjectsEnrollmentResponse, 0, len(enrollments))
	for i := range enrollments {
		out = append(out, dto.ToSubjectsEnrollmentResponse(&enrollments[i]))
	}
	return helper.JsonOK(c, "Daftar subject enrollment", out)
}

// UpdateProgress memperbarui persentase penyelesaian subject (0..100).
func (ctl *SubjectsEnrollmentController) UpdateProgress(c *fiber.Ctx) error {
	enrollmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID enrollment tidak valid")
	}

	var req dto.UpdateProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	res := ctl.DB.Model(&model.SubjectsEnrollmentModel{}).
		Where("subject_enrollment_id = ?", enrollmentID).
		Update("subject_enrollment_progress", req.Progress)
	if res.Error != nil {
		log.Printf("[ERROR] update progress subject: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan progress")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Enrollment subject tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Progress berhasil diperbarui", nil)
}
