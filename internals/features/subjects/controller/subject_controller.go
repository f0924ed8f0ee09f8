package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"tutorhub_backend/internals/constants"
	"tutorhub_backend/internals/features/subjects/dto"
	"tutorhub_backend/internals/features/subjects/model"
	helper "tutorhub_backend/internals/helpers"
)

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

/* ===================== Katalog (public) ===================== */

// Index: subject aktif, dengan pagination.
func (ctl *SubjectController) Index(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.Model(&model.SubjectModel{}).
		Where("subject_status = ?", model.SubjectStatusActive).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat subject")
	}

	var subjects []model.SubjectModel
	if err := ctl.DB.
		Where("subject_status = ?", model.SubjectStatusActive).
		Order("subject_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat subject")
	}

	return helper.JsonList(c, "Daftar subject", dto.ToSubjectResponses(subjects),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ByCourse: subject aktif yang terikat ke satu course.
func (ctl *SubjectController) ByCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID course tidak valid")
	}

	var subjects []model.SubjectModel
	if err := ctl.DB.
		Where("subject_status = ? AND subject_courses @> ARRAY[?]::uuid[]",
			model.SubjectStatusActive, courseID.String()).
		Order("subject_name ASC").
		Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat subject")
	}
	return helper.JsonOK(c, "Subject per course", dto.ToSubjectResponses(subjects))
}

// ByCourseAndDepartment: subject aktif untuk satu course + jurusan.
func (ctl *SubjectController) ByCourseAndDepartment(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID course tidak valid")
	}
	department := c.Params("department")
	switch department {
	case "science", "art", "commerce":
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "Jurusan tidak valid")
	}

	var subjects []model.SubjectModel
	if err := ctl.DB.
		Where("subject_status = ? AND subject_courses @> ARRAY[?]::uuid[] AND subject_departments @> ARRAY[?]::text[]",
			model.SubjectStatusActive, courseID.String(), department).
		Order("subject_name ASC").
		Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat subject")
	}
	return helper.JsonOK(c, "Subject per course dan jurusan", dto.ToSubjectResponses(subjects))
}

/* ===================== CRUD (admin) ===================== */

// AllSubjects: seluruh subject tanpa filter status (admin).
func (ctl *SubjectController) AllSubjects(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.Model(&model.SubjectModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat subject")
	}

	var subjects []model.SubjectModel
	if err := ctl.DB.
		Order("subject_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat subject")
	}

	return helper.JsonList(c, "Seluruh subject", dto.ToSubjectResponses(subjects),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func (ctl *SubjectController) Store(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.Status == "" {
		req.Status = model.SubjectStatusActive
	}

	subject := model.SubjectModel{
		SubjectName:        req.Name,
		SubjectDescription: req.Description,
		SubjectCourses:     pq.StringArray(req.Courses),
		SubjectDepartments: pq.StringArray(req.Departments),
		SubjectAssignees:   pq.StringArray(req.Assignees),
		SubjectStatus:      req.Status,
	}

	if fh, err := c.FormFile("banner"); err == nil && fh != nil {
		path, err := helper.SaveImage(constants.FolderSubjectBanners, fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		subject.SubjectBanner = &path
	}

	if err := ctl.DB.Create(&subject).Error; err != nil {
		log.Printf("[ERROR] create subject: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan subject")
	}
	return helper.JsonCreated(c, "Subject berhasil dibuat", dto.ToSubjectResponse(&subject))
}

func (ctl *SubjectController) Update(c *fiber.Ctx) error {
	subjectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID subject tidak valid")
	}

	var subject model.SubjectModel
	if err := ctl.DB.First(&subject, "subject_id = ?", subjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat subject")
	}

	var req dto.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if req.Name != nil {
		subject.SubjectName = *req.Name
	}
	if req.Description != nil {
		subject.SubjectDescription = req.Description
	}
	if req.Courses != nil {
		subject.SubjectCourses = pq.StringArray(req.Courses)
	}
	if req.Departments != nil {
		subject.SubjectDepartments = pq.StringArray(req.Departments)
	}
	if req.Assignees != nil {
		subject.SubjectAssignees = pq.StringArray(req.Assignees)
	}
	if req.Status != nil {
		subject.SubjectStatus = *req.Status
	}

	if err := ctl.DB.Save(&subject).Error; err != nil {
		log.Printf("[ERROR] update subject: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan subject")
	}
	return helper.JsonUpdated(c, "Subject berhasil diperbarui", dto.ToSubjectResponse(&subject))
}

func (ctl *SubjectController) Destroy(c *fiber.Ctx) error {
	subjectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID subject tidak valid")
	}

	res := ctl.DB.Delete(&model.SubjectModel{}, "subject_id = ?", subjectID)
	if res.Error != nil {
		log.Printf("[ERROR] delete subject: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus subject")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Subject berhasil dihapus", nil)
}

func (ctl *SubjectController) Restore(c *fiber.Ctx) error {
	subjectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID subject tidak valid")
	}

	res := ctl.DB.Unscoped().Model(&model.SubjectModel{}).
		Where("subject_id = ? AND deleted_at IS NOT NULL", subjectID).
		Update("deleted_at", nil)
	if res.Error != nil {
		log.Printf("[ERROR] restore subject: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulihkan subject")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject terhapus tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Subject berhasil dipulihkan", nil)
}
