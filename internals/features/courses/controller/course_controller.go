package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tutorhub_backend/internals/constants"
	"tutorhub_backend/internals/features/courses/dto"
	"tutorhub_backend/internals/features/courses/model"
	helper "tutorhub_backend/internals/helpers"
)

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

/* ===================== Katalog (public) ===================== */

// Index: katalog course aktif, dengan pagination.
func (ctl *CourseController) Index(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.Model(&model.CourseModel{}).
		Where("course_status = ?", model.CourseStatusActive).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat katalog course")
	}

	var courses []model.CourseModel
	if err := ctl.DB.
		Where("course_status = ?", model.CourseStatusActive).
		Order("created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat katalog course")
	}

	return helper.JsonList(c, "Katalog course", dto.ToCourseResponses(courses),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// Show: detail course aktif by slug.
func (ctl *CourseController) Show(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var course model.CourseModel
	if err := ctl.DB.
		Where("course_slug = ? AND course_status = ?", slug, model.CourseStatusActive).
		First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat course")
	}
	return helper.JsonOK(c, "Detail course", dto.ToCourseResponse(&course))
}

/* ===================== CRUD (admin) ===================== */

func (ctl *CourseController) Store(c *fiber.Ctx) error {
	req := dto.CreateCourseRequest{
		Title:  c.FormValue("title"),
		Status: c.FormValue("status"),
	}
	if v := c.FormValue("description"); v != "" {
		req.Description = &v
	}
	if v := c.FormValue("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Harga tidak valid")
		}
		req.Price = &price
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.Status == "" {
		req.Status = model.CourseStatusActive
	}

	slug, err := helper.EnsureUniqueSlug(ctl.DB, "courses", "course_slug", helper.GenerateSlug(req.Title), "", uuid.Nil)
	if err != nil {
		log.Printf("[ERROR] generate slug course: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug course")
	}

	course := model.CourseModel{
		CourseTitle:       req.Title,
		CourseSlug:        slug,
		CourseDescription: req.Description,
		CourseStatus:      req.Status,
		CoursePrice:       *req.Price,
	}

	if fh, err := c.FormFile("banner"); err == nil && fh != nil {
		path, err := helper.SaveImage(constants.FolderCourseBanners, fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		course.CourseBanner = &path
	}

	if err := ctl.DB.Create(&course).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Judul course sudah dipakai")
		}
		log.Printf("[ERROR] create course: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan course")
	}

	return helper.JsonCreated(c, "Course berhasil dibuat", dto.ToCourseResponse(&course))
}

func (ctl *CourseController) Update(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID course tidak valid")
	}

	var course model.CourseModel
	if err := ctl.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat course")
	}

	var req dto.UpdateCourseRequest
	if v := c.FormValue("title"); v != "" {
		req.Title = &v
	}
	if v := c.FormValue("description"); v != "" {
		req.Description = &v
	}
	if v := c.FormValue("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Harga tidak valid")
		}
		req.Price = &price
	}
	if v := c.FormValue("status"); v != "" {
		req.Status = &v
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if req.Title != nil && *req.Title != course.CourseTitle {
		slug, err := helper.EnsureUniqueSlug(ctl.DB, "courses", "course_slug",
			helper.GenerateSlug(*req.Title), "course_id", course.CourseID)
		if err != nil {
			log.Printf("[ERROR] regenerate slug course: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug course")
		}
		course.CourseTitle = *req.Title
		course.CourseSlug = slug
	}
	if req.Description != nil {
		course.CourseDescription = req.Description
	}
	if req.Price != nil {
		course.CoursePrice = *req.Price
	}
	if req.Status != nil {
		course.CourseStatus = *req.Status
	}
	if fh, err := c.FormFile("banner"); err == nil && fh != nil {
		path, err := helper.SaveImage(constants.FolderCourseBanners, fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		course.CourseBanner = &path
	}

	if err := ctl.DB.Save(&course).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Judul course sudah dipakai")
		}
		log.Printf("[ERROR] update course: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan course")
	}

	return helper.JsonUpdated(c, "Course berhasil diperbarui", dto.ToCourseResponse(&course))
}

func (ctl *CourseController) Destroy(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID course tidak valid")
	}

	res := ctl.DB.Delete(&model.CourseModel{}, "course_id = ?", courseID)
	if res.Error != nil {
		log.Printf("[ERROR] delete course: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus course")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Course berhasil dihapus", nil)
}

func (ctl *CourseController) Restore(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID course tidak valid")
	}

	res := ctl.DB.Unscoped().Model(&model.CourseModel{}).
		Where("course_id = ? AND deleted_at IS NOT NULL", courseID).
		Update("deleted_at", nil)
	if res.Error != nil {
		log.Printf("[ERROR] restore course: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulihkan course")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course terhapus tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Course berhasil dipulihkan", nil)
}
