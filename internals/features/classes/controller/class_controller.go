package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tutorhub_backend/internals/features/classes/dto"
	"tutorhub_backend/internals/features/classes/model"
	staffmodel "tutorhub_backend/internals/features/staffs/model"
	subjectmodel "tutorhub_backend/internals/features/subjects/model"
	helper "tutorhub_backend/internals/helpers"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

/* ===================== Query ===================== */

// Index: daftar kelas, opsional filter ?status=, dengan pagination.
func (ctl *ClassController) Index(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.ClassModel{})
	if status := c.Query("status"); status != "" {
		if status != model.ClassStatusActive && status != model.ClassStatusInactive {
			return helper.JsonError(c, fiber.StatusBadRequest, "Status tidak valid")
		}
		q = q.Where("class_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat daftar kelas")
	}

	var classes []model.ClassModel
	if err := q.
		Preload("Staffs").
		Preload("Schedules").
		Order("created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&classes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat daftar kelas")
	}

	return helper.JsonList(c, "Daftar kelas", dto.ToClassResponses(classes),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// Show: detail kelas + staff + jadwal + sesi.
func (ctl *ClassController) Show(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	var class model.ClassModel
	if err := ctl.DB.
		Preload("Staffs").
		Preload("Schedules").
		Preload("Sessions", func(db *gorm.DB) *gorm.DB {
			return db.Order("class_session_date ASC")
		}).
		First(&class, "class_id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat kelas")
	}
	return helper.JsonOK(c, "Detail kelas", dto.ToClassResponse(&class))
}

/* ===================== Mutasi (admin) ===================== */

// Store membuat kelas + penugasan staff + jadwal mingguan, satu transaksi.
func (ctl *ClassController) Store(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.Status == "" {
		req.Status = model.ClassStatusActive
	}
	for _, s := range req.Schedules {
		if s.StartTime >= s.EndTime {
			return helper.JsonError(c, fiber.StatusBadRequest, "Jam mulai harus sebelum jam selesai")
		}
	}

	subjectID, _ := uuid.Parse(req.SubjectID)
	var subject subjectmodel.SubjectModel
	if err := ctl.DB.First(&subject, "subject_id = ?", subjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat subject")
	}

	// Seluruh staff harus terdaftar
	staffIDs := make([]string, 0, len(req.Staffs))
	for _, s := range req.Staffs {
		staffIDs = append(staffIDs, s.StaffID)
	}
	var staffCount int64
	if err := ctl.DB.Model(&staffmodel.StaffModel{}).
		Where("staff_id IN ?", staffIDs).
		Count(&staffCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa staff")
	}
	if staffCount != int64(len(staffIDs)) {
		return helper.JsonError(c, fiber.StatusNotFound, "Sebagian staff tidak ditemukan")
	}

	class := model.ClassModel{
		ClassSubjectID:   subject.SubjectID,
		ClassTitle:       req.Title,
		ClassDescription: req.Description,
		ClassStatus:      req.Status,
	}

	tx := ctl.DB.Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulai transaksi")
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := tx.Create(&class).Error; err != nil {
		tx.Rollback()
		log.Printf("[ERROR] create class: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kelas")
	}

	for _, s := range req.Staffs {
		staffID, _ := uuid.Parse(s.StaffID)
		cs := model.ClassStaffModel{
			ClassStaffClassID: class.ClassID,
			ClassStaffStaffID: staffID,
			ClassStaffRole:    s.Role,
		}
		if err := tx.Create(&cs).Error; err != nil {
			tx.Rollback()
			if helper.IsUniqueViolation(err) {
				return helper.JsonError(c, fiber.StatusConflict, "Staff yang sama ditugaskan dua kali")
			}
			log.Printf("[ERROR] create class staff: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan penugasan staff")
		}
		class.Staffs = append(class.Staffs, cs)
	}

	for _, s := range req.Schedules {
		sched := model.ClassScheduleModel{
			ClassScheduleClassID:   class.ClassID,
			ClassScheduleDayOfWeek: s.DayOfWeek,
			ClassScheduleStartTime: s.StartTime,
			ClassScheduleEndTime:   s.EndTime,
		}
		if err := tx.Create(&sched).Error; err != nil {
			tx.Rollback()
			if helper.IsUniqueViolation(err) {
				return helper.JsonError(c, fiber.StatusConflict, "Slot jadwal yang sama dipakai dua kali")
			}
			log.Printf("[ERROR] create class schedule: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jadwal kelas")
		}
		class.Schedules = append(class.Schedules, sched)
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kelas")
	}

	return helper.JsonCreated(c, "Kelas berhasil dibuat", dto.ToClassResponse(&class))
}

// Update memperbarui atribut kelas. Jika staffs dikirim, penugasan lama
// diganti seluruhnya (sync), satu transaksi.
func (ctl *ClassController) Update(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	var class model.ClassModel
	if err := ctl.DB.First(&class, "class_id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat kelas")
	}

	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if req.Title != nil {
		class.ClassTitle = *req.Title
	}
	if req.Description != nil {
		class.ClassDescription = req.Description
	}
	if req.Status != nil {
		class.ClassStatus = *req.Status
	}

	tx := ctl.DB.Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulai transaksi")
	}
	if err := tx.Save(&class).Error; err != nil {
		tx.Rollback()
		log.Printf("[ERROR] update class: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kelas")
	}

	if req.Staffs != nil {
		if err := tx.Where("class_staff_class_id = ?", class.ClassID).
			Delete(&model.ClassStaffModel{}).Error; err != nil {
			tx.Rollback()
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyinkronkan staff")
		}
		for _, s := range req.Staffs {
			staffID, _ := uuid.Parse(s.StaffID)
			cs := model.ClassStaffModel{
				ClassStaffClassID: class.ClassID,
				ClassStaffStaffID: staffID,
				ClassStaffRole:    s.Role,
			}
			if err := tx.Create(&cs).Error; err != nil {
				tx.Rollback()
				if helper.IsUniqueViolation(err) {
					return helper.JsonError(c, fiber.StatusConflict, "Staff yang sama ditugaskan dua kali")
				}
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyinkronkan staff")
			}
			class.Staffs = append(class.Staffs, cs)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kelas")
	}

	return helper.JsonUpdated(c, "Kelas berhasil diperbarui", dto.ToClassResponse(&class))
}

func (ctl *ClassController) UpdateStatus(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	var req dto.UpdateClassStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	res := ctl.DB.Model(&model.ClassModel{}).
		Where("class_id = ?", classID).
		Update("class_status", req.Status)
	if res.Error != nil {
		log.Printf("[ERROR] update status class: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status kelas")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Status kelas berhasil diubah", nil)
}

/* ===================== Penugasan Staff ===================== */

func (ctl *ClassController) AttachStaff(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	var req dto.AttachStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	staffID, _ := uuid.Parse(req.StaffID)

	var class model.ClassModel
	if err := ctl.DB.First(&class, "class_id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat kelas")
	}

	var staff staffmodel.StaffModel
	if err := ctl.DB.First(&staff, "staff_id = ?", staffID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Staff tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat staff")
	}

	cs := model.ClassStaffModel{
		ClassStaffClassID: class.ClassID,
		ClassStaffStaffID: staff.StaffID,
		ClassStaffRole:    req.Role,
	}
	if err := ctl.DB.Create(&cs).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Staff sudah ditugaskan di kelas ini")
		}
		log.Printf("[ERROR] attach staff: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menugaskan staff")
	}
	return helper.JsonCreated(c, "Staff berhasil ditugaskan", dto.ClassStaffResponse{
		ClassStaffID: cs.ClassStaffID.String(),
		StaffID:      cs.ClassStaffStaffID.String(),
		Role:         cs.ClassStaffRole,
	})
}

func (ctl *ClassController) DetachStaff(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}
	staffID, err := uuid.Parse(c.Params("staffId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID staff tidak valid")
	}

	res := ctl.DB.
		Where("class_staff_class_id = ? AND class_staff_staff_id = ?", classID, staffID).
		Delete(&model.ClassStaffModel{})
	if res.Error != nil {
		log.Printf("[ERROR] detach staff: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal melepas penugasan staff")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Penugasan staff tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Penugasan staff berhasil dilepas", nil)
}

/* ===================== Hapus / Pulihkan ===================== */

func (ctl *ClassController) Destroy(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	res := ctl.DB.Delete(&model.ClassModel{}, "class_id = ?", classID)
	if res.Error != nil {
		log.Printf("[ERROR] delete class: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kelas")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Kelas berhasil dihapus", nil)
}

func (ctl *ClassController) Restore(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	res := ctl.DB.Unscoped().Model(&model.ClassModel{}).
		Where("class_id = ? AND deleted_at IS NOT NULL", classID).
		Update("deleted_at", nil)
	if res.Error != nil {
		log.Printf("[ERROR] restore class: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulihkan kelas")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas terhapus tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Kelas berhasil dipulihkan", nil)
}

// ForceDelete menghapus permanen kelas beserta pivot staff, jadwal, dan sesi.
func (ctl *ClassController) ForceDelete(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	tx := ctl.DB.Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulai transaksi")
	}
	if err := tx.Where("class_staff_class_id = ?", classID).Delete(&model.ClassStaffModel{}).Error; err != nil {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kelas")
	}
	if err := tx.Unscoped().Where("class_schedule_class_id = ?", classID).Delete(&model.ClassScheduleModel{}).Error; err != nil {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kelas")
	}
	if err := tx.Unscoped().Where("class_session_class_id = ?", classID).Delete(&model.ClassSessionModel{}).Error; err != nil {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kelas")
	}
	res := tx.Unscoped().Delete(&model.ClassModel{}, "class_id = ?", classID)
	if res.Error != nil {
		tx.Rollback()
		log.Printf("[ERROR] force delete class: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kelas")
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kelas")
	}
	return helper.JsonDeleted(c, "Kelas berhasil dihapus permanen", nil)
}
