package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tutorhub_backend/internals/features/classes/dto"
	"tutorhub_backend/internals/features/classes/model"
	helper "tutorhub_backend/internals/helpers"
)

type ClassSessionController struct {
	DB *gorm.DB
}

func NewClassSessionController(db *gorm.DB) *ClassSessionController {
	return &ClassSessionController{DB: db}
}

// Store membuat sesi konkret dari satu slot jadwal. Jam mulai/selesai sesi
// diturunkan dari jadwalnya, tidak bisa di-override.
func (ctl *ClassSessionController) Store(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	scheduleID, _ := uuid.Parse(req.ScheduleID)

	var schedule model.ClassScheduleModel
	if err := ctl.DB.
		Where("class_schedule_id = ? AND class_schedule_class_id = ?", scheduleID, classID).
		First(&schedule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Jadwal tidak ditemukan untuk kelas ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat jadwal")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal sesi tidak valid")
	}

	startsAt, err := combineDateTime(date, schedule.ClassScheduleStartTime)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Jam jadwal tidak valid")
	}
	endsAt, err := combineDateTime(date, schedule.ClassScheduleEndTime)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Jam jadwal tidak valid")
	}

	session := model.ClassSessionModel{
		ClassSessionClassID:    classID,
		ClassSessionScheduleID: schedule.ClassScheduleID,
		ClassSessionDate:       date,
		ClassSessionStartsAt:   startsAt,
		ClassSessionEndsAt:     endsAt,
		ClassSessionClassLink:  req.ClassLink,
		ClassSessionStatus:     model.SessionStatusScheduled,
	}
	if err := ctl.DB.Create(&session).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Sesi untuk slot dan tanggal ini sudah ada")
		}
		log.Printf("[ERROR] create class session: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan sesi")
	}

	return helper.JsonCreated(c, "Sesi berhasil dibuat", dto.ToClassSessionResponse(&session))
}

// Index: sesi satu kelas, urut tanggal.
func (ctl *ClassSessionController) Index(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	var sessions []model.ClassSessionModel
	if err := ctl.DB.
		Where("class_session_class_id = ?", classID).
		Order("class_session_date ASC, class_session_starts_at ASC").
		Find(&sessions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat sesi")
	}

	out := make([]dto.ClassSessionResponse, 0, len(sessions))
	for i := range sessions {
		out = append(out, dto.ToClassSessionResponse(&sessions[i]))
	}
	return helper.JsonOK(c, "Daftar sesi kelas", out)
}

// Update mengubah status / link sesi. Link rekaman hanya relevan untuk
// sesi berstatus recorded atau completed.
func (ctl *ClassSessionController) Update(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	var req dto.UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var session model.ClassSessionModel
	if err := ctl.DB.First(&session, "class_session_id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat sesi")
	}

	if req.Status != nil {
		session.ClassSessionStatus = *req.Status
	}
	if req.ClassLink != nil {
		session.ClassSessionClassLink = req.ClassLink
	}
	if req.RecordingLink != nil {
		session.ClassSessionRecordingLink = req.RecordingLink
	}

	if err := ctl.DB.Save(&session).Error; err != nil {
		log.Printf("[ERROR] update class session: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan sesi")
	}
	return helper.JsonUpdated(c, "Sesi berhasil diperbarui", dto.ToClassSessionResponse(&session))
}

func (ctl *ClassSessionController) Destroy(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	res := ctl.DB.Delete(&model.ClassSessionModel{}, "class_session_id = ?", sessionID)
	if res.Error != nil {
		log.Printf("[ERROR] delete class session: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus sesi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Sesi berhasil dihapus", nil)
}

// combineDateTime menggabungkan tanggal sesi dengan jam jadwal (HH:MM).
func combineDateTime(date time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		// kolom time Postgres bisa terbaca HH:MM:SS
		t, err = time.Parse("15:04:05", clock)
		if err != nil {
			return time.Time{}, fmt.Errorf("jam %q tidak valid: %w", clock, err)
		}
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}
