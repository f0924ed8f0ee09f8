package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	coursemodel "tutorhub_backend/internals/features/courses/model"
	"tutorhub_backend/internals/features/payments/dto"
	"tutorhub_backend/internals/features/payments/model"
	"tutorhub_backend/internals/features/payments/service"
	studentmodel "tutorhub_backend/internals/features/students/model"
	helper "tutorhub_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

/* ===================== Pembuatan ===================== */

// buildManualPayment menyusun baris payment dari request manual-entry.
// Status default pending, nominal default biaya enrollment; status, nominal,
// referensi gateway, meta, dan paid_at dari caller dipakai kalau diisi.
func buildManualPayment(req *dto.CreatePaymentRequest, enrollment *coursemodel.CourseEnrollmentModel) (model.PaymentModel, error) {
	status := req.Status
	if status == "" {
		status = model.PaymentStatusPending
	}
	amount := enrollment.CourseEnrollmentCost
	if req.Amount != nil {
		amount = *req.Amount
	}

	payment := model.PaymentModel{
		PaymentStudentID:          enrollment.CourseEnrollmentStudentID,
		PaymentCourseEnrollmentID: enrollment.CourseEnrollmentID,
		PaymentAmount:             amount,
		PaymentCurrency:           model.DefaultCurrency,
		PaymentMethod:             req.Method,
		PaymentGateway:            req.Gateway,
		PaymentGatewayReference:   req.GatewayReference,
		PaymentStatus:             status,
		PaymentBillingCycle:       enrollment.CourseEnrollmentBillingCycle,
	}

	if len(req.Meta) > 0 {
		raw, err := sonic.Marshal(req.Meta)
		if err != nil {
			return model.PaymentModel{}, err
		}
		payment.PaymentMeta = datatypes.JSON(raw)
	}
	if req.PaidAt != nil {
		t, err := time.Parse(time.RFC3339, *req.PaidAt)
		if err != nil {
			return model.PaymentModel{}, err
		}
		payment.PaymentPaidAt = &t
	}
	return payment, nil
}

// Store adalah jalur manual-entry admin: caller boleh langsung menentukan
// status, nominal, referensi gateway, meta, dan paid_at.
func (ctl *PaymentController) Store(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	studentID, _ := uuid.Parse(req.StudentID)
	enrollmentID, _ := uuid.Parse(req.CourseEnrollmentID)

	var enrollment coursemodel.CourseEnrollmentModel
	if err := ctl.DB.
		Where("course_enrollment_id = ? AND course_enrollment_student_id = ?", enrollmentID, studentID).
		First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Enrollment tidak ditemukan untuk student ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat enrollment")
	}

	payment, err := buildManualPayment(&req, &enrollment)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload pembayaran tidak valid")
	}
	if err := ctl.DB.Create(&payment).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Referensi gateway sudah dipakai")
		}
		log.Printf("[ERROR] create payment: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat tagihan pembayaran")
	}

	return helper.JsonCreated(c, "Tagihan pembayaran berhasil dibuat", dto.ToPaymentResponse(&payment))
}

// Initiate membuat tagihan pending baru untuk satu enrollment. Nominal
// diambil dari biaya enrollment, tidak dari request. Untuk gateway midtrans
// sekalian dibuatkan token Snap; gagal ke gateway = tagihan batal dibuat.
func (ctl *PaymentController) Initiate(c *fiber.Ctx) error {
	var req dto.InitiatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	studentID, _ := uuid.Parse(req.StudentID)
	enrollmentID, _ := uuid.Parse(req.CourseEnrollmentID)

	var enrollment coursemodel.CourseEnrollmentModel
	if err := ctl.DB.
		Where("course_enrollment_id = ? AND course_enrollment_student_id = ?", enrollmentID, studentID).
		First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Enrollment tidak ditemukan untuk student ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat enrollment")
	}

	payment := model.PaymentModel{
		PaymentStudentID:          studentID,
		PaymentCourseEnrollmentID: enrollment.CourseEnrollmentID,
		PaymentAmount:             enrollment.CourseEnrollmentCost,
		PaymentCurrency:           model.DefaultCurrency,
		PaymentMethod:             req.Method,
		PaymentGateway:            req.Gateway,
		PaymentStatus:             model.PaymentStatusPending,
		PaymentBillingCycle:       enrollment.CourseEnrollmentBillingCycle,
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

	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		log.Printf("[ERROR] create payment: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat tagihan pembayaran")
	}

	if req.Gateway != nil && *req.Gateway == "midtrans" {
		var student studentmodel.StudentModel
		if err := tx.First(&student, "student_id = ?", studentID).Error; err != nil {
			tx.Rollback()
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data student")
		}
		name := ""
		if student.StudentFirstname != nil {
			name = *student.StudentFirstname
		}
		email := ""
		if student.StudentEmail != nil {
			email = *student.StudentEmail
		}

		token, err := service.GenerateSnapToken(&payment, name, email)
		if err != nil {
			tx.Rollback()
			log.Printf("[ERROR] generate snap token: %v", err)
			return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membuat token pembayaran")
		}

		payment.PaymentToken = &token
		if err := tx.Model(&payment).Update("payment_token", token).Error; err != nil {
			tx.Rollback()
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan token pembayaran")
		}
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan tagihan pembayaran")
	}

	return helper.JsonCreated(c, "Tagihan pembayaran berhasil dibuat", dto.ToPaymentResponse(&payment))
}

/* ===================== Siklus Status ===================== */

// Confirm menandai tagihan pending sebagai successful dengan referensi
// gateway yang unik. Status lain → 409.
func (ctl *PaymentController) Confirm(c *fiber.Ctx) error {
	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pembayaran tidak valid")
	}

	var req dto.ConfirmPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var payment model.PaymentModel
	if err := ctl.DB.First(&payment, "payment_id = ?", paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pembayaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat pembayaran")
	}
	if !payment.CanTransitionTo(model.PaymentStatusSuccessful) {
		return helper.JsonError(c, fiber.StatusConflict, "Status pembayaran tidak bisa dikonfirmasi dari "+payment.PaymentStatus)
	}

	ref := strings.TrimSpace(req.GatewayReference)
	now := time.Now()
	payment.PaymentGatewayReference = &ref
	payment.PaymentStatus = model.PaymentStatusSuccessful
	payment.PaymentPaidAt = &now

	if len(req.Meta) > 0 {
		merged, err := service.MergeMeta(payment.PaymentMeta, req.Meta)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Metadata pembayaran tidak valid")
		}
		payment.PaymentMeta = merged
	}

	if err := ctl.DB.Save(&payment).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Referensi gateway sudah dipakai pembayaran lain")
		}
		log.Printf("[ERROR] confirm payment: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengonfirmasi pembayaran")
	}

	return helper.JsonUpdated(c, "Pembayaran berhasil dikonfirmasi", dto.ToPaymentResponse(&payment))
}

// MarkFailed menandai tagihan pending sebagai failed. Status terminal → 409.
func (ctl *PaymentController) MarkFailed(c *fiber.Ctx) error {
	return ctl.transition(c, model.PaymentStatusFailed, "Pembayaran ditandai gagal")
}

// Cancel membatalkan tagihan pending. Status terminal → 409.
func (ctl *PaymentController) Cancel(c *fiber.Ctx) error {
	return ctl.transition(c, model.PaymentStatusCancelled, "Pembayaran berhasil dibatalkan")
}

func (ctl *PaymentController) transition(c *fiber.Ctx, next, successMessage string) error {
	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pembayaran tidak valid")
	}

	var payment model.PaymentModel
	if err := ctl.DB.First(&payment, "payment_id = ?", paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pembayaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat pembayaran")
	}
	if !payment.CanTransitionTo(next) {
		return helper.JsonError(c, fiber.StatusConflict, "Status pembayaran "+payment.PaymentStatus+" tidak bisa diubah ke "+next)
	}

	if err := ctl.DB.Model(&payment).Update("payment_status", next).Error; err != nil {
		log.Printf("[ERROR] transition payment ke %s: %v", next, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status pembayaran")
	}
	payment.PaymentStatus = next
	return helper.JsonUpdated(c, successMessage, dto.ToPaymentResponse(&payment))
}

// Refund hanya berlaku untuk pembayaran successful. Selain itu dianggap
// tidak ada yang bisa direfund (404).
func (ctl *PaymentController) Refund(c *fiber.Ctx) error {
	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pembayaran tidak valid")
	}

	var payment model.PaymentModel
	if err := ctl.DB.
		Where("payment_id = ? AND payment_status = ?", paymentID, model.PaymentStatusSuccessful).
		First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pembayaran successful tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat pembayaran")
	}

	if err := ctl.DB.Model(&payment).Update("payment_status", model.PaymentStatusRefunded).Error; err != nil {
		log.Printf("[ERROR] refund payment: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal merefund pembayaran")
	}
	payment.PaymentStatus = model.PaymentStatusRefunded
	return helper.JsonUpdated(c, "Pembayaran berhasil direfund", dto.ToPaymentResponse(&payment))
}

/* ===================== Query ===================== */

// PaymentsByStudent: riwayat pembayaran satu student.
func (ctl *PaymentController) PaymentsByStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID student tidak valid")
	}

	var payments []model.PaymentModel
	if err := ctl.DB.
		Where("payment_student_id = ?", studentID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat pembayaran")
	}
	return helper.JsonOK(c, "Riwayat pembayaran student", dto.ToPaymentResponses(payments))
}

// PaymentsByEnrollment: pembayaran untuk satu enrollment.
func (ctl *PaymentController) PaymentsByEnrollment(c *fiber.Ctx) error {
	enrollmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID enrollment tidak valid")
	}

	var payments []model.PaymentModel
	if err := ctl.DB.
		Where("payment_course_enrollment_id = ?", enrollmentID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat pembayaran")
	}
	return helper.JsonOK(c, "Pembayaran enrollment", dto.ToPaymentResponses(payments))
}

// Index: seluruh pembayaran (admin), filter ?status= ?method= ?gateway=.
func (ctl *PaymentController) Index(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.PaymentModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("payment_status = ?", status)
	}
	if method := c.Query("method"); method != "" {
		q = q.Where("payment_method = ?", method)
	}
	if gateway := c.Query("gateway"); gateway != "" {
		q = q.Where("payment_gateway = ?", gateway)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat pembayaran")
	}

	var payments []model.PaymentModel
	if err := q.
		Order("created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat pembayaran")
	}

	return helper.JsonList(c, "Seluruh pembayaran", dto.ToPaymentResponses(payments),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}
