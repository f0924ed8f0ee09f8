package controller

import (
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tutorhub_backend/internals/features/guardians/dto"
	"tutorhub_backend/internals/features/guardians/model"
	studentmodel "tutorhub_backend/internals/features/students/model"
	vmodel "tutorhub_backend/internals/features/verification/model"
	vservice "tutorhub_backend/internals/features/verification/service"
	helper "tutorhub_backend/internals/helpers"
)

type GuardianController struct {
	DB         *gorm.DB
	EmailVerif *vservice.EmailVerificationService
	PhoneOtp   *vservice.PhoneOtpService
}

func NewGuardianController(db *gorm.DB, ev *vservice.EmailVerificationService, po *vservice.PhoneOtpService) *GuardianController {
	return &GuardianController{DB: db, EmailVerif: ev, PhoneOtp: po}
}

/* ===================== Registrasi ===================== */

// Register membuat akun wali + kirim verifikasi ke setiap kontak yang diisi,
// satu transaksi. Gagal kirim (email ATAU sms) = akun batal dibuat.
func (ctl *GuardianController) Register(c *fiber.Ctx) error {
	var req dto.RegisterGuardianRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	guardian := model.GuardianModel{
		GuardianEmail: req.Email,
		GuardianTel:   req.Tel,
	}
	if err := guardian.SetPassword(req.Password); err != nil {
		log.Printf("[ERROR] hash password: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses pendaftaran")
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

	if err := tx.Create(&guardian).Error; err != nil {
		tx.Rollback()
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email atau nomor telepon sudah terdaftar")
		}
		log.Printf("[ERROR] create guardian: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data wali")
	}

	if req.Email != nil {
		if err := ctl.EmailVerif.Send(tx, vmodel.OwnerGuardian, guardian.GuardianID, *req.Email); err != nil {
			tx.Rollback()
			log.Printf("[ERROR] kirim verifikasi email wali: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim email verifikasi, silakan coba lagi")
		}
	}
	if req.Tel != nil {
		if err := ctl.PhoneOtp.SendOtp(tx, *req.Tel); err != nil {
			tx.Rollback()
			log.Printf("[ERROR] kirim OTP wali: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim kode OTP, silakan coba lagi")
		}
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data wali")
	}

	return helper.JsonCreated(c, "Pendaftaran berhasil, silakan verifikasi kontak Anda", dto.ToGuardianResponse(&guardian, nil))
}

/* ===================== Verifikasi ===================== */

func (ctl *GuardianController) VerifyEmail(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		var body struct {
			Token string `json:"token"`
		}
		if err := c.BodyParser(&body); err == nil {
			token = body.Token
		}
	}
	if token == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token verifikasi wajib diisi")
	}

	if err := ctl.EmailVerif.Verify(ctl.DB, token); err != nil {
		switch {
		case errors.Is(err, vservice.ErrTokenInvalidOrExpired):
			return helper.JsonError(c, fiber.StatusBadRequest, "Token verifikasi tidak valid atau sudah kedaluwarsa")
		case errors.Is(err, vservice.ErrOwnerNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Akun tidak ditemukan")
		default:
			log.Printf("[ERROR] verifikasi email wali: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memverifikasi email")
		}
	}
	return helper.JsonOK(c, "Email berhasil diverifikasi", nil)
}

func (ctl *GuardianController) ResendEmailVerification(c *fiber.Ctx) error {
	var req dto.ResendEmailVerificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var guardian model.GuardianModel
	if err := ctl.DB.Where("guardian_email = ?", req.Email).First(&guardian).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Email tidak terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data wali")
	}
	if guardian.IsEmailVerified() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email sudah terverifikasi")
	}

	tx := ctl.DB.Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulai transaksi")
	}
	if err := ctl.EmailVerif.Send(tx, vmodel.OwnerGuardian, guardian.GuardianID, req.Email); err != nil {
		tx.Rollback()
		log.Printf("[ERROR] resend verifikasi email wali: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim email verifikasi, silakan coba lagi")
	}
	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim email verifikasi")
	}

	return helper.JsonOK(c, "Email verifikasi telah dikirim ulang", nil)
}

func (ctl *GuardianController) VerifyPhoneOtp(c *fiber.Ctx) error {
	var req dto.VerifyPhoneOtpRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var guardian model.GuardianModel
	if err := ctl.DB.Where("guardian_tel = ?", req.Tel).First(&guardian).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Nomor telepon tidak terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data wali")
	}
	if guardian.IsTelVerified() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nomor telepon sudah terverifikasi")
	}

	if err := ctl.PhoneOtp.VerifyOtp(ctl.DB, vmodel.OwnerGuardian, req.Tel, req.Code); err != nil {
		switch {
		case errors.Is(err, vservice.ErrOtpNotFound):
			return helper.JsonError(c, fiber.StatusBadRequest, "Kode OTP tidak ditemukan, silakan minta kode baru")
		case errors.Is(err, vservice.ErrOtpExpired):
			return helper.JsonError(c, fiber.StatusBadRequest, "Kode OTP sudah kedaluwarsa, silakan minta kode baru")
		case errors.Is(err, vservice.ErrOtpMismatch):
			return helper.JsonError(c, fiber.StatusBadRequest, "Kode OTP salah")
		default:
			log.Printf("[ERROR] verifikasi OTP wali: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memverifikasi nomor telepon")
		}
	}
	return helper.JsonOK(c, "Nomor telepon berhasil diverifikasi", nil)
}

func (ctl *GuardianController) ResendPhoneOtp(c *fiber.Ctx) error {
	var req dto.ResendPhoneOtpRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var guardian model.GuardianModel
	if err := ctl.DB.Where("guardian_tel = ?", req.Tel).First(&guardian).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Nomor telepon tidak terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data wali")
	}
	if guardian.IsTelVerified() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nomor telepon sudah terverifikasi")
	}

	tx := ctl.DB.Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulai transaksi")
	}
	if err := ctl.PhoneOtp.SendOtp(tx, req.Tel); err != nil {
		tx.Rollback()
		log.Printf("[ERROR] resend OTP wali: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim kode OTP, silakan coba lagi")
	}
	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim kode OTP")
	}

	return helper.JsonOK(c, "Kode OTP telah dikirim ulang", nil)
}

/* ===================== Relasi Student ===================== */

// LinkStudents menetapkan daftar student yang diampu. Syarat: minimal satu
// kontak wali sudah terverifikasi, dan seluruh student_id harus valid.
func (ctl *GuardianController) LinkStudents(c *fiber.Ctx) error {
	guardianID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID wali tidak valid")
	}

	var req dto.LinkStudentsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var guardian model.GuardianModel
	if err := ctl.DB.First(&guardian, "guardian_id = ?", guardianID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Wali tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data wali")
	}
	if !guardian.IsAnyChannelVerified() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Verifikasi email atau nomor telepon terlebih dahulu")
	}

	// Dedup sambil validasi keberadaan student
	seen := make(map[string]bool, len(req.StudentIDs))
	ids := make([]string, 0, len(req.StudentIDs))
	for _, id := range req.StudentIDs {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	var count int64
	if err := ctl.DB.Model(&studentmodel.StudentModel{}).
		Where("student_id IN ?", ids).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa data student")
	}
	if count != int64(len(ids)) {
		return helper.JsonError(c, fiber.StatusNotFound, "Sebagian student tidak ditemukan")
	}

	raw, err := sonic.Marshal(ids)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan relasi student")
	}
	guardian.GuardianStudents = datatypes.JSON(raw)

	if err := ctl.DB.Save(&guardian).Error; err != nil {
		log.Printf("[ERROR] simpan relasi student wali: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan relasi student")
	}

	return helper.JsonUpdated(c, "Daftar student berhasil diperbarui", dto.ToGuardianResponse(&guardian, ids))
}
