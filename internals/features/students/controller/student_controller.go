package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tutorhub_backend/internals/constants"
	"tutorhub_backend/internals/features/students/dto"
	"tutorhub_backend/internals/features/students/model"
	vmodel "tutorhub_backend/internals/features/verification/model"
	vservice "tutorhub_backend/internals/features/verification/service"
	helper "tutorhub_backend/internals/helpers"
)

type StudentController struct {
	DB         *gorm.DB
	EmailVerif *vservice.EmailVerificationService
	PhoneOtp   *vservice.PhoneOtpService
}

func NewStudentController(db *gorm.DB, ev *vservice.EmailVerificationService, po *vservice.PhoneOtpService) *StudentController {
	return &StudentController{DB: db, EmailVerif: ev, PhoneOtp: po}
}

/* ===================== Registrasi ===================== */

// Register membuat akun student + kirim verifikasi ke setiap kontak yang
// diisi, satu transaksi. Gagal kirim (email ATAU sms) = akun batal dibuat.
func (ctl *StudentController) Register(c *fiber.Ctx) error {
	var req dto.RegisterStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	student := model.StudentModel{
		StudentEmail: req.Email,
		StudentTel:   req.Tel,
	}
	if err := student.SetPassword(req.Password); err != nil {
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

	if err := tx.Create(&student).Error; err != nil {
		tx.Rollback()
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email atau nomor telepon sudah terdaftar")
		}
		log.Printf("[ERROR] create student: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data student")
	}

	if req.Email != nil {
		if err := ctl.EmailVerif.Send(tx, vmodel.OwnerStudent, student.StudentID, *req.Email); err != nil {
			tx.Rollback()
			log.Printf("[ERROR] kirim verifikasi email student: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim email verifikasi, silakan coba lagi")
		}
	}
	if req.Tel != nil {
		if err := ctl.PhoneOtp.SendOtp(tx, *req.Tel); err != nil {
			tx.Rollback()
			log.Printf("[ERROR] kirim OTP student: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim kode OTP, silakan coba lagi")
		}
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data student")
	}

	resp := dto.ToStudentResponse(&student)
	return helper.JsonCreated(c, "Pendaftaran berhasil, silakan verifikasi kontak Anda", resp)
}

/* ===================== Verifikasi Email ===================== */

func (ctl *StudentController) VerifyEmail(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		var req dto.VerifyEmailRequest
		if err := c.BodyParser(&req); err == nil {
			token = req.Token
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
			log.Printf("[ERROR] verifikasi email student: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memverifikasi email")
		}
	}
	return helper.JsonOK(c, "Email berhasil diverifikasi", nil)
}

func (ctl *StudentController) ResendEmailVerification(c *fiber.Ctx) error {
	var req dto.ResendEmailVerificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var student model.StudentModel
	if err := ctl.DB.Where("student_email = ?", req.Email).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Email tidak terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data student")
	}
	if student.IsEmailVerified() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email sudah terverifikasi")
	}

	tx := ctl.DB.Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulai transaksi")
	}
	if err := ctl.EmailVerif.Send(tx, vmodel.OwnerStudent, student.StudentID, req.Email); err != nil {
		tx.Rollback()
		log.Printf("[ERROR] resend verifikasi email student: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim email verifikasi, silakan coba lagi")
	}
	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim email verifikasi")
	}

	return helper.JsonOK(c, "Email verifikasi telah dikirim ulang", nil)
}

/* ===================== Verifikasi Telepon ===================== */

func (ctl *StudentController) VerifyPhoneOtp(c *fiber.Ctx) error {
	var req dto.VerifyPhoneOtpRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var student model.StudentModel
	if err := ctl.DB.Where("student_tel = ?", req.Tel).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Nomor telepon tidak terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data student")
	}
	if student.IsTelVerified() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nomor telepon sudah terverifikasi")
	}

	if err := ctl.PhoneOtp.VerifyOtp(ctl.DB, vmodel.OwnerStudent, req.Tel, req.Code); err != nil {
		switch {
		case errors.Is(err, vservice.ErrOtpNotFound):
			return helper.JsonError(c, fiber.StatusBadRequest, "Kode OTP tidak ditemukan, silakan minta kode baru")
		case errors.Is(err, vservice.ErrOtpExpired):
			return helper.JsonError(c, fiber.StatusBadRequest, "Kode OTP sudah kedaluwarsa, silakan minta kode baru")
		case errors.Is(err, vservice.ErrOtpMismatch):
			return helper.JsonError(c, fiber.StatusBadRequest, "Kode OTP salah")
		default:
			log.Printf("[ERROR] verifikasi OTP student: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memverifikasi nomor telepon")
		}
	}
	return helper.JsonOK(c, "Nomor telepon berhasil diverifikasi", nil)
}

func (ctl *StudentController) ResendPhoneOtp(c *fiber.Ctx) error {
	var req dto.ResendPhoneOtpRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var student model.StudentModel
	if err := ctl.DB.Where("student_tel = ?", req.Tel).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Nomor telepon tidak terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data student")
	}
	if student.IsTelVerified() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nomor telepon sudah terverifikasi")
	}

	tx := ctl.DB.Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulai transaksi")
	}
	if err := ctl.PhoneOtp.SendOtp(tx, req.Tel); err != nil {
		tx.Rollback()
		log.Printf("[ERROR] resend OTP student: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim kode OTP, silakan coba lagi")
	}
	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim kode OTP")
	}

	return helper.JsonOK(c, "Kode OTP telah dikirim ulang", nil)
}

/* ===================== Biodata ===================== */

// Biodata melengkapi profil student. Syarat: minimal satu kontak sudah
// terverifikasi. Mengubah kontak akan mereset status verifikasi kontak
// tsb dan mengirim ulang verifikasinya.
func (ctl *StudentController) Biodata(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID student tidak valid")
	}

	var student model.StudentModel
	if err := ctl.DB.First(&student, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data student")
	}
	if !student.IsAnyChannelVerified() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Verifikasi email atau nomor telepon terlebih dahulu")
	}

	req := dto.BiodataRequest{
		Firstname:   c.FormValue("firstname"),
		Surname:     c.FormValue("surname"),
		Gender:      c.FormValue("gender"),
		DateOfBirth: c.FormValue("date_of_birth"),
		Location:    c.FormValue("location"),
		Address:     c.FormValue("address"),
		Department:  c.FormValue("department"),
	}
	if v := c.FormValue("email"); v != "" {
		req.Email = &v
	}
	if v := c.FormValue("tel"); v != "" {
		req.Tel = &v
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal lahir tidak valid")
	}

	// Foto profil opsional
	if fh, err := c.FormFile("profile_picture"); err == nil && fh != nil {
		path, err := helper.SaveImage(constants.FolderStudentProfilePictures, fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		student.StudentProfilePicture = &path
	}

	emailChanged := req.Email != nil && (student.StudentEmail == nil || *student.StudentEmail != *req.Email)
	telChanged := req.Tel != nil && (student.StudentTel == nil || *student.StudentTel != *req.Tel)

	if emailChanged {
		var count int64
		if err := ctl.DB.Model(&model.StudentModel{}).
			Where("student_email = ? AND student_id <> ?", *req.Email, student.StudentID).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa email")
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah dipakai akun lain")
		}
		student.StudentEmail = req.Email
		student.StudentEmailVerifiedAt = nil
	}
	if telChanged {
		var count int64
		if err := ctl.DB.Model(&model.StudentModel{}).
			Where("student_tel = ? AND student_id <> ?", *req.Tel, student.StudentID).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa nomor telepon")
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Nomor telepon sudah dipakai akun lain")
		}
		student.StudentTel = req.Tel
		student.StudentTelVerifiedAt = nil
	}

	student.StudentFirstname = &req.Firstname
	student.StudentSurname = &req.Surname
	student.StudentGender = &req.Gender
	student.StudentDateOfBirth = &dob
	student.StudentLocation = &req.Location
	student.StudentAddress = &req.Address
	student.StudentDepartment = &req.Department

	tx := ctl.DB.Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulai transaksi")
	}
	if err := tx.Save(&student).Error; err != nil {
		tx.Rollback()
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email atau nomor telepon sudah dipakai akun lain")
		}
		log.Printf("[ERROR] update biodata student: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan biodata")
	}
	if emailChanged {
		if err := ctl.EmailVerif.Send(tx, vmodel.OwnerStudent, student.StudentID, *req.Email); err != nil {
			tx.Rollback()
			log.Printf("[ERROR] kirim verifikasi email baru student: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim email verifikasi, silakan coba lagi")
		}
	}
	if telChanged {
		if err := ctl.PhoneOtp.SendOtp(tx, *req.Tel); err != nil {
			tx.Rollback()
			log.Printf("[ERROR] kirim OTP nomor baru student: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim kode OTP, silakan coba lagi")
		}
	}
	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan biodata")
	}

	return helper.JsonUpdated(c, "Biodata berhasil disimpan", dto.ToStudentResponse(&student))
}
