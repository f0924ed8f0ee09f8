package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tutorhub_backend/internals/constants"
	"tutorhub_backend/internals/features/staffs/dto"
	"tutorhub_backend/internals/features/staffs/model"
	"tutorhub_backend/internals/features/staffs/service"
	vmodel "tutorhub_backend/internals/features/verification/model"
	vservice "tutorhub_backend/internals/features/verification/service"
	helper "tutorhub_backend/internals/helpers"
)

type StaffController struct {
	DB         *gorm.DB
	EmailVerif *vservice.EmailVerificationService
	PhoneOtp   *vservice.PhoneOtpService
}

func NewStaffController(db *gorm.DB, ev *vservice.EmailVerificationService, po *vservice.PhoneOtpService) *StaffController {
	return &StaffController{DB: db, EmailVerif: ev, PhoneOtp: po}
}

/* ===================== Registrasi (admin only) ===================== */

// Register dibuat oleh admin. Password sementara = nomor induk (staff_code),
// wajib diganti setelah login pertama. Verifikasi dikirim ke KEDUA channel,
// satu transaksi: gagal kirim salah satu = staff batal dibuat.
func (ctl *StaffController) Register(c *fiber.Ctx) error {
	inductorID, err := helper.GetStaffIDFromToken(c)
	if err != nil {
		return err
	}

	req := dto.RegisterStaffRequest{
		Firstname:   c.FormValue("firstname"),
		Surname:     c.FormValue("surname"),
		Email:       c.FormValue("email"),
		Tel:         c.FormValue("tel"),
		Gender:      c.FormValue("gender"),
		DateOfBirth: c.FormValue("date_of_birth"),
		Location:    c.FormValue("location"),
		Address:     c.FormValue("address"),
		Role:        c.FormValue("role"),
	}
	if v := c.FormValue("middlename"); v != "" {
		req.Middlename = &v
	}
	if v := c.FormValue("inducted_by"); v != "" {
		req.InductedBy = &v
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// Perekrut boleh ditunjuk lewat inducted_by, default admin yang login.
	// Harus admin aktif; dicek ke DB, bukan cuma klaim token
	lookupID := inductorID
	if req.InductedBy != nil {
		lookupID, _ = uuid.Parse(*req.InductedBy)
	}
	var inductor model.StaffModel
	if err := ctl.DB.First(&inductor, "staff_id = ?", lookupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Perekrut tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data perekrut")
	}
	if inductor.StaffRole != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusBadRequest, "Perekrut harus berperan admin")
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal lahir tidak valid")
	}

	// Foto profil wajib
	fh, err := c.FormFile("profile_picture")
	if err != nil || fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Foto profil wajib diunggah")
	}
	picturePath, err := helper.SaveImage(constants.FolderStaffProfilePictures, fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
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

	staffCode, err := service.NextStaffCode(tx, time.Now())
	if err != nil {
		tx.Rollback()
		log.Printf("[ERROR] generate staff code: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat nomor induk staff")
	}

	staff := model.StaffModel{
		StaffCode:           staffCode,
		StaffFirstname:      req.Firstname,
		StaffMiddlename:     req.Middlename,
		StaffSurname:        req.Surname,
		StaffEmail:          req.Email,
		StaffTel:            req.Tel,
		StaffGender:         &req.Gender,
		StaffProfilePicture: picturePath,
		StaffDateOfBirth:    &dob,
		StaffLocation:       &req.Location,
		StaffAddress:        &req.Address,
		StaffRole:           constants.StaffRole(req.Role),
		StaffInductedBy:     &inductor.StaffID,
	}
	// Password sementara = nomor induk
	if err := staff.SetPassword(staffCode); err != nil {
		tx.Rollback()
		log.Printf("[ERROR] hash password staff: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses pendaftaran staff")
	}

	if err := tx.Create(&staff).Error; err != nil {
		tx.Rollback()
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email, nomor telepon, atau nomor induk sudah terdaftar")
		}
		log.Printf("[ERROR] create staff: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data staff")
	}

	if err := ctl.EmailVerif.Send(tx, vmodel.OwnerStaff, staff.StaffID, staff.StaffEmail); err != nil {
		tx.Rollback()
		log.Printf("[ERROR] kirim verifikasi email staff: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim email verifikasi, silakan coba lagi")
	}
	if err := ctl.PhoneOtp.SendOtp(tx, staff.StaffTel); err != nil {
		tx.Rollback()
		log.Printf("[ERROR] kirim OTP staff: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim kode OTP, silakan coba lagi")
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data staff")
	}

	return helper.JsonCreated(c, "Staff berhasil didaftarkan, password sementara = nomor induk", dto.ToStaffResponse(&staff))
}

/* ===================== Verifikasi ===================== */

func (ctl *StaffController) VerifyEmail(c *fiber.Ctx) error {
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
			log.Printf("[ERROR] verifikasi email staff: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memverifikasi email")
		}
	}
	return helper.JsonOK(c, "Email berhasil diverifikasi", nil)
}

func (ctl *StaffController) ResendEmailVerification(c *fiber.Ctx) error {
	var req dto.ResendEmailVerificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var staff model.StaffModel
	if err := ctl.DB.Where("staff_email = ?", req.Email).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Email tidak terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data staff")
	}
	if staff.IsEmailVerified() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email sudah terverifikasi")
	}

	tx := ctl.DB.Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulai transaksi")
	}
	if err := ctl.EmailVerif.Send(tx, vmodel.OwnerStaff, staff.StaffID, req.Email); err != nil {
		tx.Rollback()
		log.Printf("[ERROR] resend verifikasi email staff: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim email verifikasi, silakan coba lagi")
	}
	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim email verifikasi")
	}

	return helper.JsonOK(c, "Email verifikasi telah dikirim ulang", nil)
}

func (ctl *StaffController) VerifyPhoneOtp(c *fiber.Ctx) error {
	var req dto.VerifyPhoneOtpRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var staff model.StaffModel
	if err := ctl.DB.Where("staff_tel = ?", req.Tel).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Nomor telepon tidak terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data staff")
	}
	if staff.IsTelVerified() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nomor telepon sudah terverifikasi")
	}

	if err := ctl.PhoneOtp.VerifyOtp(ctl.DB, vmodel.OwnerStaff, req.Tel, req.Code); err != nil {
		switch {
		case errors.Is(err, vservice.ErrOtpNotFound):
			return helper.JsonError(c, fiber.StatusBadRequest, "Kode OTP tidak ditemukan, silakan minta kode baru")
		case errors.Is(err, vservice.ErrOtpExpired):
			return helper.JsonError(c, fiber.StatusBadRequest, "Kode OTP sudah kedaluwarsa, silakan minta kode baru")
		case errors.Is(err, vservice.ErrOtpMismatch):
			return helper.JsonError(c, fiber.StatusBadRequest, "Kode OTP salah")
		default:
			log.Printf("[ERROR] verifikasi OTP staff: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memverifikasi nomor telepon")
		}
	}
	return helper.JsonOK(c, "Nomor telepon berhasil diverifikasi", nil)
}

func (ctl *StaffController) ResendPhoneOtp(c *fiber.Ctx) error {
	var req dto.ResendPhoneOtpRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var staff model.StaffModel
	if err := ctl.DB.Where("staff_tel = ?", req.Tel).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Nomor telepon tidak terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data staff")
	}
	if staff.IsTelVerified() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nomor telepon sudah terverifikasi")
	}

	tx := ctl.DB.Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulai transaksi")
	}
	if err := ctl.PhoneOtp.SendOtp(tx, req.Tel); err != nil {
		tx.Rollback()
		log.Printf("[ERROR] resend OTP staff: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim kode OTP, silakan coba lagi")
	}
	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim kode OTP")
	}

	return helper.JsonOK(c, "Kode OTP telah dikirim ulang", nil)
}

/* ===================== Auth ===================== */

// Login: wajib KEDUA channel sudah terverifikasi.
func (ctl *StaffController) Login(c *fiber.Ctx) error {
	var req dto.LoginStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var staff model.StaffModel
	if err := ctl.DB.Where("staff_email = ?", req.Email).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data staff")
	}
	if err := staff.CheckPassword(req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !staff.IsFullyVerified() {
		return helper.JsonError(c, fiber.StatusForbidden, "Verifikasi email dan nomor telepon terlebih dahulu")
	}

	token, expiresAt, err := service.GenerateAccessToken(&staff, time.Now())
	if err != nil {
		log.Printf("[ERROR] generate access token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})

	return helper.JsonOK(c, "Login berhasil", dto.LoginStaffResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Staff:       dto.ToStaffResponse(&staff),
	})
}

func (ctl *StaffController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// ChangePassword mengganti password sementara (nomor induk) dengan password
// pilihan staff.
func (ctl *StaffController) ChangePassword(c *fiber.Ctx) error {
	staffID, err := helper.GetStaffIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var staff model.StaffModel
	if err := ctl.DB.First(&staff, "staff_id = ?", staffID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Staff tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data staff")
	}
	if err := staff.CheckPassword(req.OldPassword); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Password lama salah")
	}
	if err := staff.SetPassword(req.NewPassword); err != nil {
		log.Printf("[ERROR] hash password baru staff: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengganti password")
	}

	if err := ctl.DB.Model(&staff).Update("staff_password", staff.StaffPassword).Error; err != nil {
		log.Printf("[ERROR] update password staff: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengganti password")
	}
	return helper.JsonUpdated(c, "Password berhasil diganti", nil)
}
