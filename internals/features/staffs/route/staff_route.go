package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tutorhub_backend/internals/features/staffs/controller"
	vservice "tutorhub_backend/internals/features/verification/service"
	"tutorhub_backend/internals/middlewares"
	"tutorhub_backend/internals/middlewares/auth"
)

// StaffRoutes: endpoint publik staff (verifikasi + auth).
func StaffRoutes(r fiber.Router, db *gorm.DB, ev *vservice.EmailVerificationService, po *vservice.PhoneOtpService) {
	ctl := controller.NewStaffController(db, ev, po)

	staffs := r.Group("/staffs")
	staffs.Get("/verify-email", ctl.VerifyEmail)
	staffs.Post("/verify-email", ctl.VerifyEmail)
	staffs.Post("/resend-email-verification", middlewares.ResendVerificationRateLimiter(), ctl.ResendEmailVerification)
	staffs.Post("/verify-phone", ctl.VerifyPhoneOtp)
	staffs.Post("/resend-phone-otp", middlewares.ResendVerificationRateLimiter(), ctl.ResendPhoneOtp)
	staffs.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	staffs.Post("/logout", auth.StaffAuthMiddleware(), ctl.Logout)
	staffs.Patch("/change-password", auth.StaffAuthMiddleware(), ctl.ChangePassword)
}

// StaffAdminRoutes: endpoint staff yang butuh admin (dipasang di grup /admin
// yang sudah dibungkus auth + cek role).
func StaffAdminRoutes(r fiber.Router, db *gorm.DB, ev *vservice.EmailVerificationService, po *vservice.PhoneOtpService) {
	ctl := controller.NewStaffController(db, ev, po)
	r.Post("/staffs/register", middlewares.RegisterRateLimiter(), ctl.Register)
}
