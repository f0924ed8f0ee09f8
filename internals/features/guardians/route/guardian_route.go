package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tutorhub_backend/internals/features/guardians/controller"
	vservice "tutorhub_backend/internals/features/verification/service"
	"tutorhub_backend/internals/middlewares"
)

// GuardianRoutes: endpoint publik wali (registrasi + verifikasi + relasi student).
func GuardianRoutes(r fiber.Router, db *gorm.DB, ev *vservice.EmailVerificationService, po *vservice.PhoneOtpService) {
	ctl := controller.NewGuardianController(db, ev, po)

	guardians := r.Group("/guardians")
	guardians.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	guardians.Get("/verify-email", ctl.VerifyEmail)
	guardians.Post("/verify-email", ctl.VerifyEmail)
	guardians.Post("/resend-email-verification", middlewares.ResendVerificationRateLimiter(), ctl.ResendEmailVerification)
	guardians.Post("/verify-phone", ctl.VerifyPhoneOtp)
	guardians.Post("/resend-phone-otp", middlewares.ResendVerificationRateLimiter(), ctl.ResendPhoneOtp)
	guardians.Put("/:id/students", ctl.LinkStudents)
}
