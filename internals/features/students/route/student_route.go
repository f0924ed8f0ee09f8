package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tutorhub_backend/internals/features/students/controller"
	vservice "tutorhub_backend/internals/features/verification/service"
	"tutorhub_backend/internals/middlewares"
)

// StudentRoutes: endpoint publik student (registrasi + verifikasi + biodata).
func StudentRoutes(r fiber.Router, db *gorm.DB, ev *vservice.EmailVerificationService, po *vservice.PhoneOtpService) {
	ctl := controller.NewStudentController(db, ev, po)

	students := r.Group("/students")
	students.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	students.Get("/verify-email", ctl.VerifyEmail)
	students.Post("/verify-email", ctl.VerifyEmail)
	students.Post("/resend-email-verification", middlewares.ResendVerificationRateLimiter(), ctl.ResendEmailVerification)
	students.Post("/verify-phone", ctl.VerifyPhoneOtp)
	students.Post("/resend-phone-otp", middlewares.ResendVerificationRateLimiter(), ctl.ResendPhoneOtp)
	students.Patch("/:id/biodata", ctl.Biodata)
}
