// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classroute "tutorhub_backend/internals/features/classes/route"
	courseroute "tutorhub_backend/internals/features/courses/route"
	guardianroute "tutorhub_backend/internals/features/guardians/route"
	paymentroute "tutorhub_backend/internals/features/payments/route"
	staffroute "tutorhub_backend/internals/features/staffs/route"
	studentroute "tutorhub_backend/internals/features/students/route"
	subjectroute "tutorhub_backend/internals/features/subjects/route"
	vservice "tutorhub_backend/internals/features/verification/service"
	"tutorhub_backend/internals/middlewares/auth"
	"tutorhub_backend/internals/platform/mailer"
	"tutorhub_backend/internals/platform/sms"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	emailVerif := vservice.NewEmailVerificationService(mailer.NewFromEnv())
	phoneOtp := vservice.NewPhoneOtpService(sms.NewFromEnv())

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")

	studentroute.StudentRoutes(public, db, emailVerif, phoneOtp)
	guardianroute.GuardianRoutes(public, db, emailVerif, phoneOtp)
	staffroute.StaffRoutes(public, db, emailVerif, phoneOtp)
	courseroute.CourseRoutes(public, db)
	subjectroute.SubjectRoutes(public, db)
	classroute.ClassRoutes(public, db)
	paymentroute.PaymentRoutes(public, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		auth.StaffAuthMiddleware(),
		auth.OnlyAdmin("manajemen TutorHub"),
	)

	staffroute.StaffAdminRoutes(admin, db, emailVerif, phoneOtp)
	courseroute.CourseAdminRoutes(admin, db)
	subjectroute.SubjectAdminRoutes(admin, db)
	classroute.ClassAdminRoutes(admin, db)
	paymentroute.PaymentAdminRoutes(admin, db)
}
