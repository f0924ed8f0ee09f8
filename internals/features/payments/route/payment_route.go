package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tutorhub_backend/internals/features/payments/controller"
)

// PaymentRoutes: siklus pembayaran student + webhook gateway.
func PaymentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewPaymentController(db)

	payments := r.Group("/payments")
	payments.Post("/initiate", ctl.Initiate)
	payments.Patch("/:id/confirm", ctl.Confirm)
	payments.Patch("/:id/fail", ctl.MarkFailed)
	payments.Patch("/:id/cancel", ctl.Cancel)
	payments.Post("/notification", ctl.HandleMidtransNotification)

	r.Get("/students/:id/payments", ctl.PaymentsByStudent)
	r.Get("/course-enrollments/:id/payments", ctl.PaymentsByEnrollment)
}

// PaymentAdminRoutes: manual entry + listing + refund (grup /admin).
func PaymentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewPaymentController(db)

	payments := r.Group("/payments")
	payments.Post("/", ctl.Store)
	payments.Get("/", ctl.Index)
	payments.Patch("/:id/refund", ctl.Refund)
}
