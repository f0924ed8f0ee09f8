package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tutorhub_backend/internals/features/courses/controller"
)

// CourseRoutes: katalog publik + enrollment.
func CourseRoutes(r fiber.Router, db *gorm.DB) {
	courseCtl := controller.NewCourseController(db)
	enrollCtl := controller.NewCourseEnrollmentController(db)

	courses := r.Group("/courses")
	courses.Get("/", courseCtl.Index)
	courses.Get("/:slug", courseCtl.Show)
	courses.Post("/:id/enroll", enrollCtl.Enroll)

	r.Get("/students/:id/enrollments", enrollCtl.EnrollmentsByStudent)
	r.Patch("/course-enrollments/:id/cancel", enrollCtl.Cancel)
}

// CourseAdminRoutes: CRUD course (grup /admin).
func CourseAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewCourseController(db)

	courses := r.Group("/courses")
	courses.Post("/", ctl.Store)
	courses.Put("/:id", ctl.Update)
	courses.Delete("/:id", ctl.Destroy)
	courses.Patch("/:id/restore", ctl.Restore)
}
