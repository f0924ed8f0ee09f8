package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tutorhub_backend/internals/features/subjects/controller"
)

// SubjectRoutes: katalog subject publik + enrollment subject.
func SubjectRoutes(r fiber.Router, db *gorm.DB) {
	subjectCtl := controller.NewSubjectController(db)
	enrollCtl := controller.NewSubjectsEnrollmentController(db)

	subjects := r.Group("/subjects")
	subjects.Get("/", subjectCtl.Index)
	subjects.Get("/course/:courseId", subjectCtl.ByCourse)
	subjects.Get("/course/:courseId/department/:department", subjectCtl.ByCourseAndDepartment)

	r.Post("/subject-enrollments", enrollCtl.Enroll)
	r.Get("/course-enrollments/:id/subjects", enrollCtl.ByCourseEnrollment)
	r.Patch("/subject-enrollments/:id/progress", enrollCtl.UpdateProgress)
}

// SubjectAdminRoutes: CRUD subject (grup /admin).
func SubjectAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSubjectController(db)

	subjects := r.Group("/subjects")
	subjects.Get("/", ctl.AllSubjects)
	subjects.Post("/", ctl.Store)
	subjects.Put("/:id", ctl.Update)
	subjects.Delete("/:id", ctl.Destroy)
	subjects.Patch("/:id/restore", ctl.Restore)
}
