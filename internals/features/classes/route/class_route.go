package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tutorhub_backend/internals/features/classes/controller"
)

// ClassRoutes: daftar + detail kelas (public, untuk katalog jadwal).
func ClassRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewClassController(db)
	sessionCtl := controller.NewClassSessionController(db)

	classes := r.Group("/classes")
	classes.Get("/", ctl.Index)
	classes.Get("/:id", ctl.Show)
	classes.Get("/:id/sessions", sessionCtl.Index)
}

// ClassAdminRoutes: mutasi kelas + penugasan staff + sesi (grup /admin).
func ClassAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewClassController(db)
	sessionCtl := controller.NewClassSessionController(db)

	classes := r.Group("/classes")
	classes.Post("/", ctl.Store)
	classes.Put("/:id", ctl.Update)
	classes.Patch("/:id/status", ctl.UpdateStatus)
	classes.Delete("/:id", ctl.Destroy)
	classes.Patch("/:id/restore", ctl.Restore)
	classes.Delete("/:id/force", ctl.ForceDelete)

	classes.Post("/:id/staffs", ctl.AttachStaff)
	classes.Delete("/:id/staffs/:staffId", ctl.DetachStaff)

	classes.Post("/:id/sessions", sessionCtl.Store)
	classes.Patch("/:id/sessions/:sessionId", sessionCtl.Update)
	classes.Delete("/:id/sessions/:sessionId", sessionCtl.Destroy)
}
