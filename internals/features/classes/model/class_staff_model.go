package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ClassStaffRoleLead      = "lead"
	ClassStaffRoleAssistant = "assistant"
)

// Pivot class - staff. Tanpa soft delete: lepas tugas = hapus baris.
type ClassStaffModel struct {
	ClassStaffID uuid.UUID `gorm:"column:class_staff_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_staff_id"`

	ClassStaffClassID uuid.UUID `gorm:"column:class_staff_class_id;type:uuid;not null;uniqueIndex:uq_class_staff_pair" json:"class_staff_class_id"`
	ClassStaffStaffID uuid.UUID `gorm:"column:class_staff_staff_id;type:uuid;not null;uniqueIndex:uq_class_staff_pair" json:"class_staff_staff_id"`

	ClassStaffRole string `gorm:"column:class_staff_role;type:varchar(10);not null;default:'lead'" json:"class_staff_role"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ClassStaffModel) TableName() string { return "class_staff" }
