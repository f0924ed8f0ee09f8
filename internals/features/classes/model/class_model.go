package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ClassStatusActive   = "active"
	ClassStatusInactive = "inactive"
)

type ClassModel struct {
	ClassID uuid.UUID `gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`

	ClassSubjectID uuid.UUID `gorm:"column:class_subject_id;type:uuid;not null;index" json:"class_subject_id"`

	ClassTitle       string  `gorm:"column:class_title;type:varchar(255);not null" json:"class_title"`
	ClassDescription *string `gorm:"column:class_description;type:text" json:"class_description,omitempty"`

	ClassStatus string `gorm:"column:class_status;type:varchar(10);not null;default:'active'" json:"class_status"`

	// Relasi (preload)
	Staffs    []ClassStaffModel    `gorm:"foreignKey:ClassStaffClassID;references:ClassID" json:"staffs,omitempty"`
	Schedules []ClassScheduleModel `gorm:"foreignKey:ClassScheduleClassID;references:ClassID" json:"schedules,omitempty"`
	Sessions  []ClassSessionModel  `gorm:"foreignKey:ClassSessionClassID;references:ClassID" json:"sessions,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }
