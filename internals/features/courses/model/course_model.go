package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CourseStatusActive   = "active"
	CourseStatusInactive = "inactive"
)

type CourseModel struct {
	CourseID uuid.UUID `gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_id"`

	CourseTitle       string  `gorm:"column:course_title;type:varchar(255);unique;not null" json:"course_title"`
	CourseSlug        string  `gorm:"column:course_slug;type:varchar(255);unique;not null" json:"course_slug"`
	CourseDescription *string `gorm:"column:course_description;type:text" json:"course_description,omitempty"`
	CourseBanner      *string `gorm:"column:course_banner;type:text" json:"course_banner,omitempty"`

	CourseStatus string `gorm:"column:course_status;type:varchar(10);not null;default:'active'" json:"course_status"`

	// Harga dasar per bulan (NGN)
	CoursePrice float64 `gorm:"column:course_price;type:numeric(12,2);not null" json:"course_price"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (CourseModel) TableName() string { return "courses" }

func (m *CourseModel) IsActive() bool { return m.CourseStatus == CourseStatusActive }
