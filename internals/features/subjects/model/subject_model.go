package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	SubjectStatusActive   = "active"
	SubjectStatusInactive = "inactive"
)

type SubjectModel struct {
	SubjectID uuid.UUID `gorm:"column:subject_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subject_id"`

	SubjectName        string  `gorm:"column:subject_name;type:varchar(255);not null" json:"subject_name"`
	SubjectDescription *string `gorm:"column:subject_description;type:text" json:"subject_description,omitempty"`
	SubjectBanner      *string `gorm:"column:subject_banner;type:text" json:"subject_banner,omitempty"`

	// Course yang memuat subject ini (satu subject bisa lintas course)
	SubjectCourses pq.StringArray `gorm:"column:subject_courses;type:uuid[]" json:"subject_courses"`

	// Jurusan yang relevan (science / art / commerce)
	SubjectDepartments pq.StringArray `gorm:"column:subject_departments;type:text[]" json:"subject_departments"`

	// Staff (tutor) yang ditugaskan
	SubjectAssignees pq.StringArray `gorm:"column:subject_assignees;type:uuid[]" json:"subject_assignees"`

	SubjectStatus string `gorm:"column:subject_status;type:varchar(10);not null;default:'active'" json:"subject_status"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }
