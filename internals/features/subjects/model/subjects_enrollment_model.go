package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectsEnrollmentModel struct {
	SubjectEnrollmentID uuid.UUID `gorm:"column:subject_enrollment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subject_enrollment_id"`

	SubjectEnrollmentCourseEnrollmentID uuid.UUID `gorm:"column:subject_enrollment_course_enrollment_id;type:uuid;not null;uniqueIndex:uq_subject_enrollment_triple" json:"subject_enrollment_course_enrollment_id"`
	SubjectEnrollmentSubjectID          uuid.UUID `gorm:"column:subject_enrollment_subject_id;type:uuid;not null;uniqueIndex:uq_subject_enrollment_triple" json:"subject_enrollment_subject_id"`
	SubjectEnrollmentStudentID          uuid.UUID `gorm:"column:subject_enrollment_student_id;type:uuid;not null;uniqueIndex:uq_subject_enrollment_triple" json:"subject_enrollment_student_id"`

	// Persentase penyelesaian 0..100
	SubjectEnrollmentProgress float64 `gorm:"column:subject_enrollment_progress;type:numeric(5,2);not null;default:0" json:"subject_enrollment_progress"`

	Subject *SubjectModel `gorm:"foreignKey:SubjectEnrollmentSubjectID;references:SubjectID" json:"subject,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (SubjectsEnrollmentModel) TableName() string { return "subjects_enrollments" }
