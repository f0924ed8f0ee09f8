package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Constants ===================== */

const (
	BillingCycleMonthly    = "monthly"
	BillingCycleQuarterly  = "quarterly"
	BillingCycleSemiAnnual = "semi-annual"
	BillingCycleAnnual     = "annual"
)

const (
	EnrollmentStatusPending   = "pending"
	EnrollmentStatusActive    = "active"
	EnrollmentStatusExpired   = "expired"
	EnrollmentStatusCancelled = "cancelled"
)

/* ===================== Model ===================== */

type CourseEnrollmentModel struct {
	CourseEnrollmentID uuid.UUID `gorm:"column:course_enrollment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_enrollment_id"`

	CourseEnrollmentStudentID uuid.UUID `gorm:"column:course_enrollment_student_id;type:uuid;not null;uniqueIndex:uq_course_enrollment_student_course" json:"course_enrollment_student_id"`
	CourseEnrollmentCourseID  uuid.UUID `gorm:"column:course_enrollment_course_id;type:uuid;not null;uniqueIndex:uq_course_enrollment_student_course" json:"course_enrollment_course_id"`

	CourseEnrollmentStartDate time.Time `gorm:"column:course_enrollment_start_date;type:date;not null" json:"course_enrollment_start_date"`
	CourseEnrollmentEndDate   time.Time `gorm:"column:course_enrollment_end_date;type:date;not null" json:"course_enrollment_end_date"`

	CourseEnrollmentBillingCycle string  `gorm:"column:course_enrollment_billing_cycle;type:varchar(15);not null" json:"course_enrollment_billing_cycle"`
	CourseEnrollmentCost         float64 `gorm:"column:course_enrollment_cost;type:numeric(12,2);not null" json:"course_enrollment_cost"`

	CourseEnrollmentStatus string `gorm:"column:course_enrollment_status;type:varchar(10);not null;default:'active'" json:"course_enrollment_status"`

	// Relasi (preload)
	Course *CourseModel `gorm:"foreignKey:CourseEnrollmentCourseID;references:CourseID" json:"course,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (CourseEnrollmentModel) TableName() string { return "courses_enrollments" }
