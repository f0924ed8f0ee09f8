package dto

import (
	"time"

	"tutorhub_backend/internals/features/courses/model"
)

/* ===================== Requests ===================== */

type CreateCourseRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty"`
	// Pointer supaya harga 0 (course gratis) tetap lolos rule required
	Price  *float64 `json:"price" validate:"required,gte=0"`
	Status string   `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UpdateCourseRequest struct {
	Title       *string  `json:"title" validate:"omitempty,max=255"`
	Description *string  `json:"description" validate:"omitempty"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Status      *string  `json:"status" validate:"omitempty,oneof=active inactive"`
}

type EnrollCourseRequest struct {
	StudentID    string `json:"student_id" validate:"required,uuid4"`
	BillingCycle string `json:"billing_cycle" validate:"required,oneof=monthly quarterly semi-annual annual"`
}

/* ===================== Responses ===================== */

type CourseResponse struct {
	CourseID    string    `json:"course_id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	Banner      *string   `json:"banner,omitempty"`
	Status      string    `json:"status"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

type CourseEnrollmentResponse struct {
	CourseEnrollmentID string          `json:"course_enrollment_id"`
	StudentID          string          `json:"student_id"`
	CourseID           string          `json:"course_id"`
	StartDate          string          `json:"start_date"`
	EndDate            string          `json:"end_date"`
	BillingCycle       string          `json:"billing_cycle"`
	Cost               float64         `json:"cost"`
	Status             string          `json:"status"`
	Course             *CourseResponse `json:"course,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

func ToCourseResponse(m *model.CourseModel) CourseResponse {
	return CourseResponse{
		CourseID:    m.CourseID.String(),
		Title:       m.CourseTitle,
		Slug:        m.CourseSlug,
		Description: m.CourseDescription,
		Banner:      m.CourseBanner,
		Status:      m.CourseStatus,
		Price:       m.CoursePrice,
		CreatedAt:   m.CreatedAt,
	}
}

func ToCourseResponses(ms []model.CourseModel) []CourseResponse {
	out := make([]CourseResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToCourseResponse(&ms[i]))
	}
	return out
}

func ToCourseEnrollmentResponse(m *model.CourseEnrollmentModel) CourseEnrollmentResponse {
	resp := CourseEnrollmentResponse{
		CourseEnrollmentID: m.CourseEnrollmentID.String(),
		StudentID:          m.CourseEnrollmentStudentID.String(),
		CourseID:           m.CourseEnrollmentCourseID.String(),
		StartDate:          m.CourseEnrollmentStartDate.Format("2006-01-02"),
		EndDate:            m.CourseEnrollmentEndDate.Format("2006-01-02"),
		BillingCycle:       m.CourseEnrollmentBillingCycle,
		Cost:               m.CourseEnrollmentCost,
		Status:             m.CourseEnrollmentStatus,
		CreatedAt:          m.CreatedAt,
	}
	if m.Course != nil {
		c := ToCourseResponse(m.Course)
		resp.Course = &c
	}
	return resp
}
