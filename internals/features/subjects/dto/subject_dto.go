package dto

import (
	"time"

	"tutorhub_backend/internals/features/subjects/model"
)

/* ===================== Requests ===================== */

type CreateSubjectRequest struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Description *string  `json:"description" validate:"omitempty"`
	Courses     []string `json:"courses" validate:"required,min=1,dive,uuid4"`
	Departments []string `json:"departments" validate:"required,min=1,dive,oneof=science art commerce"`
	Assignees   []string `json:"assignees" validate:"omitempty,dive,uuid4"`
	Status      string   `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UpdateSubjectRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=255"`
	Description *string  `json:"description" validate:"omitempty"`
	Courses     []string `json:"courses" validate:"omitempty,min=1,dive,uuid4"`
	Departments []string `json:"departments" validate:"omitempty,min=1,dive,oneof=science art commerce"`
	Assignees   []string `json:"assignees" validate:"omitempty,dive,uuid4"`
	Status      *string  `json:"status" validate:"omitempty,oneof=active inactive"`
}

type EnrollSubjectRequest struct {
	CourseEnrollmentID string `json:"course_enrollment_id" validate:"required,uuid4"`
	SubjectID          string `json:"subject_id" validate:"required,uuid4"`
}

type UpdateProgressRequest struct {
	Progress float64 `json:"progress" validate:"min=0,max=100"`
}

/* ===================== Responses ===================== */

type SubjectResponse struct {
	SubjectID   string    `json:"subject_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Banner      *string   `json:"banner,omitempty"`
	Courses     []string  `json:"courses"`
	Departments []string  `json:"departments"`
	Assignees   []string  `json:"assignees"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type SubjectsEnrollmentResponse struct {
	SubjectEnrollmentID string           `json:"subject_enrollment_id"`
	CourseEnrollmentID  string           `json:"course_enrollment_id"`
	SubjectID           string           `json:"subject_id"`
	StudentID           string           `json:"student_id"`
	Progress            float64          `json:"progress"`
	Subject             *SubjectResponse `json:"subject,omitempty"`
	CreatedAt           time.Time        `json:"created_at"`
}

func ToSubjectResponse(m *model.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID:   m.SubjectID.String(),
		Name:        m.SubjectName,
		Description: m.SubjectDescription,
		Banner:      m.SubjectBanner,
		Courses:     m.SubjectCourses,
		Departments: m.SubjectDepartments,
		Assignees:   m.SubjectAssignees,
		Status:      m.SubjectStatus,
		CreatedAt:   m.CreatedAt,
	}
}

func ToSubjectResponses(ms []model.SubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToSubjectResponse(&ms[i]))
	}
	return out
}

func ToSubjectsEnrollmentResponse(m *model.SubjectsEnrollmentModel) SubjectsEnrollmentResponse {
	resp := SubjectsEnrollmentResponse{
		SubjectEnrollmentID: m.SubjectEnrollmentID.String(),
		CourseEnrollmentID:  m.SubjectEnrollmentCourseEnrollmentID.String(),
		SubjectID:           m.SubjectEnrollmentSubjectID.String(),
		StudentID:           m.SubjectEnrollmentStudentID.String(),
		Progress:            m.SubjectEnrollmentProgress,
		CreatedAt:           m.CreatedAt,
	}
	if m.Subject != nil {
		s := ToSubjectResponse(m.Subject)
		resp.Subject = &s
	}
	return resp
}
