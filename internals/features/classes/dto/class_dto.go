package dto

import (
	"time"

	"tutorhub_backend/internals/features/classes/model"
)

/* ===================== Requests ===================== */

type ClassStaffInput struct {
	StaffID string `json:"staff_id" validate:"required,uuid4"`
	Role    string `json:"role" validate:"required,oneof=lead assistant"`
}

type ClassScheduleInput struct {
	DayOfWeek string `json:"day_of_week" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04"`
}

type CreateClassRequest struct {
	SubjectID   string               `json:"subject_id" validate:"required,uuid4"`
	Title       string               `json:"title" validate:"required,max=255"`
	Description *string              `json:"description" validate:"omitempty"`
	Status      string               `json:"status" validate:"omitempty,oneof=active inactive"`
	Staffs      []ClassStaffInput    `json:"staffs" validate:"required,min=1,dive"`
	Schedules   []ClassScheduleInput `json:"schedules" validate:"required,min=1,dive"`
}

type UpdateClassRequest struct {
	Title       *string           `json:"title" validate:"omitempty,max=255"`
	Description *string           `json:"description" validate:"omitempty"`
	Status      *string           `json:"status" validate:"omitempty,oneof=active inactive"`
	Staffs      []ClassStaffInput `json:"staffs" validate:"omitempty,min=1,dive"`
}

type UpdateClassStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

type AttachStaffRequest struct {
	StaffID string `json:"staff_id" validate:"required,uuid4"`
	Role    string `json:"role" validate:"required,oneof=lead assistant"`
}

type CreateSessionRequest struct {
	ScheduleID string  `json:"schedule_id" validate:"required,uuid4"`
	Date       string  `json:"date" validate:"required,datetime=2006-01-02"`
	ClassLink  *string `json:"class_link" validate:"omitempty,url"`
}

type UpdateSessionRequest struct {
	Status        *string `json:"status" validate:"omitempty,oneof=scheduled completed cancelled recorded"`
	ClassLink     *string `json:"class_link" validate:"omitempty,url"`
	RecordingLink *string `json:"recording_link" validate:"omitempty,url"`
}

/* ===================== Responses ===================== */

type ClassStaffResponse struct {
	ClassStaffID string `json:"class_staff_id"`
	StaffID      string `json:"staff_id"`
	Role         string `json:"role"`
}

type ClassScheduleResponse struct {
	ClassScheduleID string `json:"class_schedule_id"`
	DayOfWeek       string `json:"day_of_week"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
}

type ClassSessionResponse struct {
	ClassSessionID string    `json:"class_session_id"`
	ClassID        string    `json:"class_id"`
	ScheduleID     string    `json:"schedule_id"`
	Date           string    `json:"date"`
	StartsAt       time.Time `json:"starts_at"`
	EndsAt         time.Time `json:"ends_at"`
	ClassLink      *string   `json:"class_link,omitempty"`
	RecordingLink  *string   `json:"recording_link,omitempty"`
	Status         string    `json:"status"`
}

type ClassResponse struct {
	ClassID     string                  `json:"class_id"`
	SubjectID   string                  `json:"subject_id"`
	Title       string                  `json:"title"`
	Description *string                 `json:"description,omitempty"`
	Status      string                  `json:"status"`
	Staffs      []ClassStaffResponse    `json:"staffs,omitempty"`
	Schedules   []ClassScheduleResponse `json:"schedules,omitempty"`
	Sessions    []ClassSessionResponse  `json:"sessions,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
}

func ToClassSessionResponse(m *model.ClassSessionModel) ClassSessionResponse {
	return ClassSessionResponse{
		ClassSessionID: m.ClassSessionID.String(),
		ClassID:        m.ClassSessionClassID.String(),
		ScheduleID:     m.ClassSessionScheduleID.String(),
		Date:           m.ClassSessionDate.Format("2006-01-02"),
		StartsAt:       m.ClassSessionStartsAt,
		EndsAt:         m.ClassSessionEndsAt,
		ClassLink:      m.ClassSessionClassLink,
		RecordingLink:  m.ClassSessionRecordingLink,
		Status:         m.ClassSessionStatus,
	}
}

func ToClassResponse(m *model.ClassModel) ClassResponse {
	resp := ClassResponse{
		ClassID:     m.ClassID.String(),
		SubjectID:   m.ClassSubjectID.String(),
		Title:       m.ClassTitle,
		Description: m.ClassDescription,
		Status:      m.ClassStatus,
		CreatedAt:   m.CreatedAt,
	}
	for i := range m.Staffs {
		resp.Staffs = append(resp.Staffs, ClassStaffResponse{
			ClassStaffID: m.Staffs[i].ClassStaffID.String(),
			StaffID:      m.Staffs[i].ClassStaffStaffID.String(),
			Role:         m.Staffs[i].ClassStaffRole,
		})
	}
	for i := range m.Schedules {
		resp.Schedules = append(resp.Schedules, ClassScheduleResponse{
			ClassScheduleID: m.Schedules[i].ClassScheduleID.String(),
			DayOfWeek:       m.Schedules[i].ClassScheduleDayOfWeek,
			StartTime:       m.Schedules[i].ClassScheduleStartTime,
			EndTime:         m.Schedules[i].ClassScheduleEndTime,
		})
	}
	for i := range m.Sessions {
		resp.Sessions = append(resp.Sessions, ToClassSessionResponse(&m.Sessions[i]))
	}
	return resp
}

func ToClassResponses(ms []model.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToClassResponse(&ms[i]))
	}
	return out
}
