package dto

import (
	"time"

	"tutorhub_backend/internals/constants"
	"tutorhub_backend/internals/features/staffs/model"
)

/* ===================== Requests ===================== */

// RegisterStaffRequest: dibuat admin via multipart form (foto profil wajib).
type RegisterStaffRequest struct {
	Firstname   string  `json:"firstname" validate:"required,max=50"`
	Middlename  *string `json:"middlename" validate:"omitempty,max=50"`
	Surname     string  `json:"surname" validate:"required,max=50"`
	Email       string  `json:"email" validate:"required,email"`
	Tel         string  `json:"tel" validate:"required,nigerian_msisdn"`
	Gender      string  `json:"gender" validate:"required,oneof=male female others"`
	DateOfBirth string  `json:"date_of_birth" validate:"required,datetime=2006-01-02,past_date"`
	Location    string  `json:"location" validate:"required,max=255"`
	Address     string  `json:"address" validate:"required,max=255"`
	Role        string  `json:"role" validate:"required,oneof=admin tutor advisor"`
	// Opsional; default admin yang sedang login
	InductedBy *string `json:"inducted_by" validate:"omitempty,uuid4"`
}

type LoginStaffRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,password_complexity"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

type ResendEmailVerificationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyPhoneOtpRequest struct {
	Tel  string `json:"tel" validate:"required,nigerian_msisdn"`
	Code string `json:"code" validate:"required,len=6,numeric"`
}

type ResendPhoneOtpRequest struct {
	Tel string `json:"tel" validate:"required,nigerian_msisdn"`
}

/* ===================== Responses ===================== */

type StaffResponse struct {
	StaffID         string              `json:"staff_id"`
	StaffCode       string              `json:"staff_code"`
	Firstname       string              `json:"firstname"`
	Middlename      *string             `json:"middlename,omitempty"`
	Surname         string              `json:"surname"`
	Email           string              `json:"email"`
	Tel             string              `json:"tel"`
	Gender          *string             `json:"gender,omitempty"`
	ProfilePicture  string              `json:"profile_picture"`
	DateOfBirth     *string             `json:"date_of_birth,omitempty"`
	EmailVerifiedAt *time.Time          `json:"email_verified_at,omitempty"`
	TelVerifiedAt   *time.Time          `json:"tel_verified_at,omitempty"`
	Location        *string             `json:"location,omitempty"`
	Address         *string             `json:"address,omitempty"`
	Role            constants.StaffRole `json:"role"`
	InductedBy      *string             `json:"inducted_by,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
}

type LoginStaffResponse struct {
	AccessToken string        `json:"access_token"`
	ExpiresAt   time.Time     `json:"expires_at"`
	Staff       StaffResponse `json:"staff"`
}

func ToStaffResponse(m *model.StaffModel) StaffResponse {
	var dob *string
	if m.StaffDateOfBirth != nil {
		s := m.StaffDateOfBirth.Format("2006-01-02")
		dob = &s
	}
	var inductedBy *string
	if m.StaffInductedBy != nil {
		s := m.StaffInductedBy.String()
		inductedBy = &s
	}
	return StaffResponse{
		StaffID:         m.StaffID.String(),
		StaffCode:       m.StaffCode,
		Firstname:       m.StaffFirstname,
		Middlename:      m.StaffMiddlename,
		Surname:         m.StaffSurname,
		Email:           m.StaffEmail,
		Tel:             m.StaffTel,
		Gender:          m.StaffGender,
		ProfilePicture:  m.StaffProfilePicture,
		DateOfBirth:     dob,
		EmailVerifiedAt: m.StaffEmailVerifiedAt,
		TelVerifiedAt:   m.StaffTelVerifiedAt,
		Location:        m.StaffLocation,
		Address:         m.StaffAddress,
		Role:            m.StaffRole,
		InductedBy:      inductedBy,
		CreatedAt:       m.CreatedAt,
	}
}
