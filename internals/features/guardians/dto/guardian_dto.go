package dto

import (
	"time"

	"tutorhub_backend/internals/features/guardians/model"
)

type RegisterGuardianRequest struct {
	Email           *string `json:"email" validate:"omitempty,email,required_without=Tel"`
	Tel             *string `json:"tel" validate:"omitempty,nigerian_msisdn,required_without=Email"`
	Password        string  `json:"password" validate:"required,min=8,password_complexity"`
	ConfirmPassword string  `json:"confirm_password" validate:"required,eqfield=Password"`
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

// LinkStudentsRequest menetapkan daftar student yang diampu wali.
type LinkStudentsRequest struct {
	StudentIDs []string `json:"student_ids" validate:"required,min=1,dive,uuid4"`
}

type GuardianResponse struct {
	GuardianID      string     `json:"guardian_id"`
	Firstname       *string    `json:"firstname,omitempty"`
	Surname         *string    `json:"surname,omitempty"`
	Email           *string    `json:"email,omitempty"`
	Tel             *string    `json:"tel,omitempty"`
	EmailVerifiedAt *time.Time `json:"email_verified_at,omitempty"`
	TelVerifiedAt   *time.Time `json:"tel_verified_at,omitempty"`
	Students        []string   `json:"students,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func ToGuardianResponse(m *model.GuardianModel, students []string) GuardianResponse {
	return GuardianResponse{
		GuardianID:      m.GuardianID.String(),
		Firstname:       m.GuardianFirstname,
		Surname:         m.GuardianSurname,
		Email:           m.GuardianEmail,
		Tel:             m.GuardianTel,
		EmailVerifiedAt: m.GuardianEmailVerifiedAt,
		TelVerifiedAt:   m.GuardianTelVerifiedAt,
		Students:        students,
		CreatedAt:       m.CreatedAt,
	}
}
