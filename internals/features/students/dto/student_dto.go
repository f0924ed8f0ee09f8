package dto

import (
	"time"

	"tutorhub_backend/internals/features/students/model"
)

/* ===================== Requests ===================== */

// RegisterStudentRequest: minimal satu kontak (email / tel) wajib ada.
type RegisterStudentRequest struct {
	Email           *string `json:"email" validate:"omitempty,email,required_without=Tel"`
	Tel             *string `json:"tel" validate:"omitempty,nigerian_msisdn,required_without=Email"`
	Password        string  `json:"password" validate:"required,min=8,password_complexity"`
	ConfirmPassword string  `json:"confirm_password" validate:"required,eqfield=Password"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required,uuid4"`
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

// BiodataRequest: pelengkapan profil setelah minimal satu channel terverifikasi.
// Kontak boleh ditambah/diubah; perubahan kontak mereset status verifikasinya.
type BiodataRequest struct {
	Firstname   string  `json:"firstname" validate:"required,max=50"`
	Surname     string  `json:"surname" validate:"required,max=50"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Tel         *string `json:"tel" validate:"omitempty,nigerian_msisdn"`
	Gender      string  `json:"gender" validate:"required,oneof=male female others"`
	DateOfBirth string  `json:"date_of_birth" validate:"required,datetime=2006-01-02,past_date"`
	Location    string  `json:"location" validate:"required,max=255"`
	Address     string  `json:"address" validate:"required,max=255"`
	Department  string  `json:"department" validate:"required,oneof=science art commerce"`
}

/* ===================== Responses ===================== */

type StudentResponse struct {
	StudentID       string     `json:"student_id"`
	Firstname       *string    `json:"firstname,omitempty"`
	Surname         *string    `json:"surname,omitempty"`
	Email           *string    `json:"email,omitempty"`
	Tel             *string    `json:"tel,omitempty"`
	Gender          *string    `json:"gender,omitempty"`
	ProfilePicture  *string    `json:"profile_picture,omitempty"`
	DateOfBirth     *string    `json:"date_of_birth,omitempty"`
	EmailVerifiedAt *time.Time `json:"email_verified_at,omitempty"`
	TelVerifiedAt   *time.Time `json:"tel_verified_at,omitempty"`
	Location        *string    `json:"location,omitempty"`
	Address         *string    `json:"address,omitempty"`
	Department      *string    `json:"department,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func ToStudentResponse(m *model.StudentModel) StudentResponse {
	var dob *string
	if m.StudentDateOfBirth != nil {
		s := m.StudentDateOfBirth.Format("2006-01-02")
		dob = &s
	}
	return StudentResponse{
		StudentID:       m.StudentID.String(),
		Firstname:       m.StudentFirstname,
		Surname:         m.StudentSurname,
		Email:           m.StudentEmail,
		Tel:             m.StudentTel,
		Gender:          m.StudentGender,
		ProfilePicture:  m.StudentProfilePicture,
		DateOfBirth:     dob,
		EmailVerifiedAt: m.StudentEmailVerifiedAt,
		TelVerifiedAt:   m.StudentTelVerifiedAt,
		Location:        m.StudentLocation,
		Address:         m.StudentAddress,
		Department:      m.StudentDepartment,
		CreatedAt:       m.CreatedAt,
	}
}
