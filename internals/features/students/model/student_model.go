package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

/* ===================== Constants ===================== */

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOthers = "others"
)

const (
	DepartmentScience  = "science"
	DepartmentArt      = "art"
	DepartmentCommerce = "commerce"
)

/* ===================== Model ===================== */

type StudentModel struct {
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`

	StudentFirstname *string `gorm:"column:student_firstname;type:varchar(50)" json:"student_firstname,omitempty"`
	StudentSurname   *string `gorm:"column:student_surname;type:varchar(50)" json:"student_surname,omitempty"`

	// Kontak: minimal salah satu terisi (divalidasi di DTO, unik di DB)
	StudentEmail *string `gorm:"column:student_email;type:varchar(255);unique" json:"student_email,omitempty"`
	StudentTel   *string `gorm:"column:student_tel;type:varchar(20);unique" json:"student_tel,omitempty"`

	StudentPassword string `gorm:"column:student_password;type:varchar(100);not null" json:"-"`

	StudentGender         *string    `gorm:"column:student_gender;type:varchar(10)" json:"student_gender,omitempty"`
	StudentProfilePicture *string    `gorm:"column:student_profile_picture;type:text" json:"student_profile_picture,omitempty"`
	StudentDateOfBirth    *time.Time `gorm:"column:student_date_of_birth;type:date" json:"student_date_of_birth,omitempty"`

	// Presence = channel terverifikasi
	StudentEmailVerifiedAt *time.Time `gorm:"column:student_email_verified_at" json:"student_email_verified_at,omitempty"`
	StudentTelVerifiedAt   *time.Time `gorm:"column:student_tel_verified_at" json:"student_tel_verified_at,omitempty"`

	StudentLocation   *string `gorm:"column:student_location;type:varchar(255)" json:"student_location,omitempty"` // country + state
	StudentAddress    *string `gorm:"column:student_address;type:varchar(255)" json:"student_address,omitempty"`
	StudentDepartment *string `gorm:"column:student_department;type:varchar(20)" json:"student_department,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

/* ===================== Helpers ===================== */

func (s *StudentModel) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s.StudentPassword = string(hash)
	return nil
}

func (s *StudentModel) CheckPassword(plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(s.StudentPassword), []byte(plain))
}

// IsEmailVerified / IsTelVerified: presence timestamp = verified
func (s *StudentModel) IsEmailVerified() bool { return s.StudentEmailVerifiedAt != nil }
func (s *StudentModel) IsTelVerified() bool   { return s.StudentTelVerifiedAt != nil }

// IsFullyVerified dipakai gate enrollment course (kedua channel).
func (s *StudentModel) IsFullyVerified() bool {
	return s.IsEmailVerified() && s.IsTelVerified()
}

// IsAnyChannelVerified dipakai gate pelengkapan biodata.
func (s *StudentModel) IsAnyChannelVerified() bool {
	return s.IsEmailVerified() || s.IsTelVerified()
}
