package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tutorhub_backend/internals/constants"
)

type StaffModel struct {
	StaffID uuid.UUID `gorm:"column:staff_id;type:uuid;default:gen_random_uuid();primaryKey" json:"staff_id"`

	// Nomor induk staff, format TC + YYMM + urutan 4 digit
	StaffCode string `gorm:"column:staff_code;type:varchar(12);unique;not null" json:"staff_code"`

	StaffFirstname  string  `gorm:"column:staff_firstname;type:varchar(50);not null" json:"staff_firstname"`
	StaffMiddlename *string `gorm:"column:staff_middlename;type:varchar(50)" json:"staff_middlename,omitempty"`
	StaffSurname    string  `gorm:"column:staff_surname;type:varchar(50);not null" json:"staff_surname"`

	StaffEmail string `gorm:"column:staff_email;type:varchar(255);unique;not null" json:"staff_email"`
	StaffTel   string `gorm:"column:staff_tel;type:varchar(20);unique;not null" json:"staff_tel"`

	StaffPassword string `gorm:"column:staff_password;type:varchar(100);not null" json:"-"`

	StaffGender         *string    `gorm:"column:staff_gender;type:varchar(10)" json:"staff_gender,omitempty"`
	StaffProfilePicture string     `gorm:"column:staff_profile_picture;type:text;not null" json:"staff_profile_picture"`
	StaffDateOfBirth    *time.Time `gorm:"column:staff_date_of_birth;type:date" json:"staff_date_of_birth,omitempty"`

	StaffEmailVerifiedAt *time.Time `gorm:"column:staff_email_verified_at" json:"staff_email_verified_at,omitempty"`
	StaffTelVerifiedAt   *time.Time `gorm:"column:staff_tel_verified_at" json:"staff_tel_verified_at,omitempty"`

	StaffLocation *string `gorm:"column:staff_location;type:varchar(255)" json:"staff_location,omitempty"`
	StaffAddress  *string `gorm:"column:staff_address;type:varchar(255)" json:"staff_address,omitempty"`

	StaffRole constants.StaffRole `gorm:"column:staff_role;type:varchar(20);not null" json:"staff_role"`

	// Admin yang merekrut (nullable untuk admin pertama / seed)
	StaffInductedBy *uuid.UUID `gorm:"column:staff_inducted_by;type:uuid" json:"staff_inducted_by,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (StaffModel) TableName() string { return "staffs" }

func (s *StaffModel) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s.StaffPassword = string(hash)
	return nil
}

func (s *StaffModel) CheckPassword(plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(s.StaffPassword), []byte(plain))
}

func (s *StaffModel) IsEmailVerified() bool { return s.StaffEmailVerifiedAt != nil }
func (s *StaffModel) IsTelVerified() bool   { return s.StaffTelVerifiedAt != nil }

// IsFullyVerified: syarat login (kedua channel wajib terverifikasi).
func (s *StaffModel) IsFullyVerified() bool {
	return s.IsEmailVerified() && s.IsTelVerified()
}
