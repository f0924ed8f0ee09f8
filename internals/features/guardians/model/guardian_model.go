package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type GuardianModel struct {
	GuardianID uuid.UUID `gorm:"column:guardian_id;type:uuid;default:gen_random_uuid();primaryKey" json:"guardian_id"`

	GuardianFirstname *string `gorm:"column:guardian_firstname;type:varchar(50)" json:"guardian_firstname,omitempty"`
	GuardianSurname   *string `gorm:"column:guardian_surname;type:varchar(50)" json:"guardian_surname,omitempty"`

	GuardianEmail *string `gorm:"column:guardian_email;type:varchar(255);unique" json:"guardian_email,omitempty"`
	GuardianTel   *string `gorm:"column:guardian_tel;type:varchar(20);unique" json:"guardian_tel,omitempty"`

	GuardianPassword string `gorm:"column:guardian_password;type:varchar(100);not null" json:"-"`

	GuardianGender         *string    `gorm:"column:guardian_gender;type:varchar(10)" json:"guardian_gender,omitempty"`
	GuardianProfilePicture *string    `gorm:"column:guardian_profile_picture;type:text" json:"guardian_profile_picture,omitempty"`
	GuardianDateOfBirth    *time.Time `gorm:"column:guardian_date_of_birth;type:date" json:"guardian_date_of_birth,omitempty"`

	GuardianEmailVerifiedAt *time.Time `gorm:"column:guardian_email_verified_at" json:"guardian_email_verified_at,omitempty"`
	GuardianTelVerifiedAt   *time.Time `gorm:"column:guardian_tel_verified_at" json:"guardian_tel_verified_at,omitempty"`

	GuardianLocation *string `gorm:"column:guardian_location;type:varchar(255)" json:"guardian_location,omitempty"`
	GuardianAddress  *string `gorm:"column:guardian_address;type:varchar(255)" json:"guardian_address,omitempty"`

	// Daftar student_id yang diampu (array UUID dalam JSON)
	GuardianStudents datatypes.JSON `gorm:"column:guardian_students;type:jsonb" json:"guardian_students,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (GuardianModel) TableName() string { return "guardians" }

func (g *GuardianModel) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	g.GuardianPassword = string(hash)
	return nil
}

func (g *GuardianModel) CheckPassword(plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(g.GuardianPassword), []byte(plain))
}

func (g *GuardianModel) IsEmailVerified() bool { return g.GuardianEmailVerifiedAt != nil }
func (g *GuardianModel) IsTelVerified() bool   { return g.GuardianTelVerifiedAt != nil }

func (g *GuardianModel) IsAnyChannelVerified() bool {
	return g.IsEmailVerified() || g.IsTelVerified()
}
