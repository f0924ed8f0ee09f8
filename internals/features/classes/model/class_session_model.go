package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SessionStatusScheduled = "scheduled"
	SessionStatusCompleted = "completed"
	SessionStatusCancelled = "cancelled"
	SessionStatusRecorded  = "recorded"
)

// Pertemuan konkret hasil materialisasi jadwal mingguan.
type ClassSessionModel struct {
	ClassSessionID uuid.UUID `gorm:"column:class_session_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_session_id"`

	ClassSessionClassID    uuid.UUID `gorm:"column:class_session_class_id;type:uuid;not null;uniqueIndex:uq_class_session_slot" json:"class_session_class_id"`
	ClassSessionScheduleID uuid.UUID `gorm:"column:class_session_schedule_id;type:uuid;not null;uniqueIndex:uq_class_session_slot" json:"class_session_schedule_id"`

	ClassSessionDate time.Time `gorm:"column:class_session_date;type:date;not null;uniqueIndex:uq_class_session_slot" json:"class_session_date"`

	ClassSessionStartsAt time.Time `gorm:"column:class_session_starts_at;not null" json:"class_session_starts_at"`
	ClassSessionEndsAt   time.Time `gorm:"column:class_session_ends_at;not null" json:"class_session_ends_at"`

	ClassSessionClassLink     *string `gorm:"column:class_session_class_link;type:text" json:"class_session_class_link,omitempty"`
	ClassSessionRecordingLink *string `gorm:"column:class_session_recording_link;type:text" json:"class_session_recording_link,omitempty"`

	ClassSessionStatus string `gorm:"column:class_session_status;type:varchar(10);not null;default:'scheduled'" json:"class_session_status"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (ClassSessionModel) TableName() string { return "class_sessions" }
