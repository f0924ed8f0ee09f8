package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Jadwal mingguan berulang. Jam disimpan sebagai time Postgres (HH:MM).
type ClassScheduleModel struct {
	ClassScheduleID uuid.UUID `gorm:"column:class_schedule_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_schedule_id"`

	ClassScheduleClassID uuid.UUID `gorm:"column:class_schedule_class_id;type:uuid;not null;uniqueIndex:uq_class_schedule_slot" json:"class_schedule_class_id"`

	// monday..sunday
	ClassScheduleDayOfWeek string `gorm:"column:class_schedule_day_of_week;type:varchar(10);not null;uniqueIndex:uq_class_schedule_slot" json:"class_schedule_day_of_week"`

	ClassScheduleStartTime string `gorm:"column:class_schedule_start_time;type:time;not null;uniqueIndex:uq_class_schedule_slot" json:"class_schedule_start_time"`
	ClassScheduleEndTime   string `gorm:"column:class_schedule_end_time;type:time;not null;uniqueIndex:uq_class_schedule_slot" json:"class_schedule_end_time"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (ClassScheduleModel) TableName() string { return "class_schedules" }
