package model

// ScheduleGroup is a named day-offset rule (table schedule_groups).
// It informs scheduling; nothing enforces it.
type ScheduleGroup struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"   json:"id"`
	ScheduleGroup string `gorm:"type:varchar(100);not null" json:"schedule_group"`
	DaysOffset    *int   `json:"days_offset,omitempty"`
	OffsetType    string `gorm:"type:varchar(50)"           json:"offset_type"`
	Station       string `gorm:"type:varchar(100)"          json:"station"`
	BaseModel
}

func (ScheduleGroup) TableName() string { return "schedule_groups" }
