package model

// TaskData is a master task template for a model+station (table task_data).
// Rows are read by the expansion step when a boat order is ingested.
type TaskData struct {
	ID                int64    `gorm:"primaryKey;autoIncrement"   json:"id"`
	Model             *int64   `json:"model,omitempty"`
	Station           string   `gorm:"type:varchar(100)"          json:"station"`
	TaskName          string   `gorm:"type:varchar(500);not null" json:"task_name"`
	LaborHours        *float64 `json:"labor_hours,omitempty"`
	AssociatedOptions *string  `gorm:"type:varchar(500)"          json:"associated_options,omitempty"`
	ScheduleGroup     *int64   `json:"schedule_group,omitempty"`
	DurationDays      *int     `json:"duration_days,omitempty"`
	BaseModel
}

func (TaskData) TableName() string { return "task_data" }
