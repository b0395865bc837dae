package model

import "time"

// TaskPerHull is one concrete task for one hull (table tasks_per_hull).
// Created in batch when an order is ingested, expanded from a TaskData row;
// status and dates are mutated afterwards, rows are never deleted.
type TaskPerHull struct {
	ID            int64      `gorm:"primaryKey;autoIncrement"            json:"id"`
	HullNumber    string     `gorm:"type:varchar(20);not null"           json:"hull_number"`
	Model         *int64     `json:"model,omitempty"`
	Station       string     `gorm:"type:varchar(100)"                   json:"station"`
	TaskName      string     `gorm:"type:varchar(500);not null"          json:"task_name"`
	StartDate     *time.Time `gorm:"type:date"                           json:"start_date,omitempty"`
	EndDate       *time.Time `gorm:"type:date"                           json:"end_date,omitempty"`
	Status        string     `gorm:"type:varchar(20);not null;default:'Upcoming'" json:"status"`
	CompletedBy   *string    `gorm:"type:varchar(100)"                   json:"completed_by,omitempty"`
	Applicable    bool       `gorm:"not null;default:true"               json:"applicable"`
	ScheduleGroup *int64     `json:"schedule_group,omitempty"`
	TaskDataID    *int64     `json:"task_data_id,omitempty"`
	BaseModel
}

func (TaskPerHull) TableName() string { return "tasks_per_hull" }
