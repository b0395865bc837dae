package model

import "time"

// BaseModel carries the audit timestamps every table has.
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// Task instance statuses. A closed set with no enforced transition order:
// any status may be set from any other.
const (
	StatusUpcoming   = "Upcoming"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusOverdue    = "Overdue"
)

// ValidStatus reports whether s is one of the known task statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusUpcoming, StatusInProgress, StatusCompleted, StatusOverdue:
		return true
	}
	return false
}
