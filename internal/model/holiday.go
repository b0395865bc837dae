package model

import "time"

// CompanyHoliday is a non-working calendar date (table company_holidays).
// Auto-scheduling slides station dates past these.
type CompanyHoliday struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"   json:"id"`
	HolidayName string    `gorm:"type:varchar(200);not null" json:"holiday_name"`
	HolidayDate time.Time `gorm:"type:date;not null"         json:"holiday_date"`
	BaseModel
}

func (CompanyHoliday) TableName() string { return "company_holidays" }
