package dto

// ── company holiday DTOs ──

// CreateHolidayRequest creates one holiday.
type CreateHolidayRequest struct {
	HolidayName string `json:"holiday_name" binding:"required,min=1,max=200"`
	HolidayDate string `json:"holiday_date" binding:"required"`
}

// UpdateHolidayRequest updates one holiday.
type UpdateHolidayRequest struct {
	HolidayName *string `json:"holiday_name" binding:"omitempty,min=1,max=200"`
	HolidayDate *string `json:"holiday_date"`
}

// HolidayResponse is one holiday.
type HolidayResponse struct {
	ID          int64  `json:"id"`
	HolidayName string `json:"holiday_name"`
	HolidayDate string `json:"holiday_date"`
}

// ImportHolidaysResponse reports an iCalendar import.
type ImportHolidaysResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
