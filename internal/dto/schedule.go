package dto

// ── production schedule DTOs ──

// CreateScheduleSlotRequest creates one build slot.
type CreateScheduleSlotRequest struct {
	SlotNumber string `json:"slot_number"`
	Takt       *int   `json:"takt"`
	BoatModel  *int64 `json:"boat_model"`
	HullNumber string `json:"hull_number"`
}

// UpdateScheduleCellRequest sets one cell of a slot row. Column names the
// literal table column; an empty value clears the cell. Last write wins.
type UpdateScheduleCellRequest struct {
	Column string `json:"column" binding:"required"`
	Value  string `json:"value"`
}

// AutoScheduleRequest populates station dates by walking the station column
// order from the chosen start station, stepping TAKT days per station and
// sliding past company holidays.
type AutoScheduleRequest struct {
	ScheduleFrom string `json:"schedule_from" binding:"required"`
	Direction    string `json:"direction" binding:"required,oneof=Forward Backwards"`
	Takt         int    `json:"takt" binding:"required,min=1"`
	StartDate    string `json:"start_date" binding:"required"`
}

// ScheduleSlotResponse is one slot row. Station dates are keyed by their
// column names so the dashboard can render the fixed column grid directly.
type ScheduleSlotResponse struct {
	ID           int64             `json:"id"`
	SlotNumber   string            `json:"slot_number"`
	Takt         *int              `json:"takt,omitempty"`
	BoatModel    *int64            `json:"boat_model,omitempty"`
	HullNumber   string            `json:"hull_number"`
	StationDates map[string]string `json:"station_dates"`
}
