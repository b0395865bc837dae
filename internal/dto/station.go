package dto

// ── station DTOs ──

// CreateStationRequest creates one station.
type CreateStationRequest struct {
	Name            string `json:"name" binding:"required,min=1,max=100"`
	StationSequence *int   `json:"station_sequence"`
}

// UpdateStationRequest updates one station; nil fields are untouched.
type UpdateStationRequest struct {
	Name            *string `json:"name" binding:"omitempty,min=1,max=100"`
	StationSequence *int    `json:"station_sequence"`
}

// ReorderStationsRequest persists a new presentation order: ids in the order
// they should appear. Sequence numbers are reassigned 1..n.
type ReorderStationsRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1"`
}

// StationResponse is one station.
type StationResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	StationSequence *int   `json:"station_sequence,omitempty"`
}
