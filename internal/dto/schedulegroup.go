package dto

// ── schedule group DTOs ──

// CreateScheduleGroupRequest creates one schedule group.
type CreateScheduleGroupRequest struct {
	ScheduleGroup string `json:"schedule_group" binding:"required,min=1,max=100"`
	DaysOffset    *int   `json:"days_offset"`
	OffsetType    string `json:"offset_type"`
	Station       string `json:"station"`
}

// UpdateScheduleGroupRequest updates one schedule group.
type UpdateScheduleGroupRequest struct {
	ScheduleGroup *string `json:"schedule_group" binding:"omitempty,min=1,max=100"`
	DaysOffset    *int    `json:"days_offset"`
	OffsetType    *string `json:"offset_type"`
	Station       *string `json:"station"`
}

// BulkDeleteRequest deletes the listed ids.
type BulkDeleteRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1"`
}

// ScheduleGroupResponse is one schedule group.
type ScheduleGroupResponse struct {
	ID            int64  `json:"id"`
	ScheduleGroup string `json:"schedule_group"`
	DaysOffset    *int   `json:"days_offset,omitempty"`
	OffsetType    string `json:"offset_type"`
	Station       string `json:"station"`
}
