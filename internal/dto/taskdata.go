package dto

// ── master task (task_data) DTOs ──

// CreateTaskDataRequest creates one master task.
type CreateTaskDataRequest struct {
	Model             *int64   `json:"model"`
	Station           string   `json:"station"`
	TaskName          string   `json:"task_name" binding:"required"`
	LaborHours        *float64 `json:"labor_hours"`
	AssociatedOptions *string  `json:"associated_options"`
	ScheduleGroup     *int64   `json:"schedule_group"`
	DurationDays      *int     `json:"duration_days"`
}

// UpdateTaskDataRequest updates one master task; nil fields are untouched.
type UpdateTaskDataRequest struct {
	Model             *int64   `json:"model"`
	Station           *string  `json:"station"`
	TaskName          *string  `json:"task_name" binding:"omitempty,min=1"`
	LaborHours        *float64 `json:"labor_hours"`
	AssociatedOptions *string  `json:"associated_options"`
	ScheduleGroup     *int64   `json:"schedule_group"`
	DurationDays      *int     `json:"duration_days"`
}

// TaskDataListRequest filters the master task list.
type TaskDataListRequest struct {
	Station string `form:"station"`
	Model   *int64 `form:"model"`
}

// TaskDataResponse is one master task.
type TaskDataResponse struct {
	ID                int64    `json:"id"`
	Model             *int64   `json:"model,omitempty"`
	Station           string   `json:"station"`
	TaskName          string   `json:"task_name"`
	LaborHours        *float64 `json:"labor_hours,omitempty"`
	AssociatedOptions *string  `json:"associated_options,omitempty"`
	ScheduleGroup     *int64   `json:"schedule_group,omitempty"`
	DurationDays      *int     `json:"duration_days,omitempty"`
}

// ── bulk import ──

// BulkImportResponse reports an unconditional batch insert.
type BulkImportResponse struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}

// ImportRowError annotates one invalid preview row.
type ImportRowError struct {
	Row    int    `json:"row"`
	Column string `json:"column"`
	Reason string `json:"reason"`
}

// ValidatedImportPreviewRow is one previewed task row with its annotations.
type ValidatedImportPreviewRow struct {
	Row               int     `json:"row"`
	Model             string  `json:"model"`
	Station           string  `json:"station"`
	TaskName          string  `json:"task_name"`
	LaborHours        string  `json:"labor_hours"`
	AssociatedOptions string  `json:"associated_options"`
	ScheduleGroup     string  `json:"schedule_group"`
	DurationDays      string  `json:"duration_days"`
	Errors            []ImportRowError `json:"errors,omitempty"`
}

// ValidatedImportPreviewResponse is the preview table for the validated task
// importer. HasErrors true blocks commit.
type ValidatedImportPreviewResponse struct {
	Rows      []ValidatedImportPreviewRow `json:"rows"`
	HasErrors bool                        `json:"has_errors"`
}
