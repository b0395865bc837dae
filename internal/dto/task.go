package dto

// ── task instance (tasks_per_hull) DTOs ──

// TaskListRequest filters the task list.
type TaskListRequest struct {
	Station    string `form:"station"`
	HullNumber string `form:"hull_number"`
}

// UpdateTaskStatusRequest changes a task's status, optionally recording who
// completed it.
type UpdateTaskStatusRequest struct {
	Status      string  `json:"status" binding:"required"`
	CompletedBy *string `json:"completed_by"`
}

// UpdateTaskDatesRequest sets a task's start/end dates (ISO dates, empty
// clears).
type UpdateTaskDatesRequest struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// TaskResponse is one per-hull task.
type TaskResponse struct {
	ID            int64   `json:"id"`
	HullNumber    string  `json:"hull_number"`
	Model         *int64  `json:"model,omitempty"`
	Station       string  `json:"station"`
	TaskName      string  `json:"task_name"`
	StartDate     *string `json:"start_date,omitempty"`
	EndDate       *string `json:"end_date,omitempty"`
	Status        string  `json:"status"`
	CompletedBy   *string `json:"completed_by,omitempty"`
	Applicable    bool    `json:"applicable"`
	ScheduleGroup *int64  `json:"schedule_group,omitempty"`
	TaskDataID    *int64  `json:"task_data_id,omitempty"`
}
