package handler

import "github.com/colejunck1/Task-Tracker/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Order         *OrderHandler
	TaskData      *TaskDataHandler
	Station       *StationHandler
	ScheduleGroup *ScheduleGroupHandler
	Model         *ModelHandler
	Option        *OptionHandler
	Header        *HeaderHandler
	Task          *TaskHandler
	Holiday       *HolidayHandler
	Schedule      *ScheduleHandler
	Export        *ExportHandler
}

// NewHandler creates the Handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Order:         NewOrderHandler(svc.Order),
		TaskData:      NewTaskDataHandler(svc.TaskData),
		Station:       NewStationHandler(svc.Station),
		ScheduleGroup: NewScheduleGroupHandler(svc.ScheduleGroup),
		Model:         NewModelHandler(svc.Model),
		Option:        NewOptionHandler(svc.Option),
		Header:        NewHeaderHandler(svc.Header),
		Task:          NewTaskHandler(svc.Task),
		Holiday:       NewHolidayHandler(svc.Holiday),
		Schedule:      NewScheduleHandler(svc.Schedule),
		Export:        NewExportHandler(svc.Export),
	}
}
