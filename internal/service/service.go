package service

import (
	"go.uber.org/zap"

	"github.com/colejunck1/Task-Tracker/internal/repository"
)

// Service aggregates every business service.
type Service struct {
	Order         OrderService
	TaskData      TaskDataService
	Station       StationService
	ScheduleGroup ScheduleGroupService
	Model         ModelService
	Option        OptionService
	Header        HeaderService
	Task          TaskService
	Holiday       HolidayService
	Schedule      ScheduleService
	Export        ExportService
}

// NewService creates the Service aggregate.
func NewService(repo *repository.Repository, store ObjectStore, logger *zap.Logger) *Service {
	return &Service{
		Order:         NewOrderService(repo, store, logger),
		TaskData:      NewTaskDataService(repo, logger),
		Station:       NewStationService(repo, logger),
		ScheduleGroup: NewScheduleGroupService(repo, logger),
		Model:         NewModelService(repo, logger),
		Option:        NewOptionService(repo, logger),
		Header:        NewHeaderService(repo, logger),
		Task:          NewTaskService(repo, logger),
		Holiday:       NewHolidayService(repo, logger),
		Schedule:      NewScheduleService(repo, logger),
		Export:        NewExportService(repo, logger),
	}
}
