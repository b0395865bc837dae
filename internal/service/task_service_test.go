package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/colejunck1/Task-Tracker/internal/dto"
	"github.com/colejunck1/Task-Tracker/internal/model"
)

func setupTestTaskService() (TaskService, *testRepos) {
	repos := newTestRepos()
	svc := NewTaskService(repos.aggregate(), zap.NewNop())
	return svc, repos
}

func seedTask(repos *testRepos) {
	repos.taskPerHull.tasks[1] = &model.TaskPerHull{
		ID: 1, HullNumber: "39154", Station: "Final 1",
		TaskName: "Rigging", Status: model.StatusUpcoming, Applicable: true,
	}
	repos.taskPerHull.nextID = 1
}

func TestTaskService_UpdateStatus(t *testing.T) {
	svc, repos := setupTestTaskService()
	seedTask(repos)

	who := "J. Alvarez"
	got, err := svc.UpdateStatus(context.Background(), 1, &dto.UpdateTaskStatusRequest{
		Status: model.StatusCompleted, CompletedBy: &who,
	})
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if got.Status != model.StatusCompleted {
		t.Errorf("status = %q", got.Status)
	}
	if got.CompletedBy == nil || *got.CompletedBy != "J. Alvarez" {
		t.Errorf("completed by = %v", got.CompletedBy)
	}

	// there is no enforced transition order
	got, err = svc.UpdateStatus(context.Background(), 1, &dto.UpdateTaskStatusRequest{
		Status: model.StatusUpcoming,
	})
	if err != nil {
		t.Fatalf("UpdateStatus back: %v", err)
	}
	if got.Status != model.StatusUpcoming {
		t.Errorf("status = %q", got.Status)
	}
	// completed_by survives when the request omits it
	if got.CompletedBy == nil || *got.CompletedBy != "J. Alvarez" {
		t.Errorf("completed by = %v", got.CompletedBy)
	}
}

func TestTaskService_UpdateStatus_Invalid(t *testing.T) {
	svc, repos := setupTestTaskService()
	seedTask(repos)

	_, err := svc.UpdateStatus(context.Background(), 1, &dto.UpdateTaskStatusRequest{Status: "Done"})
	if !errors.Is(err, ErrTaskInvalidStatus) {
		t.Errorf("expected ErrTaskInvalidStatus, got %v", err)
	}
}

func TestTaskService_UpdateDates(t *testing.T) {
	svc, repos := setupTestTaskService()
	seedTask(repos)

	start, end := "2025-06-02", "2025-06-05"
	got, err := svc.UpdateDates(context.Background(), 1, &dto.UpdateTaskDatesRequest{
		StartDate: &start, EndDate: &end,
	})
	if err != nil {
		t.Fatalf("UpdateDates: %v", err)
	}
	if got.StartDate == nil || *got.StartDate != "2025-06-02" {
		t.Errorf("start = %v", got.StartDate)
	}
	if got.EndDate == nil || *got.EndDate != "2025-06-05" {
		t.Errorf("end = %v", got.EndDate)
	}

	// empty string clears a date; a nil field leaves it alone
	clear := ""
	got, err = svc.UpdateDates(context.Background(), 1, &dto.UpdateTaskDatesRequest{StartDate: &clear})
	if err != nil {
		t.Fatalf("UpdateDates clear: %v", err)
	}
	if got.StartDate != nil {
		t.Errorf("start should be cleared, got %v", *got.StartDate)
	}
	if got.EndDate == nil || *got.EndDate != "2025-06-05" {
		t.Errorf("end should survive, got %v", got.EndDate)
	}
}

func TestTaskService_UpdateDates_Invalid(t *testing.T) {
	svc, repos := setupTestTaskService()
	seedTask(repos)

	bad := "06/02/2025"
	_, err := svc.UpdateDates(context.Background(), 1, &dto.UpdateTaskDatesRequest{StartDate: &bad})
	if !errors.Is(err, ErrTaskInvalidDate) {
		t.Errorf("expected ErrTaskInvalidDate, got %v", err)
	}
}

func TestTaskService_List_Filters(t *testing.T) {
	svc, repos := setupTestTaskService()
	repos.taskPerHull.tasks[1] = &model.TaskPerHull{ID: 1, HullNumber: "39154", Station: "Final 1", TaskName: "A", Status: model.StatusUpcoming}
	repos.taskPerHull.tasks[2] = &model.TaskPerHull{ID: 2, HullNumber: "39154", Station: "Lam Hull", TaskName: "B", Status: model.StatusUpcoming}
	repos.taskPerHull.tasks[3] = &model.TaskPerHull{ID: 3, HullNumber: "40021", Station: "Final 1", TaskName: "C", Status: model.StatusUpcoming}
	repos.taskPerHull.nextID = 3

	tasks, err := svc.List(context.Background(), &dto.TaskListRequest{Station: "Final 1", HullNumber: "39154"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tasks) != 1 || tasks[0].TaskName != "A" {
		t.Errorf("filtered list = %+v, want just A", tasks)
	}
}

func TestTaskService_GetByID_NotFound(t *testing.T) {
	svc, _ := setupTestTaskService()

	if _, err := svc.GetByID(context.Background(), 9); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}
