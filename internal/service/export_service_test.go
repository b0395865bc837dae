package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/colejunck1/Task-Tracker/internal/model"
)

func setupTestExportService() (ExportService, *testRepos) {
	repos := newTestRepos()
	svc := NewExportService(repos.aggregate(), zap.NewNop())
	return svc, repos
}

func readFirstSheet(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("open exported workbook: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetList()[0])
	if err != nil {
		t.Fatalf("read exported rows: %v", err)
	}
	return rows
}

func TestExportService_ExportTaskData_RoundTrips(t *testing.T) {
	svc, repos := setupTestExportService()

	code := int64(39)
	hours := 12.5
	group := int64(3)
	days := 2
	assoc := "Hardtop"
	repos.taskData.tasks[1] = &model.TaskData{
		ID: 1, Model: &code, Station: "Lam Hull", TaskName: "Gelcoat hull",
		LaborHours: &hours, AssociatedOptions: &assoc,
		ScheduleGroup: &group, DurationDays: &days,
	}
	repos.taskData.nextID = 1

	buf, name, err := svc.ExportTaskData(context.Background())
	if err != nil {
		t.Fatalf("ExportTaskData: %v", err)
	}
	if name != "tasks.xlsx" {
		t.Errorf("filename = %q", name)
	}

	rows := readFirstSheet(t, buf)
	if len(rows) != 2 {
		t.Fatalf("exported %d rows, want header + 1", len(rows))
	}
	for i, col := range taskImportColumns {
		if rows[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], col)
		}
	}

	// the export feeds straight back through the importer
	importSvc := NewTaskDataService(repos.aggregate(), zap.NewNop())
	resp, err := importSvc.ImportWorkbook(context.Background(), bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("re-import: %v", err)
	}
	if resp.Inserted != 1 || resp.Skipped != 0 {
		t.Errorf("re-import inserted=%d skipped=%d, want 1/0", resp.Inserted, resp.Skipped)
	}
}

func TestExportService_ExportProductionSchedule_Columns(t *testing.T) {
	svc, repos := setupTestExportService()
	seedSlot(repos)

	buf, _, err := svc.ExportProductionSchedule(context.Background())
	if err != nil {
		t.Fatalf("ExportProductionSchedule: %v", err)
	}

	rows := readFirstSheet(t, buf)
	wantCols := 4 + len(model.StationDateColumns)
	if len(rows[0]) != wantCols {
		t.Fatalf("header has %d columns, want %d", len(rows[0]), wantCols)
	}
	if rows[0][0] != "slot_number" || rows[0][4] != "lam_grid" {
		t.Errorf("unexpected header layout: %v", rows[0][:5])
	}
}

func TestExportService_Template(t *testing.T) {
	svc, _ := setupTestExportService()

	buf, name, err := svc.Template(TemplateScheduleGroups)
	if err != nil {
		t.Fatalf("Template: %v", err)
	}
	if name != "schedule_groups_template.xlsx" {
		t.Errorf("filename = %q", name)
	}

	rows := readFirstSheet(t, buf)
	if len(rows) != 1 {
		t.Fatalf("template has %d rows, want header only", len(rows))
	}
	for i, col := range scheduleGroupImportColumns {
		if rows[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], col)
		}
	}

	if _, _, err := svc.Template("invoices"); !errors.Is(err, ErrExportUnknownKind) {
		t.Errorf("expected ErrExportUnknownKind, got %v", err)
	}
}

func TestExportService_TaskCSVTemplate(t *testing.T) {
	svc, _ := setupTestExportService()

	buf, name, err := svc.TaskCSVTemplate()
	if err != nil {
		t.Fatalf("TaskCSVTemplate: %v", err)
	}
	if name != "tasks_template.csv" {
		t.Errorf("filename = %q", name)
	}
	got := strings.TrimSpace(buf.String())
	want := strings.Join(taskImportColumns, ",")
	if got != want {
		t.Errorf("csv header = %q, want %q", got, want)
	}
}
