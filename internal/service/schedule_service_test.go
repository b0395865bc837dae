package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/colejunck1/Task-Tracker/internal/dto"
	"github.com/colejunck1/Task-Tracker/internal/model"
)

func setupTestScheduleService() (ScheduleService, *testRepos) {
	repos := newTestRepos()
	svc := NewScheduleService(repos.aggregate(), zap.NewNop())
	return svc, repos
}

func seedSlot(repos *testRepos) *model.ProductionScheduleSlot {
	slot := &model.ProductionScheduleSlot{ID: 1, SlotNumber: "12", HullNumber: "39154"}
	repos.productionSchedule.slots[1] = slot
	repos.productionSchedule.nextID = 1
	return slot
}

func addHoliday(repos *testRepos, name, date string) {
	d, _ := time.Parse("2006-01-02", date)
	repos.holiday.nextID++
	id := repos.holiday.nextID
	repos.holiday.holidays[id] = &model.CompanyHoliday{ID: id, HolidayName: name, HolidayDate: d}
}

// ── UpdateCell ──

func TestScheduleService_UpdateCell_StationDate(t *testing.T) {
	svc, repos := setupTestScheduleService()
	seedSlot(repos)

	resp, err := svc.UpdateCell(context.Background(), 1, &dto.UpdateScheduleCellRequest{
		Column: "lam_hull", Value: "2025-06-02",
	})
	if err != nil {
		t.Fatalf("UpdateCell: %v", err)
	}
	if resp.StationDates["lam_hull"] != "2025-06-02" {
		t.Errorf("lam_hull = %q, want 2025-06-02", resp.StationDates["lam_hull"])
	}

	// empty value clears the cell
	resp, err = svc.UpdateCell(context.Background(), 1, &dto.UpdateScheduleCellRequest{
		Column: "lam_hull", Value: "",
	})
	if err != nil {
		t.Fatalf("UpdateCell clear: %v", err)
	}
	if _, ok := resp.StationDates["lam_hull"]; ok {
		t.Error("cleared cell still present")
	}
}

func TestScheduleService_UpdateCell_SlotFields(t *testing.T) {
	svc, repos := setupTestScheduleService()
	seedSlot(repos)

	resp, err := svc.UpdateCell(context.Background(), 1, &dto.UpdateScheduleCellRequest{
		Column: "hull_number", Value: "40021",
	})
	if err != nil {
		t.Fatalf("UpdateCell: %v", err)
	}
	if resp.HullNumber != "40021" {
		t.Errorf("hull number = %q, want 40021", resp.HullNumber)
	}
}

func TestScheduleService_UpdateCell_Rejections(t *testing.T) {
	svc, repos := setupTestScheduleService()
	seedSlot(repos)

	_, err := svc.UpdateCell(context.Background(), 1, &dto.UpdateScheduleCellRequest{
		Column: "takt", Value: "4",
	})
	if !errors.Is(err, ErrScheduleBadColumn) {
		t.Errorf("expected ErrScheduleBadColumn for takt, got %v", err)
	}

	_, err = svc.UpdateCell(context.Background(), 1, &dto.UpdateScheduleCellRequest{
		Column: "final_1", Value: "06/02/2025",
	})
	if !errors.Is(err, ErrScheduleBadDate) {
		t.Errorf("expected ErrScheduleBadDate, got %v", err)
	}

	_, err = svc.UpdateCell(context.Background(), 99, &dto.UpdateScheduleCellRequest{
		Column: "final_1", Value: "2025-06-02",
	})
	if !errors.Is(err, ErrScheduleSlotNotFound) {
		t.Errorf("expected ErrScheduleSlotNotFound, got %v", err)
	}
}

// ── AutoSchedule ──

func TestScheduleService_AutoSchedule_Forward(t *testing.T) {
	svc, repos := setupTestScheduleService()
	seedSlot(repos)

	resp, err := svc.AutoSchedule(context.Background(), 1, &dto.AutoScheduleRequest{
		ScheduleFrom: "final_1",
		Direction:    "Forward",
		Takt:         3,
		StartDate:    "2025-06-02",
	})
	if err != nil {
		t.Fatalf("AutoSchedule: %v", err)
	}

	want := map[string]string{
		"final_1":       "2025-06-02",
		"final_2":       "2025-06-05",
		"final_3":       "2025-06-08",
		"commissioning": "2025-06-11",
		"shipment":      "2025-06-14",
	}
	for col, date := range want {
		if resp.StationDates[col] != date {
			t.Errorf("%s = %q, want %q", col, resp.StationDates[col], date)
		}
	}

	// stations behind the start stay empty
	for _, col := range []string{"lam_grid", "lam_hull", "open_deck_2"} {
		if _, ok := resp.StationDates[col]; ok {
			t.Errorf("%s should stay empty, got %q", col, resp.StationDates[col])
		}
	}

	if resp.Takt == nil || *resp.Takt != 3 {
		t.Errorf("takt = %v, want 3", resp.Takt)
	}
}

func TestScheduleService_AutoSchedule_SlidesPastHolidays(t *testing.T) {
	svc, repos := setupTestScheduleService()
	seedSlot(repos)
	addHoliday(repos, "Company Day", "2025-06-05")
	addHoliday(repos, "Company Day 2", "2025-06-06")

	resp, err := svc.AutoSchedule(context.Background(), 1, &dto.AutoScheduleRequest{
		ScheduleFrom: "final_1",
		Direction:    "Forward",
		Takt:         3,
		StartDate:    "2025-06-02",
	})
	if err != nil {
		t.Fatalf("AutoSchedule: %v", err)
	}

	// final_2 lands on the holiday pair and slides forward to the 7th; the
	// rest of the walk steps from the slid date
	if resp.StationDates["final_2"] != "2025-06-07" {
		t.Errorf("final_2 = %q, want 2025-06-07", resp.StationDates["final_2"])
	}
	if resp.StationDates["final_3"] != "2025-06-10" {
		t.Errorf("final_3 = %q, want 2025-06-10", resp.StationDates["final_3"])
	}
}

func TestScheduleService_AutoSchedule_Backwards(t *testing.T) {
	svc, repos := setupTestScheduleService()
	seedSlot(repos)

	resp, err := svc.AutoSchedule(context.Background(), 1, &dto.AutoScheduleRequest{
		ScheduleFrom: "lam_deck",
		Direction:    "Backwards",
		Takt:         2,
		StartDate:    "2025-06-10",
	})
	if err != nil {
		t.Fatalf("AutoSchedule: %v", err)
	}

	want := map[string]string{
		"lam_deck": "2025-06-10",
		"lam_hull": "2025-06-08",
		"lam_grid": "2025-06-06",
	}
	for col, date := range want {
		if resp.StationDates[col] != date {
			t.Errorf("%s = %q, want %q", col, resp.StationDates[col], date)
		}
	}
	if _, ok := resp.StationDates["trimandgrind_grid"]; ok {
		t.Error("stations after the start should stay empty when walking backwards")
	}
}

func TestScheduleService_AutoSchedule_Rejections(t *testing.T) {
	svc, repos := setupTestScheduleService()
	seedSlot(repos)

	_, err := svc.AutoSchedule(context.Background(), 1, &dto.AutoScheduleRequest{
		ScheduleFrom: "paint_shop", Direction: "Forward", Takt: 3, StartDate: "2025-06-02",
	})
	if !errors.Is(err, ErrScheduleBadStation) {
		t.Errorf("expected ErrScheduleBadStation, got %v", err)
	}

	_, err = svc.AutoSchedule(context.Background(), 1, &dto.AutoScheduleRequest{
		ScheduleFrom: "final_1", Direction: "Forward", Takt: 3, StartDate: "June 2",
	})
	if !errors.Is(err, ErrScheduleBadDate) {
		t.Errorf("expected ErrScheduleBadDate, got %v", err)
	}
}

// ── CRUD ──

func TestScheduleService_CreateAndList(t *testing.T) {
	svc, _ := setupTestScheduleService()

	takt := 4
	if _, err := svc.Create(context.Background(), &dto.CreateScheduleSlotRequest{
		SlotNumber: "2", Takt: &takt, HullNumber: "40022",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(context.Background(), &dto.CreateScheduleSlotRequest{
		SlotNumber: "1", HullNumber: "39154",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	slots, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("listed %d slots, want 2", len(slots))
	}
	if slots[0].SlotNumber != "1" {
		t.Errorf("slots come back ordered by slot number, got %q first", slots[0].SlotNumber)
	}
}
