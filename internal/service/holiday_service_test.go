package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/colejunck1/Task-Tracker/internal/dto"
	"github.com/colejunck1/Task-Tracker/internal/model"
)

func setupTestHolidayService() (HolidayService, *testRepos) {
	repos := newTestRepos()
	svc := NewHolidayService(repos.aggregate(), zap.NewNop())
	return svc, repos
}

const sampleICS = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Test//Test//EN
BEGIN:VEVENT
UID:1@test
DTSTART:20250704
SUMMARY:Independence Day
END:VEVENT
BEGIN:VEVENT
UID:2@test
DTSTART:20251127T000000Z
SUMMARY:Thanksgiving
END:VEVENT
BEGIN:VEVENT
UID:3@test
DTSTART:20250704
SUMMARY:Duplicate of the Fourth
END:VEVENT
BEGIN:VEVENT
UID:4@test
DTSTART:20251225
END:VEVENT
END:VCALENDAR
`

func TestHolidayService_CreateAndList(t *testing.T) {
	svc, _ := setupTestHolidayService()

	if _, err := svc.Create(context.Background(), &dto.CreateHolidayRequest{
		HolidayName: "New Year", HolidayDate: "2026-01-01",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(context.Background(), &dto.CreateHolidayRequest{
		HolidayName: "Labor Day", HolidayDate: "2025-09-01",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	holidays, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(holidays) != 2 {
		t.Fatalf("listed %d holidays, want 2", len(holidays))
	}
	if holidays[0].HolidayName != "Labor Day" {
		t.Errorf("holidays come back date ordered, got %q first", holidays[0].HolidayName)
	}
}

func TestHolidayService_Create_BadDate(t *testing.T) {
	svc, _ := setupTestHolidayService()

	_, err := svc.Create(context.Background(), &dto.CreateHolidayRequest{
		HolidayName: "Bad", HolidayDate: "July 4th",
	})
	if !errors.Is(err, ErrHolidayBadDate) {
		t.Errorf("expected ErrHolidayBadDate, got %v", err)
	}
}

func TestHolidayService_ImportICS(t *testing.T) {
	svc, repos := setupTestHolidayService()

	// Thanksgiving is already on the calendar and must be skipped
	existing, _ := time.Parse("2006-01-02", "2025-11-27")
	repos.holiday.holidays[1] = &model.CompanyHoliday{ID: 1, HolidayName: "Thanksgiving", HolidayDate: existing}
	repos.holiday.nextID = 1

	resp, err := svc.ImportICS(context.Background(), strings.NewReader(sampleICS))
	if err != nil {
		t.Fatalf("ImportICS: %v", err)
	}
	if resp.Imported != 2 {
		t.Errorf("imported = %d, want 2", resp.Imported)
	}
	if resp.Skipped != 2 {
		t.Errorf("skipped = %d, want 2", resp.Skipped)
	}

	byDate := make(map[string]string)
	for _, h := range repos.holiday.holidays {
		byDate[h.HolidayDate.Format("2006-01-02")] = h.HolidayName
	}
	if byDate["2025-07-04"] != "Independence Day" {
		t.Errorf("2025-07-04 = %q, want Independence Day", byDate["2025-07-04"])
	}
	// an event with no SUMMARY still imports under the fallback name
	if byDate["2025-12-25"] != "Holiday" {
		t.Errorf("2025-12-25 = %q, want the fallback name", byDate["2025-12-25"])
	}
}

func TestHolidayService_ImportICS_BadFile(t *testing.T) {
	svc, _ := setupTestHolidayService()

	if _, err := svc.ImportICS(context.Background(), strings.NewReader("not a calendar")); !errors.Is(err, ErrHolidayBadICSFile) {
		t.Errorf("expected ErrHolidayBadICSFile, got %v", err)
	}
}

func TestHolidayService_UpdateAndDelete(t *testing.T) {
	svc, repos := setupTestHolidayService()
	d, _ := time.Parse("2006-01-02", "2025-07-04")
	repos.holiday.holidays[1] = &model.CompanyHoliday{ID: 1, HolidayName: "The Fourth", HolidayDate: d}
	repos.holiday.nextID = 1

	name := "Independence Day"
	got, err := svc.Update(context.Background(), 1, &dto.UpdateHolidayRequest{HolidayName: &name})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.HolidayName != "Independence Day" {
		t.Errorf("name = %q", got.HolidayName)
	}
	if got.HolidayDate != "2025-07-04" {
		t.Errorf("untouched date changed to %q", got.HolidayDate)
	}

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(context.Background(), 1); !errors.Is(err, ErrHolidayNotFound) {
		t.Errorf("expected ErrHolidayNotFound, got %v", err)
	}
}
