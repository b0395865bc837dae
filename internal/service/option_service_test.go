package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/colejunck1/Task-Tracker/internal/dto"
	"github.com/colejunck1/Task-Tracker/internal/model"
)

func setupTestOptionService() (OptionService, *testRepos) {
	repos := newTestRepos()
	svc := NewOptionService(repos.aggregate(), zap.NewNop())
	return svc, repos
}

func TestOptionService_ModelOptions_RequireModel(t *testing.T) {
	svc, _ := setupTestOptionService()

	_, err := svc.AddModelOption(context.Background(), 42, &dto.OptionTextRequest{OptionText: "Hardtop"})
	if !errors.Is(err, ErrModelNotFound) {
		t.Errorf("expected ErrModelNotFound, got %v", err)
	}
}

func TestOptionService_ModelOptions_CRUD(t *testing.T) {
	svc, repos := setupTestOptionService()
	repos.model.models[5] = &model.Model{ID: 5, Name: "39 Offshore"}
	repos.model.nextID = 5

	created, err := svc.AddModelOption(context.Background(), 5, &dto.OptionTextRequest{OptionText: "Hardtop"})
	if err != nil {
		t.Fatalf("AddModelOption: %v", err)
	}

	updated, err := svc.UpdateModelOption(context.Background(), created.ID, &dto.OptionTextRequest{OptionText: "Hardtop w/ rack"})
	if err != nil {
		t.Fatalf("UpdateModelOption: %v", err)
	}
	if updated.OptionText != "Hardtop w/ rack" {
		t.Errorf("option text = %q", updated.OptionText)
	}

	options, err := svc.ListModelOptions(context.Background(), 5)
	if err != nil {
		t.Fatalf("ListModelOptions: %v", err)
	}
	if len(options) != 1 {
		t.Fatalf("listed %d options, want 1", len(options))
	}

	if err := svc.DeleteModelOption(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteModelOption: %v", err)
	}
	if err := svc.DeleteModelOption(context.Background(), created.ID); !errors.Is(err, ErrModelOptionNotFound) {
		t.Errorf("expected ErrModelOptionNotFound, got %v", err)
	}
}

func TestOptionService_ImportModelOptions(t *testing.T) {
	svc, repos := setupTestOptionService()
	repos.model.models[5] = &model.Model{ID: 5, Name: "39 Offshore"}
	repos.model.nextID = 5

	buf := buildWorkbook(t, [][]interface{}{
		{"option_text"},
		{"Hardtop"},
		{""},
		{"Bow Thruster"},
	})

	resp, err := svc.ImportModelOptions(context.Background(), 5, buf)
	if err != nil {
		t.Fatalf("ImportModelOptions: %v", err)
	}
	if resp.Inserted != 2 || resp.Skipped != 1 {
		t.Errorf("inserted=%d skipped=%d, want 2/1", resp.Inserted, resp.Skipped)
	}
}

func TestOptionService_DoNotShow_CRUD(t *testing.T) {
	svc, _ := setupTestOptionService()

	created, err := svc.AddDoNotShow(context.Background(), &dto.OptionTextRequest{OptionText: "Page 1 of 3"})
	if err != nil {
		t.Fatalf("AddDoNotShow: %v", err)
	}

	entries, err := svc.ListDoNotShow(context.Background())
	if err != nil {
		t.Fatalf("ListDoNotShow: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("listed %d entries, want 1", len(entries))
	}

	if err := svc.DeleteDoNotShow(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteDoNotShow: %v", err)
	}
	if _, err := svc.UpdateDoNotShow(context.Background(), created.ID, &dto.OptionTextRequest{OptionText: "x"}); !errors.Is(err, ErrDoNotShowOptionNotFound) {
		t.Errorf("expected ErrDoNotShowOptionNotFound, got %v", err)
	}
}
