package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/colejunck1/Task-Tracker/internal/dto"
)

func setupTestModelService() (ModelService, *testRepos) {
	repos := newTestRepos()
	svc := NewModelService(repos.aggregate(), zap.NewNop())
	return svc, repos
}

func TestModelService_CRUD(t *testing.T) {
	svc, _ := setupTestModelService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateModelRequest{Name: "  39 Offshore  "})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Name != "39 Offshore" {
		t.Errorf("expected trimmed name, got %q", created.Name)
	}

	updated, err := svc.Update(ctx, created.ID, &dto.UpdateModelRequest{Name: "40 Offshore"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "40 Offshore" {
		t.Errorf("expected renamed model, got %q", updated.Name)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 model, got %d", len(list))
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, created.ID); !errors.Is(err, ErrModelNotFound) {
		t.Errorf("expected ErrModelNotFound after delete, got %v", err)
	}
}

func TestModelService_Update_NotFound(t *testing.T) {
	svc, _ := setupTestModelService()

	_, err := svc.Update(context.Background(), 99, &dto.UpdateModelRequest{Name: "X"})
	if !errors.Is(err, ErrModelNotFound) {
		t.Errorf("expected ErrModelNotFound, got %v", err)
	}
}
