package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Digga-coder/POS-FRECUENZY/internal/dto"
	"github.com/Digga-coder/POS-FRECUENZY/internal/model"
	"github.com/Digga-coder/POS-FRECUENZY/internal/repository"

	"github.com/google/uuid"
)

// StaffService is the admin-side waiter directory: create, activate-toggle,
// hard delete, list.
type StaffService interface {
	CreateWaiter(ctx context.Context, req dto.CreateWaiterRequest) (*dto.WaiterResponse, error)
	ToggleActive(ctx context.Context, id uuid.UUID, active bool) (*dto.WaiterResponse, error)
	DeleteWaiter(ctx context.Context, id uuid.UUID) error
	ListWaiters(ctx context.Context) ([]dto.WaiterResponse, error)
}

type staffService struct {
	waiters repository.WaiterRepository
}

func NewStaffService(waiters repository.WaiterRepository) StaffService {
	return &staffService{waiters: waiters}
}

func (s *staffService) CreateWaiter(ctx context.Context, req dto.CreateWaiterRequest) (*dto.WaiterResponse, error) {
	w := &model.Waiter{
		ID:       uuid.New(),
		Name:     req.Name,
		Username: strings.ToLower(strings.TrimSpace(req.Username)),
		Password: req.Password,
		Active:   true,
	}
	if err := s.waiters.Create(ctx, w); err != nil {
		return nil, err
	}
	return waiterToResponse(w), nil
}

func (s *staffService) ToggleActive(ctx context.Context, id uuid.UUID, active bool) (*dto.WaiterResponse, error) {
	w, err := s.waiters.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find waiter %s: %w", id, err)
	}
	w.Active = active
	if err := s.waiters.Update(ctx, w); err != nil {
		return nil, err
	}
	return waiterToResponse(w), nil
}

func (s *staffService) DeleteWaiter(ctx context.Context, id uuid.UUID) error {
	return s.waiters.Delete(ctx, id)
}

func (s *staffService) ListWaiters(ctx context.Context) ([]dto.WaiterResponse, error) {
	waiters, err := s.waiters.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.WaiterResponse, len(waiters))
	for i, w := range waiters {
		resp[i] = *waiterToResponse(&w)
	}
	return resp, nil
}

func waiterToResponse(w *model.Waiter) *dto.WaiterResponse {
	return &dto.WaiterResponse{
		ID:       w.ID.String(),
		Name:     w.Name,
		Username: w.Username,
		Active:   w.Active,
	}
}
