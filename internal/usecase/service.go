// Package usecase wires the sudoku and design collaborators to a
// persistence port behind one façade, the same shape a solver/generator/
// validator/storage service would take.
package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/raaphorst/dlxgo/internal/design"
	"github.com/raaphorst/dlxgo/internal/domain"
	"github.com/raaphorst/dlxgo/internal/ports"
	"github.com/raaphorst/dlxgo/internal/sudoku"
)

// errNotConfigured: Load and List on a Service whose Store port was left
// nil refuse outright rather than silently returning nothing.
var errNotConfigured = errors.New("usecase: storage not configured")

type Service struct {
	Store ports.Store
}

func NewService(store ports.Store) *Service {
	return &Service{Store: store}
}

// SolveSudoku runs the sudoku collaborator and, if a Store is configured,
// persists the result under a fresh run id.
func (s *Service) SolveSudoku(ctx context.Context, order int, givens []sudoku.Given) (*domain.Run, error) {
	result, err := sudoku.Solve(ctx, order, givens)
	if err != nil {
		return nil, err
	}

	run := &domain.Run{
		ID:         uuid.New(),
		Kind:       domain.KindSudoku,
		Sudoku:     &domain.SudokuRun{Order: order, Grid: result.Grid},
		Nodes:      result.Nodes,
		DurationMs: result.Duration.Milliseconds(),
		CreatedAt:  time.Now().UnixNano(),
	}
	if err := s.save(ctx, run); err != nil {
		return nil, err
	}
	return run, nil
}

// SolveDesign runs the design collaborator and, if a Store is configured,
// persists the result under a fresh run id.
func (s *Service) SolveDesign(ctx context.Context, v, k, t int) (*domain.Run, error) {
	result, err := design.Solve(ctx, v, k, t)
	if err != nil {
		return nil, err
	}

	run := &domain.Run{
		ID:         uuid.New(),
		Kind:       domain.KindDesign,
		Design:     &domain.DesignRun{V: v, K: k, T: t, Blocks: result.Blocks},
		Nodes:      result.Nodes,
		DurationMs: result.Duration.Milliseconds(),
		CreatedAt:  time.Now().UnixNano(),
	}
	if err := s.save(ctx, run); err != nil {
		return nil, err
	}
	return run, nil
}

func (s *Service) save(ctx context.Context, run *domain.Run) error {
	if s.Store == nil {
		return nil
	}
	return s.Store.Save(ctx, run)
}

func (s *Service) Load(ctx context.Context, id uuid.UUID) (*domain.Run, error) {
	if s.Store == nil {
		return nil, errNotConfigured
	}
	return s.Store.Load(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.RunMeta, error) {
	if s.Store == nil {
		return nil, errNotConfigured
	}
	return s.Store.List(ctx)
}
