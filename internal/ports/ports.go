// Package ports defines the interfaces the usecase layer depends on.
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/raaphorst/dlxgo/internal/domain"
)

// Store persists and retrieves solved runs as JSON.
type Store interface {
	Save(ctx context.Context, run *domain.Run) error
	Load(ctx context.Context, id uuid.UUID) (*domain.Run, error)
	List(ctx context.Context) ([]domain.RunMeta, error)
}
