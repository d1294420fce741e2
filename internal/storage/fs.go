// Package storage persists solved runs as JSON files, adapted from the
// teacher's internal/infrastructure/storage/fs.go (which bucketed puzzles
// by difficulty under a base directory) to bucket runs by collaborator
// kind instead.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/raaphorst/dlxgo/internal/domain"
)

type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func kindDir(k domain.Kind) string {
	if k == domain.KindDesign {
		return "design"
	}
	return "sudoku"
}

func (s *FS) pathFor(id uuid.UUID, k domain.Kind) string {
	return filepath.Join(s.dir, kindDir(k), id.String()+".json")
}

func (s *FS) Save(ctx context.Context, run *domain.Run) error {
	if run == nil || run.ID == uuid.Nil {
		return errors.New("storage: run missing id")
	}
	target := s.pathFor(run.ID, run.Kind)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(run)
}

func (s *FS) Load(ctx context.Context, id uuid.UUID) (*domain.Run, error) {
	for _, k := range []domain.Kind{domain.KindSudoku, domain.KindDesign} {
		path := s.pathFor(id, k)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		var out domain.Run
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}
	return nil, os.ErrNotExist
}

func (s *FS) List(ctx context.Context) ([]domain.RunMeta, error) {
	var out []domain.RunMeta
	for _, k := range []domain.Kind{domain.KindSudoku, domain.KindDesign} {
		bucket := filepath.Join(s.dir, kindDir(k))
		ents, err := os.ReadDir(bucket)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(bucket, e.Name()))
			if err != nil {
				continue
			}
			var run domain.Run
			if err := json.Unmarshal(data, &run); err != nil || run.ID == uuid.Nil {
				continue
			}
			out = append(out, domain.RunMeta{ID: run.ID, Kind: run.Kind, CreatedAt: run.CreatedAt})
		}
	}
	return out, nil
}
