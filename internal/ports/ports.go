package ports

import (
	"context"
	"errors"
	"time"

	"svw.info/phitinh/internal/domain"
)

// ErrNotFound is returned by every Storage when no chart has the given ID.
var ErrNotFound = errors.New("chart not found")

// Stats captures performance characteristics of an operation.
type Stats struct {
	Charts   int
	Cached   bool
	Duration time.Duration
}

// Validator checks that a star grid is a permutation of 1..9.
type Validator interface {
	Validate(ctx context.Context, g domain.BoardGrid) (ok bool, conflicts []domain.CellCoord, err error)
}

// Storage persists chart queries.
type Storage interface {
	Save(ctx context.Context, c *domain.Chart) error
	Load(ctx context.Context, id string) (*domain.Chart, error)
	List(ctx context.Context) ([]domain.ChartMeta, error)
	Delete(ctx context.Context, id string) error
}

// Cache stores encoded chart results. A miss is (nil, false, nil).
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte) error
}
