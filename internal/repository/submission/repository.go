package submission

import (
	"context"
	"sync"

	"github.com/ameypusalkar001/EPMATest/internal/dto"
)

// Repository is the in-memory, append-only list of submitted records.
// Records keep submission order and are never changed after Submit.
type Repository struct {
	mu      sync.RWMutex
	records []dto.EmployeeRecord
}

func NewRepository() *Repository {
	return &Repository{}
}

// Submit appends a copy of rec and returns its index.
func (r *Repository) Submit(ctx context.Context, rec dto.EmployeeRecord) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, rec)

	return len(r.records) - 1, nil
}

// List returns every record in submission order. The slice is a copy.
func (r *Repository) List(ctx context.Context) ([]dto.EmployeeRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]dto.EmployeeRecord, len(r.records))
	copy(out, r.records)

	return out, nil
}

func (r *Repository) Get(ctx context.Context, index int) (*dto.EmployeeRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if index < 0 || index >= len(r.records) {
		return nil, dto.ErrNotFound
	}
	rec := r.records[index]

	return &rec, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.records), nil
}
