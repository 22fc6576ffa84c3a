package form

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ameypusalkar001/EPMATest/internal/dto"
)

// Accumulator stores submitted records in submission order.
type Accumulator interface {
	Submit(ctx context.Context, rec dto.EmployeeRecord) (int, error)
	List(ctx context.Context) ([]dto.EmployeeRecord, error)
	Get(ctx context.Context, index int) (*dto.EmployeeRecord, error)
	Count(ctx context.Context) (int, error)
}

// Edit sets one field of the draft.
type Edit struct {
	Name  string
	Value string
}

// Session is the process-wide form state: one draft plus the records
// submitted so far. Every operation runs to completion before the next one
// starts.
type Session struct {
	mu      sync.Mutex
	draft   *Draft
	records Accumulator
	logger  zerolog.Logger
}

func NewSession(records Accumulator, logger zerolog.Logger) *Session {
	return &Session{
		draft:   NewDraft(),
		records: records,
		logger:  logger,
	}
}

func (s *Session) SetField(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.draft.SetField(name, value)
}

func (s *Session) Draft() dto.EmployeeRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.draft.Snapshot()
}

// Cancel resets the draft to its defaults.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft.Reset()
}

// Submit applies edits to the draft, then moves the draft into the
// submitted records and starts a fresh one.
//
// When a widget constraint fails the edits stay applied, nothing is
// recorded, and the returned error is a Violations. An edit naming an
// unknown field fails before any edit is applied.
func (s *Session) Submit(ctx context.Context, edits ...Edit) (int, dto.EmployeeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.draft.Snapshot()
	for _, e := range edits {
		var err error
		if next, err = next.With(e.Name, e.Value); err != nil {
			return 0, dto.EmployeeRecord{}, err
		}
	}
	s.draft.rec = next

	if err := CheckConstraints(next); err != nil {
		var violations Violations
		if errors.As(err, &violations) {
			s.logger.Debug().Interface("violations", violations).Msg("submission blocked")
		}
		return 0, next, err
	}

	index, err := s.records.Submit(ctx, next)
	if err != nil {
		return 0, next, fmt.Errorf("records.Submit: %w", err)
	}
	s.draft.Reset()

	s.logger.Info().
		Int("index", index).
		Interface("employee", next).
		Msg("employee details submitted")

	return index, next, nil
}

func (s *Session) Records(ctx context.Context) ([]dto.EmployeeRecord, error) {
	return s.records.List(ctx)
}

func (s *Session) Record(ctx context.Context, index int) (*dto.EmployeeRecord, error) {
	return s.records.Get(ctx, index)
}

// Submitted reports how many records have been submitted so far.
func (s *Session) Submitted(ctx context.Context) (int, error) {
	return s.records.Count(ctx)
}
