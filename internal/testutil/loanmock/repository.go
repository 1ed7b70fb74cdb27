package loanmock

import (
	"context"
	"time"

	domain "library-backend/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies loan.Repository.
type Repo struct {
	CreateFn                 func(ctx context.Context, r *domain.Record) error
	GetByRecordIDFn          func(ctx context.Context, studentID uint64, recordID string) (*domain.Record, error)
	GetByRecordIDForUpdateFn func(ctx context.Context, studentID uint64, recordID string) (*domain.Record, error)
	ListByStudentFn          func(ctx context.Context, studentID uint64) ([]domain.Record, error)
	ListUnpaidByStudentFn    func(ctx context.Context, studentID uint64) ([]domain.Record, error)
	ListOverdueUnnotifiedFn  func(ctx context.Context, now time.Time) ([]domain.Record, error)
	SaveFn                   func(ctx context.Context, r *domain.Record) error
}

func (m *Repo) Create(ctx context.Context, r *domain.Record) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByRecordID(ctx context.Context, studentID uint64, recordID string) (*domain.Record, error) {
	if m.GetByRecordIDFn != nil {
		return m.GetByRecordIDFn(ctx, studentID, recordID)
	}
	return nil, domain.ErrRecordNotFound
}

func (m *Repo) GetByRecordIDForUpdate(ctx context.Context, studentID uint64, recordID string) (*domain.Record, error) {
	if m.GetByRecordIDForUpdateFn != nil {
		return m.GetByRecordIDForUpdateFn(ctx, studentID, recordID)
	}
	return nil, domain.ErrRecordNotFound
}

func (m *Repo) ListByStudent(ctx context.Context, studentID uint64) ([]domain.Record, error) {
	if m.ListByStudentFn != nil {
		return m.ListByStudentFn(ctx, studentID)
	}
	return nil, nil
}

func (m *Repo) ListUnpaidByStudent(ctx context.Context, studentID uint64) ([]domain.Record, error) {
	if m.ListUnpaidByStudentFn != nil {
		return m.ListUnpaidByStudentFn(ctx, studentID)
	}
	return nil, nil
}

func (m *Repo) ListOverdueUnnotified(ctx context.Context, now time.Time) ([]domain.Record, error) {
	if m.ListOverdueUnnotifiedFn != nil {
		return m.ListOverdueUnnotifiedFn(ctx, now)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, r *domain.Record) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}
