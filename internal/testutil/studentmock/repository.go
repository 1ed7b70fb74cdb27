package studentmock

import (
	"context"

	domain "library-backend/internal/domain/student"
)

// Repo is a function-backed mock that satisfies student.Repository.
type Repo struct {
	CreateFn              func(ctx context.Context, s *domain.Student) error
	GetByIDFn             func(ctx context.Context, id uint64) (*domain.Student, error)
	GetByRegNoFn          func(ctx context.Context, regNo string) (*domain.Student, error)
	GetByRegNoForUpdateFn func(ctx context.Context, regNo string) (*domain.Student, error)
	SaveFn                func(ctx context.Context, s *domain.Student) error
}

func (m *Repo) Create(ctx context.Context, s *domain.Student) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Student, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByRegNo(ctx context.Context, regNo string) (*domain.Student, error) {
	if m.GetByRegNoFn != nil {
		return m.GetByRegNoFn(ctx, regNo)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByRegNoForUpdate(ctx context.Context, regNo string) (*domain.Student, error) {
	if m.GetByRegNoForUpdateFn != nil {
		return m.GetByRegNoForUpdateFn(ctx, regNo)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, s *domain.Student) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}
