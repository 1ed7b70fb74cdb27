package student

import "context"

type Repository interface {
	Create(ctx context.Context, s *Student) error
	GetByID(ctx context.Context, id uint64) (*Student, error)
	GetByRegNo(ctx context.Context, regNo string) (*Student, error)
	// GetByRegNoForUpdate locks the student row for the duration of the
	// surrounding transaction.
	GetByRegNoForUpdate(ctx context.Context, regNo string) (*Student, error)
	Save(ctx context.Context, s *Student) error
}
