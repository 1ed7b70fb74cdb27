package uow

import (
	"context"

	"library-backend/internal/domain/book"
	"library-backend/internal/domain/loan"
	"library-backend/internal/domain/student"
)

type Repos struct {
	Books    book.Repository
	Students student.Repository
	Loans    loan.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the student row first, then pass it in
	WithinStudentTx(ctx context.Context, regNo string, fn func(r Repos, s *student.Student) error) error
}
