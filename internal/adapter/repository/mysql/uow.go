package mysql

import (
	"context"

	"library-backend/internal/domain/student"
	"library-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Books:    &BookRepository{db: tx},
		Students: &StudentRepository{db: tx},
		Loans:    &LoanRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinStudentTx(ctx context.Context, regNo string, fn func(r uow.Repos, s *student.Student) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the student row up-front to serialize issue/return/settle
		// against each other for the same student
		s, err := r.Students.GetByRegNoForUpdate(ctx, regNo)
		if err != nil {
			return err
		}
		return fn(r, s)
	})
}
