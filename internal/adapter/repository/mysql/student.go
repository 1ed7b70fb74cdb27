package mysql

import (
	"context"
	"errors"

	studentDomain "library-backend/internal/domain/student"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StudentRepository struct{ db *gorm.DB }

func NewStudentRepository(db *gorm.DB) *StudentRepository { return &StudentRepository{db: db} }

func (r *StudentRepository) Create(ctx context.Context, s *studentDomain.Student) error {
	err := r.db.WithContext(ctx).Create(s).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return studentDomain.ErrAlreadyExists
	}
	return err
}

func (r *StudentRepository) GetByID(ctx context.Context, id uint64) (*studentDomain.Student, error) {
	var out studentDomain.Student
	res := r.db.WithContext(ctx).First(&out, id)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, studentDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *StudentRepository) GetByRegNo(ctx context.Context, regNo string) (*studentDomain.Student, error) {
	var out studentDomain.Student
	res := r.db.WithContext(ctx).Where("reg_no = ?", regNo).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, studentDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *StudentRepository) GetByRegNoForUpdate(ctx context.Context, regNo string) (*studentDomain.Student, error) {
	var out studentDomain.Student
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("reg_no = ?", regNo).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, studentDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *StudentRepository) Save(ctx context.Context, s *studentDomain.Student) error {
	return r.db.WithContext(ctx).Save(s).Error
}
