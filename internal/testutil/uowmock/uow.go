package uowmock

import (
	"context"

	domain "library-backend/internal/domain/student"
	"library-backend/internal/domain/uow"
)

// UoW runs transaction bodies directly against the given repos, without a
// real database. Student, when set, is what WithinStudentTx hands to the
// callback; StudentErr simulates the lock lookup failing.
type UoW struct {
	Repos      uow.Repos
	Student    *domain.Student
	StudentErr error
}

func (u *UoW) WithinTx(_ context.Context, fn func(r uow.Repos) error) error {
	return fn(u.Repos)
}

func (u *UoW) WithinStudentTx(_ context.Context, regNo string, fn func(r uow.Repos, s *domain.Student) error) error {
	if u.StudentErr != nil {
		return u.StudentErr
	}
	if u.Student == nil {
		return domain.ErrNotFound
	}
	if u.Student.RegNo != regNo {
		return domain.ErrNotFound
	}
	return fn(u.Repos, u.Student)
}
