package account

import (
	"context"
	"crypto/subtle"

	studentDomain "library-backend/internal/domain/student"
)

// Usecase covers registration and the credential check. Credentials are
// opaque values compared verbatim; hardening them is out of scope for this
// system.
type Usecase struct {
	students studentDomain.Repository
}

func NewUsecase(students studentDomain.Repository) *Usecase {
	return &Usecase{students: students}
}

type RegisterInput struct {
	RegNo    string
	Name     string
	Email    string
	Password string
	Role     string
}

type AccountDTO struct {
	RegNo string `json:"reg_no"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*AccountDTO, error) {
	role := studentDomain.Role(in.Role)
	switch role {
	case studentDomain.RoleLibrarian, studentDomain.RoleAdmin:
	default:
		role = studentDomain.RoleStudent
	}

	if _, err := u.students.GetByRegNo(ctx, in.RegNo); err == nil {
		return nil, studentDomain.ErrAlreadyExists
	}

	s := &studentDomain.Student{
		RegNo:    in.RegNo,
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Role:     role,
	}
	if err := u.students.Create(ctx, s); err != nil {
		return nil, err
	}
	return &AccountDTO{RegNo: s.RegNo, Name: s.Name, Email: s.Email, Role: string(s.Role)}, nil
}

func (u *Usecase) Login(ctx context.Context, regNo, password string) (*AccountDTO, error) {
	s, err := u.students.GetByRegNo(ctx, regNo)
	if err != nil {
		return nil, studentDomain.ErrBadCredential
	}
	if subtle.ConstantTimeCompare([]byte(s.Password), []byte(password)) != 1 {
		return nil, studentDomain.ErrBadCredential
	}
	return &AccountDTO{RegNo: s.RegNo, Name: s.Name, Email: s.Email, Role: string(s.Role)}, nil
}
