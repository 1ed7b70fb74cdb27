package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	studentDomain "library-backend/internal/domain/student"
	"library-backend/internal/testutil/studentmock"
)

func repoWith(existing map[string]*studentDomain.Student) *studentmock.Repo {
	return &studentmock.Repo{
		GetByRegNoFn: func(ctx context.Context, regNo string) (*studentDomain.Student, error) {
			if s, ok := existing[regNo]; ok {
				return s, nil
			}
			return nil, studentDomain.ErrNotFound
		},
		CreateFn: func(ctx context.Context, s *studentDomain.Student) error {
			existing[s.RegNo] = s
			return nil
		},
	}
}

func TestRegister_DefaultsToStudentRole(t *testing.T) {
	uc := NewUsecase(repoWith(map[string]*studentDomain.Student{}))

	dto, err := uc.Register(context.Background(), RegisterInput{
		RegNo: "21BCE1001", Name: "Asha", Email: "asha@example.edu", Password: "pw", Role: "superuser",
	})
	require.NoError(t, err)
	require.Equal(t, "student", dto.Role, "unknown roles collapse to student")
}

func TestRegister_StaffRoles(t *testing.T) {
	uc := NewUsecase(repoWith(map[string]*studentDomain.Student{}))

	dto, err := uc.Register(context.Background(), RegisterInput{
		RegNo: "LIB001", Name: "Lee", Email: "lee@example.edu", Password: "pw", Role: "librarian",
	})
	require.NoError(t, err)
	require.Equal(t, "librarian", dto.Role)
}

func TestRegister_DuplicateRegNo(t *testing.T) {
	existing := map[string]*studentDomain.Student{
		"21BCE1001": {RegNo: "21BCE1001"},
	}
	uc := NewUsecase(repoWith(existing))

	_, err := uc.Register(context.Background(), RegisterInput{
		RegNo: "21BCE1001", Name: "Asha", Email: "a@example.edu", Password: "pw",
	})
	require.ErrorIs(t, err, studentDomain.ErrAlreadyExists)
}

func TestLogin(t *testing.T) {
	existing := map[string]*studentDomain.Student{
		"21BCE1001": {RegNo: "21BCE1001", Name: "Asha", Password: "secret", Role: studentDomain.RoleStudent},
	}
	uc := NewUsecase(repoWith(existing))

	dto, err := uc.Login(context.Background(), "21BCE1001", "secret")
	require.NoError(t, err)
	require.Equal(t, "Asha", dto.Name)

	_, err = uc.Login(context.Background(), "21BCE1001", "wrong")
	require.ErrorIs(t, err, studentDomain.ErrBadCredential)

	// unknown reg no yields the same error as a bad password
	_, err = uc.Login(context.Background(), "00XXX0000", "secret")
	require.ErrorIs(t, err, studentDomain.ErrBadCredential)
}
