package profile

import (
	"context"
	"sort"
	"time"

	loanDomain "library-backend/internal/domain/loan"
	studentDomain "library-backend/internal/domain/student"
)

// Usecase is the read model for student dashboards: the profile with
// live-computed fines, and the full transaction history. Reads recompute
// fines on the fly and persist nothing.
type Usecase struct {
	students   studentDomain.Repository
	loans      loanDomain.Repository
	ratePerDay int64
	now        func() time.Time
}

func NewUsecase(students studentDomain.Repository, loans loanDomain.Repository, ratePerDay int64) *Usecase {
	if ratePerDay <= 0 {
		ratePerDay = loanDomain.DefaultRatePerDay
	}
	return &Usecase{
		students:   students,
		loans:      loans,
		ratePerDay: ratePerDay,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

type LoanView struct {
	RecordID   string     `json:"record_id"`
	BookID     string     `json:"book_id"`
	BookTitle  string     `json:"book_title"`
	IssueDate  time.Time  `json:"issue_date"`
	DueDate    time.Time  `json:"due_date"`
	ReturnDate *time.Time `json:"return_date,omitempty"`
	Fine       int64      `json:"fine"`
	Status     string     `json:"status"`
	FinePaid   bool       `json:"fine_paid"`
}

type ProfileDTO struct {
	RegNo     string     `json:"reg_no"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Loans     []LoanView `json:"loans"`
	TotalFine int64      `json:"total_fine"`
}

func (u *Usecase) view(rec *loanDomain.Record, now time.Time) LoanView {
	fine := rec.Fine
	if rec.Status == loanDomain.StatusIssued {
		fine = loanDomain.ComputeFine(rec.DueDate, now, u.ratePerDay)
	}
	return LoanView{
		RecordID:   rec.RecordID,
		BookID:     rec.BookID,
		BookTitle:  rec.BookTitle,
		IssueDate:  rec.IssueDate,
		DueDate:    rec.DueDate,
		ReturnDate: rec.ReturnDate,
		Fine:       fine,
		Status:     string(rec.Status),
		FinePaid:   rec.FinePaid,
	}
}

// Get returns the student's profile. TotalFine sums the outstanding amount
// over all unpaid loans, with still-open loans accruing live.
func (u *Usecase) Get(ctx context.Context, regNo string) (*ProfileDTO, error) {
	s, err := u.students.GetByRegNo(ctx, regNo)
	if err != nil {
		return nil, err
	}
	recs, err := u.loans.ListByStudent(ctx, s.ID)
	if err != nil {
		return nil, err
	}

	now := u.now()
	out := &ProfileDTO{
		RegNo: s.RegNo,
		Name:  s.Name,
		Email: s.Email,
		Role:  string(s.Role),
		Loans: make([]LoanView, 0, len(recs)),
	}
	for i := range recs {
		v := u.view(&recs[i], now)
		if !recs[i].FinePaid {
			out.TotalFine += v.Fine
		}
		out.Loans = append(out.Loans, v)
	}
	return out, nil
}

// History returns every loan of the student, newest first.
func (u *Usecase) History(ctx context.Context, regNo string) ([]LoanView, error) {
	s, err := u.students.GetByRegNo(ctx, regNo)
	if err != nil {
		return nil, err
	}
	recs, err := u.loans.ListByStudent(ctx, s.ID)
	if err != nil {
		return nil, err
	}

	now := u.now()
	out := make([]LoanView, 0, len(recs))
	for i := range recs {
		out = append(out, u.view(&recs[i], now))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].IssueDate.After(out[j].IssueDate) })
	return out, nil
}
