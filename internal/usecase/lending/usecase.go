package lending

import (
	"context"
	"fmt"
	"time"

	loanDomain "library-backend/internal/domain/loan"
	"library-backend/internal/domain/student"
	"library-backend/internal/domain/uow"
	"library-backend/internal/metrics"
	"library-backend/internal/notify"
	"library-backend/pkg/id"

	"go.uber.org/zap"
)

// Usecase drives the lending state machine: Issue and Return. Both run
// inside a student-locked transaction so the eligibility/stock checks and
// the mutations they guard cannot interleave with a concurrent request for
// the same student.
type Usecase struct {
	uow        uow.UnitOfWork
	notifier   notify.Notifier
	log        *zap.Logger
	ratePerDay int64
	loanPeriod time.Duration
	now        func() time.Time
}

func NewUsecase(u uow.UnitOfWork, n notify.Notifier, log *zap.Logger, ratePerDay int64, loanPeriod time.Duration) *Usecase {
	if ratePerDay <= 0 {
		ratePerDay = loanDomain.DefaultRatePerDay
	}
	if loanPeriod <= 0 {
		loanPeriod = loanDomain.DefaultPeriod
	}
	return &Usecase{
		uow:        u,
		notifier:   n,
		log:        log,
		ratePerDay: ratePerDay,
		loanPeriod: loanPeriod,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

type IssueInput struct {
	RegNo   string
	BookID  string
	DueDate *time.Time
}

type LoanDTO struct {
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

func toDTO(rec *loanDomain.Record) *LoanDTO {
	return &LoanDTO{
		RecordID:   rec.RecordID,
		BookID:     rec.BookID,
		BookTitle:  rec.BookTitle,
		IssueDate:  rec.IssueDate,
		DueDate:    rec.DueDate,
		ReturnDate: rec.ReturnDate,
		Fine:       rec.Fine,
		Status:     string(rec.Status),
		FinePaid:   rec.FinePaid,
	}
}

// Issue lends a book to a student. It rejects when the student has any
// outstanding fine (on any loan, not just this book) or when no copy is
// available. On success exactly one copy has been taken and exactly one
// issued record exists.
func (u *Usecase) Issue(ctx context.Context, in IssueInput) (*LoanDTO, error) {
	now := u.now()
	var (
		rec          *loanDomain.Record
		studentEmail string
	)

	err := u.uow.WithinStudentTx(ctx, in.RegNo, func(r uow.Repos, s *student.Student) error {
		unpaid, err := r.Loans.ListUnpaidByStudent(ctx, s.ID)
		if err != nil {
			return err
		}
		for i := range unpaid {
			if unpaid[i].Outstanding(now, u.ratePerDay) > 0 {
				return loanDomain.ErrUnpaidFines
			}
		}

		b, err := r.Books.GetByBookID(ctx, in.BookID)
		if err != nil {
			return err
		}
		// check-and-take is a single conditional update; a lost race
		// surfaces here as ErrOutOfStock rather than oversell
		if err := r.Books.DecrementAvailable(ctx, in.BookID); err != nil {
			return err
		}

		due := now.Add(u.loanPeriod)
		if in.DueDate != nil {
			due = in.DueDate.UTC()
		}
		rec = &loanDomain.Record{
			RecordID:  id.NewID32(),
			StudentID: s.ID,
			BookID:    b.BookID,
			BookTitle: b.Title,
			IssueDate: now,
			DueDate:   due,
			Status:    loanDomain.StatusIssued,
		}
		studentEmail = s.Email
		return r.Loans.Create(ctx, rec)
	})
	if err != nil {
		return nil, err
	}

	metrics.BooksIssued.Inc()
	u.sendBestEffort(ctx, studentEmail, "Book issued: "+rec.BookTitle,
		fmt.Sprintf("%q has been issued to you. Due date: %s.", rec.BookTitle, rec.DueDate.Format("02 Jan 2006")))
	return toDTO(rec), nil
}

type ReturnInput struct {
	RegNo    string
	RecordID string
}

type ReturnResult struct {
	Record *LoanDTO `json:"record"`
	Fine   int64    `json:"fine"`
}

// Return closes an open loan, freezing its fine as of now. The copy goes
// back on the shelf only when the frozen fine is zero; a fine-bearing
// return leaves the copy logically held until payment settles the debt.
func (u *Usecase) Return(ctx context.Context, in ReturnInput) (*ReturnResult, error) {
	now := u.now()
	var rec *loanDomain.Record

	err := u.uow.WithinStudentTx(ctx, in.RegNo, func(r uow.Repos, s *student.Student) error {
		var err error
		rec, err = r.Loans.GetByRecordIDForUpdate(ctx, s.ID, in.RecordID)
		if err != nil {
			return err
		}
		if rec.Status == loanDomain.StatusReturned {
			return loanDomain.ErrAlreadyReturned
		}

		fine := loanDomain.ComputeFine(rec.DueDate, now, u.ratePerDay)
		rec.Status = loanDomain.StatusReturned
		rec.ReturnDate = &now
		rec.Fine = fine
		if err := r.Loans.Save(ctx, rec); err != nil {
			return err
		}

		if fine == 0 {
			restocked, err := r.Books.IncrementAvailable(ctx, rec.BookID)
			if err != nil {
				return err
			}
			if !restocked {
				u.log.Warn("restock clamped at total copies",
					zap.String("book_id", rec.BookID),
					zap.String("record_id", rec.RecordID))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.BooksReturned.Inc()
	return &ReturnResult{Record: toDTO(rec), Fine: rec.Fine}, nil
}

// sendBestEffort delivers a notice without letting delivery failures touch
// the outcome of the transaction that triggered it.
func (u *Usecase) sendBestEffort(ctx context.Context, to, subject, body string) {
	if u.notifier == nil || to == "" {
		return
	}
	if err := u.notifier.Send(ctx, to, subject, body); err != nil {
		u.log.Warn("notification failed", zap.String("to", to), zap.String("subject", subject), zap.Error(err))
	}
}
