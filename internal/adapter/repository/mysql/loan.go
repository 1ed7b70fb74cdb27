package mysql

import (
	"context"
	"errors"
	"time"

	loanDomain "library-backend/internal/domain/loan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, rec *loanDomain.Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *LoanRepository) Save(ctx context.Context, rec *loanDomain.Record) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *LoanRepository) GetByRecordID(ctx context.Context, studentID uint64, recordID string) (*loanDomain.Record, error) {
	var out loanDomain.Record
	res := r.db.WithContext(ctx).
		Where("student_id = ? AND record_id = ?", studentID, recordID).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrRecordNotFound
	}
	return &out, res.Error
}

func (r *LoanRepository) GetByRecordIDForUpdate(ctx context.Context, studentID uint64, recordID string) (*loanDomain.Record, error) {
	var out loanDomain.Record
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("student_id = ? AND record_id = ?", studentID, recordID).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrRecordNotFound
	}
	return &out, res.Error
}

func (r *LoanRepository) ListByStudent(ctx context.Context, studentID uint64) ([]loanDomain.Record, error) {
	var out []loanDomain.Record
	res := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListUnpaidByStudent(ctx context.Context, studentID uint64) ([]loanDomain.Record, error) {
	var out []loanDomain.Record
	res := r.db.WithContext(ctx).
		Where("student_id = ? AND fine_paid = ?", studentID, false).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

// ListOverdueUnnotified feeds the sweep: open loans past due whose one-time
// notice is still pending. status and due_date are indexed, so this is not
// a full scan.
func (r *LoanRepository) ListOverdueUnnotified(ctx context.Context, now time.Time) ([]loanDomain.Record, error) {
	var out []loanDomain.Record
	res := r.db.WithContext(ctx).
		Where("status = ? AND overdue_email_sent = ? AND due_date < ?",
			loanDomain.StatusIssued, false, now).
		Order("student_id ASC, id ASC").
		Find(&out)
	return out, res.Error
}
