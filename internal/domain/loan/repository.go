package loan

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, r *Record) error
	// GetByRecordID resolves a record within one student's loans.
	GetByRecordID(ctx context.Context, studentID uint64, recordID string) (*Record, error)
	GetByRecordIDForUpdate(ctx context.Context, studentID uint64, recordID string) (*Record, error)
	// ListByStudent returns every loan of the student in creation order.
	ListByStudent(ctx context.Context, studentID uint64) ([]Record, error)
	// ListUnpaidByStudent returns loans with fine_paid = false, creation order.
	ListUnpaidByStudent(ctx context.Context, studentID uint64) ([]Record, error)
	// ListOverdueUnnotified returns open loans past due as of now whose
	// overdue notice has not been sent yet.
	ListOverdueUnnotified(ctx context.Context, now time.Time) ([]Record, error)
	Save(ctx context.Context, r *Record) error
}
