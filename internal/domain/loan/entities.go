package loan

import (
	"errors"
	"time"
)

var (
	ErrRecordNotFound  = errors.New("loan record not found")
	ErrAlreadyReturned = errors.New("this book has already been returned")

	// ErrUnpaidFines gates new issues: a student with any outstanding fine
	// cannot borrow until every fine is cleared.
	ErrUnpaidFines = errors.New("student has unpaid fines, cannot issue a new book")
)

type Status string

const (
	StatusIssued   Status = "issued"
	StatusReturned Status = "returned"
)

// Record is one book issued to one student. Records are normalized into
// their own table rather than embedded in the student document; record_id
// is unique per student and status/book_id are indexed for the sweep.
//
// BookTitle is a snapshot taken at issue time so history survives catalog
// edits and deletions; BookID is a lookup reference, not ownership.
type Record struct {
	ID        uint64 `gorm:"primaryKey;column:id" json:"-"`
	RecordID  string `gorm:"column:record_id;size:32;uniqueIndex:ux_loans_student_record,priority:2" json:"record_id"`
	StudentID uint64 `gorm:"column:student_id;not null;uniqueIndex:ux_loans_student_record,priority:1;index:idx_loans_student" json:"-"`
	BookID    string `gorm:"column:book_id;size:32;index:idx_loans_book" json:"book_id"`
	BookTitle string `gorm:"column:book_title;size:255" json:"book_title"`

	IssueDate  time.Time  `gorm:"column:issue_date;not null" json:"issue_date"`
	DueDate    time.Time  `gorm:"column:due_date;not null;index:idx_loans_due" json:"due_date"`
	ReturnDate *time.Time `gorm:"column:return_date" json:"return_date,omitempty"`

	// Fine is authoritative only once Status is returned; while the loan is
	// open it holds the last frozen value (zero until return) and readers
	// recompute the live figure from DueDate.
	Fine     int64  `gorm:"column:fine;not null;default:0" json:"fine"`
	Status   Status `gorm:"column:status;size:16;not null;default:'issued';index:idx_loans_status" json:"status"`
	FinePaid bool   `gorm:"column:fine_paid;not null;default:false" json:"fine_paid"`

	// OverdueEmailSent flips false->true at most once; it is the idempotency
	// guard for the overdue sweep.
	OverdueEmailSent bool `gorm:"column:overdue_email_sent;not null;default:false" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Record) TableName() string { return "loans" }

// Outstanding reports the unpaid amount owed on this record as of asOf:
// the frozen fine for returned records, the live accrual for open ones.
// Paid records owe nothing.
func (r *Record) Outstanding(asOf time.Time, ratePerDay int64) int64 {
	if r.FinePaid {
		return 0
	}
	if r.Status == StatusReturned {
		return r.Fine
	}
	return ComputeFine(r.DueDate, asOf, ratePerDay)
}
