package overdue

import (
	"context"
	"fmt"
	"time"

	loanDomain "library-backend/internal/domain/loan"
	studentDomain "library-backend/internal/domain/student"
	"library-backend/internal/metrics"
	"library-backend/internal/notify"

	"go.uber.org/zap"
)

// DefaultInterval bounds notification latency without hammering the store.
const DefaultInterval = 10 * time.Minute

// Sweeper periodically scans open loans past their due date and sends a
// one-time overdue notice per loan. The overdue_email_sent flag is the
// idempotency guard: it flips after a successful send, so a pass that dies
// mid-way retries the send on the next tick instead of losing it.
//
// The sweep mutates nothing else; fines stay live-computed until return.
type Sweeper struct {
	loans      loanDomain.Repository
	students   studentDomain.Repository
	notifier   notify.Notifier
	log        *zap.Logger
	ratePerDay int64
	now        func() time.Time
}

func NewSweeper(loans loanDomain.Repository, students studentDomain.Repository, n notify.Notifier, log *zap.Logger, ratePerDay int64) *Sweeper {
	if ratePerDay <= 0 {
		ratePerDay = loanDomain.DefaultRatePerDay
	}
	return &Sweeper{
		loans:      loans,
		students:   students,
		notifier:   n,
		log:        log,
		ratePerDay: ratePerDay,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Start runs the sweep every interval until ctx is cancelled. Errors end
// the pass cleanly and the next tick retries; they never escape the loop.
func (s *Sweeper) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	s.log.Info("overdue sweeper started", zap.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			s.log.Info("overdue sweeper stopped")
			return
		case <-t.C:
			if err := s.RunOnce(ctx); err != nil {
				metrics.SweepErrors.Inc()
				s.log.Error("overdue sweep pass failed", zap.Error(err))
			}
		}
	}
}

// RunOnce is one sweep pass. A failure for one student's loans is logged
// and skipped; the rest of the pass continues.
func (s *Sweeper) RunOnce(ctx context.Context) error {
	now := s.now()
	due, err := s.loans.ListOverdueUnnotified(ctx, now)
	if err != nil {
		return fmt.Errorf("list overdue loans: %w", err)
	}

	// cache student lookups; the list comes back grouped by student
	emails := make(map[uint64]string)
	for i := range due {
		rec := &due[i]
		if err := s.notifyOne(ctx, rec, now, emails); err != nil {
			metrics.SweepErrors.Inc()
			s.log.Warn("overdue notice skipped",
				zap.String("record_id", rec.RecordID),
				zap.Uint64("student_id", rec.StudentID),
				zap.Error(err))
		}
	}
	return nil
}

func (s *Sweeper) notifyOne(ctx context.Context, rec *loanDomain.Record, now time.Time, emails map[uint64]string) error {
	email, ok := emails[rec.StudentID]
	if !ok {
		st, err := s.students.GetByID(ctx, rec.StudentID)
		if err != nil {
			return fmt.Errorf("resolve student: %w", err)
		}
		email = st.Email
		emails[rec.StudentID] = email
	}

	fine := loanDomain.ComputeFine(rec.DueDate, now, s.ratePerDay)
	body := fmt.Sprintf("%q was due on %s. Your fine so far is Rs. %d and grows by Rs. %d per day until the book is returned.",
		rec.BookTitle, rec.DueDate.Format("02 Jan 2006"), fine, s.ratePerDay)
	if err := s.notifier.Send(ctx, email, "Overdue book: "+rec.BookTitle, body); err != nil {
		return fmt.Errorf("send notice: %w", err)
	}

	rec.OverdueEmailSent = true
	if err := s.loans.Save(ctx, rec); err != nil {
		// flag not persisted: the next pass will re-send, which beats
		// silently never notifying
		return fmt.Errorf("persist notice flag: %w", err)
	}
	metrics.OverdueNoticesSent.Inc()
	return nil
}
