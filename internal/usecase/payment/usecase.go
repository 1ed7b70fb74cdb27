package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	loanDomain "library-backend/internal/domain/loan"
	"library-backend/internal/domain/student"
	"library-backend/internal/domain/uow"
	"library-backend/internal/metrics"
	"library-backend/internal/notify"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidSignature   = errors.New("payment signature verification failed")
	ErrNothingOutstanding = errors.New("student has no outstanding fines")
)

// Usecase creates gateway orders for a student's outstanding fines and
// settles them once the gateway's signed confirmation comes back.
type Usecase struct {
	uow        uow.UnitOfWork
	notifier   notify.Notifier
	log        *zap.Logger
	keyID      string
	keySecret  []byte
	ratePerDay int64
	now        func() time.Time
}

func NewUsecase(u uow.UnitOfWork, n notify.Notifier, log *zap.Logger, keyID, keySecret string, ratePerDay int64) *Usecase {
	if ratePerDay <= 0 {
		ratePerDay = loanDomain.DefaultRatePerDay
	}
	return &Usecase{
		uow:        u,
		notifier:   n,
		log:        log,
		keyID:      keyID,
		keySecret:  []byte(keySecret),
		ratePerDay: ratePerDay,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

type OrderDTO struct {
	OrderRef    string `json:"order_ref"`
	AmountMinor int64  `json:"amount_minor"`
	Currency    string `json:"currency"`
	KeyID       string `json:"key_id"`
}

// CreateOrder totals the student's live outstanding fines and returns an
// order the client hands to the gateway. Amount is in paise.
func (u *Usecase) CreateOrder(ctx context.Context, regNo string) (*OrderDTO, error) {
	now := u.now()
	var total int64

	err := u.uow.WithinStudentTx(ctx, regNo, func(r uow.Repos, s *student.Student) error {
		unpaid, err := r.Loans.ListUnpaidByStudent(ctx, s.ID)
		if err != nil {
			return err
		}
		for i := range unpaid {
			total += unpaid[i].Outstanding(now, u.ratePerDay)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if total <= 0 {
		return nil, ErrNothingOutstanding
	}

	return &OrderDTO{
		OrderRef:    "order_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		AmountMinor: total * 100,
		Currency:    "INR",
		KeyID:       u.keyID,
	}, nil
}

type VerifyInput struct {
	RegNo      string
	OrderRef   string
	PaymentRef string
	Signature  string
}

type SettlementResult struct {
	TotalPaid    int64 `json:"total_paid"`
	LoansSettled int   `json:"loans_settled"`
}

// Verify checks the gateway signature and, on success, clears every
// outstanding fine of the student: each fine-bearing loan is marked paid,
// its held copy is restocked, and a loan the student never returned is
// auto-closed. All of it commits as one transaction.
func (u *Usecase) Verify(ctx context.Context, in VerifyInput) (*SettlementResult, error) {
	if !u.signatureValid(in.OrderRef, in.PaymentRef, in.Signature) {
		return nil, ErrInvalidSignature
	}

	now := u.now()
	var (
		result       SettlementResult
		studentEmail string
	)

	err := u.uow.WithinStudentTx(ctx, in.RegNo, func(r uow.Repos, s *student.Student) error {
		studentEmail = s.Email
		unpaid, err := r.Loans.ListUnpaidByStudent(ctx, s.ID)
		if err != nil {
			return err
		}
		for i := range unpaid {
			rec := &unpaid[i]
			fine := rec.Outstanding(now, u.ratePerDay)
			if fine <= 0 {
				continue
			}

			rec.Fine = fine
			rec.FinePaid = true
			if rec.Status == loanDomain.StatusIssued {
				// paid without returning first: close the loan now
				rec.Status = loanDomain.StatusReturned
				rec.ReturnDate = &now
			}
			if err := r.Loans.Save(ctx, rec); err != nil {
				return err
			}

			// the restock withheld at return time
			restocked, err := r.Books.IncrementAvailable(ctx, rec.BookID)
			if err != nil {
				return err
			}
			if !restocked {
				u.log.Warn("settlement restock clamped at total copies",
					zap.String("book_id", rec.BookID),
					zap.String("record_id", rec.RecordID))
			}

			result.TotalPaid += fine
			result.LoansSettled++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.LoansSettled > 0 {
		metrics.FinesSettled.Add(float64(result.LoansSettled))
		metrics.FineAmountSettled.Add(float64(result.TotalPaid))
	}
	if result.TotalPaid > 0 {
		u.sendBestEffort(ctx, studentEmail, "Payment received",
			fmt.Sprintf("Your payment of Rs. %d has been received. All outstanding fines are cleared.", result.TotalPaid))
	}
	return &result, nil
}

// signatureValid recomputes HMAC-SHA256(secret, orderRef + "|" + paymentRef)
// and compares it to the supplied hex signature in constant time.
func (u *Usecase) signatureValid(orderRef, paymentRef, signature string) bool {
	mac := hmac.New(sha256.New, u.keySecret)
	mac.Write([]byte(orderRef + "|" + paymentRef))
	expected := mac.Sum(nil)

	supplied, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(expected, supplied)
}

func (u *Usecase) sendBestEffort(ctx context.Context, to, subject, body string) {
	if u.notifier == nil || to == "" {
		return
	}
	if err := u.notifier.Send(ctx, to, subject, body); err != nil {
		u.log.Warn("notification failed", zap.String("to", to), zap.String("subject", subject), zap.Error(err))
	}
}
