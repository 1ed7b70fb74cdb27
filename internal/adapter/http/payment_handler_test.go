package http

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	stdhttp "net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	loanDomain "library-backend/internal/domain/loan"
	studentDomain "library-backend/internal/domain/student"
	"library-backend/internal/domain/uow"
	"library-backend/internal/testutil/bookmock"
	"library-backend/internal/testutil/loanmock"
	"library-backend/internal/testutil/notifymock"
	"library-backend/internal/testutil/uowmock"
	"library-backend/internal/usecase/payment"
)

const paySecret = "handler-test-secret"

func paymentUC(unpaid []loanDomain.Record) *payment.Usecase {
	loans := &loanmock.Repo{
		ListUnpaidByStudentFn: func(ctx context.Context, studentID uint64) ([]loanDomain.Record, error) {
			return unpaid, nil
		},
	}
	u := &uowmock.UoW{
		Repos:   uow.Repos{Books: &bookmock.Repo{}, Loans: loans},
		Student: &studentDomain.Student{ID: 1, RegNo: "21BCE1001", Email: "a@example.edu"},
	}
	return payment.NewUsecase(u, &notifymock.Notifier{}, zap.NewNop(), "key_test", paySecret, 2)
}

func signFor(orderRef, paymentRef string) string {
	mac := hmac.New(sha256.New, []byte(paySecret))
	mac.Write([]byte(orderRef + "|" + paymentRef))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestCreateOrder_ReturnsPaise(t *testing.T) {
	e := newEchoWithValidator()
	h := NewPaymentHandler(paymentUC([]loanDomain.Record{
		{RecordID: "r1", Status: loanDomain.StatusReturned, Fine: 20},
	}))

	body := mustJSON(t, map[string]any{"reg_no": "21BCE1001"})
	rec := doJSON(e, stdhttp.MethodPost, "/api/payments/order", body, h.CreateOrder)

	require.Equal(t, stdhttp.StatusCreated, rec.Code, rec.Body.String())
	var dto payment.OrderDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	require.EqualValues(t, 2000, dto.AmountMinor)
	require.Equal(t, "INR", dto.Currency)
}

func TestCreateOrder_NoFinesMapsTo400(t *testing.T) {
	e := newEchoWithValidator()
	h := NewPaymentHandler(paymentUC(nil))

	body := mustJSON(t, map[string]any{"reg_no": "21BCE1001"})
	rec := doJSON(e, stdhttp.MethodPost, "/api/payments/order", body, h.CreateOrder)

	require.Equal(t, stdhttp.StatusBadRequest, rec.Code)
}

func TestVerify_Success(t *testing.T) {
	e := newEchoWithValidator()
	h := NewPaymentHandler(paymentUC([]loanDomain.Record{
		{RecordID: "r1", BookID: "b1", Status: loanDomain.StatusReturned, Fine: 20},
	}))

	body := mustJSON(t, map[string]any{
		"reg_no":      "21BCE1001",
		"order_ref":   "order_1",
		"payment_ref": "pay_1",
		"signature":   signFor("order_1", "pay_1"),
	})
	rec := doJSON(e, stdhttp.MethodPost, "/api/payments/verify", body, h.Verify)

	require.Equal(t, stdhttp.StatusOK, rec.Code, rec.Body.String())
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.EqualValues(t, 20, resp["total_paid"])
}

func TestVerify_BadSignatureMapsTo400(t *testing.T) {
	e := newEchoWithValidator()
	h := NewPaymentHandler(paymentUC([]loanDomain.Record{
		{RecordID: "r1", Status: loanDomain.StatusReturned, Fine: 20},
	}))

	body := mustJSON(t, map[string]any{
		"reg_no":      "21BCE1001",
		"order_ref":   "order_1",
		"payment_ref": "pay_1",
		"signature":   "deadbeef",
	})
	rec := doJSON(e, stdhttp.MethodPost, "/api/payments/verify", body, h.Verify)

	require.Equal(t, stdhttp.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "signature")
}
