package http

import (
	"bytes"
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	bookDomain "library-backend/internal/domain/book"
	loanDomain "library-backend/internal/domain/loan"
	studentDomain "library-backend/internal/domain/student"
	"library-backend/internal/domain/uow"
	"library-backend/internal/testutil/bookmock"
	"library-backend/internal/testutil/loanmock"
	"library-backend/internal/testutil/notifymock"
	"library-backend/internal/testutil/uowmock"
	"library-backend/internal/usecase/lending"
)

// -------- helpers --------

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func doJSON(e *echo.Echo, method, path string, body *bytes.Reader, h echo.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = h(c)
	return rec
}

func lendingUC(stock int, unpaid []loanDomain.Record) *lending.Usecase {
	books := &bookmock.Repo{
		GetByBookIDFn: func(ctx context.Context, bookID string) (*bookDomain.Book, error) {
			return &bookDomain.Book{BookID: bookID, Title: "Dune", TotalCopies: stock, AvailableCopies: stock}, nil
		},
		DecrementAvailableFn: func(ctx context.Context, bookID string) error {
			if stock < 1 {
				return bookDomain.ErrOutOfStock
			}
			return nil
		},
	}
	loans := &loanmock.Repo{
		ListUnpaidByStudentFn: func(ctx context.Context, studentID uint64) ([]loanDomain.Record, error) {
			return unpaid, nil
		},
	}
	u := &uowmock.UoW{
		Repos:   uow.Repos{Books: books, Loans: loans},
		Student: &studentDomain.Student{ID: 1, RegNo: "21BCE1001", Email: "a@example.edu"},
	}
	return lending.NewUsecase(u, &notifymock.Notifier{}, zap.NewNop(), 2, 14*24*time.Hour)
}

// -------- tests --------

func TestIssue_Created(t *testing.T) {
	e := newEchoWithValidator()
	h := NewLendingHandler(lendingUC(3, nil))

	body := mustJSON(t, map[string]any{
		"reg_no":  "21BCE1001",
		"book_id": strings.Repeat("b", 32),
	})
	rec := doJSON(e, stdhttp.MethodPost, "/api/issue", body, h.Issue)

	require.Equal(t, stdhttp.StatusCreated, rec.Code, rec.Body.String())
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, true, resp["success"])
}

func TestIssue_ValidationRejectsBadIDs(t *testing.T) {
	e := newEchoWithValidator()
	h := NewLendingHandler(lendingUC(3, nil))

	body := mustJSON(t, map[string]any{"reg_no": "!!", "book_id": "short"})
	rec := doJSON(e, stdhttp.MethodPost, "/api/issue", body, h.Issue)

	require.Equal(t, stdhttp.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, containsFieldMsg(resp.Details, "RegNo", "registration number"))
	require.True(t, containsFieldMsg(resp.Details, "BookID", "hex"))
}

func TestIssue_UnpaidFinesMapsTo409(t *testing.T) {
	e := newEchoWithValidator()
	unpaid := []loanDomain.Record{{Status: loanDomain.StatusReturned, Fine: 20}}
	h := NewLendingHandler(lendingUC(3, unpaid))

	body := mustJSON(t, map[string]any{
		"reg_no":  "21BCE1001",
		"book_id": strings.Repeat("b", 32),
	})
	rec := doJSON(e, stdhttp.MethodPost, "/api/issue", body, h.Issue)

	require.Equal(t, stdhttp.StatusConflict, rec.Code)
	require.Contains(t, rec.Body.String(), "unpaid fines")
}

func TestIssue_OutOfStockMapsTo409(t *testing.T) {
	e := newEchoWithValidator()
	h := NewLendingHandler(lendingUC(0, nil))

	body := mustJSON(t, map[string]any{
		"reg_no":  "21BCE1001",
		"book_id": strings.Repeat("b", 32),
	})
	rec := doJSON(e, stdhttp.MethodPost, "/api/issue", body, h.Issue)

	require.Equal(t, stdhttp.StatusConflict, rec.Code)
	require.Contains(t, rec.Body.String(), "available")
}

func TestIssue_UnknownStudentMapsTo404(t *testing.T) {
	e := newEchoWithValidator()
	h := NewLendingHandler(lendingUC(3, nil))

	body := mustJSON(t, map[string]any{
		"reg_no":  "00XXX0000",
		"book_id": strings.Repeat("b", 32),
	})
	rec := doJSON(e, stdhttp.MethodPost, "/api/issue", body, h.Issue)

	require.Equal(t, stdhttp.StatusNotFound, rec.Code)
}

func TestReturn_RecordNotFoundMapsTo404(t *testing.T) {
	e := newEchoWithValidator()
	h := NewLendingHandler(lendingUC(3, nil))

	body := mustJSON(t, map[string]any{
		"reg_no":    "21BCE1001",
		"record_id": strings.Repeat("c", 32),
	})
	rec := doJSON(e, stdhttp.MethodPost, "/api/return", body, h.Return)

	require.Equal(t, stdhttp.StatusNotFound, rec.Code)
}
