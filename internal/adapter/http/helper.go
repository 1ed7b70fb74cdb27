package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	bookDomain "library-backend/internal/domain/book"
	loanDomain "library-backend/internal/domain/loan"
	studentDomain "library-backend/internal/domain/student"
	"library-backend/internal/usecase/catalog"
	"library-backend/internal/usecase/payment"
)

// businessError maps domain sentinels to a status code, keeping the
// human-readable business reason as the response body. Unknown errors
// become an opaque 500.
func businessError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case errors.Is(err, studentDomain.ErrNotFound),
		errors.Is(err, bookDomain.ErrNotFound),
		errors.Is(err, loanDomain.ErrRecordNotFound):
		status, msg = http.StatusNotFound, err.Error()
	case errors.Is(err, loanDomain.ErrUnpaidFines),
		errors.Is(err, bookDomain.ErrOutOfStock),
		errors.Is(err, loanDomain.ErrAlreadyReturned),
		errors.Is(err, studentDomain.ErrAlreadyExists):
		status, msg = http.StatusConflict, err.Error()
	case errors.Is(err, payment.ErrInvalidSignature),
		errors.Is(err, payment.ErrNothingOutstanding),
		errors.Is(err, catalog.ErrInvalidCopies):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, studentDomain.ErrBadCredential):
		status, msg = http.StatusUnauthorized, err.Error()
	}
	return c.JSON(status, ErrorResponse{Error: msg})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func validationError(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
}
