package http

import (
	"net/http"
	"time"

	"library-backend/internal/usecase/lending"

	"github.com/labstack/echo/v4"
)

type LendingHandler struct{ uc *lending.Usecase }

func NewLendingHandler(uc *lending.Usecase) *LendingHandler { return &LendingHandler{uc: uc} }

type issueReq struct {
	RegNo   string     `json:"reg_no" validate:"required,regno"`
	BookID  string     `json:"book_id" validate:"required,hex32"`
	DueDate *time.Time `json:"due_date,omitempty"`
}

func (h *LendingHandler) Issue(c echo.Context) error {
	var req issueReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	dto, err := h.uc.Issue(c.Request().Context(), lending.IssueInput{
		RegNo:   req.RegNo,
		BookID:  req.BookID,
		DueDate: req.DueDate,
	})
	if err != nil {
		return businessError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"message": "book issued",
		"record":  dto,
	})
}

type returnReq struct {
	RegNo    string `json:"reg_no" validate:"required,regno"`
	RecordID string `json:"record_id" validate:"required,hex32"`
}

func (h *LendingHandler) Return(c echo.Context) error {
	var req returnReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	res, err := h.uc.Return(c.Request().Context(), lending.ReturnInput{
		RegNo:    req.RegNo,
		RecordID: req.RecordID,
	})
	if err != nil {
		return businessError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"fine":    res.Fine,
		"record":  res.Record,
	})
}
