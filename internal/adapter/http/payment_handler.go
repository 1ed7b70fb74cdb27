package http

import (
	"net/http"

	"library-backend/internal/usecase/payment"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct{ uc *payment.Usecase }

func NewPaymentHandler(uc *payment.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type createOrderReq struct {
	RegNo string `json:"reg_no" validate:"required,regno"`
}

func (h *PaymentHandler) CreateOrder(c echo.Context) error {
	var req createOrderReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	dto, err := h.uc.CreateOrder(c.Request().Context(), req.RegNo)
	if err != nil {
		return businessError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type verifyReq struct {
	RegNo      string `json:"reg_no" validate:"required,regno"`
	OrderRef   string `json:"order_ref" validate:"required"`
	PaymentRef string `json:"payment_ref" validate:"required"`
	Signature  string `json:"signature" validate:"required"`
}

func (h *PaymentHandler) Verify(c echo.Context) error {
	var req verifyReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	res, err := h.uc.Verify(c.Request().Context(), payment.VerifyInput{
		RegNo:      req.RegNo,
		OrderRef:   req.OrderRef,
		PaymentRef: req.PaymentRef,
		Signature:  req.Signature,
	})
	if err != nil {
		return businessError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success":       true,
		"total_paid":    res.TotalPaid,
		"loans_settled": res.LoansSettled,
	})
}
