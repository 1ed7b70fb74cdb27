package http

import (
	"net/http"

	"library-backend/internal/usecase/account"
	"library-backend/internal/usecase/profile"

	"github.com/labstack/echo/v4"
)

type StudentHandler struct {
	accounts *account.Usecase
	profiles *profile.Usecase
}

func NewStudentHandler(accounts *account.Usecase, profiles *profile.Usecase) *StudentHandler {
	return &StudentHandler{accounts: accounts, profiles: profiles}
}

type registerReq struct {
	RegNo    string `json:"reg_no" validate:"required,regno"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role,omitempty"`
}

func (h *StudentHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	dto, err := h.accounts.Register(c.Request().Context(), account.RegisterInput{
		RegNo:    req.RegNo,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return businessError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type loginReq struct {
	RegNo    string `json:"reg_no" validate:"required,regno"`
	Password string `json:"password" validate:"required"`
}

func (h *StudentHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	dto, err := h.accounts.Login(c.Request().Context(), req.RegNo, req.Password)
	if err != nil {
		return businessError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *StudentHandler) Profile(c echo.Context) error {
	dto, err := h.profiles.Get(c.Request().Context(), c.Param("regno"))
	if err != nil {
		return businessError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *StudentHandler) History(c echo.Context) error {
	loans, err := h.profiles.History(c.Request().Context(), c.Param("regno"))
	if err != nil {
		return businessError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"loans": loans})
}
