package http

import (
	"net/http"

	"library-backend/internal/usecase/catalog"

	"github.com/labstack/echo/v4"
)

type BookHandler struct{ uc *catalog.Usecase }

func NewBookHandler(uc *catalog.Usecase) *BookHandler { return &BookHandler{uc: uc} }

type createBookReq struct {
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author"`
	TotalCopies int    `json:"total_copies" validate:"gte=0"`
}

func (h *BookHandler) Create(c echo.Context) error {
	var req createBookReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	b, err := h.uc.Create(c.Request().Context(), catalog.CreateBookInput{
		Title:       req.Title,
		Author:      req.Author,
		TotalCopies: req.TotalCopies,
	})
	if err != nil {
		return businessError(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *BookHandler) List(c echo.Context) error {
	books, err := h.uc.List(c.Request().Context())
	if err != nil {
		return businessError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"books": books})
}

func (h *BookHandler) Get(c echo.Context) error {
	b, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return businessError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

type updateBookReq struct {
	Title       *string `json:"title,omitempty"`
	Author      *string `json:"author,omitempty"`
	TotalCopies *int    `json:"total_copies,omitempty"`
}

func (h *BookHandler) Update(c echo.Context) error {
	var req updateBookReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	b, err := h.uc.Update(c.Request().Context(), c.Param("id"), catalog.UpdateBookInput{
		Title:       req.Title,
		Author:      req.Author,
		TotalCopies: req.TotalCopies,
	})
	if err != nil {
		return businessError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BookHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return businessError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
