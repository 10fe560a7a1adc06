package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spst-logistics/spst-backend/internal/identity"
	"github.com/spst-logistics/spst-backend/internal/model"
	"github.com/spst-logistics/spst-backend/internal/service"
)

type QuotationHandler struct {
	svc      service.QuotationService
	resolver *identity.Resolver
}

func NewQuotationHandler(svc service.QuotationService, resolver *identity.Resolver) *QuotationHandler {
	return &QuotationHandler{svc: svc, resolver: resolver}
}

type createQuotationRequest struct {
	model.QuotationInput
	OwnerEmail string `json:"ownerEmail,omitempty"`
}

func (h *QuotationHandler) Create(c echo.Context) error {
	var req createQuotationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse(codeBadRequest, "invalid json"))
	}
	owner, ok := h.resolver.FromRequest(c.Request().Context(), c.Request())
	if !ok {
		owner = req.OwnerEmail
	}
	res, err := h.svc.Create(c.Request().Context(), &req.QuotationInput, owner)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.JSON(http.StatusBadRequest, NewErrorResponse(codeBadRequest, err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse(codeInternalError, err.Error()))
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *QuotationHandler) List(c echo.Context) error {
	email := h.resolver.ForRead(c.Request().Context(), c.Request(), c.QueryParam("email"))
	rows, err := h.svc.List(c.Request().Context(), service.ListFilter{
		OwnerEmail: email,
		Search:     c.QueryParam("q"),
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse(codeInternalError, err.Error()))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"rows": rows})
}

func (h *QuotationHandler) Get(c echo.Context) error {
	quote, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse(codeNotFound, "quotation not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse(codeInternalError, err.Error()))
	}
	return c.JSON(http.StatusOK, quote)
}
