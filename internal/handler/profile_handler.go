package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spst-logistics/spst-backend/internal/identity"
	"github.com/spst-logistics/spst-backend/internal/model"
	"github.com/spst-logistics/spst-backend/internal/service"
)

// ProfileHandler requires a verified identity: ownership of a profile comes
// from the credential, never from the payload.
type ProfileHandler struct {
	svc      service.ProfileService
	resolver *identity.Resolver
}

func NewProfileHandler(svc service.ProfileService, resolver *identity.Resolver) *ProfileHandler {
	return &ProfileHandler{svc: svc, resolver: resolver}
}

func (h *ProfileHandler) Get(c echo.Context) error {
	email, ok := h.resolver.FromRequest(c.Request().Context(), c.Request())
	if !ok {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse(codeAuthRequired, "authentication required"))
	}
	profile, err := h.svc.Get(c.Request().Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			// A caller without a stored profile gets an empty one, not 404.
			return c.JSON(http.StatusOK, model.Profile{Email: email})
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse(codeInternalError, err.Error()))
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) Save(c echo.Context) error {
	email, ok := h.resolver.FromRequest(c.Request().Context(), c.Request())
	if !ok {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse(codeAuthRequired, "authentication required"))
	}
	var profile model.Profile
	if err := c.Bind(&profile); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse(codeBadRequest, "invalid json"))
	}
	profile.Email = email
	if err := h.svc.Upsert(c.Request().Context(), &profile); err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.JSON(http.StatusBadRequest, NewErrorResponse(codeBadRequest, err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse(codeInternalError, err.Error()))
	}
	return c.JSON(http.StatusOK, profile)
}
