package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/spst-logistics/spst-backend/internal/service"
)

// PlacesHandler proxies the mapping provider. Provider failures relay as
// 502: these endpoints are pass-through, the upstream's failure is the
// response.
type PlacesHandler struct {
	svc *service.PlacesService
}

func NewPlacesHandler(svc *service.PlacesService) *PlacesHandler {
	return &PlacesHandler{svc: svc}
}

func (h *PlacesHandler) Autocomplete(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse(codeBadRequest, "q is required"))
	}
	suggestions, err := h.svc.Autocomplete(c.Request().Context(), query, c.QueryParam("lang"), c.QueryParam("session"))
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"predictions": suggestions})
}

func (h *PlacesHandler) Details(c echo.Context) error {
	placeID := c.QueryParam("placeId")
	if placeID == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse(codeBadRequest, "placeId is required"))
	}
	addr, err := h.svc.Details(c.Request().Context(), placeID, c.QueryParam("lang"), c.QueryParam("session"))
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, addr)
}

func (h *PlacesHandler) Reverse(c echo.Context) error {
	lat, latErr := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if latErr != nil || lngErr != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse(codeBadRequest, "lat and lng are required"))
	}
	addr, err := h.svc.Reverse(c.Request().Context(), lat, lng, c.QueryParam("lang"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse(codeNotFound, "no address at location"))
		}
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, addr)
}

func upstreamError(c echo.Context, err error) error {
	return c.JSON(http.StatusBadGateway, NewErrorResponse(codeUpstreamError, err.Error()))
}
