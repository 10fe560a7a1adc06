package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spst-logistics/spst-backend/internal/identity"
	"github.com/spst-logistics/spst-backend/internal/model"
	"github.com/spst-logistics/spst-backend/internal/rating"
	"github.com/spst-logistics/spst-backend/internal/service"
)

type ShipmentHandler struct {
	svc      service.ShipmentService
	notify   service.NotificationService
	resolver *identity.Resolver
}

func NewShipmentHandler(svc service.ShipmentService, notify service.NotificationService, resolver *identity.Resolver) *ShipmentHandler {
	return &ShipmentHandler{svc: svc, notify: notify, resolver: resolver}
}

type createShipmentRequest struct {
	model.ShipmentInput
	// OwnerEmail is honored only when no credential verifies; a verified
	// identity always establishes ownership.
	OwnerEmail string `json:"ownerEmail,omitempty"`
}

func (h *ShipmentHandler) Create(c echo.Context) error {
	var req createShipmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse(codeBadRequest, "invalid json"))
	}
	owner, ok := h.resolver.FromRequest(c.Request().Context(), c.Request())
	if !ok {
		owner = req.OwnerEmail
	}
	res, err := h.svc.Create(c.Request().Context(), &req.ShipmentInput, owner)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.JSON(http.StatusBadRequest, NewErrorResponse(codeBadRequest, err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse(codeInternalError, err.Error()))
	}
	return c.JSON(http.StatusCreated, res)
}

type shipmentListResponse struct {
	Rows []model.Shipment `json:"rows"`
}

func (h *ShipmentHandler) List(c echo.Context) error {
	email := h.resolver.ForRead(c.Request().Context(), c.Request(), c.QueryParam("email"))
	rows, err := h.svc.List(c.Request().Context(), service.ListFilter{
		OwnerEmail: email,
		Search:     c.QueryParam("q"),
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse(codeInternalError, err.Error()))
	}
	return c.JSON(http.StatusOK, shipmentListResponse{Rows: rows})
}

func (h *ShipmentHandler) Get(c echo.Context) error {
	shipment, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse(codeNotFound, "shipment not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse(codeInternalError, err.Error()))
	}
	return c.JSON(http.StatusOK, shipment)
}

func (h *ShipmentHandler) Parcels(c echo.Context) error {
	parcels, err := h.svc.Parcels(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse(codeNotFound, "shipment not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse(codeInternalError, err.Error()))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"parcels": parcels})
}

type metricsResponse struct {
	ActualWeight     float64 `json:"actualWeight"`
	VolumetricWeight float64 `json:"volumetricWeight"`
	BillableWeight   float64 `json:"billableWeight"`
}

func (h *ShipmentHandler) Metrics(c echo.Context) error {
	parcels, err := h.svc.Parcels(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse(codeNotFound, "shipment not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse(codeInternalError, err.Error()))
	}
	return c.JSON(http.StatusOK, metricsResponse{
		ActualWeight:     rating.Round2(rating.TotalActual(parcels)),
		VolumetricWeight: rating.Round2(rating.TotalVolumetric(parcels)),
		BillableWeight:   rating.BillableWeight(parcels),
	})
}

type notifyRequest struct {
	Email string `json:"email,omitempty"`
}

// Notify is best-effort by contract: the response always reports sent
// true/false and never an error status for provider problems.
func (h *ShipmentHandler) Notify(c echo.Context) error {
	var req notifyRequest
	_ = c.Bind(&req)
	sent := h.notify.NotifyConfirmation(c.Request().Context(), c.Param("id"), req.Email)
	return c.JSON(http.StatusOK, map[string]bool{"sent": sent})
}

type trackingRequest struct {
	Carrier        string `json:"carrier"`
	TrackingNumber string `json:"trackingNumber"`
}

type trackingResponse struct {
	TrackingURL *string `json:"trackingUrl"`
}

func (h *ShipmentHandler) SetTracking(c echo.Context) error {
	var req trackingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse(codeBadRequest, "invalid json"))
	}
	url, err := h.svc.SetTracking(c.Request().Context(), c.Param("id"), req.Carrier, req.TrackingNumber)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse(codeNotFound, "shipment not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse(codeInternalError, err.Error()))
	}
	resp := trackingResponse{}
	if url != "" {
		resp.TrackingURL = &url
	}
	return c.JSON(http.StatusOK, resp)
}
