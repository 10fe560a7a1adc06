package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/spst-logistics/spst-backend/internal/compliance"
)

// ComplianceHandler serves the advisory documentation check the dashboard
// shows while a shipment is being prepared. The score never gates a
// submission.
type ComplianceHandler struct{}

func NewComplianceHandler() *ComplianceHandler {
	return &ComplianceHandler{}
}

type complianceResponse struct {
	Outcome    compliance.Outcome          `json:"outcome"`
	Applicable []compliance.DocRequirement `json:"applicable"`
	Score      int                         `json:"score"`
}

func (h *ComplianceHandler) Check(c echo.Context) error {
	shipType := c.QueryParam("type")
	country := c.QueryParam("country")
	if shipType == "" || country == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse(codeBadRequest, "type and country are required"))
	}
	completed, _ := strconv.Atoi(c.QueryParam("completed"))

	outcome := compliance.Preliminary(shipType, country)
	docs := compliance.ApplicableDocuments(shipType, country)
	return c.JSON(http.StatusOK, complianceResponse{
		Outcome:    outcome,
		Applicable: docs,
		Score:      compliance.Score(outcome, completed, len(docs)),
	})
}
