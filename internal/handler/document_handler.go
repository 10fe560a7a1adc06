package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spst-logistics/spst-backend/internal/storage"
)

type DocumentHandler struct {
	uploader *storage.Uploader
}

func NewDocumentHandler(uploader *storage.Uploader) *DocumentHandler {
	return &DocumentHandler{uploader: uploader}
}

type uploadResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// Upload stores one multipart file and returns the attachment reference the
// shipment payload carries.
func (h *DocumentHandler) Upload(c echo.Context) error {
	if h.uploader == nil {
		return c.JSON(http.StatusBadGateway, NewErrorResponse(codeUpstreamError, "document storage not configured"))
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse(codeBadRequest, "file is required"))
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse(codeBadRequest, "file could not be read"))
	}
	defer src.Close()

	url, err := h.uploader.Upload(c.Request().Context(), fh.Filename, fh.Header.Get("Content-Type"), src)
	if err != nil {
		return c.JSON(http.StatusBadGateway, NewErrorResponse(codeUpstreamError, err.Error()))
	}
	return c.JSON(http.StatusCreated, uploadResponse{URL: url, Filename: fh.Filename})
}
