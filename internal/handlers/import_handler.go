package handlers

import (
	goerrors "errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"financehub/internal/dto"
	"financehub/internal/errors"
	"financehub/internal/models"
	"financehub/internal/services"
)

// ImportHandler handles CSV export ingestion requests
type ImportHandler struct {
	importService services.ImportServiceInterface
}

// NewImportHandler creates a new import handler
func NewImportHandler(importService services.ImportServiceInterface) *ImportHandler {
	return &ImportHandler{importService: importService}
}

// ImportBatch ingests one or more CSV export files
// @Summary Import CSV exports
// @Description Parse, classify and commit a batch of bank/brokerage/exchange CSV exports
// @Tags Imports
// @Accept mpfd
// @Accept json
// @Produce json
// @Param files formData file false "CSV export files"
// @Param source formData string false "Source override (auto, bank, brokerage, exchange)"
// @Param account formData string false "Account label override"
// @Success 200 {object} dto.ImportBatchResponse "Per-file import summaries"
// @Failure 400 {object} errors.ErrorResponse "IMPORT_004 - Empty batch or IMPORT_002 - Unknown source"
// @Failure 413 {object} errors.ErrorResponse "IMPORT_003 - File too large"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /imports [post]
func (h *ImportHandler) ImportBatch(c echo.Context) error {
	files, err := h.collectFiles(c)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	if len(files) == 0 {
		return SendError(c, errors.ImportEmptyBatch)
	}

	for i := range files {
		if err := c.Validate(&files[i]); err != nil {
			return err
		}
	}

	response, err := h.importService.ImportBatch(c.Request().Context(), files)
	if err != nil {
		switch {
		case goerrors.Is(err, services.ErrEmptyBatch):
			return SendError(c, errors.ImportEmptyBatch)
		case goerrors.Is(err, services.ErrFileTooLarge):
			return SendError(c, errors.ImportFileTooLarge, errors.WithDetails(err.Error()))
		case goerrors.Is(err, models.ErrInvalidSource):
			return SendError(c, errors.ImportUnknownSource, errors.WithDetails(err.Error()))
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, response)
}

// collectFiles accepts either a multipart upload (the browser path) or a
// JSON body (the API path) and normalizes both into file requests.
func (h *ImportHandler) collectFiles(c echo.Context) ([]dto.ImportFileRequest, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// Not multipart, try JSON.
		var body struct {
			Files []dto.ImportFileRequest `json:"files"`
		}
		if bindErr := c.Bind(&body); bindErr != nil {
			return nil, bindErr
		}
		return body.Files, nil
	}

	source := c.FormValue("source")
	account := c.FormValue("account")

	var files []dto.ImportFileRequest
	for _, header := range form.File["files"] {
		f, err := header.Open()
		if err != nil {
			return nil, err
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, dto.ImportFileRequest{
			FileName: header.Filename,
			Content:  string(content),
			Source:   source,
			Account:  account,
		})
	}
	return files, nil
}
