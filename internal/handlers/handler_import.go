package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/financasapp/financas_backend/internal/apperrors"
	portssvc "github.com/financasapp/financas_backend/internal/core/ports/services"
	"github.com/financasapp/financas_backend/internal/dto"
	"github.com/financasapp/financas_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// importHandler handles HTTP requests for the statement-import pipeline.
type importHandler struct {
	importService  portssvc.ImportSvcFacade
	maxUploadBytes int64
}

// registerImportRoutes registers routes related to statement imports. The
// parse route takes file uploads, so it additionally gets the rate limiter.
func registerImportRoutes(rg *gin.RouterGroup, importService portssvc.ImportSvcFacade, maxUploadBytes int64, rateLimit gin.HandlerFunc) {
	h := &importHandler{importService: importService, maxUploadBytes: maxUploadBytes}

	imports := rg.Group("/imports")
	{
		imports.POST("/parse", rateLimit, h.parseStatement)
		imports.POST("", h.commitBatch)
		imports.GET("", h.listBatches)
		imports.DELETE("/:id", h.deleteBatch)
	}
}

// csvMappingFromForm reads the optional CSV column mapping from multipart
// form fields. All three indices must be present together.
func csvMappingFromForm(c *gin.Context) (*dto.CSVColumnMapping, error) {
	dateIdx := c.PostForm("dateIndex")
	descIdx := c.PostForm("descIndex")
	amountIdx := c.PostForm("amountIndex")
	if dateIdx == "" && descIdx == "" && amountIdx == "" {
		return nil, nil
	}

	var mapping dto.CSVColumnMapping
	var err error
	if mapping.DateIndex, err = strconv.Atoi(dateIdx); err != nil || mapping.DateIndex < 0 {
		return nil, errors.New("dateIndex must be a non-negative integer")
	}
	if mapping.DescIndex, err = strconv.Atoi(descIdx); err != nil || mapping.DescIndex < 0 {
		return nil, errors.New("descIndex must be a non-negative integer")
	}
	if mapping.AmountIndex, err = strconv.Atoi(amountIdx); err != nil || mapping.AmountIndex < 0 {
		return nil, errors.New("amountIndex must be a non-negative integer")
	}
	return &mapping, nil
}

func (h *importHandler) parseStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.Warn("Missing statement file in upload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "A statement file is required in the 'file' field"})
		return
	}
	if fileHeader.Size > h.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Statement file is too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes))
	if err != nil {
		logger.Error("Failed to read uploaded statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}

	csvMapping, err := csvMappingFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	candidates, err := h.importService.ParseStatement(c.Request.Context(), fileHeader.Filename, content, csvMapping)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnsupportedFormat):
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to parse statement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse statement"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ParseStatementResponse{
		FileName:   fileHeader.Filename,
		Candidates: dto.ToParsedCandidateResponses(candidates),
	})
}

func (h *importHandler) commitBatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CommitBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CommitBatch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	batch, err := h.importService.CommitBatch(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error committing batch", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to commit import batch", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit import batch"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToImportBatchResponse(batch))
}

func (h *importHandler) listBatches(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	batches, err := h.importService.ListBatches(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list import batches", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list import batches"})
		return
	}
	c.JSON(http.StatusOK, dto.ToImportBatchResponses(batches))
}

func (h *importHandler) deleteBatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	batchID := c.Param("id")

	if err := h.importService.DeleteBatch(c.Request.Context(), batchID); err != nil {
		logger.Error("Failed to delete import batch", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete import batch"})
		return
	}

	c.Status(http.StatusNoContent)
}
