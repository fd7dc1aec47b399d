package server

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srikanthsurna/swipe-project/constants"
	"github.com/srikanthsurna/swipe-project/internal/common"
	"github.com/srikanthsurna/swipe-project/internal/export"
	"github.com/srikanthsurna/swipe-project/internal/extract"
	"github.com/srikanthsurna/swipe-project/internal/store"
)

type Handler struct {
	logger   *slog.Logger
	service  *extract.Service
	records  *store.RecordStore
	exporter *export.Service
}

func NewHandler(logger *slog.Logger, service *extract.Service, records *store.RecordStore, exporter *export.Service) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, service: service, records: records, exporter: exporter}
}

// Extract handles a multipart batch upload. Files are gated against the
// upload allow-list before any content is read; gate rejections and pipeline
// failures accumulate side by side in the response instead of aborting the
// batch.
func (h *Handler) Extract(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files provided"})
		return
	}
	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select at least one file"})
		return
	}

	var uploads []extract.UploadedFile
	var failures []extract.FileFailure
	for _, fh := range fileHeaders {
		mimeType := fh.Header.Get("Content-Type")
		if !constants.UploadAllowed(mimeType) {
			failures = append(failures, extract.FileFailure{
				FileName: fh.Filename,
				Code:     common.CodeUnsupportedType,
				Message:  fmt.Sprintf("unsupported file type: %s", mimeType),
			})
			continue
		}
		data, err := readUpload(fh)
		if err != nil {
			failures = append(failures, extract.FileFailure{
				FileName: fh.Filename,
				Code:     common.CodeContentRead,
				Message:  err.Error(),
			})
			continue
		}
		uploads = append(uploads, extract.UploadedFile{
			Name:     fh.Filename,
			MIMEType: mimeType,
			Content:  data,
		})
	}

	results, pipelineFailures := h.service.ProcessBatch(c.Request.Context(), uploads)
	failures = append(failures, pipelineFailures...)

	c.JSON(http.StatusOK, gin.H{
		"results":  results,
		"failures": failures,
	})
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	return data, nil
}

func (h *Handler) ListInvoices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.records.ListInvoices()})
}

func (h *Handler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.records.ListProducts()})
}

func (h *Handler) ListCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.records.ListCustomers()})
}

func (h *Handler) UpdateInvoice(c *gin.Context) {
	var rec store.Invoice
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice payload"})
		return
	}
	rec.ID = c.Param("id")
	updated, err := h.records.UpdateInvoice(rec)
	if err != nil {
		h.recordError(c, constants.KindInvoice, rec.ID, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	var rec store.Product
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product payload"})
		return
	}
	rec.ID = c.Param("id")
	updated, err := h.records.UpdateProduct(rec)
	if err != nil {
		h.recordError(c, constants.KindProduct, rec.ID, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) UpdateCustomer(c *gin.Context) {
	var rec store.Customer
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer payload"})
		return
	}
	rec.ID = c.Param("id")
	updated, err := h.records.UpdateCustomer(rec)
	if err != nil {
		h.recordError(c, constants.KindCustomer, rec.ID, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) ReplaceInvoices(c *gin.Context) {
	var recs []store.Invoice
	if err := c.ShouldBindJSON(&recs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice list"})
		return
	}
	h.records.ReplaceInvoices(recs)
	c.JSON(http.StatusOK, gin.H{"items": h.records.ListInvoices()})
}

func (h *Handler) ReplaceProducts(c *gin.Context) {
	var recs []store.Product
	if err := c.ShouldBindJSON(&recs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product list"})
		return
	}
	h.records.ReplaceProducts(recs)
	c.JSON(http.StatusOK, gin.H{"items": h.records.ListProducts()})
}

func (h *Handler) ReplaceCustomers(c *gin.Context) {
	var recs []store.Customer
	if err := c.ShouldBindJSON(&recs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer list"})
		return
	}
	h.records.ReplaceCustomers(recs)
	c.JSON(http.StatusOK, gin.H{"items": h.records.ListCustomers()})
}

// ExportRecords streams the three collections as an XLSX workbook.
func (h *Handler) ExportRecords(c *gin.Context) {
	data, err := h.exporter.RecordsXLSX()
	if err != nil {
		h.logger.Error("export failed", "error", err, "request_id", GetRequestID(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export records"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="records.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) recordError(c *gin.Context, kind constants.RecordKind, id string, err error) {
	if errors.Is(err, common.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("%s %s not found", kind, id)})
		return
	}
	h.logger.Error("record update failed", "kind", string(kind), "id", id, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
