package server

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// NewRouter wires middleware and routes around a Handler.
func NewRouter(logger *slog.Logger, h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(RequestID())
	router.Use(Recovery(logger))
	router.Use(RequestLogger(logger))

	router.GET("/healthz", h.Healthz)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/extract", h.Extract)

		v1.GET("/invoices", h.ListInvoices)
		v1.PUT("/invoices", h.ReplaceInvoices)
		v1.PUT("/invoices/:id", h.UpdateInvoice)

		v1.GET("/products", h.ListProducts)
		v1.PUT("/products", h.ReplaceProducts)
		v1.PUT("/products/:id", h.UpdateProduct)

		v1.GET("/customers", h.ListCustomers)
		v1.PUT("/customers", h.ReplaceCustomers)
		v1.PUT("/customers/:id", h.UpdateCustomer)

		v1.GET("/records/export", h.ExportRecords)
	}

	return router
}
