package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/srikanthsurna/swipe-project/internal/store"
)

// Service produces XLSX bytes from the record store, one sheet per
// collection.
type Service struct {
	records *store.RecordStore
	logger  *slog.Logger
}

func NewService(records *store.RecordStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{records: records, logger: logger}
}

// RecordsXLSX renders the three collections into a workbook: Invoices,
// Products, Customers.
func (s *Service) RecordsXLSX() ([]byte, error) {
	start := time.Now()
	f := excelize.NewFile()
	defer f.Close()

	if err := s.writeInvoices(f); err != nil {
		return nil, err
	}
	if err := s.writeProducts(f); err != nil {
		return nil, err
	}
	if err := s.writeCustomers(f); err != nil {
		return nil, err
	}

	// excelize seeds the workbook with a default sheet we don't use.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.records.ok",
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func newSheet(f *excelize.File, name string, headers []string) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(name, cell, h); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) writeInvoices(f *excelize.File) error {
	const sheet = "Invoices"
	headers := []string{"ID", "Serial Number", "Customer Name", "Product Name", "Quantity", "Tax", "Total Amount", "Date"}
	if err := newSheet(f, sheet, headers); err != nil {
		return err
	}
	for i, r := range s.records.ListInvoices() {
		values := []any{r.ID, r.SerialNumber, r.CustomerName, r.ProductName, r.Quantity, r.Tax, r.TotalAmount, r.Date}
		if err := writeRow(f, sheet, i+2, values); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) writeProducts(f *excelize.File) error {
	const sheet = "Products"
	headers := []string{"ID", "Name", "Quantity", "Unit Price", "Tax"}
	if err := newSheet(f, sheet, headers); err != nil {
		return err
	}
	for i, r := range s.records.ListProducts() {
		values := []any{r.ID, r.Name, r.Quantity, r.UnitPrice, r.Tax}
		if err := writeRow(f, sheet, i+2, values); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) writeCustomers(f *excelize.File) error {
	const sheet = "Customers"
	headers := []string{"ID", "Name", "Phone Number", "Email", "Total Purchase Amount", "Last Updated"}
	if err := newSheet(f, sheet, headers); err != nil {
		return err
	}
	for i, r := range s.records.ListCustomers() {
		values := []any{r.ID, r.Name, r.PhoneNumber, r.Email, r.TotalPurchaseAmount, r.LastUpdated}
		if err := writeRow(f, sheet, i+2, values); err != nil {
			return err
		}
	}
	return nil
}
