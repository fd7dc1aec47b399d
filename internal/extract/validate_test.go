package extract

import (
	"slices"
	"testing"

	"github.com/srikanthsurna/swipe-project/internal/llm"
)

func fullResult() *llm.ExtractionResult {
	return &llm.ExtractionResult{
		Invoice: &llm.InvoiceFields{
			SerialNumber: "INV1",
			Date:         "2024-01-01",
			TotalAmount:  100,
			Tax:          0,
		},
		Customer: &llm.CustomerFields{
			Name:  "Jane",
			Email: "jane@x.com",
		},
		Product: &llm.ProductFields{
			Name:      "Widget",
			Quantity:  2,
			UnitPrice: 10,
			Tax:       5,
		},
	}
}

func TestValidateCompleteResult(t *testing.T) {
	report := Validate(fullResult())

	if !report.IsValid {
		t.Errorf("IsValid = false, errors = %v", report.Errors)
	}
	if len(report.Errors) != 0 {
		t.Errorf("Errors = %v, want none", report.Errors)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", report.Warnings)
	}
	// 10 of the 11 tracked fields are present (no phone number): 10/11 -> 91.
	if report.Completeness != 91 {
		t.Errorf("Completeness = %d, want 91", report.Completeness)
	}
}

func TestValidateProductOnly(t *testing.T) {
	report := Validate(&llm.ExtractionResult{
		Product: &llm.ProductFields{Name: "Widget"},
	})

	if report.IsValid {
		t.Error("IsValid = true, want false")
	}
	wantErrors := []string{
		"Missing invoice number",
		"Missing invoice date",
		"Missing total amount",
		"Missing customer name",
		"Missing customer contact information",
		"Invalid product quantity",
		"Invalid unit price",
	}
	for _, want := range wantErrors {
		if !slices.Contains(report.Errors, want) {
			t.Errorf("Errors missing %q; got %v", want, report.Errors)
		}
	}
	if slices.Contains(report.Errors, "Missing product name") {
		t.Errorf("unexpected 'Missing product name' in %v", report.Errors)
	}
	if slices.Contains(report.Errors, "Invalid total amount") {
		t.Errorf("unexpected 'Invalid total amount' in %v", report.Errors)
	}
}

func TestValidateInvoiceHardErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*llm.ExtractionResult)
		wantErr string
	}{
		{"missing serial number", func(r *llm.ExtractionResult) { r.Invoice.SerialNumber = "" }, "Missing invoice number"},
		{"missing date", func(r *llm.ExtractionResult) { r.Invoice.Date = "" }, "Missing invoice date"},
		{"zero total", func(r *llm.ExtractionResult) { r.Invoice.TotalAmount = 0 }, "Missing total amount"},
		{"negative total", func(r *llm.ExtractionResult) { r.Invoice.TotalAmount = -5 }, "Invalid total amount"},
		{"zero product quantity", func(r *llm.ExtractionResult) { r.Product.Quantity = 0 }, "Invalid product quantity"},
		{"zero unit price", func(r *llm.ExtractionResult) { r.Product.UnitPrice = 0 }, "Invalid unit price"},
		{"no contact info", func(r *llm.ExtractionResult) { r.Customer.Email = ""; r.Customer.PhoneNumber = "" }, "Missing customer contact information"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := fullResult()
			tt.mutate(res)
			report := Validate(res)
			if report.IsValid {
				t.Error("IsValid = true, want false")
			}
			if !slices.Contains(report.Errors, tt.wantErr) {
				t.Errorf("Errors = %v, want to contain %q", report.Errors, tt.wantErr)
			}
		})
	}
}

func TestValidateWarnings(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*llm.ExtractionResult)
		wantWarn string
	}{
		{"short customer name", func(r *llm.ExtractionResult) { r.Customer.Name = "J" }, "Customer name seems too short"},
		{"email without at sign", func(r *llm.ExtractionResult) { r.Customer.Email = "jane.x.com" }, "Invalid email format"},
		{"short phone number", func(r *llm.ExtractionResult) { r.Customer.PhoneNumber = "555123" }, "Phone number seems incomplete"},
		{"negative tax", func(r *llm.ExtractionResult) { r.Invoice.Tax = -1 }, "Negative tax amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := fullResult()
			tt.mutate(res)
			report := Validate(res)
			if !slices.Contains(report.Warnings, tt.wantWarn) {
				t.Errorf("Warnings = %v, want to contain %q", report.Warnings, tt.wantWarn)
			}
			if !report.IsValid {
				t.Errorf("warnings must not affect validity; errors = %v", report.Errors)
			}
		})
	}
}

// Adding a previously-absent tracked field must never decrease completeness.
func TestCompletenessMonotonic(t *testing.T) {
	steps := []func(*llm.ExtractionResult){
		func(r *llm.ExtractionResult) { r.Invoice = &llm.InvoiceFields{} },
		func(r *llm.ExtractionResult) { r.Invoice.SerialNumber = "INV1" },
		func(r *llm.ExtractionResult) { r.Invoice.Date = "2024-01-01" },
		func(r *llm.ExtractionResult) { r.Invoice.TotalAmount = 100 },
		func(r *llm.ExtractionResult) { r.Customer = &llm.CustomerFields{} },
		func(r *llm.ExtractionResult) { r.Customer.Name = "Jane" },
		func(r *llm.ExtractionResult) { r.Customer.PhoneNumber = "5551234567" },
		func(r *llm.ExtractionResult) { r.Customer.Email = "jane@x.com" },
		func(r *llm.ExtractionResult) { r.Product = &llm.ProductFields{} },
		func(r *llm.ExtractionResult) { r.Product.Name = "Widget" },
		func(r *llm.ExtractionResult) { r.Product.Quantity = 2 },
		func(r *llm.ExtractionResult) { r.Product.UnitPrice = 10 },
	}

	res := &llm.ExtractionResult{}
	prev := 0
	for i, step := range steps {
		step(res)
		got := Validate(res).Completeness
		if got < prev {
			t.Fatalf("step %d: completeness decreased from %d to %d", i, prev, got)
		}
		if got < 0 || got > 100 {
			t.Fatalf("step %d: completeness %d out of range", i, got)
		}
		prev = got
	}
	if prev != 100 {
		t.Errorf("final completeness = %d, want 100", prev)
	}
}
