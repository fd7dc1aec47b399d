package llm

import (
	"errors"
	"testing"

	"github.com/srikanthsurna/swipe-project/internal/common"
)

const validPayload = `{
	"invoice": {"serialNumber": "INV-42", "customerName": "Jane", "productName": "Widget", "quantity": 2, "tax": 5, "totalAmount": 100, "date": "2024-01-01"},
	"product": {"name": "Widget", "quantity": 2, "unitPrice": 10, "tax": 5},
	"customer": {"name": "Jane", "phoneNumber": "5551234567", "email": "jane@x.com", "totalPurchaseAmount": 100}
}`

func TestParseExtractionStrict(t *testing.T) {
	res, err := ParseExtraction(validPayload)
	if err != nil {
		t.Fatalf("ParseExtraction() error = %v", err)
	}
	if res.Invoice == nil || res.Invoice.SerialNumber != "INV-42" {
		t.Errorf("invoice not decoded: %+v", res.Invoice)
	}
	if res.Product == nil || res.Product.UnitPrice != 10 {
		t.Errorf("product not decoded: %+v", res.Product)
	}
	if res.Customer == nil || res.Customer.Email != "jane@x.com" {
		t.Errorf("customer not decoded: %+v", res.Customer)
	}
}

func TestParseExtractionRecoversEmbeddedJSON(t *testing.T) {
	wrapped := "Here is the extracted data:\n```json\n" + validPayload + "\n```\nLet me know if you need anything else."
	res, err := ParseExtraction(wrapped)
	if err != nil {
		t.Fatalf("ParseExtraction() error = %v", err)
	}
	if res.Invoice == nil || res.Invoice.TotalAmount != 100 {
		t.Errorf("recovered invoice = %+v", res.Invoice)
	}
}

func TestParseExtractionPartialResult(t *testing.T) {
	res, err := ParseExtraction(`{"product": {"name": "Widget"}}`)
	if err != nil {
		t.Fatalf("ParseExtraction() error = %v", err)
	}
	if res.Invoice != nil || res.Customer != nil {
		t.Errorf("expected only product, got %+v", res)
	}
	if res.Product == nil || res.Product.Name != "Widget" {
		t.Errorf("product = %+v", res.Product)
	}
}

func TestParseExtractionFailures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no json at all", "I could not read the document, sorry."},
		{"unbalanced braces", "result: { this is not json"},
		{"recovered substring invalid", "prefix {not: valid json} suffix"},
		{"valid json but wrong shape", `{"invoice": "not an object"}`},
		{"valid json but not an object", `[1, 2, 3]`},
		{"numeric field as string", `{"product": {"name": "Widget", "quantity": "two"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseExtraction(tt.raw)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, common.ErrUnparsableResponse) {
				t.Errorf("error = %v, want ErrUnparsableResponse", err)
			}
			if code := common.ErrorCode(err); code != common.CodeUnparsableResponse {
				t.Errorf("code = %q, want %q", code, common.CodeUnparsableResponse)
			}
		})
	}
}
