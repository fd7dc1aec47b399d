package llm

import "context"

// NormalizedContent is the model-ready representation of an uploaded file.
// Exactly one of Text or Inline is set; the shape is fully determined by the
// source media type (spreadsheets become text, images and PDFs become an
// inline binary payload).
type NormalizedContent struct {
	Text   string
	Inline *InlineData
}

// InlineData carries a base64-encoded binary payload plus its media type.
type InlineData struct {
	Data     string // base64, whole file as a single unit
	MIMEType string
}

// ExtractionResult is the structured object recovered from a model response.
// Any subset of the three sub-records may be present.
type ExtractionResult struct {
	Invoice  *InvoiceFields  `json:"invoice,omitempty"`
	Product  *ProductFields  `json:"product,omitempty"`
	Customer *CustomerFields `json:"customer,omitempty"`
}

type InvoiceFields struct {
	SerialNumber string  `json:"serialNumber"`
	CustomerName string  `json:"customerName"`
	ProductName  string  `json:"productName"`
	Quantity     float64 `json:"quantity"`
	Tax          float64 `json:"tax"`
	TotalAmount  float64 `json:"totalAmount"`
	Date         string  `json:"date"` // YYYY-MM-DD
}

type ProductFields struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Tax       float64 `json:"tax"` // percentage
}

type CustomerFields struct {
	Name                string  `json:"name"`
	PhoneNumber         string  `json:"phoneNumber"`
	Email               string  `json:"email"`
	TotalPurchaseAmount float64 `json:"totalPurchaseAmount"`
}

// Invoker sends an ordered (content part, text part) pair to the generative
// model and returns the raw free-form response text. It is the sole network
// boundary to the AI provider; the pipeline depends on this interface, never
// on a concrete client.
type Invoker interface {
	Invoke(ctx context.Context, content NormalizedContent, prompt string) (string, error)
}
