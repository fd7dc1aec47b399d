package llm

import (
	"strings"

	"github.com/srikanthsurna/swipe-project/constants"
)

// schemaTemplate is the literal JSON shape the model is told to fill in.
// Numeric fields default to 0, string fields to "". It models a single
// record of each kind; the parser only handles this shape.
const schemaTemplate = `{
  "invoice": {
    "serialNumber": "",
    "customerName": "",
    "productName": "",
    "quantity": 0,
    "tax": 0,
    "totalAmount": 0,
    "date": ""
  },
  "product": {
    "name": "",
    "quantity": 0,
    "unitPrice": 0,
    "tax": 0
  },
  "customer": {
    "name": "",
    "phoneNumber": "",
    "email": "",
    "totalPurchaseAmount": 0
  }
}`

var promptRules = []string{
	"Use empty strings for missing text",
	"Use 0 for missing numbers",
	"Format dates as YYYY-MM-DD",
	"Ensure response is valid JSON",
	"For spreadsheet data, match column headers to fields",
	"For images/PDFs, extract all visible text first",
	`Look for common invoice fields like "Invoice No", "Bill To", "Amount", etc.`,
	"Ensure all the products are included in the response",
	"Ensure all the customers are included in the response",
	"Ensure all the invoices are included in the response",
}

// BuildPrompt composes the extraction instruction for a file format: a
// format-specific directive, the target JSON template, and the fixed rule
// list.
func BuildPrompt(format constants.FileFormat) string {
	var b strings.Builder

	switch format {
	case constants.Spreadsheet:
		b.WriteString("Extract invoice information from this spreadsheet data and format as JSON:")
	case constants.Document:
		b.WriteString("Extract all text from this invoice PDF and format as JSON:")
	default:
		b.WriteString("Extract all text from this invoice image and format as JSON:")
	}

	b.WriteString("\n")
	b.WriteString(schemaTemplate)
	b.WriteString("\n\nRules:\n")
	for _, r := range promptRules {
		b.WriteString("- ")
		b.WriteString(r)
		b.WriteString("\n")
	}
	return b.String()
}
