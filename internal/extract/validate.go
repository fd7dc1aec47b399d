package extract

import (
	"math"
	"strings"

	"github.com/srikanthsurna/swipe-project/internal/llm"
)

// Report is the outcome of validating an extraction result. It is derived
// purely from the result's field-presence pattern and is recomputable at any
// time; it is never persisted.
type Report struct {
	IsValid      bool     `json:"isValid"`
	Errors       []string `json:"errors"`
	Warnings     []string `json:"warnings"`
	Completeness int      `json:"completeness"` // 0..100
}

// Validate checks required fields, collects errors and warnings, and scores
// completeness. Hard errors make the result invalid; warnings do not.
// Invalid records are still stored — the report rides along for display.
func Validate(res *llm.ExtractionResult) Report {
	errs := []string{}
	warnings := []string{}

	inv := res.Invoice
	cust := res.Customer
	prod := res.Product

	if inv == nil || inv.SerialNumber == "" {
		errs = append(errs, "Missing invoice number")
	}
	if inv == nil || inv.Date == "" {
		errs = append(errs, "Missing invoice date")
	}
	if inv == nil || inv.TotalAmount == 0 {
		errs = append(errs, "Missing total amount")
	}

	if cust == nil || cust.Name == "" {
		errs = append(errs, "Missing customer name")
	} else if len(cust.Name) < 2 {
		warnings = append(warnings, "Customer name seems too short")
	}

	if cust == nil || (cust.PhoneNumber == "" && cust.Email == "") {
		errs = append(errs, "Missing customer contact information")
	} else {
		if cust.Email != "" && !strings.Contains(cust.Email, "@") {
			warnings = append(warnings, "Invalid email format")
		}
		if cust.PhoneNumber != "" && len(cust.PhoneNumber) < 10 {
			warnings = append(warnings, "Phone number seems incomplete")
		}
	}

	if prod == nil || prod.Name == "" {
		errs = append(errs, "Missing product name")
	}
	if prod == nil || prod.Quantity <= 0 {
		errs = append(errs, "Invalid product quantity")
	}
	if prod == nil || prod.UnitPrice <= 0 {
		errs = append(errs, "Invalid unit price")
	}

	// Amount sanity checks only apply when an invoice sub-record exists.
	if inv != nil && inv.TotalAmount <= 0 {
		errs = append(errs, "Invalid total amount")
	}
	if inv != nil && inv.Tax < 0 {
		warnings = append(warnings, "Negative tax amount")
	}

	return Report{
		IsValid:      len(errs) == 0,
		Errors:       errs,
		Warnings:     warnings,
		Completeness: completeness(res),
	}
}

// trackedFields is the size of the fixed field checklist behind the
// completeness percentage.
const trackedFields = 11

// completeness counts how many of the tracked fields are populated and
// returns the rounded percentage. Adding a previously-absent tracked field
// can only increase the score.
func completeness(res *llm.ExtractionResult) int {
	filled := 0

	if inv := res.Invoice; inv != nil {
		if inv.SerialNumber != "" {
			filled++
		}
		if inv.Date != "" {
			filled++
		}
		if inv.TotalAmount > 0 {
			filled++
		}
		if inv.Tax >= 0 {
			filled++
		}
	}
	if cust := res.Customer; cust != nil {
		if cust.Name != "" {
			filled++
		}
		if cust.PhoneNumber != "" {
			filled++
		}
		if cust.Email != "" {
			filled++
		}
	}
	if prod := res.Product; prod != nil {
		if prod.Name != "" {
			filled++
		}
		if prod.Quantity > 0 {
			filled++
		}
		if prod.UnitPrice > 0 {
			filled++
		}
		if prod.Tax >= 0 {
			filled++
		}
	}

	return int(math.Round(float64(filled) / trackedFields * 100))
}
