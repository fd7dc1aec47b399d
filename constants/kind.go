package constants

// RecordKind names the three independent collections in the record store.
type RecordKind string

const (
	KindInvoice  RecordKind = "invoice"
	KindProduct  RecordKind = "product"
	KindCustomer RecordKind = "customer"
)

// IDPrefix returns the prefix used when minting record IDs
// ("<prefix>-<epoch millis>").
func (k RecordKind) IDPrefix() string {
	switch k {
	case KindInvoice:
		return "inv"
	case KindProduct:
		return "prod"
	case KindCustomer:
		return "cust"
	}
	return "rec"
}
