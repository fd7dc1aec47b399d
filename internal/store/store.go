package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/srikanthsurna/swipe-project/constants"
	"github.com/srikanthsurna/swipe-project/internal/common"
	"github.com/srikanthsurna/swipe-project/internal/llm"
)

// Invoice is an invoice record as held in the store.
type Invoice struct {
	ID string `json:"id"`
	llm.InvoiceFields
}

// Product is a product record as held in the store.
type Product struct {
	ID string `json:"id"`
	llm.ProductFields
}

// Customer is a customer record as held in the store. LastUpdated is stamped
// on every update.
type Customer struct {
	ID          string `json:"id"`
	LastUpdated string `json:"lastUpdated,omitempty"`
	llm.CustomerFields
}

// RecordStore holds the three independent keyed collections. IDs assigned at
// insertion are stable for the life of a record and are the sole key used for
// update lookups. Records are never deleted.
type RecordStore struct {
	mu         sync.RWMutex
	invoices   []Invoice
	products   []Product
	customers  []Customer
	lastMillis int64
}

func New() *RecordStore {
	return &RecordStore{}
}

// mintID produces "<prefix>-<epoch millis>", bumping the clock value when two
// inserts land in the same millisecond so IDs stay unique.
func (s *RecordStore) mintID(kind constants.RecordKind) string {
	now := time.Now().UnixMilli()
	if now <= s.lastMillis {
		now = s.lastMillis + 1
	}
	s.lastMillis = now
	return fmt.Sprintf("%s-%d", kind.IDPrefix(), now)
}

func (s *RecordStore) InsertInvoice(fields llm.InvoiceFields) Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := Invoice{ID: s.mintID(constants.KindInvoice), InvoiceFields: fields}
	s.invoices = append(s.invoices, rec)
	return rec
}

func (s *RecordStore) InsertProduct(fields llm.ProductFields) Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := Product{ID: s.mintID(constants.KindProduct), ProductFields: fields}
	s.products = append(s.products, rec)
	return rec
}

func (s *RecordStore) InsertCustomer(fields llm.CustomerFields) Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := Customer{ID: s.mintID(constants.KindCustomer), CustomerFields: fields}
	s.customers = append(s.customers, rec)
	return rec
}

func (s *RecordStore) UpdateInvoice(rec Invoice) (Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.invoices {
		if s.invoices[i].ID == rec.ID {
			s.invoices[i] = rec
			return rec, nil
		}
	}
	return Invoice{}, common.ErrNotFound
}

func (s *RecordStore) UpdateProduct(rec Product) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == rec.ID {
			s.products[i] = rec
			return rec, nil
		}
	}
	return Product{}, common.ErrNotFound
}

func (s *RecordStore) UpdateCustomer(rec Customer) (Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == rec.ID {
			rec.LastUpdated = time.Now().UTC().Format(time.RFC3339)
			s.customers[i] = rec
			return rec, nil
		}
	}
	return Customer{}, common.ErrNotFound
}

func (s *RecordStore) ReplaceInvoices(recs []Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices = append([]Invoice(nil), recs...)
}

func (s *RecordStore) ReplaceProducts(recs []Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]Product(nil), recs...)
}

func (s *RecordStore) ReplaceCustomers(recs []Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = append([]Customer(nil), recs...)
}

func (s *RecordStore) ListInvoices() []Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Invoice(nil), s.invoices...)
}

func (s *RecordStore) ListProducts() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Product(nil), s.products...)
}

func (s *RecordStore) ListCustomers() []Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Customer(nil), s.customers...)
}
