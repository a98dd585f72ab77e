package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockBatch mirrors the stock_batches table. Append-only: quantity_available
// is the only column ever mutated, and only downward by distributions.
type StockBatch struct {
	BatchID           string          `db:"batch_id"`
	MedicineID        string          `db:"medicine_id"`
	QuantityReceived  int64           `db:"quantity_received"`
	QuantityAvailable int64           `db:"quantity_available"`
	BatchReference    string          `db:"batch_reference"`
	Supplier          string          `db:"supplier"`
	UnitPrice         decimal.Decimal `db:"unit_price"`
	ExpiryDate        *time.Time      `db:"expiry_date"`
	ReceivedDate      time.Time       `db:"received_date"`
	AuditFields

	// MedicineName and Dosage are populated by list queries that join medicines.
	MedicineName string `db:"medicine_name"`
	Dosage       string `db:"dosage"`
}
