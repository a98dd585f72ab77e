package domain

import "time"

// Medicine is a catalog entry the stock ledger references by ID.
// The ledger never mutates catalog data beyond what the CRUD handlers expose.
type Medicine struct {
	MedicineID     string    `json:"medicineID"`
	Name           string    `json:"name"`
	Dosage         string    `json:"dosage"` // e.g. "500mg"
	Manufacturer   string    `json:"manufacturer"`
	Category       string    `json:"category"`
	ExpirationDate time.Time `json:"expirationDate"`
	Instructions   string    `json:"instructions,omitempty"` // optional, e.g. "Take with food"
	IsActive       bool      `json:"isActive"`
	AuditFields
}
