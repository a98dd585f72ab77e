package models

import "time"

// Medicine mirrors the medicines table.
type Medicine struct {
	MedicineID     string    `db:"medicine_id"`
	Name           string    `db:"name"`
	Dosage         string    `db:"dosage"`
	Manufacturer   string    `db:"manufacturer"`
	Category       string    `db:"category"`
	ExpirationDate time.Time `db:"expiration_date"`
	Instructions   string    `db:"instructions"`
	IsActive       bool      `db:"is_active"`
	AuditFields
}
