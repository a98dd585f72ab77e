package models

import "time"

// DistributionStatus mirrors the distribution status enum column.
type DistributionStatus string

const (
	DistributionCompleted DistributionStatus = "COMPLETED"
	DistributionPending   DistributionStatus = "PENDING"
	DistributionCancelled DistributionStatus = "CANCELLED"
)

// Distribution mirrors the distributions table. Rows are immutable once written.
type Distribution struct {
	DistributionID string             `db:"distribution_id"`
	OfficerID      string             `db:"officer_id"`
	MedicineID     string             `db:"medicine_id"`
	Quantity       int64              `db:"quantity"`
	Status         DistributionStatus `db:"status"`
	DistributedAt  time.Time          `db:"distributed_at"`
	AuditFields

	// Display columns populated by history queries that join users and medicines.
	OfficerName  string `db:"officer_name"`
	MedicineName string `db:"medicine_name"`
	Dosage       string `db:"dosage"`
}
