package domain

import "time"

// DistributionStatus indicates the state of a distribution record.
// The engine only ever writes Completed; Pending and Cancelled are reserved to
// stay compatible with the status vocabulary the dashboard already renders.
type DistributionStatus string

const (
	DistributionCompleted DistributionStatus = "COMPLETED"
	DistributionPending   DistributionStatus = "PENDING"
	DistributionCancelled DistributionStatus = "CANCELLED"
)

// Distribution is an immutable record of quantity transferred from available
// stock to a field officer. Corrections require a new compensating record.
type Distribution struct {
	DistributionID string             `json:"distributionID"`
	OfficerID      string             `json:"officerID"`
	MedicineID     string             `json:"medicineID"`
	Quantity       int64              `json:"quantity"`
	Status         DistributionStatus `json:"status"`
	DistributedAt  time.Time          `json:"distributedAt"`
	// Display data resolved by history reads, empty elsewhere.
	OfficerName  string `json:"officerName,omitempty"`
	MedicineName string `json:"medicineName,omitempty"`
	Dosage       string `json:"dosage,omitempty"`
	AuditFields
}

// BatchAllocation describes how much of a distribution one batch fulfilled.
type BatchAllocation struct {
	BatchID  string
	Quantity int64
}

// BatchAvailability is the consumable slice of one stock batch as seen by the
// allocation planner. Callers pass batches oldest first.
type BatchAvailability struct {
	BatchID   string
	Available int64
}

// PlanFIFOAllocations walks the batches in the order given and returns how much
// of the requested quantity to take from each, draining each batch before
// touching the next. Empty batches are skipped. The second return value is the
// unmet remainder; when it is non-zero the batches cannot cover the request and
// no allocations are returned, so nothing is partially consumed.
func PlanFIFOAllocations(batches []BatchAvailability, quantity int64) ([]BatchAllocation, int64) {
	allocations := []BatchAllocation{}
	remaining := quantity
	for _, b := range batches {
		if remaining == 0 {
			break
		}
		if b.Available <= 0 {
			continue
		}
		take := b.Available
		if take > remaining {
			take = remaining
		}
		allocations = append(allocations, BatchAllocation{BatchID: b.BatchID, Quantity: take})
		remaining -= take
	}
	if remaining > 0 {
		return nil, remaining
	}
	return allocations, 0
}
