package dto

import (
	"time"

	"github.com/medistock/medicine_stock_app/internal/core/domain"
)

// DistributeRequest defines the payload for distributing stock to an officer.
type DistributeRequest struct {
	OfficerID  string `json:"officerID" binding:"required"`
	MedicineID string `json:"medicineID" binding:"required"`
	Quantity   int64  `json:"quantity" binding:"required,gt=0"`
}

// DistributionResponse defines a distribution record returned to callers.
type DistributionResponse struct {
	DistributionID string                    `json:"distributionID"`
	OfficerID      string                    `json:"officerID"`
	OfficerName    string                    `json:"officerName,omitempty"`
	MedicineID     string                    `json:"medicineID"`
	MedicineName   string                    `json:"medicineName,omitempty"`
	Dosage         string                    `json:"dosage,omitempty"`
	Quantity       int64                     `json:"quantity"`
	Status         domain.DistributionStatus `json:"status"`
	DistributedAt  time.Time                 `json:"distributedAt"`
}

// ListDistributionsResponse wraps a page of distribution records.
type ListDistributionsResponse struct {
	Distributions []DistributionResponse `json:"distributions"`
}

// ToDistributionResponse converts a domain.Distribution to DistributionResponse.
func ToDistributionResponse(d *domain.Distribution) DistributionResponse {
	return DistributionResponse{
		DistributionID: d.DistributionID,
		OfficerID:      d.OfficerID,
		OfficerName:    d.OfficerName,
		MedicineID:     d.MedicineID,
		MedicineName:   d.MedicineName,
		Dosage:         d.Dosage,
		Quantity:       d.Quantity,
		Status:         d.Status,
		DistributedAt:  d.DistributedAt,
	}
}

// ToDistributionResponses converts a slice of domain distributions.
func ToDistributionResponses(distributions []domain.Distribution) []DistributionResponse {
	responses := make([]DistributionResponse, len(distributions))
	for i := range distributions {
		responses[i] = ToDistributionResponse(&distributions[i])
	}
	return responses
}
