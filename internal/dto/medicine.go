package dto

import (
	"time"

	"github.com/medistock/medicine_stock_app/internal/core/domain"
)

// CreateMedicineRequest defines the payload for creating a catalog entry.
type CreateMedicineRequest struct {
	Name           string    `json:"name" binding:"required"`
	Dosage         string    `json:"dosage" binding:"required"`
	Manufacturer   string    `json:"manufacturer" binding:"required"`
	Category       string    `json:"category" binding:"required"`
	ExpirationDate time.Time `json:"expirationDate" binding:"required"`
	Instructions   string    `json:"instructions,omitempty"`
}

// UpdateMedicineRequest defines the payload for updating a catalog entry.
// All fields optional; absent fields are left unchanged.
type UpdateMedicineRequest struct {
	Name           *string    `json:"name,omitempty"`
	Dosage         *string    `json:"dosage,omitempty"`
	Manufacturer   *string    `json:"manufacturer,omitempty"`
	Category       *string    `json:"category,omitempty"`
	ExpirationDate *time.Time `json:"expirationDate,omitempty"`
	Instructions   *string    `json:"instructions,omitempty"`
}

// MedicineResponse defines the medicine data returned to callers.
type MedicineResponse struct {
	MedicineID     string    `json:"medicineID"`
	Name           string    `json:"name"`
	Dosage         string    `json:"dosage"`
	Manufacturer   string    `json:"manufacturer"`
	Category       string    `json:"category"`
	ExpirationDate time.Time `json:"expirationDate"`
	Instructions   string    `json:"instructions,omitempty"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ListMedicinesResponse wraps a page of medicines.
type ListMedicinesResponse struct {
	Medicines []MedicineResponse `json:"medicines"`
}

// ToMedicineResponse converts a domain.Medicine to MedicineResponse.
func ToMedicineResponse(m *domain.Medicine) MedicineResponse {
	return MedicineResponse{
		MedicineID:     m.MedicineID,
		Name:           m.Name,
		Dosage:         m.Dosage,
		Manufacturer:   m.Manufacturer,
		Category:       m.Category,
		ExpirationDate: m.ExpirationDate,
		Instructions:   m.Instructions,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
	}
}

// ToMedicineResponses converts a slice of domain medicines.
func ToMedicineResponses(medicines []domain.Medicine) []MedicineResponse {
	responses := make([]MedicineResponse, len(medicines))
	for i := range medicines {
		responses[i] = ToMedicineResponse(&medicines[i])
	}
	return responses
}
