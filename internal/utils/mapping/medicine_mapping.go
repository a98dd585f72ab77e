package mapping

import (
	"github.com/medistock/medicine_stock_app/internal/core/domain"
	"github.com/medistock/medicine_stock_app/internal/models"
)

// ToModelMedicine converts a domain.Medicine to its DB model.
func ToModelMedicine(d domain.Medicine) models.Medicine {
	return models.Medicine{
		MedicineID:     d.MedicineID,
		Name:           d.Name,
		Dosage:         d.Dosage,
		Manufacturer:   d.Manufacturer,
		Category:       d.Category,
		ExpirationDate: d.ExpirationDate,
		Instructions:   d.Instructions,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMedicine converts a DB model medicine to its domain form.
func ToDomainMedicine(m models.Medicine) domain.Medicine {
	return domain.Medicine{
		MedicineID:     m.MedicineID,
		Name:           m.Name,
		Dosage:         m.Dosage,
		Manufacturer:   m.Manufacturer,
		Category:       m.Category,
		ExpirationDate: m.ExpirationDate,
		Instructions:   m.Instructions,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMedicineSlice converts a slice of model medicines.
func ToDomainMedicineSlice(ms []models.Medicine) []domain.Medicine {
	ds := make([]domain.Medicine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMedicine(m)
	}
	return ds
}
