package mapping

import (
	"github.com/medistock/medicine_stock_app/internal/core/domain"
	"github.com/medistock/medicine_stock_app/internal/models"
)

// ToModelDistribution converts a domain.Distribution to its DB model.
func ToModelDistribution(d domain.Distribution) models.Distribution {
	return models.Distribution{
		DistributionID: d.DistributionID,
		OfficerID:      d.OfficerID,
		MedicineID:     d.MedicineID,
		Quantity:       d.Quantity,
		Status:         models.DistributionStatus(d.Status),
		DistributedAt:  d.DistributedAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDistribution converts a DB model distribution to its domain form,
// carrying any display columns a join populated.
func ToDomainDistribution(m models.Distribution) domain.Distribution {
	return domain.Distribution{
		DistributionID: m.DistributionID,
		OfficerID:      m.OfficerID,
		MedicineID:     m.MedicineID,
		Quantity:       m.Quantity,
		Status:         domain.DistributionStatus(m.Status),
		DistributedAt:  m.DistributedAt,
		OfficerName:    m.OfficerName,
		MedicineName:   m.MedicineName,
		Dosage:         m.Dosage,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDistributionSlice converts a slice of model distributions.
func ToDomainDistributionSlice(ms []models.Distribution) []domain.Distribution {
	ds := make([]domain.Distribution, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDistribution(m)
	}
	return ds
}
