package mapping

import (
	"github.com/medistock/medicine_stock_app/internal/core/domain"
	"github.com/medistock/medicine_stock_app/internal/models"
)

// ToModelStockBatch converts a domain.StockBatch to its DB model.
func ToModelStockBatch(d domain.StockBatch) models.StockBatch {
	return models.StockBatch{
		BatchID:           d.BatchID,
		MedicineID:        d.MedicineID,
		QuantityReceived:  d.QuantityReceived,
		QuantityAvailable: d.QuantityAvailable,
		BatchReference:    d.BatchReference,
		Supplier:          d.Supplier,
		UnitPrice:         d.UnitPrice,
		ExpiryDate:        d.ExpiryDate,
		ReceivedDate:      d.ReceivedDate,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStockBatch converts a DB model stock batch to its domain form.
func ToDomainStockBatch(m models.StockBatch) domain.StockBatch {
	return domain.StockBatch{
		BatchID:           m.BatchID,
		MedicineID:        m.MedicineID,
		QuantityReceived:  m.QuantityReceived,
		QuantityAvailable: m.QuantityAvailable,
		BatchReference:    m.BatchReference,
		Supplier:          m.Supplier,
		UnitPrice:         m.UnitPrice,
		ExpiryDate:        m.ExpiryDate,
		ReceivedDate:      m.ReceivedDate,
		MedicineName:      m.MedicineName,
		Dosage:            m.Dosage,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainStockBatchSlice converts a slice of model stock batches.
func ToDomainStockBatchSlice(ms []models.StockBatch) []domain.StockBatch {
	ds := make([]domain.StockBatch, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStockBatch(m)
	}
	return ds
}
