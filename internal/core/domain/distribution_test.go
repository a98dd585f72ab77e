package domain_test

import (
	"testing"

	"github.com/medistock/medicine_stock_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestPlanFIFOAllocations(t *testing.T) {
	tests := []struct {
		name          string
		batches       []domain.BatchAvailability
		quantity      int64
		want          []domain.BatchAllocation
		wantShortfall int64
	}{
		{
			name: "drains oldest batch before touching newer",
			batches: []domain.BatchAvailability{
				{BatchID: "jan", Available: 5},
				{BatchID: "feb", Available: 10},
			},
			quantity: 8,
			want: []domain.BatchAllocation{
				{BatchID: "jan", Quantity: 5},
				{BatchID: "feb", Quantity: 3},
			},
		},
		{
			name: "single batch covers the whole request",
			batches: []domain.BatchAvailability{
				{BatchID: "jan", Available: 5},
				{BatchID: "feb", Available: 10},
			},
			quantity: 4,
			want: []domain.BatchAllocation{
				{BatchID: "jan", Quantity: 4},
			},
		},
		{
			name: "skips depleted batches",
			batches: []domain.BatchAvailability{
				{BatchID: "jan", Available: 0},
				{BatchID: "feb", Available: 10},
			},
			quantity: 6,
			want: []domain.BatchAllocation{
				{BatchID: "feb", Quantity: 6},
			},
		},
		{
			name: "exact exhaustion across every batch",
			batches: []domain.BatchAvailability{
				{BatchID: "jan", Available: 5},
				{BatchID: "feb", Available: 5},
			},
			quantity: 10,
			want: []domain.BatchAllocation{
				{BatchID: "jan", Quantity: 5},
				{BatchID: "feb", Quantity: 5},
			},
		},
		{
			name: "shortfall returns no allocations",
			batches: []domain.BatchAvailability{
				{BatchID: "jan", Available: 5},
				{BatchID: "feb", Available: 3},
			},
			quantity:      10,
			want:          nil,
			wantShortfall: 2,
		},
		{
			name:          "no batches at all",
			batches:       []domain.BatchAvailability{},
			quantity:      1,
			want:          nil,
			wantShortfall: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, shortfall := domain.PlanFIFOAllocations(tt.batches, tt.quantity)
			assert.Equal(t, tt.wantShortfall, shortfall)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
