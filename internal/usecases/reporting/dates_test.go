package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	goaffprodomain "github.com/vfg2006/affiliate-insights-api/infrastructure/integrator/goaffpro/domain"
)

func TestFirstAndLastSaleDate(t *testing.T) {
	tests := []struct {
		name          string
		orders        []goaffprodomain.Order
		expectedFirst *time.Time
		expectedLast  *time.Time
	}{
		{
			name:          "Lista vazia retorna nil nas duas pontas",
			orders:        nil,
			expectedFirst: nil,
			expectedLast:  nil,
		},
		{
			name: "Um único pedido é ao mesmo tempo primeiro e último",
			orders: []goaffprodomain.Order{
				{Created: "2024-03-10 14:00:00"},
			},
			expectedFirst: timePtr(time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)),
			expectedLast:  timePtr(time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)),
		},
		{
			name: "Vários pedidos fora de ordem",
			orders: []goaffprodomain.Order{
				{Created: "2024-03-10 14:00:00"},
				{Created: "2024-01-05 09:30:00"},
				{Created: "2024-02-20 18:45:00"},
			},
			expectedFirst: timePtr(time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC)),
			expectedLast:  timePtr(time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)),
		},
		{
			name: "Timestamps ilegíveis são ignorados",
			orders: []goaffprodomain.Order{
				{Created: "not-a-date"},
				{Created: "2024-02-20 18:45:00"},
				{Created: ""},
			},
			expectedFirst: timePtr(time.Date(2024, 2, 20, 18, 45, 0, 0, time.UTC)),
			expectedLast:  timePtr(time.Date(2024, 2, 20, 18, 45, 0, 0, time.UTC)),
		},
		{
			name: "Só timestamps ilegíveis equivale a lista vazia",
			orders: []goaffprodomain.Order{
				{Created: "not-a-date"},
			},
			expectedFirst: nil,
			expectedLast:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := firstSaleDate(tt.orders)
			last := lastSaleDate(tt.orders)

			if tt.expectedFirst == nil {
				assert.Nil(t, first)
				assert.Nil(t, last)
				return
			}

			assert.True(t, tt.expectedFirst.Equal(*first))
			assert.True(t, tt.expectedLast.Equal(*last))
		})
	}
}

func TestFormatDatePtr(t *testing.T) {
	assert.Nil(t, formatDatePtr(nil))

	formatted := formatDatePtr(timePtr(time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-10", *formatted)
}

func timePtr(t time.Time) *time.Time {
	return &t
}
