package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sudekazan/butik-magaza-web/internal/models"
)

func TestDeriveStock(t *testing.T) {
	rows := []models.SizeStock{{Size: "S", Stock: 3}, {Size: "M", Stock: 5}}
	assert.Equal(t, 8, DeriveStock(rows))
}

func TestDeriveStockIgnoresNegativeRows(t *testing.T) {
	rows := []models.SizeStock{{Size: "S", Stock: -2}, {Size: "M", Stock: 4}}
	assert.Equal(t, 4, DeriveStock(rows))
	assert.Equal(t, 0, DeriveStock(nil))
}

func TestNormalizeSizeStocks(t *testing.T) {
	rows := []models.SizeStock{
		{Size: " S ", Stock: 3},
		{Size: "", Stock: 9},
		{Size: "M", Stock: -1},
		{Size: "S", Stock: 7}, // yinelenen etiket, ilk satır kazanır
	}
	out := NormalizeSizeStocks(rows)

	assert.Equal(t, []models.SizeStock{{Size: "S", Stock: 3}, {Size: "M", Stock: 0}}, out)
}
