package catalog

import (
	"strings"

	"github.com/sudekazan/butik-magaza-web/internal/models"
)

// DeriveStock beden satırlarından toplam stoğu türetir;
// bozuk/negatif satırlar 0 sayılır
func DeriveStock(rows []models.SizeStock) int {
	total := 0
	for _, r := range rows {
		if r.Stock > 0 {
			total += r.Stock
		}
	}
	return total
}

// NormalizeSizeStocks boş beden etiketlerini eler, negatif stokları sıfırlar
// ve yinelenen etiketlerde ilk satırı tutar
func NormalizeSizeStocks(rows []models.SizeStock) []models.SizeStock {
	out := make([]models.SizeStock, 0, len(rows))
	seen := make(map[string]bool)
	for _, r := range rows {
		r.Size = strings.TrimSpace(r.Size)
		if r.Size == "" || seen[r.Size] {
			continue
		}
		seen[r.Size] = true
		if r.Stock < 0 {
			r.Stock = 0
		}
		out = append(out, r)
	}
	return out
}
