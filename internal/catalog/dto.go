// Package catalog ürün görsel/varyant durum mutabakatının çekirdeğidir:
// önceki kalıcı durum + istemcinin gönderdiği nihai durum → yeni tutarlı durum.
package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sudekazan/butik-magaza-web/internal/models"
)

// ImageStateItem imagesState dizisinin bir öğesidir: ya mevcut bir url
// referansı ya da yeni yüklenen dosyalara indeksle işaret eden bir giriş.
// İkisi birden boşsa öğe yapısal olarak geçersizdir ve düşürülür.
type ImageStateItem struct {
	URL      *string `json:"url"`
	NewIndex *int    `json:"newIndex"`
	IsMain   bool    `json:"isMain"`
}

// VariantSpec istemciden gelen geçici varyant tanımı; doğrudan kalıcılaşmaz.
// Images karışık olabilir: kayıtlı url'ler ya da yeni dosya yer tutucuları.
type VariantSpec struct {
	Color      string             `json:"color"`
	ColorHex   string             `json:"colorHex"`
	Stock      int                `json:"stock"`
	SizeStocks []models.SizeStock `json:"sizeStocks"`
	Images     []string           `json:"images"`
}

// ParseImagesState imagesState JSON alanını çözer; bozuk JSON doğrulama hatasıdır
func ParseImagesState(raw string) ([]ImageStateItem, error) {
	if raw == "" {
		return nil, nil
	}
	var items []ImageStateItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("imagesState çözümlenemedi: %w", err)
	}
	return items, nil
}

// ParseVariants variants JSON alanını çözer; rengi boş olanlar elenmez,
// senkronizasyon sırasında atlanır
func ParseVariants(raw string) ([]VariantSpec, error) {
	if raw == "" {
		return nil, nil
	}
	var specs []VariantSpec
	if err := json.Unmarshal([]byte(raw), &specs); err != nil {
		return nil, fmt.Errorf("variants çözümlenemedi: %w", err)
	}
	return specs, nil
}

// ParseSizeStocks sizeStocks JSON alanını çözer ve boş bedenleri eler
func ParseSizeStocks(raw string) ([]models.SizeStock, error) {
	if raw == "" {
		return nil, nil
	}
	var rows []models.SizeStock
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		return nil, fmt.Errorf("sizeStocks çözümlenemedi: %w", err)
	}
	out := rows[:0]
	for _, r := range rows {
		r.Size = strings.TrimSpace(r.Size)
		if r.Size != "" {
			out = append(out, r)
		}
	}
	return out, nil
}

// ParseIntList variantImageCounts / variantImageIndexes gibi sayı dizilerini çözer
func ParseIntList(field, raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}
	var list []int
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("%s çözümlenemedi: %w", field, err)
	}
	return list, nil
}
