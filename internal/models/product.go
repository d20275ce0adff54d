package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SizeStock - beden bazlı stok satırı
type SizeStock struct {
	Size  string `json:"size" bson:"size"`
	Stock int    `json:"stock" bson:"stock"`
}

// ProductImage - ürün görseli; isMain ile ana görsel işaretlenir
type ProductImage struct {
	URL    string `json:"url" bson:"url"`
	Alt    string `json:"alt" bson:"alt"`
	IsMain bool   `json:"isMain" bson:"isMain"`
}

// EmbeddedVariant - ana ürün dokümanında tutulan varyant kopyası
// (geriye dönük uyumluluk; varyantlar asıl olarak bağımsız ürün dokümanlarıdır)
type EmbeddedVariant struct {
	Color      string      `json:"color" bson:"color"`
	ColorHex   string      `json:"colorHex" bson:"colorHex"`
	Stock      int         `json:"stock" bson:"stock"`
	SizeStocks []SizeStock `json:"sizeStocks" bson:"sizeStocks"`
	Images     []string    `json:"images" bson:"images"`
}

type Product struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	CategoryID  primitive.ObjectID `json:"categoryId" bson:"categoryId"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`

	// Eski düz stok alanı (geriye dönük uyumluluk)
	Stock      int         `json:"stock" bson:"stock"`
	SizeStocks []SizeStock `json:"sizeStocks" bson:"sizeStocks"`

	// Çoklu görseller; imageUrl ana görselin aynasıdır (liste boşsa "")
	Images   []ProductImage `json:"images" bson:"images"`
	ImageURL string         `json:"imageUrl" bson:"imageUrl"`

	Variants []EmbeddedVariant `json:"variants,omitempty" bson:"variants,omitempty"`

	MainColor    string `json:"mainColor" bson:"mainColor"`
	MainColorHex string `json:"mainColorHex" bson:"mainColorHex"`

	// Varyant ürün sistemi: varyantlar bağımsız dokümanlardır,
	// (parentProductId, variantColor) ile ana ürüne bağlanır
	IsVariant       bool               `json:"isVariant" bson:"isVariant"`
	ParentProductID primitive.ObjectID `json:"parentProductId,omitempty" bson:"parentProductId,omitempty"`
	VariantColor    string             `json:"variantColor,omitempty" bson:"variantColor,omitempty"`

	IsActive bool `json:"isActive" bson:"isActive"`
	Featured bool `json:"featured" bson:"featured"`

	// İyimser eşzamanlılık sayacı: yazarken karşılaştırılıp artırılır,
	// bayat yazmalar reddedilir
	Version int64 `json:"version" bson:"version"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// MainImageURL - ana görsel işaretli girdinin url'i, liste boşsa ""
func (p *Product) MainImageURL() string {
	for _, im := range p.Images {
		if im.IsMain {
			return im.URL
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].URL
	}
	return ""
}

// AllImageURLs - dokümanın sahip olduğu tüm görsel referansları
// (çoklu görseller, eski imageUrl ve gömülü varyant görselleri dahil)
func (p *Product) AllImageURLs() []string {
	seen := make(map[string]bool)
	var urls []string
	add := func(u string) {
		if u != "" && !seen[u] {
			seen[u] = true
			urls = append(urls, u)
		}
	}
	for _, im := range p.Images {
		add(im.URL)
	}
	if len(p.Images) == 0 {
		add(p.ImageURL)
	}
	for _, v := range p.Variants {
		for _, u := range v.Images {
			add(u)
		}
	}
	return urls
}

// StoredImage - depolama backend'inin kayıt sonucu
type StoredImage struct {
	URL        string    `json:"url"`
	Key        string    `json:"key"`
	Size       int64     `json:"size"`
	MimeType   string    `json:"mimeType"`
	Storage    string    `json:"storage"` // "local" | "minio" | "memory"
	UploadedAt time.Time `json:"uploadedAt"`
}
