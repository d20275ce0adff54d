package catalog

import (
	"context"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sudekazan/butik-magaza-web/internal/models"
	"github.com/sudekazan/butik-magaza-web/internal/storage"
)

// UploadFile yeni yüklenen bir dosyanın ham içeriği
type UploadFile struct {
	Data        []byte
	Name        string
	ContentType string
}

// VariantStore varyant dokümanları için kalıcılık işbirlikçisi.
// FindVariant kayıt yoksa (nil, nil) döner.
type VariantStore interface {
	FindVariant(ctx context.Context, parentID primitive.ObjectID, color string) (*models.Product, error)
	InsertVariant(ctx context.Context, p *models.Product) error
	UpdateVariant(ctx context.Context, p *models.Product) error
}

// SyncInput varyant senkronizasyonunun girdisi. Files varyant bildirim
// sırasına göre yüklenmiş ortak havuzdur; eşleme önceliği:
//
//  1. Indexes: her dosya için açık varyant sırası (yeni istemci sözleşmesi)
//  2. Counts: varyant başına yeni dosya sayısı, havuz sırayla dilimlenir
//  3. sezgisel: variant.images içindeki kayıtlı-referans-gibi-görünmeyen
//     girişler sayılır (geriye dönük uyumluluk, kırılgan)
type SyncInput struct {
	Parent  *models.Product
	Specs   []VariantSpec
	Files   []UploadFile
	Counts  []int
	Indexes []int
}

// SyncVariants gönderilen her renk için bağımsız bir varyant ürünü ekler ya
// da günceller; (parentProductId, variantColor) anahtardır. Listede olmayan
// varyantlara dokunulmaz; silme yalnızca olağan ürün silme yoluyla olur.
// Varyant başına hatalar loglanıp atlanır, istek akışını durdurmaz.
func SyncVariants(ctx context.Context, store VariantStore, backend storage.Backend, in SyncInput) []models.EmbeddedVariant {
	var synced []models.EmbeddedVariant
	poolIdx := 0

	for i, spec := range in.Specs {
		color := strings.TrimSpace(spec.Color)
		if color == "" {
			continue
		}

		files := filesForVariant(in, i, &poolIdx)

		var urls []string
		if len(files) > 0 {
			for _, f := range files {
				st, err := backend.Save(ctx, f.Data, f.Name, f.ContentType)
				if err != nil {
					log.Println("⚠️ Varyant görseli yüklenemedi:", f.Name, err)
					continue
				}
				urls = append(urls, st.URL)
			}
		} else {
			// yeni dosya yoksa yalnızca zaten kayıtlı referanslar korunur
			for _, img := range spec.Images {
				if storage.IsStoredRef(img) {
					urls = append(urls, NormalizeImageURL(img))
				}
			}
		}

		stock := spec.Stock
		if stock == 0 {
			stock = DeriveStock(spec.SizeStocks)
		}
		sizeStocks := NormalizeSizeStocks(spec.SizeStocks)
		colorHex := spec.ColorHex
		if colorHex == "" {
			colorHex = "#000000"
		}

		if err := upsertVariant(ctx, store, in.Parent, color, colorHex, stock, sizeStocks, urls); err != nil {
			log.Println("⚠️ Varyant upsert hatası:", color, err)
			continue
		}

		synced = append(synced, models.EmbeddedVariant{
			Color:      color,
			ColorHex:   colorHex,
			Stock:      stock,
			SizeStocks: sizeStocks,
			Images:     urls,
		})
	}

	return synced
}

// filesForVariant ortak dosya havuzundan bu varyantın dosyalarını çözer
func filesForVariant(in SyncInput, variant int, poolIdx *int) []UploadFile {
	if in.Indexes != nil {
		var files []UploadFile
		for j, f := range in.Files {
			if j < len(in.Indexes) && in.Indexes[j] == variant {
				files = append(files, f)
			}
		}
		return files
	}

	take := 0
	if in.Counts != nil {
		if variant < len(in.Counts) && in.Counts[variant] > 0 {
			take = in.Counts[variant]
		}
	} else {
		for _, img := range in.Specs[variant].Images {
			if !storage.IsStoredRef(img) {
				take++
			}
		}
	}
	if take == 0 {
		return nil
	}

	end := *poolIdx + take
	if end > len(in.Files) {
		end = len(in.Files)
	}
	files := in.Files[*poolIdx:end]
	*poolIdx = end
	return files
}

func upsertVariant(ctx context.Context, store VariantStore, parent *models.Product, color, colorHex string, stock int, sizeStocks []models.SizeStock, urls []string) error {
	existing, err := store.FindVariant(ctx, parent.ID, color)
	if err != nil {
		return err
	}

	name := parent.Name + " - " + color
	now := time.Now()

	if existing != nil {
		existing.Name = name
		existing.Price = parent.Price
		if len(urls) > 0 {
			existing.Images = variantImages(urls, color)
			existing.ImageURL = urls[0]
		}
		existing.Stock = stock
		existing.SizeStocks = sizeStocks
		existing.MainColor = color
		existing.MainColorHex = colorHex
		// isActive bilinçli olarak dokunulmadan bırakılır
		existing.UpdatedAt = now
		return store.UpdateVariant(ctx, existing)
	}

	imageURL := parent.ImageURL
	if len(urls) > 0 {
		imageURL = urls[0]
	}

	v := &models.Product{
		CategoryID:      parent.CategoryID,
		Name:            name,
		Description:     parent.Description,
		Price:           parent.Price,
		Stock:           stock,
		SizeStocks:      sizeStocks,
		Images:          variantImages(urls, color),
		ImageURL:        imageURL,
		MainColor:       color,
		MainColorHex:    colorHex,
		IsVariant:       true,
		ParentProductID: parent.ID,
		VariantColor:    color,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return store.InsertVariant(ctx, v)
}

// variantImages url listesini görsel girdilerine çevirir; varyantların
// bağımsız ana-görsel bayrağı yoktur, imageUrl her zaman ilk url'dir
func variantImages(urls []string, color string) []models.ProductImage {
	imgs := make([]models.ProductImage, 0, len(urls))
	for _, u := range urls {
		imgs = append(imgs, models.ProductImage{URL: u, Alt: color + " variant image", IsMain: false})
	}
	return imgs
}
