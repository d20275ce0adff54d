// Package storage ürün görsellerinin ham baytlarını saklar.
// Backend bir kez başlangıçta seçilir ve enjekte edilir; yerel disk,
// MinIO ve testler için deterministik bir bellek-içi sahte mevcuttur.
package storage

import (
	"context"
	"log"
	"os"

	"github.com/sudekazan/butik-magaza-web/internal/database"
	"github.com/sudekazan/butik-magaza-web/internal/models"
)

// Backend görsel baytlarını saklayıp herkese açık bir referans döndürür.
// Delete en-iyi-çaba temizliktir: referansın şeklinden backend türünü
// çıkarır, tüm hatalar yutulup yalnızca loglanır.
type Backend interface {
	Save(ctx context.Context, data []byte, originalName, contentType string) (*models.StoredImage, error)
	Delete(ctx context.Context, urlOrKey string)
}

// Active başlangıçta Init ile seçilen backend'dir
var Active Backend

// Init ortam değişkenlerine göre aktif backend'i seçer:
// MinIO bağlıysa nesne deposu, değilse uploads klasörü altında yerel disk.
func Init() {
	if database.MinIO != nil {
		Active = NewMinio(database.MinIO, os.Getenv("MINIO_BUCKET"), os.Getenv("MINIO_ENDPOINT"), os.Getenv("MINIO_USE_SSL") == "true")
		log.Println("✅ Depolama backend'i: MinIO")
		return
	}

	root := os.Getenv("UPLOADS_DIR")
	if root == "" {
		root = "uploads"
	}
	local, err := NewLocal(root)
	if err != nil {
		log.Fatal("❌ Uploads klasörü oluşturulamadı:", err)
	}
	Active = local
	log.Println("📁 Depolama backend'i: yerel disk →", root)
}
