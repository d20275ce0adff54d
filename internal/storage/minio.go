package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"

	"github.com/sudekazan/butik-magaza-web/internal/models"
)

// Minio herkese açık okunabilir bir bucket'a yazar; nesneler uzun ömürlü
// değişmez cache başlığıyla saklanır ve mutlak url döndürülür.
type Minio struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

func NewMinio(client *minio.Client, bucket, endpoint string, useSSL bool) *Minio {
	scheme := "http"
	if useSSL {
		scheme = "https"
	}
	return &Minio{
		client:  client,
		bucket:  bucket,
		baseURL: fmt.Sprintf("%s://%s/%s", scheme, endpoint, bucket),
	}
}

func (m *Minio) Save(ctx context.Context, data []byte, originalName, contentType string) (*models.StoredImage, error) {
	optimized, err := normalizeImage(data)
	if err != nil {
		return nil, err
	}

	key := "images/" + generateFileName(originalName)

	_, err = m.client.PutObject(ctx, m.bucket, key,
		bytes.NewReader(optimized), int64(len(optimized)),
		minio.PutObjectOptions{
			ContentType:  "image/jpeg",
			CacheControl: "public, max-age=31536000, immutable",
		})
	if err != nil {
		return nil, err
	}

	return &models.StoredImage{
		URL:        m.baseURL + "/" + key,
		Key:        key,
		Size:       int64(len(optimized)),
		MimeType:   "image/jpeg",
		Storage:    "minio",
		UploadedAt: time.Now(),
	}, nil
}

// Delete referansın şeklinden nesne anahtarını çıkarır: bu bucket'ın mutlak
// url'i baz alınır, /uploads/ şeklindeki eski referanslar da anahtar sayılır.
// Silme tavsiye niteliğinde temizliktir; hatalar yutulup loglanır.
func (m *Minio) Delete(ctx context.Context, urlOrKey string) {
	if urlOrKey == "" {
		return
	}

	key := urlOrKey
	switch {
	case strings.HasPrefix(key, m.baseURL+"/"):
		key = strings.TrimPrefix(key, m.baseURL+"/")
	case strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://"):
		// Başka bir depodan kalma url; burada yapılabilecek bir şey yok
		return
	default:
		key = strings.TrimPrefix(key, "/uploads/")
		key = strings.TrimPrefix(key, "/")
	}
	if key == "" {
		return
	}

	if err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		log.Println("⚠️ MinIO nesnesi silinemedi:", key, err)
	}
}
