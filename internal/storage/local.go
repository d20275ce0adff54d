package storage

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sudekazan/butik-magaza-web/internal/models"
)

// Local uploads klasörü altında yerel diske yazar; url'ler /uploads/<ad> şeklindedir.
type Local struct {
	Root string
}

func NewLocal(root string) (*Local, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Local{Root: root}, nil
}

func (l *Local) Save(ctx context.Context, data []byte, originalName, contentType string) (*models.StoredImage, error) {
	optimized, err := normalizeImage(data)
	if err != nil {
		return nil, err
	}

	fileName := generateFileName(originalName)
	if err := os.WriteFile(filepath.Join(l.Root, fileName), optimized, 0o644); err != nil {
		return nil, err
	}

	return &models.StoredImage{
		URL:        "/uploads/" + fileName,
		Key:        fileName,
		Size:       int64(len(optimized)),
		MimeType:   "image/jpeg",
		Storage:    "local",
		UploadedAt: time.Now(),
	}, nil
}

// Delete yalnızca /uploads/ şeklindeki referansları siler; mutlak url'ler
// (nesne deposundan kalma veriler) sessizce atlanır. Hiçbir hata dışarı sızmaz.
func (l *Local) Delete(ctx context.Context, urlOrKey string) {
	if urlOrKey == "" || strings.HasPrefix(urlOrKey, "http://") || strings.HasPrefix(urlOrKey, "https://") {
		return
	}

	name := strings.TrimPrefix(urlOrKey, "/uploads/")
	name = strings.TrimPrefix(name, "/")
	if name == "" || strings.Contains(name, "..") {
		return
	}

	if err := os.Remove(filepath.Join(l.Root, name)); err != nil && !os.IsNotExist(err) {
		log.Println("⚠️ Yerel görsel silinemedi:", urlOrKey, err)
	}
}
