package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sudekazan/butik-magaza-web/internal/models"
)

// Memory testler için deterministik bellek-içi backend.
// Görsel baytlarına dokunmaz, sıra numaralı url üretir ve
// silme çağrılarını kaydeder.
type Memory struct {
	mu      sync.Mutex
	seq     int
	SaveErr error // set edilirse her Save bu hatayla döner

	Objects map[string][]byte
	Deleted []string
}

func NewMemory() *Memory {
	return &Memory{Objects: make(map[string][]byte)}
}

func (m *Memory) Save(ctx context.Context, data []byte, originalName, contentType string) (*models.StoredImage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SaveErr != nil {
		return nil, m.SaveErr
	}

	m.seq++
	url := fmt.Sprintf("/uploads/mem_%d_%s", m.seq, originalName)
	m.Objects[url] = data

	return &models.StoredImage{
		URL:        url,
		Key:        url,
		Size:       int64(len(data)),
		MimeType:   contentType,
		Storage:    "memory",
		UploadedAt: time.Now(),
	}, nil
}

func (m *Memory) Delete(ctx context.Context, urlOrKey string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Objects, urlOrKey)
	m.Deleted = append(m.Deleted, urlOrKey)
}

// SaveCount kaç başarılı Save yapıldığını döndürür
func (m *Memory) SaveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.seq
}

// DeletedURLs kaydedilen silme çağrılarının kopyasını döndürür
func (m *Memory) DeletedURLs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Deleted))
	copy(out, m.Deleted)
	return out
}
