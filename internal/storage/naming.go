package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9-]`)

// generateFileName çakışmaya dayanıklı bir dosya adı üretir:
// <epoch-ms>_<random-hex>_<temizlenmiş-ad><uzantı>
func generateFileName(originalName string) string {
	if originalName == "" {
		originalName = "image.jpg"
	}
	ext := filepath.Ext(originalName)
	if ext == "" {
		ext = ".jpg"
	}
	base := strings.TrimSuffix(filepath.Base(originalName), ext)
	base = unsafeChars.ReplaceAllString(base, "_")

	buf := make([]byte, 6)
	rand.Read(buf)

	return fmt.Sprintf("%d_%s_%s%s", time.Now().UnixMilli(), hex.EncodeToString(buf), base, ext)
}

// IsStoredRef bir girdinin zaten kaydedilmiş bir görsel referansı olup
// olmadığını söyler (/uploads/ yolu ya da mutlak http(s) url).
// Kırılgan bir sezgiseldir; yalnızca eski istemciler için yedek olarak kullanılır.
func IsStoredRef(s string) bool {
	return strings.Contains(s, "/uploads/") ||
		strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://")
}
