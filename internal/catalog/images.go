package catalog

import (
	"regexp"

	"github.com/sudekazan/butik-magaza-web/internal/models"
)

var uploadsURLPattern = regexp.MustCompile(`/uploads/[^'" )]+`)

// NormalizeImageURL tam bir url'in içinden /uploads/... bölümünü çıkarır;
// bulunamazsa girdiyi olduğu gibi döndürür
func NormalizeImageURL(s string) string {
	if m := uploadsURLPattern.FindString(s); m != "" {
		return m
	}
	return s
}

// SetMainImage hedef url'i ana görsel yapar ve imageUrl aynasını döndürür.
// Hedef listede yoksa ama eski tekil imageUrl ile eşleşiyorsa görsel başa
// eklenir (migrasyon öncesi veri toleransı).
func SetMainImage(images []models.ProductImage, legacyURL, target string) ([]models.ProductImage, string) {
	target = NormalizeImageURL(target)

	if len(images) == 0 {
		if legacyURL == target {
			return images, legacyURL
		}
		return images, target
	}

	out := make([]models.ProductImage, len(images))
	matched := false
	for i, im := range images {
		im.IsMain = im.URL == target
		if im.IsMain {
			matched = true
		}
		out[i] = im
	}

	if !matched && target != "" && legacyURL == target {
		out = append([]models.ProductImage{{URL: target, IsMain: true}}, out...)
	}

	mainURL := out[0].URL
	for _, im := range out {
		if im.IsMain {
			mainURL = im.URL
			break
		}
	}
	return out, mainURL
}

// RemoveImage hedef url'i listeden çıkarır; ana görsel silinmişse ilk girdi
// ana yapılır. removed=false ise hedef hiçbir yerde bulunamamıştır.
func RemoveImage(images []models.ProductImage, legacyURL, target string) (out []models.ProductImage, imageURL string, removed bool) {
	target = NormalizeImageURL(target)

	if len(images) == 0 {
		if legacyURL != "" && legacyURL == target {
			return images, "", true
		}
		return images, legacyURL, false
	}

	wasMain := false
	out = make([]models.ProductImage, 0, len(images))
	for _, im := range images {
		if im.URL == target {
			removed = true
			if im.IsMain {
				wasMain = true
			}
			continue
		}
		out = append(out, im)
	}
	if !removed {
		return images, legacyURL, false
	}

	if len(out) == 0 {
		return out, "", true
	}

	hasMain := false
	for _, im := range out {
		if im.IsMain {
			hasMain = true
			break
		}
	}
	if wasMain || !hasMain {
		for i := range out {
			out[i].IsMain = i == 0
		}
	}

	imageURL = out[0].URL
	for _, im := range out {
		if im.IsMain {
			imageURL = im.URL
			break
		}
	}
	return out, imageURL, true
}
