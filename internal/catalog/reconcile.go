package catalog

import (
	"github.com/sudekazan/butik-magaza-web/internal/models"
)

// ReconcileResult yeni görsel listesi, ana görsel aynası ve artık hiçbir
// yerden referans edilmeyen (silinmesi planlanan) url'lerdir.
type ReconcileResult struct {
	Images   []models.ProductImage
	ImageURL string
	Removed  []string
}

// ReconcileImages istemcinin gönderdiği nihai durumu önceki listeyle
// mutabık kılar. state'in sırası belirleyicidir ve yeni görsel sırası olur;
// editör görselleri yeniden göndererek bu şekilde sıralar.
//
//   - newIndex girişleri uploaded[index]'ten çözülür; indeks taşmışsa düşer
//   - url girişleri yalnızca önceki listede (ya da eski tekil imageUrl'de)
//     varsa kabul edilir, aksi halde sessizce düşürülür; mevcut url'ler
//     tekillenir, yeni dosya girişleri tekillenmez
//   - hiçbir giriş ana işaretli değilse ilk girdi ana yapılır
func ReconcileImages(prev []models.ProductImage, legacyURL string, state []ImageStateItem, uploaded []models.StoredImage) ReconcileResult {
	prevByURL := make(map[string]models.ProductImage, len(prev))
	for _, im := range prev {
		prevByURL[im.URL] = im
	}

	final := []models.ProductImage{}
	kept := make(map[string]bool)

	for _, item := range state {
		switch {
		case item.NewIndex != nil:
			if *item.NewIndex >= 0 && *item.NewIndex < len(uploaded) {
				f := uploaded[*item.NewIndex]
				final = append(final, models.ProductImage{URL: f.URL, IsMain: item.IsMain})
			}
		case item.URL != nil:
			url := *item.URL
			if url == "" || kept[url] {
				continue
			}
			if im, ok := prevByURL[url]; ok {
				im.IsMain = item.IsMain
				final = append(final, im)
				kept[url] = true
			} else if url == legacyURL {
				// migrasyon öncesi veri: images listesi yokken tekil imageUrl
				final = append(final, models.ProductImage{URL: url, IsMain: item.IsMain})
				kept[url] = true
			}
		}
	}

	return finishReconcile(prev, final)
}

// AppendImages imagesState hiç gönderilmediğinde geçerli olan eski eklemeli
// davranıştır: öncekiler korunur, yüklenenler sona eklenir; daha önce ana
// işaretli görsel yoksa ilk girdi ana olur.
func AppendImages(prev []models.ProductImage, uploaded []models.StoredImage) ReconcileResult {
	final := make([]models.ProductImage, 0, len(prev)+len(uploaded))
	final = append(final, prev...)
	for _, f := range uploaded {
		final = append(final, models.ProductImage{URL: f.URL, IsMain: false})
	}
	return finishReconcile(prev, final)
}

func finishReconcile(prev, final []models.ProductImage) ReconcileResult {
	res := ReconcileResult{Images: final}

	if len(final) > 0 {
		// en fazla bir girdi ana işaretli kalır: ilk işaretli kazanır,
		// hiç işaret yoksa ilk girdi ana yapılır
		mainIdx := -1
		for i, im := range final {
			if !im.IsMain {
				continue
			}
			if mainIdx == -1 {
				mainIdx = i
			} else {
				final[i].IsMain = false
			}
		}
		if mainIdx == -1 {
			mainIdx = 0
			final[0].IsMain = true
		}
		res.ImageURL = final[mainIdx].URL
	}

	current := make(map[string]bool, len(final))
	for _, im := range final {
		current[im.URL] = true
	}
	scheduled := make(map[string]bool)
	for _, im := range prev {
		if im.URL != "" && !current[im.URL] && !scheduled[im.URL] {
			scheduled[im.URL] = true
			res.Removed = append(res.Removed, im.URL)
		}
	}

	return res
}
