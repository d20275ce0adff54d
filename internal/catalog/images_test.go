package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudekazan/butik-magaza-web/internal/models"
)

func TestNormalizeImageURL(t *testing.T) {
	assert.Equal(t, "/uploads/a.jpg", NormalizeImageURL("https://cdn.example.com/uploads/a.jpg"))
	assert.Equal(t, "/uploads/a.jpg", NormalizeImageURL("/uploads/a.jpg"))
	assert.Equal(t, "rastgele", NormalizeImageURL("rastgele"))
}

func TestSetMainImage(t *testing.T) {
	images := []models.ProductImage{img("/uploads/a.jpg", true), img("/uploads/b.jpg", false)}

	out, mainURL := SetMainImage(images, "/uploads/a.jpg", "/uploads/b.jpg")

	require.Len(t, out, 2)
	assert.False(t, out[0].IsMain)
	assert.True(t, out[1].IsMain)
	assert.Equal(t, "/uploads/b.jpg", mainURL)
	// girdi dilimi değişmeden kalır
	assert.True(t, images[0].IsMain)
}

func TestSetMainImageLegacyURLUnshifted(t *testing.T) {
	images := []models.ProductImage{img("/uploads/b.jpg", true)}

	// hedef listede yok ama eski imageUrl ile eşleşiyor: başa eklenir
	out, mainURL := SetMainImage(images, "/uploads/old.jpg", "/uploads/old.jpg")

	require.Len(t, out, 2)
	assert.Equal(t, "/uploads/old.jpg", out[0].URL)
	assert.True(t, out[0].IsMain)
	assert.False(t, out[1].IsMain)
	assert.Equal(t, "/uploads/old.jpg", mainURL)
}

func TestRemoveImagePromotesFirstWhenMainRemoved(t *testing.T) {
	images := []models.ProductImage{img("/uploads/a.jpg", true), img("/uploads/b.jpg", false), img("/uploads/c.jpg", false)}

	out, mainURL, removed := RemoveImage(images, "/uploads/a.jpg", "https://site.example/uploads/a.jpg")

	require.True(t, removed)
	require.Len(t, out, 2)
	assert.True(t, out[0].IsMain)
	assert.Equal(t, "/uploads/b.jpg", mainURL)
}

func TestRemoveImageLastImageClearsMirror(t *testing.T) {
	images := []models.ProductImage{img("/uploads/a.jpg", true)}

	out, mainURL, removed := RemoveImage(images, "/uploads/a.jpg", "/uploads/a.jpg")

	require.True(t, removed)
	assert.Empty(t, out)
	assert.Equal(t, "", mainURL)
}

func TestRemoveImageNotFound(t *testing.T) {
	images := []models.ProductImage{img("/uploads/a.jpg", true)}

	out, mainURL, removed := RemoveImage(images, "/uploads/a.jpg", "/uploads/ghost.jpg")

	assert.False(t, removed)
	assert.Equal(t, images, out)
	assert.Equal(t, "/uploads/a.jpg", mainURL)
}
