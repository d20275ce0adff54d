package product

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sudekazan/butik-magaza-web/internal/cache"
	"github.com/sudekazan/butik-magaza-web/internal/catalog"
	"github.com/sudekazan/butik-magaza-web/internal/storage"
)

// SetMainImage - verilen url'li görseli ana görsel yapar
func SetMainImage(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID ve url gerekli"})
		return
	}

	var req struct {
		URL string `json:"url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID ve url gerekli"})
		return
	}

	r := repo()
	p, err := r.FindByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Ürün bulunamadı"})
		return
	}

	images, imageURL := catalog.SetMainImage(p.Images, p.ImageURL, req.URL)
	err = r.UpdateWithVersion(ctx, id, p.Version, bson.M{"images": images, "imageUrl": imageURL})
	if err != nil {
		writeUpdateError(c, err)
		return
	}

	cache.InvalidateProducts(ctx)
	p.Images = images
	p.ImageURL = imageURL
	p.Version++
	c.JSON(http.StatusOK, gin.H{"success": true, "product": p})
}

// DeleteImage - tek bir görseli üründen ve depodan kaldırır. Silinen ana
// görselse kalan ilk görsel ana olur; son görsel silinirse imageUrl boşalır.
func DeleteImage(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID ve url gerekli"})
		return
	}

	var req struct {
		URL string `json:"url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID ve url gerekli"})
		return
	}

	r := repo()
	p, err := r.FindByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Ürün bulunamadı"})
		return
	}

	images, imageURL, removed := catalog.RemoveImage(p.Images, p.ImageURL, req.URL)
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"message": "Silinecek görsel bulunamadı"})
		return
	}

	err = r.UpdateWithVersion(ctx, id, p.Version, bson.M{"images": images, "imageUrl": imageURL})
	if err != nil {
		writeUpdateError(c, err)
		return
	}

	catalog.ScheduleDeletes(storage.Active, []string{catalog.NormalizeImageURL(req.URL)})
	cache.InvalidateProducts(ctx)
	p.Images = images
	p.ImageURL = imageURL
	p.Version++
	c.JSON(http.StatusOK, gin.H{"success": true, "product": p})
}
