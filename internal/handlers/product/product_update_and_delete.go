package product

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sudekazan/butik-magaza-web/internal/cache"
	"github.com/sudekazan/butik-magaza-web/internal/catalog"
	"github.com/sudekazan/butik-magaza-web/internal/storage"
)

// UpdateProduct - tam güncelleme (multipart). Görsel mutabakatı: imagesState
// gönderildiyse sunulan sıra esastır, gönderilmediyse yeni yüklemeler mevcut
// listeye eklenir. Bayat sürümle gelen yazmalar 409 ile reddedilir.
func UpdateProduct(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Geçersiz ürün ID"})
		return
	}

	// Tüm alanlar depolamaya yazmadan önce doğrulanır; bozuk girdi hiçbir
	// yan etki bırakmadan 400 döner
	var state []catalog.ImageStateItem
	stateProvided := false
	if raw := c.PostForm("imagesState"); raw != "" {
		state, err = catalog.ParseImagesState(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		stateProvided = true
	}
	sizeStocks, err := catalog.ParseSizeStocks(c.PostForm("sizeStocks"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	variants, err := catalog.ParseVariants(c.PostForm("variants"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	counts, err := catalog.ParseIntList("variantImageCounts", c.PostForm("variantImageCounts"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	indexes, err := catalog.ParseIntList("variantImageIndexes", c.PostForm("variantImageIndexes"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	var price *float64
	if v := c.PostForm("price"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Geçersiz fiyat"})
			return
		}
		price = &parsed
	}
	var categoryID *primitive.ObjectID
	if v := c.PostForm("categoryId"); v != "" {
		oid, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Geçersiz kategori ID"})
			return
		}
		categoryID = &oid
	}
	var stock *int
	if v := c.PostForm("stock"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Geçersiz stok"})
			return
		}
		stock = &n
	}

	r := repo()
	prev, err := r.FindByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Ürün bulunamadı"})
		return
	}

	uploaded, err := saveUploads(ctx, readUploadFiles(formFiles(c, "images")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Görseller yüklenemedi"})
		return
	}

	var rec catalog.ReconcileResult
	switch {
	case stateProvided:
		rec = catalog.ReconcileImages(prev.Images, prev.ImageURL, state, uploaded)
	case len(uploaded) > 0:
		rec = catalog.AppendImages(prev.Images, uploaded)
	default:
		rec = catalog.ReconcileResult{Images: prev.Images, ImageURL: prev.ImageURL}
	}

	set := bson.M{
		"images":   rec.Images,
		"imageUrl": rec.ImageURL,
	}

	finalName := prev.Name
	if name != "" {
		finalName = name
		set["name"] = name
	}
	finalPrice := prev.Price
	if price != nil {
		finalPrice = *price
		set["price"] = *price
	}
	if v := c.PostForm("description"); v != "" {
		set["description"] = v
	}
	if categoryID != nil {
		set["categoryId"] = *categoryID
	}
	if stock != nil {
		set["stock"] = *stock
	}
	if c.PostForm("sizeStocks") != "" {
		normalized := catalog.NormalizeSizeStocks(sizeStocks)
		set["sizeStocks"] = normalized
		if stock == nil {
			set["stock"] = catalog.DeriveStock(normalized)
		}
	}
	if v := c.PostForm("mainColor"); v != "" {
		set["mainColor"] = v
	}
	if v := c.PostForm("mainColorHex"); v != "" {
		set["mainColorHex"] = v
	}
	if v := c.PostForm("featured"); v != "" {
		set["featured"] = v == "true"
	}
	if v := c.PostForm("isActive"); v != "" {
		set["isActive"] = v == "true"
	}

	if len(variants) > 0 {
		// Varyant senkronizasyonu güncel ad ve fiyatı aynalar
		parent := *prev
		parent.Name = finalName
		parent.Price = finalPrice
		set["variants"] = catalog.SyncVariants(ctx, r, storage.Active, catalog.SyncInput{
			Parent:  &parent,
			Specs:   variants,
			Files:   readUploadFiles(formFiles(c, "variantImages")),
			Counts:  counts,
			Indexes: indexes,
		})
	}

	if err := r.UpdateWithVersion(ctx, id, prev.Version, set); err != nil {
		writeUpdateError(c, err)
		return
	}

	// Artık referanssız görseller yalnızca yazma başarılı olduktan sonra silinir
	catalog.ScheduleDeletes(storage.Active, rec.Removed)
	cache.InvalidateProducts(ctx)

	updated, err := r.FindByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Ürün güncellenemedi", "error": errorDetail(err)})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// PatchProduct - izinli skaler alanların kısmi güncellemesi (JSON)
func PatchProduct(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Geçersiz ürün ID"})
		return
	}

	var req struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		Featured    *bool    `json:"featured"`
		IsActive    *bool    `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Geçersiz istek gövdesi"})
		return
	}

	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Price != nil {
		set["price"] = *req.Price
	}
	if req.Featured != nil {
		set["featured"] = *req.Featured
	}
	if req.IsActive != nil {
		set["isActive"] = *req.IsActive
	}
	if len(set) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Güncellenebilir alan bulunamadı"})
		return
	}

	updated, err := repo().UpdateFields(ctx, id, set)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Ürün bulunamadı"})
		return
	}

	cache.InvalidateProducts(ctx)
	c.JSON(http.StatusOK, updated)
}

// DeleteProduct - tekil ürün silme; görseller arka planda temizlenir
func DeleteProduct(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Geçersiz ürün ID"})
		return
	}

	r := repo()
	p, err := r.FindByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Ürün bulunamadı"})
		return
	}

	if _, err := r.DeleteByID(ctx, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Ürün silinemedi", "error": errorDetail(err)})
		return
	}

	catalog.CleanupImages(storage.Active, p)
	cache.InvalidateProducts(ctx)
	log.Println("🗑️ Ürün silindi:", p.Name)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Ürün silindi"})
}

// BulkDeleteProducts - id listesiyle toplu silme. Tam olarak gönderilen id'ler
// silinir; ebeveyn silmek varyantları, varyant silmek ebeveyni silmez.
func BulkDeleteProducts(c *gin.Context) {
	ctx := c.Request.Context()

	var req struct {
		ProductIDs []string `json:"productIds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.ProductIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Ürün ID listesi gerekli"})
		return
	}

	ids := make([]primitive.ObjectID, 0, len(req.ProductIDs))
	for _, s := range req.ProductIDs {
		oid, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			log.Println("⚠️ Geçersiz ürün ID atlandı:", s)
			continue
		}
		ids = append(ids, oid)
	}
	if len(ids) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Geçerli ürün ID bulunamadı"})
		return
	}

	res, err := catalog.DeleteMany(ctx, repo(), storage.Active, ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Ürünler silinemedi", "error": errorDetail(err)})
		return
	}

	cache.InvalidateProducts(ctx)
	log.Printf("🗑️ Toplu silme: %d/%d ürün silindi\n", res.DeletedCount, res.RequestedCount)
	c.JSON(http.StatusOK, gin.H{
		"message":        "Ürünler silindi",
		"deletedCount":   res.DeletedCount,
		"requestedCount": res.RequestedCount,
	})
}
