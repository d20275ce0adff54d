package product

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sudekazan/butik-magaza-web/internal/cache"
	"github.com/sudekazan/butik-magaza-web/internal/catalog"
	"github.com/sudekazan/butik-magaza-web/internal/models"
	"github.com/sudekazan/butik-magaza-web/internal/storage"
)

// CreateProduct - yeni ürün ve varyantlarını oluşturur (multipart)
func CreateProduct(c *gin.Context) {
	ctx := c.Request.Context()

	name := strings.TrimSpace(c.PostForm("name"))
	categoryIDStr := c.PostForm("categoryId")
	priceStr := c.PostForm("price")

	if name == "" || categoryIDStr == "" || priceStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "categoryId, name, price zorunludur"})
		return
	}

	categoryID, err := primitive.ObjectIDFromHex(categoryIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Geçersiz kategori ID"})
		return
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Geçersiz fiyat"})
		return
	}

	// JSON alan doğrulaması depolama yazmalarından önce biter
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

	uploaded, err := saveUploads(ctx, readUploadFiles(formFiles(c, "images")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Görseller yüklenemedi"})
		return
	}
	rec := catalog.AppendImages(nil, uploaded)

	normalizedSizeStocks := catalog.NormalizeSizeStocks(sizeStocks)
	stock, _ := strconv.Atoi(c.PostForm("stock"))
	if stock == 0 {
		stock = catalog.DeriveStock(normalizedSizeStocks)
	}
	mainColorHex := c.PostForm("mainColorHex")
	if mainColorHex == "" {
		mainColorHex = "#000000"
	}

	now := time.Now()
	p := &models.Product{
		CategoryID:   categoryID,
		Name:         name,
		Description:  c.PostForm("description"),
		Price:        price,
		Stock:        stock,
		SizeStocks:   normalizedSizeStocks,
		Images:       rec.Images,
		ImageURL:     rec.ImageURL,
		MainColor:    c.PostForm("mainColor"),
		MainColorHex: mainColorHex,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	r := repo()
	if err := r.Insert(ctx, p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Ürün eklenemedi", "error": errorDetail(err)})
		return
	}

	if len(variants) > 0 {
		p.Variants = catalog.SyncVariants(ctx, r, storage.Active, catalog.SyncInput{
			Parent:  p,
			Specs:   variants,
			Files:   readUploadFiles(formFiles(c, "variantImages")),
			Counts:  counts,
			Indexes: indexes,
		})
		if err := r.UpdateWithVersion(ctx, p.ID, p.Version, bson.M{"variants": p.Variants}); err == nil {
			p.Version++
		}
	}

	cache.InvalidateProducts(ctx)
	c.JSON(http.StatusCreated, p)
}

// GetAllProducts - aktif ürünleri listeler (public)
func GetAllProducts(c *gin.Context) {
	ctx := c.Request.Context()
	categoryID := c.Query("categoryId")
	q := c.Query("q")

	// ✅ Filtresiz listede Redis önbelleği kullanılır
	useCache := categoryID == "" && q == ""
	if useCache {
		if cached, ok := cache.GetProductList(ctx, "products:all"); ok {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	filter := bson.M{"isActive": true}
	if categoryID != "" {
		oid, err := primitive.ObjectIDFromHex(categoryID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Geçersiz kategori ID"})
			return
		}
		filter["categoryId"] = oid
	}
	if q != "" {
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": q, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": q, "$options": "i"}},
		}
	}

	products, err := repo().Find(ctx, filter, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Ürünler alınamadı", "error": errorDetail(err)})
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	if useCache {
		cache.SetProductList(ctx, "products:all", products)
	}
	c.JSON(http.StatusOK, products)
}

// GetFeaturedProducts - öne çıkan ürünler (en fazla 8)
func GetFeaturedProducts(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, ok := cache.GetProductList(ctx, "products:featured"); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	products, err := repo().Find(ctx,
		bson.M{"isActive": true, "featured": true},
		options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(8))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Öne çıkan ürünler alınamadı", "error": errorDetail(err)})
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	cache.SetProductList(ctx, "products:featured", products)
	c.JSON(http.StatusOK, products)
}

// GetAllProductsAdmin - admin panel için tüm ürünler (pasifler dahil)
func GetAllProductsAdmin(c *gin.Context) {
	ctx := c.Request.Context()

	filter := bson.M{}
	if categoryID := c.Query("categoryId"); categoryID != "" {
		oid, err := primitive.ObjectIDFromHex(categoryID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Geçersiz kategori ID"})
			return
		}
		filter["categoryId"] = oid
	}
	if q := c.Query("q"); q != "" {
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": q, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": q, "$options": "i"}},
		}
	}

	products, err := repo().Find(ctx, filter, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Ürünler alınamadı", "error": errorDetail(err)})
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct - tekil ürün
func GetProduct(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Geçersiz ürün ID"})
		return
	}

	p, err := repo().FindByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Ürün bulunamadı"})
		return
	}
	if !p.IsActive {
		c.JSON(http.StatusNotFound, gin.H{"message": "Ürün aktif değil"})
		return
	}

	// Geçici görüntü düzeltme: varyant ürünlerde ana görsel aynası yanlışsa
	// ilk görseli kullan (yalnızca yanıtta)
	if p.IsVariant && len(p.Images) > 0 {
		if first := p.Images[0].URL; strings.HasPrefix(first, "/uploads/") && p.ImageURL != first {
			p.ImageURL = first
		}
	}

	c.JSON(http.StatusOK, p)
}

// GetProductVariants - bir ürünün renk varyantlarını listeler
func GetProductVariants(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Geçersiz ürün ID"})
		return
	}

	r := repo()
	main, err := r.FindByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Ana ürün bulunamadı"})
		return
	}

	var variants []models.Product
	if main.IsVariant {
		// Bu bir varyantsa: aynı ebeveyne bağlı diğer varyantlar + ebeveynin kendisi
		siblings, err := r.Find(ctx, bson.M{
			"parentProductId": main.ParentProductID,
			"isActive":        true,
			"_id":             bson.M{"$ne": id},
		}, nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Varyantlar alınamadı", "error": errorDetail(err)})
			return
		}
		if parent, err := r.FindByID(ctx, main.ParentProductID); err == nil && parent.IsActive {
			variants = append(variants, *parent)
		}
		variants = append(variants, siblings...)
	} else {
		children, err := r.Find(ctx, bson.M{"parentProductId": id, "isActive": true}, nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Varyantlar alınamadı", "error": errorDetail(err)})
			return
		}
		variants = children
	}

	type variantView struct {
		ID           primitive.ObjectID    `json:"_id"`
		Name         string                `json:"name"`
		Price        float64               `json:"price"`
		MainColor    string                `json:"mainColor"`
		MainColorHex string                `json:"mainColorHex"`
		VariantColor string                `json:"variantColor"`
		ImageURL     string                `json:"imageUrl"`
		Images       []models.ProductImage `json:"images"`
		Stock        int                   `json:"stock"`
		SizeStocks   []models.SizeStock    `json:"sizeStocks"`
		IsVariant    bool                  `json:"isVariant"`
	}
	views := make([]variantView, 0, len(variants))
	for _, v := range variants {
		views = append(views, variantView{
			ID:           v.ID,
			Name:         v.Name,
			Price:        v.Price,
			MainColor:    v.MainColor,
			MainColorHex: v.MainColorHex,
			VariantColor: v.VariantColor,
			ImageURL:     v.ImageURL,
			Images:       v.Images,
			Stock:        v.Stock,
			SizeStocks:   v.SizeStocks,
			IsVariant:    v.IsVariant,
		})
	}

	c.JSON(http.StatusOK, gin.H{"mainProduct": main, "variants": views})
}
