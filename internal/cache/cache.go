package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sudekazan/butik-magaza-web/internal/database"
	"github.com/sudekazan/butik-magaza-web/internal/models"
)

const ProductCacheTTL = 10 * time.Minute

// GetProductList anahtara karşılık gelen ürün listesini Redis'ten okur;
// Redis yapılandırılmamışsa ya da anahtar yoksa (nil, false) döner
func GetProductList(ctx context.Context, key string) ([]models.Product, bool) {
	if database.Redis == nil {
		return nil, false
	}
	val, err := database.Redis.Get(ctx, key).Result()
	if err != nil || val == "" {
		return nil, false
	}
	var products []models.Product
	if err := json.Unmarshal([]byte(val), &products); err != nil {
		return nil, false
	}
	return products, true
}

// SetProductList ürün listesini önbelleğe yazar
func SetProductList(ctx context.Context, key string, products []models.Product) {
	if database.Redis == nil {
		return
	}
	if data, err := json.Marshal(products); err == nil {
		database.Redis.Set(ctx, key, data, ProductCacheTTL)
	}
}

// InvalidateProducts liste önbelleklerini ve verilen ürünlerin tekil
// anahtarlarını düşürür; her mutasyondan sonra çağrılır
func InvalidateProducts(ctx context.Context, ids ...string) {
	if database.Redis == nil {
		return
	}
	keys := []string{"products:all", "products:featured"}
	for _, id := range ids {
		keys = append(keys, "product:"+id)
	}
	database.Redis.Del(ctx, keys...)
}
