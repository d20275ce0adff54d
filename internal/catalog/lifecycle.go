package catalog

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sudekazan/butik-magaza-web/internal/models"
	"github.com/sudekazan/butik-magaza-web/internal/storage"
)

// LifecycleStore toplu silme için kalıcılık işbirlikçisi
type LifecycleStore interface {
	FindProductsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error)
	DeleteProductsByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}

// BulkDeleteResult silinen ve istenen sayılar; bazı id'ler zaten yoksa farklı olabilir
type BulkDeleteResult struct {
	DeletedCount   int64 `json:"deletedCount"`
	RequestedCount int   `json:"requestedCount"`
}

// DeleteMany tam olarak verilen id kümesini siler; ebeveyn/varyant
// genişletmesi yapılmaz, bağlı dokümanlar asla beraber silinmez. Dokümanlar
// tek kalıcılık işlemiyle silinir, ardından her dokümanın sahip olduğu
// görseller bağımsız ve en-iyi-çaba olarak temizlenir.
func DeleteMany(ctx context.Context, store LifecycleStore, backend storage.Backend, ids []primitive.ObjectID) (BulkDeleteResult, error) {
	res := BulkDeleteResult{RequestedCount: len(ids)}
	if len(ids) == 0 {
		return res, nil
	}

	products, err := store.FindProductsByIDs(ctx, ids)
	if err != nil {
		return res, err
	}

	deleted, err := store.DeleteProductsByIDs(ctx, ids)
	if err != nil {
		return res, err
	}
	res.DeletedCount = deleted

	for i := range products {
		CleanupImages(backend, &products[i])
	}
	return res, nil
}

// CleanupImages dokümanın tüm görsel referanslarını arka planda siler.
// Yanıt yolunu bloklamaz; sonuç çağırana görünmez.
func CleanupImages(backend storage.Backend, p *models.Product) {
	urls := p.AllImageURLs()
	go func() {
		ctx := context.Background()
		for _, u := range urls {
			backend.Delete(ctx, u)
		}
	}()
}

// ScheduleDeletes mutabakatın artık-referanssız bıraktığı url'leri arka
// planda siler; hatalar depolama katmanında yutulur
func ScheduleDeletes(backend storage.Backend, urls []string) {
	if len(urls) == 0 {
		return
	}
	go func() {
		ctx := context.Background()
		for _, u := range urls {
			backend.Delete(ctx, u)
		}
	}()
}
