package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sudekazan/butik-magaza-web/internal/models"
	"github.com/sudekazan/butik-magaza-web/internal/storage"
)

type fakeLifecycleStore struct {
	docs map[primitive.ObjectID]models.Product
}

func newFakeLifecycleStore(products ...models.Product) *fakeLifecycleStore {
	s := &fakeLifecycleStore{docs: make(map[primitive.ObjectID]models.Product)}
	for _, p := range products {
		s.docs[p.ID] = p
	}
	return s
}

func (f *fakeLifecycleStore) FindProductsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	var out []models.Product
	for _, id := range ids {
		if p, ok := f.docs[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeLifecycleStore) DeleteProductsByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	var n int64
	for _, id := range ids {
		if _, ok := f.docs[id]; ok {
			delete(f.docs, id)
			n++
		}
	}
	return n, nil
}

func TestDeleteManyCountsAndCleansImages(t *testing.T) {
	p1 := models.Product{
		ID:       primitive.NewObjectID(),
		Images:   []models.ProductImage{{URL: "/uploads/a.jpg", IsMain: true}, {URL: "/uploads/b.jpg"}},
		ImageURL: "/uploads/a.jpg",
	}
	p2 := models.Product{
		ID:       primitive.NewObjectID(),
		ImageURL: "/uploads/eski.jpg", // migrasyon öncesi doküman
	}
	store := newFakeLifecycleStore(p1, p2)
	backend := storage.NewMemory()

	missing := primitive.NewObjectID()
	res, err := DeleteMany(context.Background(), store, backend, []primitive.ObjectID{p1.ID, p2.ID, missing})

	require.NoError(t, err)
	assert.Equal(t, int64(2), res.DeletedCount)
	assert.Equal(t, 3, res.RequestedCount)
	assert.Empty(t, store.docs)

	// görsel temizliği arka planda koşar; her url tam bir kez silinir
	assert.Eventually(t, func() bool {
		return len(backend.DeletedURLs()) == 3
	}, time.Second, 10*time.Millisecond)
	assert.ElementsMatch(t, []string{"/uploads/a.jpg", "/uploads/b.jpg", "/uploads/eski.jpg"}, backend.DeletedURLs())
}

func TestDeleteManyEmptyInput(t *testing.T) {
	store := newFakeLifecycleStore()
	res, err := DeleteMany(context.Background(), store, storage.NewMemory(), nil)

	require.NoError(t, err)
	assert.Equal(t, int64(0), res.DeletedCount)
	assert.Equal(t, 0, res.RequestedCount)
}

func TestDeleteManyDoesNotExpandToRelatives(t *testing.T) {
	parent := models.Product{ID: primitive.NewObjectID(), ImageURL: "/uploads/p.jpg"}
	variant := models.Product{
		ID:              primitive.NewObjectID(),
		IsVariant:       true,
		ParentProductID: parent.ID,
		ImageURL:        "/uploads/v.jpg",
	}
	store := newFakeLifecycleStore(parent, variant)

	// yalnızca ebeveyn istenir: varyant dokümanı yerinde kalır
	res, err := DeleteMany(context.Background(), store, storage.NewMemory(), []primitive.ObjectID{parent.ID})

	require.NoError(t, err)
	assert.Equal(t, int64(1), res.DeletedCount)
	_, stillThere := store.docs[variant.ID]
	assert.True(t, stillThere)
}

func TestCleanupImagesIncludesEmbeddedVariantURLs(t *testing.T) {
	p := models.Product{
		ID:       primitive.NewObjectID(),
		Images:   []models.ProductImage{{URL: "/uploads/a.jpg", IsMain: true}},
		ImageURL: "/uploads/a.jpg",
		Variants: []models.EmbeddedVariant{{Color: "Mavi", Images: []string{"/uploads/v1.jpg", "/uploads/a.jpg"}}},
	}
	backend := storage.NewMemory()

	CleanupImages(backend, &p)

	assert.Eventually(t, func() bool {
		return len(backend.DeletedURLs()) == 2
	}, time.Second, 10*time.Millisecond)
	assert.ElementsMatch(t, []string{"/uploads/a.jpg", "/uploads/v1.jpg"}, backend.DeletedURLs())
}

func TestScheduleDeletes(t *testing.T) {
	backend := storage.NewMemory()

	ScheduleDeletes(backend, nil) // sessizce yok sayılır
	ScheduleDeletes(backend, []string{"/uploads/x.jpg"})

	assert.Eventually(t, func() bool {
		urls := backend.DeletedURLs()
		return len(urls) == 1 && urls[0] == "/uploads/x.jpg"
	}, time.Second, 10*time.Millisecond)
}
