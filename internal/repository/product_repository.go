package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sudekazan/butik-magaza-web/internal/models"
)

// ErrVersionConflict bayat bir yazma reddedildiğinde döner: doküman bu
// istek onu okuduktan sonra başka bir istek tarafından değiştirilmiştir.
var ErrVersionConflict = errors.New("ürün başka bir işlem tarafından güncellendi")

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{collection: db.Collection("products")}
}

func (r *ProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var p models.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Find(ctx context.Context, filter bson.M, findOptions *options.FindOptions) ([]models.Product, error) {
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) Insert(ctx context.Context, p *models.Product) error {
	res, err := r.collection.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return nil
}

// UpdateWithVersion yüklenen sürümle karşılaştırmalı tam alan güncellemesi:
// filtre eşleşmezse doküman bu arada değişmiştir ve yazma reddedilir.
func (r *ProductRepository) UpdateWithVersion(ctx context.Context, id primitive.ObjectID, version int64, set bson.M) error {
	set["updatedAt"] = time.Now()
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "version": version},
		bson.M{"$set": set, "$inc": bson.M{"version": 1}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// doküman hiç yok mu, yoksa sürüm mü bayat?
		if _, findErr := r.FindByID(ctx, id); findErr != nil {
			return findErr
		}
		return ErrVersionConflict
	}
	return nil
}

// UpdateFields izinli skaler alanları günceller ve yeni dokümanı döndürür
func (r *ProductRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Product, error) {
	set["updatedAt"] = time.Now()
	after := options.After
	var p models.Product
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set, "$inc": bson.M{"version": 1}},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after}).Decode(&p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// --- catalog.LifecycleStore ---

func (r *ProductRepository) FindProductsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	return r.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

func (r *ProductRepository) DeleteProductsByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// --- catalog.VariantStore ---

func (r *ProductRepository) FindVariant(ctx context.Context, parentID primitive.ObjectID, color string) (*models.Product, error) {
	var p models.Product
	err := r.collection.FindOne(ctx, bson.M{
		"parentProductId": parentID,
		"isVariant":       true,
		"variantColor":    color,
	}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) InsertVariant(ctx context.Context, p *models.Product) error {
	return r.Insert(ctx, p)
}

// UpdateVariant dokümanın tamamını sürüm karşılaştırmalı yazar
func (r *ProductRepository) UpdateVariant(ctx context.Context, p *models.Product) error {
	prevVersion := p.Version
	p.Version++
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": p.ID, "version": prevVersion}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrVersionConflict
	}
	return nil
}
