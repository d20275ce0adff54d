package database

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// --- Global Değişkenler ---
var (
	Mongo *mongo.Client
	DB    *mongo.Database
	Redis *redis.Client
	MinIO *minio.Client
)

// ConnectDatabases tüm bağlantıları kurar: MongoDB zorunludur,
// Redis ve MinIO yapılandırılmamışsa atlanır.
func ConnectDatabases() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	connectMongo(ctx)
	connectRedis(ctx)
	connectMinIO(ctx)

	log.Println("✅ Veritabanı bağlantıları hazır")
}

// =============================================
// MONGODB
// =============================================
func connectMongo(ctx context.Context) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = "butik-magaza"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal("❌ MongoDB bağlantı hatası:", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("❌ MongoDB ping hatası:", err)
	}

	Mongo = client
	DB = client.Database(dbName)
	log.Println("✅ MongoDB'ye bağlanıldı:", dbName)
}

// GetProductsCollection ürün koleksiyonunu döndürür
func GetProductsCollection() *mongo.Collection {
	if DB == nil {
		panic("❌ MongoDB başlatılmadı")
	}
	return DB.Collection("products")
}

// GetCategoriesCollection kategori koleksiyonunu döndürür
func GetCategoriesCollection() *mongo.Collection {
	if DB == nil {
		panic("❌ MongoDB başlatılmadı")
	}
	return DB.Collection("categories")
}

// CloseMongo bağlantıyı düzgünce kapatır
func CloseMongo() {
	if Mongo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Mongo.Disconnect(ctx); err != nil {
		log.Println("⚠️ MongoDB kapatma hatası:", err)
	}
}

// =============================================
// REDIS
// =============================================
func connectRedis(ctx context.Context) {
	addr := os.Getenv("REDIS_HOST")
	if addr == "" {
		log.Println("⚠️ Redis yapılandırılmamış, önbellek devre dışı")
		return
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Fatal("❌ Redis bağlantı hatası:", err)
	}
	log.Println("✅ Redis'e bağlanıldı")
}

// =============================================
// MINIO
// =============================================
func connectMinIO(ctx context.Context) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		log.Println("⚠️ MinIO yapılandırılmamış, yerel disk depolama kullanılacak")
		return
	}

	accessKey := os.Getenv("MINIO_ACCESS_KEY")
	secretKey := os.Getenv("MINIO_SECRET_KEY")
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		log.Fatal("❌ MinIO bağlantı hatası:", err)
	}

	bucketName := os.Getenv("MINIO_BUCKET")
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		log.Fatal("❌ MinIO bucket kontrol hatası:", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			log.Fatal("❌ MinIO bucket oluşturma hatası:", err)
		}
		log.Println("🪣 Bucket oluşturuldu:", bucketName)
	} else {
		log.Println("🪣 MinIO bucket mevcut:", bucketName)
	}

	MinIO = client
	log.Println("✅ MinIO'ya bağlanıldı:", endpoint)
}
