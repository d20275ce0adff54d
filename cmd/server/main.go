package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sudekazan/butik-magaza-web/internal/config"
	"github.com/sudekazan/butik-magaza-web/internal/database"
	"github.com/sudekazan/butik-magaza-web/internal/handlers"
	"github.com/sudekazan/butik-magaza-web/internal/routes"
	"github.com/sudekazan/butik-magaza-web/internal/storage"
)

func main() {
	config.Load()

	database.ConnectDatabases()
	defer database.CloseMongo()

	storage.Init()
	handlers.LoadAdminPassword()

	r := gin.Default()
	r.MaxMultipartMemory = 32 << 20

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Range"},
		ExposeHeaders:    []string{"Content-Range", "X-Image-Info"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	// Yerel depolama modunda yüklenen görseller doğrudan sunulur;
	// MinIO modunda url'ler zaten mutlak adreslerdir
	if l, ok := storage.Active.(*storage.Local); ok {
		r.Static("/uploads", l.Root)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 Sunucu başlatılıyor, port:", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Sunucu başlatılamadı:", err)
	}
}
