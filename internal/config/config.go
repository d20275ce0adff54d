package config

import (
	"log"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  .env dosyası bulunamadı, sistem ortam değişkenleriyle devam ediliyor")
	} else {
		log.Println("✅ .env dosyası başarıyla yüklendi")
	}
}
