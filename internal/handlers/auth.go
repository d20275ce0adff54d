package handlers

import (
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Varsayılan admin şifresi hash'i (admin123)
const defaultAdminHash = "$2b$12$HmFMQ/3FgwWGbelytkSj7OU6AI7taFd81ZPqMRU2dWSdWidskorU."

// Şifre değişiklikleri sunucu yeniden başlatılınca korunsun diye dosyaya yazılır
const passwordFile = "admin-password.txt"

var (
	passwordMu       sync.Mutex
	currentAdminHash = defaultAdminHash
)

// LoadAdminPassword başlangıçta admin şifre hash'ini yükler:
// önce kalıcı dosya, sonra ortam değişkeni, en son varsayılan
func LoadAdminPassword() {
	passwordMu.Lock()
	defer passwordMu.Unlock()

	if envHash := os.Getenv("ADMIN_PASSWORD_HASH"); envHash != "" {
		currentAdminHash = envHash
	}
	if data, err := os.ReadFile(passwordFile); err == nil {
		if saved := string(data); saved != "" {
			currentAdminHash = saved
			log.Println("✅ Kalıcı şifre dosyasından yüklendi")
		}
	}
}

func signAdminToken() (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "changeme"
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"user": "admin",
		"jti":  uuid.NewString(),
		"exp":  time.Now().Add(12 * time.Hour).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// Login admin girişi: şifre doğruysa 12 saatlik bearer token üretir
func Login(c *gin.Context) {
	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Şifre gerekli"})
		return
	}

	passwordMu.Lock()
	hash := currentAdminHash
	passwordMu.Unlock()

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Hatalı şifre"})
		return
	}

	token, err := signAdminToken()
	if err != nil {
		log.Println("❌ Token imzalama hatası:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Sunucu hatası"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "message": "Giriş başarılı"})
}

// ChangePassword admin şifresini değiştirir ve kalıcı dosyaya yazar
func ChangePassword(c *gin.Context) {
	var req struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Mevcut şifre ve yeni şifre gerekli"})
		return
	}
	if len(req.NewPassword) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Yeni şifre en az 6 karakter olmalı"})
		return
	}

	passwordMu.Lock()
	defer passwordMu.Unlock()

	if err := bcrypt.CompareHashAndPassword([]byte(currentAdminHash), []byte(req.CurrentPassword)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Mevcut şifre hatalı"})
		return
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), 12)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Sunucu hatası"})
		return
	}

	currentAdminHash = string(newHash)

	if err := os.WriteFile(passwordFile, newHash, 0o600); err != nil {
		log.Println("⚠️ Şifre dosyaya kaydedilemedi, sadece bellekte güncellendi:", err)
	} else {
		log.Println("✅ Admin şifresi değiştirildi ve kalıcı dosyaya kaydedildi")
	}

	c.JSON(http.StatusOK, gin.H{"message": "Şifre başarıyla değiştirildi", "success": true})
}
