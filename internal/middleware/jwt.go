package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "changeme"
	}
	return []byte(secret)
}

// AuthRequired bearer token'ı doğrular; bu alt sistemdeki her korumalı
// handler'dan önce çalışır
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Yetkisiz erişim - Token gerekli"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Geçersiz Authorization formatı"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("beklenmeyen imza yöntemi: %v", token.Header["alg"])
			}
			return jwtSecret(), nil
		})
		if err != nil {
			if strings.Contains(err.Error(), jwt.ErrTokenExpired.Error()) {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Token süresi dolmuş"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Geçersiz token"})
			}
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Token doğrulanamadı"})
			c.Abort()
			return
		}

		if role, ok := claims["role"].(string); ok {
			c.Set("role", role)
		}
		if user, ok := claims["user"].(string); ok {
			c.Set("user", user)
		}

		c.Next()
	}
}
