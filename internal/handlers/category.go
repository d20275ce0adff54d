package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sudekazan/butik-magaza-web/internal/database"
	"github.com/sudekazan/butik-magaza-web/internal/models"
)

// GetAllCategories - ürünlerin categoryId alanını çözmek için salt okunur liste
func GetAllCategories(c *gin.Context) {
	ctx := c.Request.Context()

	cursor, err := database.GetCategoriesCollection().Find(ctx,
		bson.M{"isActive": true},
		options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Kategoriler alınamadı"})
		return
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Kategoriler alınamadı"})
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	c.JSON(http.StatusOK, categories)
}
