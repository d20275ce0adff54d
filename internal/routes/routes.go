package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sudekazan/butik-magaza-web/internal/handlers"
	"github.com/sudekazan/butik-magaza-web/internal/handlers/product"
	"github.com/sudekazan/butik-magaza-web/internal/middleware"
)

func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		// Auth
		api.POST("/login", handlers.Login)
		api.POST("/change-password", handlers.ChangePassword)

		// Kategoriler (salt okunur)
		api.GET("/categories", handlers.GetAllCategories)

		// Ürünler (public)
		api.GET("/products", product.GetAllProducts)
		api.GET("/products/featured", product.GetFeaturedProducts)
		api.GET("/products/admin/all", middleware.AuthRequired(), product.GetAllProductsAdmin)
		api.GET("/products/:id", product.GetProduct)
		api.GET("/products/:id/variants", product.GetProductVariants)

		// Ürünler (admin)
		protected := api.Group("/products", middleware.AuthRequired())
		{
			protected.POST("", product.CreateProduct)
			protected.PUT("/:id", product.UpdateProduct)
			protected.PATCH("/:id", product.PatchProduct)
			protected.DELETE("/bulk", product.BulkDeleteProducts)
			protected.DELETE("/:id", product.DeleteProduct)
			protected.PATCH("/:id/images/main", product.SetMainImage)
			protected.DELETE("/:id/images", product.DeleteImage)
		}
	}
}
