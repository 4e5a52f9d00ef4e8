package routes

import (
	"project_materials/internal/adapter/http/ui"

	"github.com/gin-gonic/gin"
)

func addUIRoutes(rg *gin.RouterGroup, h *ui.Handler) {
	rg.GET("", h.Index)

	rg.GET("/projects", h.Projects)
	rg.POST("/projects", h.CreateProject)
	rg.GET("/materials", h.Materials)
	rg.POST("/materials", h.CreateMaterial)
	rg.GET("/services", h.Services)
	rg.POST("/services", h.CreateService)
	rg.GET("/suppliers", h.Suppliers)
	rg.POST("/suppliers", h.CreateSupplier)
	rg.GET("/quotes", h.Quotes)
	rg.POST("/quotes", h.CreateQuote)
	rg.GET("/orders", h.Orders)
	rg.POST("/orders", h.PlaceOrder)
	rg.POST("/orders/update", h.CompleteOrder)
}
