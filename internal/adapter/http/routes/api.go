package routes

import (
	"project_materials/internal/adapter/http/handlers"
	"project_materials/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects   = "/projects"
	PathMaterials  = "/materials"
	PathServices   = "/services"
	PathSuppliers  = "/suppliers"
	PathQuotes     = "/quotes"
	PathOrders     = "/orders"
	PathQuantities = "/quantities"
)

func addAPIRoutes(router *gin.Engine, manager usecase.IProjectManager) {
	projectHandler := handlers.NewProjectHandler(manager)
	catalogHandler := handlers.NewCatalogHandler(manager)
	quoteHandler := handlers.NewQuoteHandler(manager)
	orderHandler := handlers.NewOrderHandler(manager)
	exportHandler := handlers.NewExportHandler(manager)

	router.GET("/", handlers.Root)
	router.GET(PathQuantities+"/calculate", handlers.CalculateQuantity)

	projects := router.Group(PathProjects)
	{
		projects.POST("", projectHandler.CreateProject)
		projects.GET("", projectHandler.ListProjects)
		projects.GET("/:id/quotes", projectHandler.ListProjectQuotes)
		projects.GET("/:id/quotes/best", projectHandler.GetBestQuote)
		projects.GET("/:id/quotes/export", exportHandler.ExportProjectQuotes)
		projects.GET("/:id/total", projectHandler.GetProjectTotal)
		projects.POST("/:id/orders", projectHandler.GenerateOrders)
	}

	materials := router.Group(PathMaterials)
	{
		materials.POST("", catalogHandler.CreateMaterial)
		materials.GET("", catalogHandler.ListMaterials)
		materials.GET("/export", exportHandler.ExportMaterials)
	}

	router.POST(PathServices, catalogHandler.CreateService)
	router.GET(PathServices, catalogHandler.ListServices)
	router.POST(PathSuppliers, catalogHandler.CreateSupplier)
	router.GET(PathSuppliers, catalogHandler.ListSuppliers)
	router.POST(PathQuotes, quoteHandler.CreateQuote)
	router.GET(PathQuotes, quoteHandler.ListQuotes)

	orders := router.Group(PathOrders)
	{
		orders.POST("", orderHandler.PlaceOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.PUT("/:id", orderHandler.UpdateOrder)
	}
}
