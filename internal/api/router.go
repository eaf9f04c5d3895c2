package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vendrahq/vendra/internal/api/cron"
	v1 "github.com/vendrahq/vendra/internal/api/v1"
	"github.com/vendrahq/vendra/internal/config"
	"github.com/vendrahq/vendra/internal/logger"
	"github.com/vendrahq/vendra/internal/rest/middleware"
)

type Handlers struct {
	Plan           *v1.PlanHandler
	Subscription   *v1.SubscriptionHandler
	Product        *v1.ProductHandler
	Supplier       *v1.SupplierHandler
	Customer       *v1.CustomerHandler
	PurchaseOrder  *v1.PurchaseOrderHandler
	Sale           *v1.SaleHandler
	InventoryCount *v1.InventoryCountHandler
	Campaign       *v1.CampaignHandler
	Admin          *v1.AdminHandler
	Webhook        *v1.WebhookHandler
	CampaignCron   *cron.CampaignCronHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, logger *logger.Logger) *gin.Engine {
	router := gin.New()

	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.ErrorHandler(),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1Group := router.Group("/v1")

	// Provider webhooks authenticate by signature, not by caller identity
	v1Group.POST("/webhooks/stripe", handlers.Webhook.HandleStripeWebhook)

	private := v1Group.Group("")
	private.Use(middleware.AuthenticateMiddleware(cfg, logger))
	registerV1Routes(private, handlers)

	// Cron routes are invoked by the scheduler with an API key
	cronGroup := router.Group("/cron")
	cronGroup.Use(middleware.AuthenticateMiddleware(cfg, logger))
	cronGroup.POST("/campaigns", handlers.CampaignCron.ProcessDueCampaigns)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	plans := router.Group("/plans")
	{
		plans.POST("", handlers.Plan.CreatePlan)
		plans.GET("", handlers.Plan.ListPlans)
		plans.GET("/:id", handlers.Plan.GetPlan)
		plans.PUT("/:id", handlers.Plan.UpdatePlan)
		plans.DELETE("/:id", handlers.Plan.DeletePlan)
	}

	subscriptions := router.Group("/subscriptions")
	{
		subscriptions.POST("", handlers.Subscription.CreateSubscription)
		subscriptions.GET("", handlers.Subscription.ListSubscriptions)
		subscriptions.POST("/upgrade", handlers.Subscription.UpgradeSubscription)
		subscriptions.GET("/:id", handlers.Subscription.GetSubscription)
	}

	products := router.Group("/products")
	{
		products.POST("", handlers.Product.CreateProduct)
		products.GET("", handlers.Product.ListProducts)
		products.GET("/:id", handlers.Product.GetProduct)
		products.PUT("/:id", handlers.Product.UpdateProduct)
		products.DELETE("/:id", handlers.Product.DeleteProduct)
		products.POST("/:id/stock", handlers.Product.AdjustStock)
	}

	suppliers := router.Group("/suppliers")
	{
		suppliers.POST("", handlers.Supplier.CreateSupplier)
		suppliers.GET("", handlers.Supplier.ListSuppliers)
		suppliers.GET("/:id", handlers.Supplier.GetSupplier)
		suppliers.PUT("/:id", handlers.Supplier.UpdateSupplier)
		suppliers.DELETE("/:id", handlers.Supplier.DeleteSupplier)
	}

	customers := router.Group("/customers")
	{
		customers.POST("", handlers.Customer.CreateCustomer)
		customers.GET("", handlers.Customer.ListCustomers)
		customers.GET("/:id", handlers.Customer.GetCustomer)
		customers.PUT("/:id", handlers.Customer.UpdateCustomer)
		customers.DELETE("/:id", handlers.Customer.DeleteCustomer)
	}

	purchaseOrders := router.Group("/purchase-orders")
	{
		purchaseOrders.POST("", handlers.PurchaseOrder.CreatePurchaseOrder)
		purchaseOrders.GET("", handlers.PurchaseOrder.ListPurchaseOrders)
		purchaseOrders.GET("/:id", handlers.PurchaseOrder.GetPurchaseOrder)
		purchaseOrders.POST("/:id/transition", handlers.PurchaseOrder.TransitionPurchaseOrder)
	}

	sales := router.Group("/sales")
	{
		sales.POST("", handlers.Sale.CreateSale)
		sales.GET("", handlers.Sale.ListSales)
		sales.GET("/summary/daily", handlers.Sale.GetDailySummary)
		sales.GET("/:id", handlers.Sale.GetSale)
		sales.POST("/:id/void", handlers.Sale.VoidSale)
	}

	inventoryCounts := router.Group("/inventory-counts")
	{
		inventoryCounts.POST("", handlers.InventoryCount.OpenCount)
		inventoryCounts.GET("", handlers.InventoryCount.ListCounts)
		inventoryCounts.GET("/:id", handlers.InventoryCount.GetCount)
		inventoryCounts.POST("/:id/lines", handlers.InventoryCount.RecordLine)
		inventoryCounts.POST("/:id/close", handlers.InventoryCount.CloseCount)
		inventoryCounts.POST("/:id/abandon", handlers.InventoryCount.AbandonCount)
	}

	campaigns := router.Group("/campaigns")
	{
		campaigns.POST("", handlers.Campaign.CreateCampaign)
		campaigns.GET("", handlers.Campaign.ListCampaigns)
		campaigns.GET("/:id", handlers.Campaign.GetCampaign)
		campaigns.POST("/:id/schedule", handlers.Campaign.ScheduleCampaign)
		campaigns.GET("/:id/messages", handlers.Campaign.ListMessages)
	}

	admin := router.Group("/admin")
	{
		admin.GET("/entities", handlers.Admin.ListEntities)
		admin.GET("/entities/:entity", handlers.Admin.BrowseEntity)
	}
}
