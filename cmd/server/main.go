package main

import (
	"context"
	"time"

	"github.com/vendrahq/vendra/internal/api"
	"github.com/vendrahq/vendra/internal/api/cron"
	v1 "github.com/vendrahq/vendra/internal/api/v1"
	"github.com/vendrahq/vendra/internal/cache"
	"github.com/vendrahq/vendra/internal/config"
	"github.com/vendrahq/vendra/internal/integration/billing"
	"github.com/vendrahq/vendra/internal/integration/messenger"
	stripeintegration "github.com/vendrahq/vendra/internal/integration/stripe"
	"github.com/vendrahq/vendra/internal/logger"
	"github.com/vendrahq/vendra/internal/postgres"
	"github.com/vendrahq/vendra/internal/repository"
	"github.com/vendrahq/vendra/internal/service"
	"github.com/vendrahq/vendra/internal/types"
	"github.com/vendrahq/vendra/internal/validator"
	"go.uber.org/fx"

	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/vendrahq/vendra/internal/domain/campaign"
)

// @title Vendra API
// @version 1.0
// @description Vendra API Service
// @BasePath /v1
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	// Load .env if present; real deployments configure via environment
	_ = godotenv.Load()

	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Cache
			cache.Initialize,

			// Postgres
			postgres.NewDB,
			postgres.NewClient,

			// Integrations
			provideBillingGateway,
			provideMessageSender,

			// Repositories
			repository.NewPlanRepository,
			repository.NewSubscriptionRepository,
			repository.NewProductRepository,
			repository.NewSupplierRepository,
			repository.NewCustomerRepository,
			repository.NewPurchaseOrderRepository,
			repository.NewSaleRepository,
			repository.NewInventoryCountRepository,
			repository.NewCampaignRepository,
			repository.NewMessageRepository,
			repository.NewAdminRepository,
		),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,

			service.NewPlanService,
			service.NewSubscriptionService,
			service.NewProductService,
			service.NewSupplierService,
			service.NewCustomerService,
			service.NewPurchaseOrderService,
			service.NewSaleService,
			service.NewInventoryCountService,
			service.NewCampaignService,
			service.NewAdminService,
		),
	)

	// API layer
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(startServer),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideBillingGateway(cfg *config.Configuration, log *logger.Logger) billing.Gateway {
	return stripeintegration.NewGateway(cfg, log)
}

func provideMessageSender(log *logger.Logger) campaign.Sender {
	return messenger.NewLogSender(log)
}

func provideHandlers(
	cfg *config.Configuration,
	logger *logger.Logger,
	billingGateway billing.Gateway,
	planService service.PlanService,
	subscriptionService service.SubscriptionService,
	productService service.ProductService,
	supplierService service.SupplierService,
	customerService service.CustomerService,
	purchaseOrderService service.PurchaseOrderService,
	saleService service.SaleService,
	inventoryCountService service.InventoryCountService,
	campaignService service.CampaignService,
	adminService service.AdminService,
) api.Handlers {
	return api.Handlers{
		Plan:           v1.NewPlanHandler(planService, logger),
		Subscription:   v1.NewSubscriptionHandler(subscriptionService, logger),
		Product:        v1.NewProductHandler(productService, logger),
		Supplier:       v1.NewSupplierHandler(supplierService, logger),
		Customer:       v1.NewCustomerHandler(customerService, logger),
		PurchaseOrder:  v1.NewPurchaseOrderHandler(purchaseOrderService, logger),
		Sale:           v1.NewSaleHandler(saleService, logger),
		InventoryCount: v1.NewInventoryCountHandler(inventoryCountService, logger),
		Campaign:       v1.NewCampaignHandler(campaignService, logger),
		Admin:          v1.NewAdminHandler(adminService, logger),
		Webhook:        v1.NewWebhookHandler(billingGateway, subscriptionService, logger),
		CampaignCron:   cron.NewCampaignCronHandler(logger, campaignService),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration, logger *logger.Logger) *gin.Engine {
	return api.NewRouter(handlers, cfg, logger)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	mode := cfg.Deployment.Mode
	if mode == "" {
		mode = types.ModeLocal
	}

	switch mode {
	case types.ModeLocal, types.ModeServer:
		startAPIServer(lc, r, cfg, log)
	case types.ModeAWSLambda:
		startAWSLambdaAPI(r)
	default:
		log.Fatalf("Unknown deployment mode: %s", mode)
	}
}

func startAPIServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting API server...")
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}

func startAWSLambdaAPI(r *gin.Engine) {
	ginLambda := ginadapter.New(r)
	lambda.Start(ginLambda.ProxyWithContext)
}
