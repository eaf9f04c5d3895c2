package service

import (
	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/internal/cache"
	"github.com/vendrahq/vendra/internal/config"
	"github.com/vendrahq/vendra/internal/domain/admin"
	"github.com/vendrahq/vendra/internal/domain/campaign"
	"github.com/vendrahq/vendra/internal/domain/customer"
	"github.com/vendrahq/vendra/internal/domain/inventorycount"
	"github.com/vendrahq/vendra/internal/domain/plan"
	"github.com/vendrahq/vendra/internal/domain/product"
	"github.com/vendrahq/vendra/internal/domain/purchaseorder"
	"github.com/vendrahq/vendra/internal/domain/sale"
	"github.com/vendrahq/vendra/internal/domain/subscription"
	"github.com/vendrahq/vendra/internal/domain/supplier"
	"github.com/vendrahq/vendra/internal/integration/billing"
	"github.com/vendrahq/vendra/internal/logger"
	"github.com/vendrahq/vendra/internal/postgres"
)

// centsPerUnit converts currency-unit decimals to integer cents
var centsPerUnit = decimal.NewFromInt(100)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     postgres.IClient
	Cache  cache.Cache

	// Integrations
	BillingGateway billing.Gateway
	MessageSender  campaign.Sender

	// Repositories
	PlanRepo           plan.Repository
	SubscriptionRepo   subscription.Repository
	ProductRepo        product.Repository
	SupplierRepo       supplier.Repository
	CustomerRepo       customer.Repository
	PurchaseOrderRepo  purchaseorder.Repository
	SaleRepo           sale.Repository
	InventoryCountRepo inventorycount.Repository
	CampaignRepo       campaign.Repository
	MessageRepo        campaign.MessageRepository
	AdminRepo          admin.Repository
}
