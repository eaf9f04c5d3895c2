package service

import (
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

func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	db postgres.IClient,
	cache cache.Cache,
	billingGateway billing.Gateway,
	messageSender campaign.Sender,
	planRepo plan.Repository,
	subscriptionRepo subscription.Repository,
	productRepo product.Repository,
	supplierRepo supplier.Repository,
	customerRepo customer.Repository,
	purchaseOrderRepo purchaseorder.Repository,
	saleRepo sale.Repository,
	inventoryCountRepo inventorycount.Repository,
	campaignRepo campaign.Repository,
	messageRepo campaign.MessageRepository,
	adminRepo admin.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:             logger,
		Config:             config,
		DB:                 db,
		Cache:              cache,
		BillingGateway:     billingGateway,
		MessageSender:      messageSender,
		PlanRepo:           planRepo,
		SubscriptionRepo:   subscriptionRepo,
		ProductRepo:        productRepo,
		SupplierRepo:       supplierRepo,
		CustomerRepo:       customerRepo,
		PurchaseOrderRepo:  purchaseOrderRepo,
		SaleRepo:           saleRepo,
		InventoryCountRepo: inventoryCountRepo,
		CampaignRepo:       campaignRepo,
		MessageRepo:        messageRepo,
		AdminRepo:          adminRepo,
	}
}
