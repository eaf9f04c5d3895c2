package repository

import (
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
	"github.com/vendrahq/vendra/internal/logger"
	"github.com/vendrahq/vendra/internal/postgres"
	postgresRepo "github.com/vendrahq/vendra/internal/repository/postgres"
)

func NewPlanRepository(db *postgres.DB, logger *logger.Logger) plan.Repository {
	return postgresRepo.NewPlanRepository(db, logger)
}

func NewSubscriptionRepository(db *postgres.DB, logger *logger.Logger) subscription.Repository {
	return postgresRepo.NewSubscriptionRepository(db, logger)
}

func NewProductRepository(db *postgres.DB, logger *logger.Logger) product.Repository {
	return postgresRepo.NewProductRepository(db, logger)
}

func NewSupplierRepository(db *postgres.DB, logger *logger.Logger) supplier.Repository {
	return postgresRepo.NewSupplierRepository(db, logger)
}

func NewCustomerRepository(db *postgres.DB, logger *logger.Logger) customer.Repository {
	return postgresRepo.NewCustomerRepository(db, logger)
}

func NewPurchaseOrderRepository(db *postgres.DB, logger *logger.Logger) purchaseorder.Repository {
	return postgresRepo.NewPurchaseOrderRepository(db, logger)
}

func NewSaleRepository(db *postgres.DB, logger *logger.Logger) sale.Repository {
	return postgresRepo.NewSaleRepository(db, logger)
}

func NewInventoryCountRepository(db *postgres.DB, logger *logger.Logger) inventorycount.Repository {
	return postgresRepo.NewInventoryCountRepository(db, logger)
}

func NewCampaignRepository(db *postgres.DB, logger *logger.Logger) campaign.Repository {
	return postgresRepo.NewCampaignRepository(db, logger)
}

func NewMessageRepository(db *postgres.DB, logger *logger.Logger) campaign.MessageRepository {
	return postgresRepo.NewMessageRepository(db, logger)
}

func NewAdminRepository(db *postgres.DB, logger *logger.Logger) admin.Repository {
	return postgresRepo.NewAdminRepository(db, logger)
}
