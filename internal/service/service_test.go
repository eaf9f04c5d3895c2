package service

import (
	"github.com/vendrahq/vendra/internal/testutil"
)

// newTestServiceParams wires ServiceParams from the suite's in-memory
// stores and fake integrations.
func newTestServiceParams(s *testutil.BaseServiceTestSuite) ServiceParams {
	stores := s.GetStores()
	return ServiceParams{
		Logger:             s.GetLogger(),
		Config:             s.GetConfig(),
		DB:                 s.GetDB(),
		Cache:              s.GetCache(),
		BillingGateway:     s.GetBillingGateway(),
		MessageSender:      s.GetSender(),
		PlanRepo:           stores.PlanRepo,
		SubscriptionRepo:   stores.SubscriptionRepo,
		ProductRepo:        stores.ProductRepo,
		SupplierRepo:       stores.SupplierRepo,
		CustomerRepo:       stores.CustomerRepo,
		PurchaseOrderRepo:  stores.PurchaseOrderRepo,
		SaleRepo:           stores.SaleRepo,
		InventoryCountRepo: stores.InventoryCountRepo,
		CampaignRepo:       stores.CampaignRepo,
		MessageRepo:        stores.MessageRepo,
		AdminRepo:          stores.AdminRepo,
	}
}
