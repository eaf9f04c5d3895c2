package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"
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
	"github.com/vendrahq/vendra/internal/logger"
	"github.com/vendrahq/vendra/internal/postgres"
	"github.com/vendrahq/vendra/internal/types"
	"github.com/vendrahq/vendra/internal/validator"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
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

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	stores  Stores
	db      postgres.IClient
	cache   cache.Cache
	gateway *FakeBillingGateway
	sender  *FakeSender
	logger  *logger.Logger
	config  *config.Configuration
	now     time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	cfg := &config.Configuration{
		Deployment: config.DeploymentConfig{Mode: types.ModeLocal},
		Logging: config.LoggingConfig{
			Level: types.LogLevelInfo,
		},
		Billing: config.BillingConfig{
			DefaultRedirectOrigin: "https://app.test.vendra.dev",
		},
	}
	var err error
	s.config = cfg
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.setupContext()
	s.setupStores()
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
}

func (s *BaseServiceTestSuite) setupContext() {
	s.ctx = context.Background()
	s.ctx = context.WithValue(s.ctx, types.CtxTenantID, types.DefaultTenantID)
	s.ctx = context.WithValue(s.ctx, types.CtxUserID, types.DefaultUserID)
	s.ctx = context.WithValue(s.ctx, types.CtxRequestID, types.GenerateUUID())
}

func (s *BaseServiceTestSuite) setupStores() {
	s.stores = Stores{
		PlanRepo:           NewInMemoryPlanStore(),
		SubscriptionRepo:   NewInMemorySubscriptionStore(),
		ProductRepo:        NewInMemoryProductStore(),
		SupplierRepo:       NewInMemorySupplierStore(),
		CustomerRepo:       NewInMemoryCustomerStore(),
		PurchaseOrderRepo:  NewInMemoryPurchaseOrderStore(),
		SaleRepo:           NewInMemorySaleStore(),
		InventoryCountRepo: NewInMemoryInventoryCountStore(),
		CampaignRepo:       NewInMemoryCampaignStore(),
		MessageRepo:        NewInMemoryMessageStore(),
		AdminRepo:          NewInMemoryAdminStore(),
	}

	s.db = NewMockPostgresClient(s.logger)
	s.cache = cache.NewInMemoryCache()
	s.gateway = NewFakeBillingGateway()
	s.sender = NewFakeSender()
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.PlanRepo.(*InMemoryPlanStore).Clear()
	s.stores.SubscriptionRepo.(*InMemorySubscriptionStore).Clear()
	s.stores.ProductRepo.(*InMemoryProductStore).Clear()
	s.stores.SupplierRepo.(*InMemorySupplierStore).Clear()
	s.stores.CustomerRepo.(*InMemoryCustomerStore).Clear()
	s.stores.PurchaseOrderRepo.(*InMemoryPurchaseOrderStore).Clear()
	s.stores.SaleRepo.(*InMemorySaleStore).Clear()
	s.stores.InventoryCountRepo.(*InMemoryInventoryCountStore).Clear()
	s.stores.CampaignRepo.(*InMemoryCampaignStore).Clear()
	s.stores.MessageRepo.(*InMemoryMessageStore).Clear()
	s.stores.AdminRepo.(*InMemoryAdminStore).Clear()
	s.sender.Clear()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns all test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetDB returns the test database client
func (s *BaseServiceTestSuite) GetDB() postgres.IClient {
	return s.db
}

// GetCache returns the test cache
func (s *BaseServiceTestSuite) GetCache() cache.Cache {
	return s.cache
}

// GetBillingGateway returns the scriptable billing gateway
func (s *BaseServiceTestSuite) GetBillingGateway() *FakeBillingGateway {
	return s.gateway
}

// GetSender returns the fake message sender
func (s *BaseServiceTestSuite) GetSender() *FakeSender {
	return s.sender
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetNow returns the current test time
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now.UTC()
}

// GetUUID returns a new UUID string
func (s *BaseServiceTestSuite) GetUUID() string {
	return types.GenerateUUID()
}
