package service

import (
	"context"

	"github.com/vendrahq/vendra/internal/api/dto"
	"github.com/vendrahq/vendra/internal/types"
)

type SupplierService interface {
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error)
	GetSupplier(ctx context.Context, id string) (*dto.SupplierResponse, error)
	ListSuppliers(ctx context.Context, filter *types.SupplierFilter) (*dto.ListSuppliersResponse, error)
	UpdateSupplier(ctx context.Context, id string, req dto.UpdateSupplierRequest) (*dto.SupplierResponse, error)
	DeleteSupplier(ctx context.Context, id string) error
}

type supplierService struct {
	ServiceParams
}

func NewSupplierService(params ServiceParams) SupplierService {
	return &supplierService{ServiceParams: params}
}

func (s *supplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sup := req.ToSupplier(ctx)
	if err := s.SupplierRepo.Create(ctx, sup); err != nil {
		return nil, err
	}

	s.Logger.Infow("created supplier", "supplier_id", sup.ID, "name", sup.Name)
	return &dto.SupplierResponse{Supplier: sup}, nil
}

func (s *supplierService) GetSupplier(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	sup, err := s.SupplierRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.SupplierResponse{Supplier: sup}, nil
}

func (s *supplierService) ListSuppliers(ctx context.Context, filter *types.SupplierFilter) (*dto.ListSuppliersResponse, error) {
	suppliers, err := s.SupplierRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListSuppliersResponse{
		Items: make([]*dto.SupplierResponse, len(suppliers)),
		Total: len(suppliers),
	}
	for i, sup := range suppliers {
		resp.Items[i] = &dto.SupplierResponse{Supplier: sup}
	}
	return resp, nil
}

func (s *supplierService) UpdateSupplier(ctx context.Context, id string, req dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sup, err := s.SupplierRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		sup.Name = *req.Name
	}
	if req.DocNumber != nil {
		sup.DocNumber = *req.DocNumber
	}
	if req.Email != nil {
		sup.Email = *req.Email
	}
	if req.Phone != nil {
		sup.Phone = *req.Phone
	}
	if req.Address != nil {
		sup.Address = *req.Address
	}
	if req.Notes != nil {
		sup.Notes = *req.Notes
	}

	if err := s.SupplierRepo.Update(ctx, sup); err != nil {
		return nil, err
	}
	return &dto.SupplierResponse{Supplier: sup}, nil
}

func (s *supplierService) DeleteSupplier(ctx context.Context, id string) error {
	if _, err := s.SupplierRepo.Get(ctx, id); err != nil {
		return err
	}
	return s.SupplierRepo.Delete(ctx, id)
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	GetCustomer(ctx context.Context, id string) (*dto.CustomerResponse, error)
	ListCustomers(ctx context.Context, filter *types.CustomerFilter) (*dto.ListCustomersResponse, error)
	UpdateCustomer(ctx context.Context, id string, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error)
	DeleteCustomer(ctx context.Context, id string) error
}

type customerService struct {
	ServiceParams
}

func NewCustomerService(params ServiceParams) CustomerService {
	return &customerService{ServiceParams: params}
}

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c := req.ToCustomer(ctx)
	if err := s.CustomerRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.Logger.Infow("created customer", "customer_id", c.ID, "name", c.Name)
	return &dto.CustomerResponse{Customer: c}, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := s.CustomerRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.CustomerResponse{Customer: c}, nil
}

func (s *customerService) ListCustomers(ctx context.Context, filter *types.CustomerFilter) (*dto.ListCustomersResponse, error) {
	customers, err := s.CustomerRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListCustomersResponse{
		Items: make([]*dto.CustomerResponse, len(customers)),
		Total: len(customers),
	}
	for i, c := range customers {
		resp.Items[i] = &dto.CustomerResponse{Customer: c}
	}
	return resp, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id string, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.CustomerRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Tag != nil {
		c.Tag = *req.Tag
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}

	if err := s.CustomerRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return &dto.CustomerResponse{Customer: c}, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id string) error {
	if _, err := s.CustomerRepo.Get(ctx, id); err != nil {
		return err
	}
	return s.CustomerRepo.Delete(ctx, id)
}
