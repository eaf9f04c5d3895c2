package dto

import (
	"context"

	"github.com/vendrahq/vendra/internal/domain/customer"
	"github.com/vendrahq/vendra/internal/domain/supplier"
	"github.com/vendrahq/vendra/internal/validator"
)

// CreateSupplierRequest represents the request payload for creating a supplier
type CreateSupplierRequest struct {
	Name      string `json:"name" binding:"required" validate:"required"`
	DocNumber string `json:"doc_number"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Notes     string `json:"notes"`
}

func (r *CreateSupplierRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateSupplierRequest) ToSupplier(ctx context.Context) *supplier.Supplier {
	s := supplier.New(ctx)
	s.Name = r.Name
	s.DocNumber = r.DocNumber
	s.Email = r.Email
	s.Phone = r.Phone
	s.Address = r.Address
	s.Notes = r.Notes
	return s
}

// UpdateSupplierRequest represents the request payload for updating a supplier
type UpdateSupplierRequest struct {
	Name      *string `json:"name,omitempty"`
	DocNumber *string `json:"doc_number,omitempty"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func (r *UpdateSupplierRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// SupplierResponse represents the supplier response structure
type SupplierResponse struct {
	*supplier.Supplier
}

// ListSuppliersResponse represents a supplier listing
type ListSuppliersResponse struct {
	Items []*SupplierResponse `json:"items"`
	Total int                 `json:"total"`
}

// CreateCustomerRequest represents the request payload for creating a customer
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
	Tag   string `json:"tag"`
	Notes string `json:"notes"`
}

func (r *CreateCustomerRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateCustomerRequest) ToCustomer(ctx context.Context) *customer.Customer {
	c := customer.New(ctx)
	c.Name = r.Name
	c.Email = r.Email
	c.Phone = r.Phone
	c.Tag = r.Tag
	c.Notes = r.Notes
	return c
}

// UpdateCustomerRequest represents the request payload for updating a customer
type UpdateCustomerRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone *string `json:"phone,omitempty"`
	Tag   *string `json:"tag,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

func (r *UpdateCustomerRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// CustomerResponse represents the customer response structure
type CustomerResponse struct {
	*customer.Customer
}

// ListCustomersResponse represents a customer listing
type ListCustomersResponse struct {
	Items []*CustomerResponse `json:"items"`
	Total int                 `json:"total"`
}
