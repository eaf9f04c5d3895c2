package types

// ProductFilter defines filters for listing products
type ProductFilter struct {
	*QueryFilter
	*TimeRangeFilter
	Category   string `json:"category,omitempty" form:"category"`
	Search     string `json:"search,omitempty" form:"search"`
	LowStock   bool   `json:"low_stock,omitempty" form:"low_stock"`
	SupplierID string `json:"supplier_id,omitempty" form:"supplier_id"`
}

func (f *ProductFilter) GetLimit() int {
	if f == nil || f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetLimit()
	}
	return f.QueryFilter.GetLimit()
}

func (f *ProductFilter) GetOffset() int {
	if f == nil || f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetOffset()
	}
	return f.QueryFilter.GetOffset()
}

func (f *ProductFilter) GetSort() string {
	if f == nil || f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetSort()
	}
	return f.QueryFilter.GetSort()
}

func (f *ProductFilter) GetOrder() string {
	if f == nil || f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetOrder()
	}
	return f.QueryFilter.GetOrder()
}

func (f *ProductFilter) IsUnlimited() bool {
	if f == nil || f.QueryFilter == nil {
		return false
	}
	return f.QueryFilter.IsUnlimited()
}

func (f *ProductFilter) Validate() error {
	if f == nil {
		return nil
	}
	if f.QueryFilter != nil {
		if err := f.QueryFilter.Validate(); err != nil {
			return err
		}
	}
	if f.TimeRangeFilter != nil {
		if err := f.TimeRangeFilter.Validate(); err != nil {
			return err
		}
	}
	return nil
}
