package types

// SupplierFilter defines filters for listing suppliers
type SupplierFilter struct {
	*QueryFilter
	*TimeRangeFilter
	Search string `json:"search,omitempty" form:"search"`
}

func (f *SupplierFilter) GetLimit() int {
	if f == nil || f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetLimit()
	}
	return f.QueryFilter.GetLimit()
}

func (f *SupplierFilter) GetOffset() int {
	if f == nil || f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetOffset()
	}
	return f.QueryFilter.GetOffset()
}

// CustomerFilter defines filters for listing customers
type CustomerFilter struct {
	*QueryFilter
	*TimeRangeFilter
	Search string `json:"search,omitempty" form:"search"`
	Tag    string `json:"tag,omitempty" form:"tag"`
}

func (f *CustomerFilter) GetLimit() int {
	if f == nil || f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetLimit()
	}
	return f.QueryFilter.GetLimit()
}

func (f *CustomerFilter) GetOffset() int {
	if f == nil || f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetOffset()
	}
	return f.QueryFilter.GetOffset()
}
