package types

// PlanFilter defines filters for listing plans
type PlanFilter struct {
	*QueryFilter
	*TimeRangeFilter
}

func (f *PlanFilter) GetLimit() int {
	if f == nil || f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetLimit()
	}
	return f.QueryFilter.GetLimit()
}

func (f *PlanFilter) GetOffset() int {
	if f == nil || f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetOffset()
	}
	return f.QueryFilter.GetOffset()
}

// SubscriptionFilter defines filters for listing subscriptions
type SubscriptionFilter struct {
	*QueryFilter
	*TimeRangeFilter
	SubscriptionStatus SubscriptionStatus `json:"subscription_status,omitempty" form:"subscription_status"`
	PlanID             string             `json:"plan_id,omitempty" form:"plan_id"`
}

func (f *SubscriptionFilter) GetLimit() int {
	if f == nil || f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetLimit()
	}
	return f.QueryFilter.GetLimit()
}

func (f *SubscriptionFilter) GetOffset() int {
	if f == nil || f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetOffset()
	}
	return f.QueryFilter.GetOffset()
}
