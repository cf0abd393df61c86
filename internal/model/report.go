package model

// KPISnapshot is derived on demand from the entity collections and never
// persisted.
type KPISnapshot struct {
	TotalProperties   int     `json:"totalProperties"`
	ActiveAgents      int     `json:"activeAgents"`
	NewInquiries      int     `json:"newInquiries"`
	ScheduledViewings int     `json:"scheduledViewings"`
	ForSale           int     `json:"forSale"`
	MonthlyRevenue    float64 `json:"monthlyRevenue"`
}

// TrendPoint is one month's bucket in a trend series.
type TrendPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}
